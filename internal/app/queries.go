package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"game_reviews/internal/domain"
)

const categoriesKey = "categories"

// reviewTTL bounds how long a single review may be served from cache. A read
// that races a vote update can write back the pre-update row after the
// eviction; the cap limits how long that stale copy survives.
const reviewTTL = 30 * time.Second

func reviewKey(id int64) string { return fmt.Sprintf("review:%d", id) }

type QueryService struct {
	repo     domain.Repository
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService builds the read side. c may be nil to disable caching.
func NewQueryService(r domain.Repository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, categoriesKey, &out); ok {
			return out, nil
		}
	}
	out, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, categoriesKey, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

// ReviewListParams are the raw query-string values of a listing request.
type ReviewListParams struct {
	Category *string
	SortBy   string
	OrderBy  string
}

func (s *QueryService) ListReviews(ctx context.Context, p ReviewListParams) ([]domain.ReviewSummary, error) {
	order, err := domain.ParseSortOrder(p.OrderBy)
	if err != nil {
		return nil, err
	}
	q := domain.ReviewQuery{
		Category: p.Category,
		SortBy:   domain.ParseSortColumn(p.SortBy),
		Order:    order,
	}
	if q.Category != nil {
		if err := s.checkCategory(ctx, *q.Category); err != nil {
			return nil, err
		}
	}
	return s.repo.ListReviews(ctx, q)
}

func (s *QueryService) checkCategory(ctx context.Context, slug string) error {
	cats, err := s.ListCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		if c.Slug == slug {
			return nil
		}
	}
	return domain.NotFound(fmt.Sprintf("Category '%s' not found", slug))
}

func (s *QueryService) GetReview(ctx context.Context, id int64) (domain.Review, error) {
	key := reviewKey(id)
	var rv domain.Review
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &rv); ok {
			return rv, nil
		}
	}
	rv, err := s.repo.GetReview(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Review{}, domain.ReviewNotFound(id)
		}
		return domain.Review{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, rv, int(min(s.cacheTTL, reviewTTL).Seconds()))
	}
	return rv, nil
}

// ListComments returns the review's comments, newest first. The review must exist.
func (s *QueryService) ListComments(ctx context.Context, reviewID int64) ([]domain.Comment, error) {
	if _, err := s.GetReview(ctx, reviewID); err != nil {
		return nil, err
	}
	return s.repo.ListComments(ctx, reviewID)
}

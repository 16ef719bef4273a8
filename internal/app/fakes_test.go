package app_test

import (
	"context"
	"sort"
	"time"

	"game_reviews/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	categories []domain.Category
	users      map[string]bool
	reviews    map[int64]domain.Review
	comments   []domain.Comment

	categoryCalls int
	lastQuery     domain.ReviewQuery
}

func newFakeRepo() *fakeRepo {
	at := time.Date(2021, 1, 18, 10, 0, 20, 0, time.UTC)
	return &fakeRepo{
		categories: []domain.Category{
			{Slug: "euro game", Description: "Abstact games that involve little luck"},
			{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
		},
		users: map[string]bool{"mallionaire": true, "bainesface": true},
		reviews: map[int64]domain.Review{
			1: {ID: 1, Title: "Agricola", Owner: "mallionaire", Category: "euro game", Votes: 1, CreatedAt: at},
			3: {ID: 3, Title: "Ultimate Werewolf", Owner: "bainesface", Category: "social deduction", Votes: 5, CreatedAt: at},
		},
		comments: []domain.Comment{
			{ID: 1, ReviewID: 3, Author: "bainesface", Body: "I loved this game too!", CreatedAt: at},
			{ID: 2, ReviewID: 3, Author: "mallionaire", Body: "My dog loved this game too!", CreatedAt: at.Add(time.Hour)},
		},
	}
}

func (f *fakeRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	f.categoryCalls++
	return append([]domain.Category(nil), f.categories...), nil
}

func (f *fakeRepo) ListReviews(ctx context.Context, q domain.ReviewQuery) ([]domain.ReviewSummary, error) {
	f.lastQuery = q
	out := []domain.ReviewSummary{}
	for _, rv := range f.reviews {
		if q.Category != nil && rv.Category != *q.Category {
			continue
		}
		out = append(out, domain.ReviewSummary{ID: rv.ID, Title: rv.Title, Category: rv.Category, Votes: rv.Votes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) GetReview(ctx context.Context, id int64) (domain.Review, error) {
	rv, ok := f.reviews[id]
	if !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, nil
}

func (f *fakeRepo) ListComments(ctx context.Context, reviewID int64) ([]domain.Comment, error) {
	out := []domain.Comment{}
	for i := len(f.comments) - 1; i >= 0; i-- {
		if f.comments[i].ReviewID == reviewID {
			out = append(out, f.comments[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) AddComment(ctx context.Context, c domain.NewComment) (domain.Comment, error) {
	if !f.users[c.Author] {
		return domain.Comment{}, &domain.ReferenceError{Field: "author", Value: c.Author}
	}
	if _, ok := f.reviews[c.ReviewID]; !ok {
		return domain.Comment{}, &domain.ReferenceError{Field: "review_id", Value: c.ReviewID}
	}
	out := domain.Comment{
		ID:        int64(len(f.comments) + 1),
		Body:      c.Body,
		Author:    c.Author,
		ReviewID:  c.ReviewID,
		CreatedAt: time.Now().UTC(),
	}
	f.comments = append(f.comments, out)
	return out, nil
}

func (f *fakeRepo) IncrementVotes(ctx context.Context, id int64, delta int) (domain.Review, error) {
	rv, ok := f.reviews[id]
	if !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	rv.Votes += delta
	f.reviews[id] = rv
	return rv, nil
}

type fakeCache struct {
	store map[string]any
	ttls  map[string]int
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Category:
		*d = v.([]domain.Category)
	case *domain.Review:
		*d = v.(domain.Review)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
		c.ttls = map[string]int{}
	}
	c.store[key] = v
	c.ttls[key] = ttlSec
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

func ptr[T any](v T) *T { return &v }

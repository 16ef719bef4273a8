package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"game_reviews/internal/domain"
)

type CommandService struct {
	repo  domain.Repository
	cache domain.Cache
}

func NewCommandService(r domain.Repository, c domain.Cache) *CommandService {
	return &CommandService{repo: r, cache: c}
}

// PostComment stores a comment under a review exactly as sent. Only the empty
// string is rejected.
func (s *CommandService) PostComment(ctx context.Context, c domain.NewComment) (domain.Comment, error) {
	if c.Body == "" {
		return domain.Comment{}, domain.BadRequest("failed to submit empty comment")
	}
	out, err := s.repo.AddComment(ctx, c)
	if err != nil {
		return domain.Comment{}, err
	}
	log.Debug().Int64("review_id", out.ReviewID).Int64("comment_id", out.ID).Msg("comment added")
	return out, nil
}

func (s *CommandService) UpdateVotes(ctx context.Context, id int64, delta int) (domain.Review, error) {
	rv, err := s.repo.IncrementVotes(ctx, id, delta)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Review{}, domain.ReviewNotFound(id)
		}
		return domain.Review{}, err
	}
	if s.cache != nil {
		s.invalidateReview(ctx, id)
	}
	return rv, nil
}

func (s *CommandService) invalidateReview(ctx context.Context, id int64) {
	if err := s.cache.Del(ctx, reviewKey(id)); err != nil {
		log.Warn().Err(err).Int64("review_id", id).Msg("review cache eviction failed")
	}
}

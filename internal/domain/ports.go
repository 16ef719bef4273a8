package domain

import "context"

type Repository interface {
	// Read paths
	ListCategories(ctx context.Context) ([]Category, error)
	ListReviews(ctx context.Context, q ReviewQuery) ([]ReviewSummary, error)
	GetReview(ctx context.Context, id int64) (Review, error)
	ListComments(ctx context.Context, reviewID int64) ([]Comment, error)

	// Write paths
	AddComment(ctx context.Context, c NewComment) (Comment, error)
	IncrementVotes(ctx context.Context, id int64, delta int) (Review, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

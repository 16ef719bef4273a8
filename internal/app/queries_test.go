package app_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game_reviews/internal/app"
	"game_reviews/internal/domain"
)

func requireAPIError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	var ae *domain.APIError
	require.True(t, errors.As(err, &ae), "expected *domain.APIError, got %v", err)
	assert.Equal(t, status, ae.Status)
	assert.Equal(t, msg, ae.Msg)
}

func TestListCategories_CacheMissThenHit(t *testing.T) {
	repo := newFakeRepo()
	q := app.NewQueryService(repo, &fakeCache{}, 10*time.Minute)

	first, err := q.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "euro game", first[0].Slug)

	// second read must come from cache
	repo.categories = nil
	second, err := q.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.categoryCalls)
}

func TestListCategories_NoCache(t *testing.T) {
	repo := newFakeRepo()
	q := app.NewQueryService(repo, nil, 0)

	_, err := q.ListCategories(context.Background())
	require.NoError(t, err)
	_, err = q.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.categoryCalls)
}

func TestListReviews_Defaults(t *testing.T) {
	repo := newFakeRepo()
	q := app.NewQueryService(repo, nil, 0)

	out, err := q.ListReviews(context.Background(), app.ReviewListParams{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, domain.ReviewQuery{SortBy: domain.SortCreatedAt, Order: domain.Desc}, repo.lastQuery)
}

func TestListReviews_UnknownSortByFallsBack(t *testing.T) {
	repo := newFakeRepo()
	q := app.NewQueryService(repo, nil, 0)

	_, err := q.ListReviews(context.Background(), app.ReviewListParams{SortBy: "review_body; DROP TABLE reviews", OrderBy: "ASC"})
	require.NoError(t, err)
	assert.Equal(t, domain.SortCreatedAt, repo.lastQuery.SortBy)
	assert.Equal(t, domain.Asc, repo.lastQuery.Order)
}

func TestListReviews_InvalidOrder(t *testing.T) {
	q := app.NewQueryService(newFakeRepo(), nil, 0)

	_, err := q.ListReviews(context.Background(), app.ReviewListParams{OrderBy: "ascending"})
	requireAPIError(t, err, http.StatusBadRequest, "ascending is not a valid order, try DESC or ASC")

	_, err = q.ListReviews(context.Background(), app.ReviewListParams{OrderBy: "asc"})
	requireAPIError(t, err, http.StatusBadRequest, "asc is not a valid order, try DESC or ASC")
}

func TestListReviews_CategoryFilter(t *testing.T) {
	q := app.NewQueryService(newFakeRepo(), nil, 0)

	out, err := q.ListReviews(context.Background(), app.ReviewListParams{Category: ptr("social deduction")})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "social deduction", out[0].Category)
}

func TestListReviews_UnknownCategory(t *testing.T) {
	q := app.NewQueryService(newFakeRepo(), nil, 0)

	_, err := q.ListReviews(context.Background(), app.ReviewListParams{Category: ptr("bananas")})
	requireAPIError(t, err, http.StatusNotFound, "Category 'bananas' not found")
}

func TestGetReview(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(newFakeRepo(), cache, time.Minute)

	rv, err := q.GetReview(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Agricola", rv.Title)
	assert.Contains(t, cache.store, "review:1")

	_, err = q.GetReview(context.Background(), 999)
	requireAPIError(t, err, http.StatusNotFound, "Oops! ID:999 doesn't exist!")
	assert.NotContains(t, cache.store, "review:999")
}

func TestGetReview_CacheTTL(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(newFakeRepo(), cache, time.Hour)

	_, err := q.GetReview(context.Background(), 1)
	require.NoError(t, err)
	_, err = q.ListCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 30, cache.ttls["review:1"])
	assert.Equal(t, 3600, cache.ttls["categories"])

	cache = &fakeCache{}
	q = app.NewQueryService(newFakeRepo(), cache, 10*time.Second)
	_, err = q.GetReview(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, cache.ttls["review:1"])
}

func TestListComments(t *testing.T) {
	q := app.NewQueryService(newFakeRepo(), nil, 0)

	out, err := q.ListComments(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].CreatedAt.After(out[1].CreatedAt))

	out, err = q.ListComments(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	_, err = q.ListComments(context.Background(), 999)
	requireAPIError(t, err, http.StatusNotFound, "Oops! ID:999 doesn't exist!")
}

package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game_reviews/internal/seed"
)

func TestTestData_Shape(t *testing.T) {
	d, err := seed.TestData()
	require.NoError(t, err)

	assert.Len(t, d.Categories, 4)
	assert.Len(t, d.Users, 4)
	assert.Len(t, d.Reviews, 13)
	assert.Len(t, d.Comments, 6)

	first := d.Reviews[0]
	assert.Equal(t, "Agricola", first.Title)
	assert.Equal(t, "euro game", first.Category)
	assert.Equal(t, 1, first.Votes)
}

// Fixtures must satisfy the same foreign keys the schema enforces.
func TestTestData_References(t *testing.T) {
	d, err := seed.TestData()
	require.NoError(t, err)

	cats := map[string]bool{}
	for _, c := range d.Categories {
		cats[c.Slug] = true
	}
	users := map[string]bool{}
	for _, u := range d.Users {
		users[u.Username] = true
	}
	for i, r := range d.Reviews {
		assert.True(t, cats[r.Category], "review %d category %q", i+1, r.Category)
		assert.True(t, users[r.Owner], "review %d owner %q", i+1, r.Owner)
	}
	for i, c := range d.Comments {
		assert.True(t, users[c.Author], "comment %d author %q", i+1, c.Author)
		assert.True(t, c.ReviewID >= 1 && int(c.ReviewID) <= len(d.Reviews), "comment %d review_id %d", i+1, c.ReviewID)
	}
}

package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"game_reviews/internal/domain"
)

//go:embed data
var fixtures embed.FS

// Data is one fixture set. Reviews are inserted in order, so the n-th review
// gets review_id n on a fresh table; comments refer to reviews by that id.
type Data struct {
	Categories []domain.Category
	Users      []domain.User
	Reviews    []domain.Review
	Comments   []domain.Comment
}

// TestData loads the fixture set the test suites run against.
func TestData() (Data, error) { return load("test") }

func load(set string) (Data, error) {
	var d Data
	files := []struct {
		name string
		dst  any
	}{
		{"categories.json", &d.Categories},
		{"users.json", &d.Users},
		{"reviews.json", &d.Reviews},
		{"comments.json", &d.Comments},
	}
	for _, f := range files {
		b, err := fixtures.ReadFile(path.Join("data", set, f.name))
		if err != nil {
			return Data{}, fmt.Errorf("read fixture %s/%s: %w", set, f.name, err)
		}
		if err := json.Unmarshal(b, f.dst); err != nil {
			return Data{}, fmt.Errorf("decode fixture %s/%s: %w", set, f.name, err)
		}
	}
	return d, nil
}

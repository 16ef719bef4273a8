package domain

import "fmt"

// SortColumn is a review column that listings may be ordered by. Only values
// present in sortColumns are ever produced by ParseSortColumn.
type SortColumn string

const (
	SortOwner        SortColumn = "owner"
	SortTitle        SortColumn = "title"
	SortReviewID     SortColumn = "review_id"
	SortCategory     SortColumn = "category"
	SortReviewImgURL SortColumn = "review_img_url"
	SortCreatedAt    SortColumn = "created_at"
	SortDesigner     SortColumn = "designer"
	SortVotes        SortColumn = "votes"
)

var sortColumns = map[string]SortColumn{
	"owner":          SortOwner,
	"title":          SortTitle,
	"review_id":      SortReviewID,
	"category":       SortCategory,
	"review_img_url": SortReviewImgURL,
	"created_at":     SortCreatedAt,
	"designer":       SortDesigner,
	"votes":          SortVotes,
}

// ParseSortColumn resolves a sort_by value. Unknown or empty values fall back
// to created_at.
func ParseSortColumn(s string) SortColumn {
	if c, ok := sortColumns[s]; ok {
		return c
	}
	return SortCreatedAt
}

type SortOrder string

const (
	Asc  SortOrder = "ASC"
	Desc SortOrder = "DESC"
)

// ParseSortOrder accepts exactly ASC or DESC; empty means DESC.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "":
		return Desc, nil
	case string(Asc):
		return Asc, nil
	case string(Desc):
		return Desc, nil
	}
	return "", BadRequest(fmt.Sprintf("%s is not a valid order, try DESC or ASC", s))
}

type ReviewQuery struct {
	Category *string
	SortBy   SortColumn
	Order    SortOrder
}

package mysql

import (
	"fmt"
	"strings"

	"game_reviews/internal/domain"
)

// sortExprs is the only source of identifiers placed in ORDER BY.
var sortExprs = map[domain.SortColumn]string{
	domain.SortOwner:        "r.owner",
	domain.SortTitle:        "r.title",
	domain.SortReviewID:     "r.review_id",
	domain.SortCategory:     "r.category",
	domain.SortReviewImgURL: "r.review_img_url",
	domain.SortCreatedAt:    "r.created_at",
	domain.SortDesigner:     "r.designer",
	domain.SortVotes:        "r.votes",
}

var sortDirs = map[domain.SortOrder]string{
	domain.Asc:  "ASC",
	domain.Desc: "DESC",
}

// predicate is a WHERE condition over a fixed column with one bound argument.
type predicate struct {
	column string
	arg    any
}

type orderClause struct {
	expr string
	dir  string
}

type reviewListQuery struct {
	where []predicate
	order orderClause
}

func newReviewListQuery(q domain.ReviewQuery) (reviewListQuery, error) {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = domain.SortCreatedAt
	}
	order := q.Order
	if order == "" {
		order = domain.Desc
	}
	expr, ok := sortExprs[sortBy]
	if !ok {
		return reviewListQuery{}, fmt.Errorf("%w: sort column %q", domain.ErrInvalidInput, sortBy)
	}
	dir, ok := sortDirs[order]
	if !ok {
		return reviewListQuery{}, fmt.Errorf("%w: sort order %q", domain.ErrInvalidInput, order)
	}

	out := reviewListQuery{order: orderClause{expr: expr, dir: dir}}
	if q.Category != nil {
		out.where = append(out.where, predicate{column: "r.category", arg: *q.Category})
	}
	return out, nil
}

func (q reviewListQuery) build() (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(q.where))

	b.WriteString(listReviewsSelect)
	for i, p := range q.where {
		if i == 0 {
			b.WriteString("\nWHERE ")
		} else {
			b.WriteString("\n  AND ")
		}
		b.WriteString(p.column)
		b.WriteString(" = ?")
		args = append(args, p.arg)
	}
	b.WriteString(listReviewsGroupBy)
	b.WriteString("\nORDER BY ")
	b.WriteString(q.order.expr)
	b.WriteString(" ")
	b.WriteString(q.order.dir)
	// ties fall back to insertion order
	if q.order.expr != sortExprs[domain.SortReviewID] {
		b.WriteString(", r.review_id ASC")
	}
	return b.String(), args
}

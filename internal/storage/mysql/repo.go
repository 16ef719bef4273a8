package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"game_reviews/internal/adapters/observability"
	"game_reviews/internal/domain"
)

type Repo struct{ db *sqlx.DB }

// New wraps a pooled handle opened by the caller. The caller owns its lifecycle.
func New(db *sql.DB) *Repo { return &Repo{db: sqlx.NewDb(db, "mysql")} }

func observe(op string, start time.Time, err error) {
	observability.ObserveStore(op, err, time.Since(start))
}

func (r *Repo) ListCategories(ctx context.Context) (out []domain.Category, err error) {
	defer func(start time.Time) { observe("list_categories", start, err) }(time.Now())

	out = []domain.Category{}
	if err = r.db.SelectContext(ctx, &out, listCategoriesSQL); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ListReviews(ctx context.Context, q domain.ReviewQuery) (out []domain.ReviewSummary, err error) {
	defer func(start time.Time) { observe("list_reviews", start, err) }(time.Now())

	lq, err := newReviewListQuery(q)
	if err != nil {
		return nil, err
	}
	query, args := lq.build()

	out = []domain.ReviewSummary{}
	if err = r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, translate(err, nil)
	}
	return out, nil
}

func (r *Repo) GetReview(ctx context.Context, id int64) (rv domain.Review, err error) {
	defer func(start time.Time) { observe("get_review", start, err) }(time.Now())

	if err = r.db.GetContext(ctx, &rv, getReviewSQL, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Review{}, domain.ErrNotFound
		}
		return domain.Review{}, translate(err, nil)
	}
	return rv, nil
}

func (r *Repo) ListComments(ctx context.Context, reviewID int64) (out []domain.Comment, err error) {
	defer func(start time.Time) { observe("list_comments", start, err) }(time.Now())

	out = []domain.Comment{}
	if err = r.db.SelectContext(ctx, &out, listCommentsSQL, reviewID); err != nil {
		return nil, translate(err, nil)
	}
	return out, nil
}

// AddComment inserts the comment and reads it back so server-assigned columns
// (comment_id, votes, created_at) are populated.
func (r *Repo) AddComment(ctx context.Context, c domain.NewComment) (out domain.Comment, err error) {
	defer func(start time.Time) { observe("add_comment", start, err) }(time.Now())

	res, err := r.db.ExecContext(ctx, insertCommentSQL, c.Body, c.ReviewID, c.Author)
	if err != nil {
		return domain.Comment{}, translate(err, map[string]any{
			"review_id": c.ReviewID,
			"author":    c.Author,
		})
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}
	if err = r.db.GetContext(ctx, &out, getCommentSQL, id); err != nil {
		return domain.Comment{}, err
	}
	return out, nil
}

// IncrementVotes applies delta and re-reads the row in one transaction, so a
// missing review is reported by the read of the same snapshot that was updated.
func (r *Repo) IncrementVotes(ctx context.Context, id int64, delta int) (rv domain.Review, err error) {
	defer func(start time.Time) { observe("increment_votes", start, err) }(time.Now())

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Review{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, incrementVotesSQL, delta, id); err != nil {
		return domain.Review{}, translate(err, nil)
	}
	if err = tx.GetContext(ctx, &rv, getReviewSQL, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Review{}, domain.ErrNotFound
		}
		return domain.Review{}, err
	}
	if err = tx.Commit(); err != nil {
		return domain.Review{}, err
	}
	return rv, nil
}

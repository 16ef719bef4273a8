package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Children first, so foreign keys never block the drop.
var dropSQL = []string{
	`DROP TABLE IF EXISTS comments`,
	`DROP TABLE IF EXISTS reviews`,
	`DROP TABLE IF EXISTS users`,
	`DROP TABLE IF EXISTS categories`,
}

// seq keeps categories listable in insertion order; InnoDB would otherwise
// return them in primary key order.
//
// utf8mb4_bin compares usernames and slugs without case or accent folding. The server default
// (utf8mb4_0900_ai_ci) would let "MALLIONAIRE" satisfy the foreign key to
// "mallionaire".
var createSQL = []string{
	`CREATE TABLE categories (
  slug        VARCHAR(255) NOT NULL PRIMARY KEY,
  description TEXT         NOT NULL,
  seq         INT          NOT NULL AUTO_INCREMENT UNIQUE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin`,
	`CREATE TABLE users (
  username   VARCHAR(255) NOT NULL PRIMARY KEY,
  name       VARCHAR(255) NOT NULL,
  avatar_url VARCHAR(1024)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin`,
	`CREATE TABLE reviews (
  review_id      INT           NOT NULL AUTO_INCREMENT PRIMARY KEY,
  title          VARCHAR(255)  NOT NULL,
  designer       VARCHAR(255)  NOT NULL DEFAULT '',
  owner          VARCHAR(255)  NOT NULL,
  review_img_url VARCHAR(1024) NOT NULL DEFAULT 'https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg',
  review_body    TEXT          NOT NULL,
  category       VARCHAR(255)  NOT NULL,
  created_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  votes          INT           NOT NULL DEFAULT 0,
  CONSTRAINT fk_reviews_owner FOREIGN KEY (owner) REFERENCES users (username),
  CONSTRAINT fk_reviews_category FOREIGN KEY (category) REFERENCES categories (slug)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin`,
	`CREATE TABLE comments (
  comment_id INT          NOT NULL AUTO_INCREMENT PRIMARY KEY,
  body       TEXT         NOT NULL,
  review_id  INT          NOT NULL,
  author     VARCHAR(255) NOT NULL,
  votes      INT          NOT NULL DEFAULT 0,
  created_at DATETIME(3)  NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  CONSTRAINT fk_comments_review FOREIGN KEY (review_id) REFERENCES reviews (review_id) ON DELETE CASCADE,
  CONSTRAINT fk_comments_author FOREIGN KEY (author) REFERENCES users (username),
  INDEX idx_comments_review_created (review_id, created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin`,
}

const (
	insertCategoriesSQL = `INSERT INTO categories (slug, description) VALUES (:slug, :description)`
	insertUsersSQL      = `INSERT INTO users (username, name, avatar_url) VALUES (:username, :name, :avatar_url)`
	insertReviewsSQL    = `INSERT INTO reviews (title, designer, owner, review_img_url, review_body, category, created_at, votes)
VALUES (:title, :designer, :owner, :review_img_url, :review_body, :category, :created_at, :votes)`
	insertCommentsSQL = `INSERT INTO comments (body, review_id, author, votes, created_at)
VALUES (:body, :review_id, :author, :votes, :created_at)`
)

// Run drops and recreates every table, then loads d. It is meant for test
// setup and local development, never for request handling.
func Run(ctx context.Context, db *sql.DB, d Data) error {
	x := sqlx.NewDb(db, "mysql")

	for _, stmt := range dropSQL {
		if _, err := x.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("drop: %w", err)
		}
	}
	for _, stmt := range createSQL {
		if _, err := x.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create: %w", err)
		}
	}
	log.Debug().Msg("seed: tables recreated")

	// categories and users have no dependencies on each other
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return insert(gctx, x, "categories", insertCategoriesSQL, d.Categories) })
	g.Go(func() error { return insert(gctx, x, "users", insertUsersSQL, d.Users) })
	if err := g.Wait(); err != nil {
		return err
	}

	if err := insert(ctx, x, "reviews", insertReviewsSQL, d.Reviews); err != nil {
		return err
	}
	return insert(ctx, x, "comments", insertCommentsSQL, d.Comments)
}

func insert[T any](ctx context.Context, x *sqlx.DB, table, stmt string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if _, err := x.NamedExecContext(ctx, stmt, rows); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	log.Debug().Str("table", table).Int("rows", len(rows)).Msg("seed: inserted")
	return nil
}

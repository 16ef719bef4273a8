package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"game_reviews/internal/adapters/observability"
	"game_reviews/internal/seed"
	"game_reviews/internal/shared"
)

// seed drops and recreates the configured database's tables and loads the
// fixture set. Intended for local development only.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	data, err := seed.TestData()
	if err != nil {
		log.Fatal().Err(err).Msg("load fixtures failed")
	}
	start := time.Now()
	if err := seed.Run(ctx, db, data); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().
		Int("categories", len(data.Categories)).
		Int("users", len(data.Users)).
		Int("reviews", len(data.Reviews)).
		Int("comments", len(data.Comments)).
		Dur("took", time.Since(start)).
		Msg("seed completed")
}

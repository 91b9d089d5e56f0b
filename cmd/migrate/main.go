// Command migrate applies the embedded goose migrations to the configured
// database.
//
// Flags:
//
//	--command  up (default), down or status
//
// Exit codes: 0 = success, 1 = error, 2 = unknown command.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/foodgram-backend/internal/app"
	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/migrations"
)

func main() {
	command := flag.String("command", "up", "migration command: up, down or status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	switch *command {
	case "up", "down", "status":
	default:
		flag.Usage()
		os.Exit(2)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(logger, cfg.Database.DSN, *command); err != nil {
		logger.Error("migrate failed",
			slog.String("command", *command),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dsn, command string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.String("source", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
		logger.Info("migrations up to date", slog.Int("applied", len(results)))
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("migration rolled back", slog.String("source", r.Source.Path))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.String("source", s.Source.Path),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt),
			)
		}
	}
	return nil
}

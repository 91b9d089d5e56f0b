// Command load-ingredients fills an empty ingredient catalogue from a JSON
// fixture. A catalogue that already holds ingredients is left untouched.
//
// Flags:
//
//	--file  path to the fixture (default: data/ingredients.json)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	ingredientrepo "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/ingredient"
	"github.com/heartmarshall/foodgram-backend/internal/app"
	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/service/ingredient"
)

func main() {
	file := flag.String("file", "data/ingredients.json", "path to the ingredient fixture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(logger, cfg, *file); err != nil {
		logger.Error("load ingredients failed", slog.String("file", *file), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *config.Config, file string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := ingredient.NewService(logger, ingredientrepo.New(pool))

	res, err := svc.Import(ctx, f)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	logger.Info("import completed",
		slog.Int("parsed", res.Parsed),
		slog.Int("skipped", res.Skipped),
		slog.Int("inserted", res.Inserted),
		slog.Bool("already_loaded", res.AlreadyLoaded),
	)
	return nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	ingredientrepo "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/ingredient"
	reciperepo "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/relation"
	userrepo "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/storage/s3"
	"github.com/heartmarshall/foodgram-backend/internal/auth"
	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/metrics"
	authsvc "github.com/heartmarshall/foodgram-backend/internal/service/auth"
	"github.com/heartmarshall/foodgram-backend/internal/service/ingredient"
	"github.com/heartmarshall/foodgram-backend/internal/service/recipe"
	"github.com/heartmarshall/foodgram-backend/internal/service/user"
	"github.com/heartmarshall/foodgram-backend/internal/transport/dataloader"
	"github.com/heartmarshall/foodgram-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL and object storage, builds the services and serves the HTTP
// API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	images, err := s3.New(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	users := userrepo.New(pool)
	recipes := reciperepo.New(pool)
	ingredients := ingredientrepo.New(pool)
	favorites := relation.New(pool, relation.Favorites)
	cart := relation.New(pool, relation.ShoppingCart)
	subscriptions := relation.New(pool, relation.Subscriptions)
	tx := postgres.NewTxManager(pool)
	rec := metrics.Recorder{}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handler := rest.NewRouter(rest.Deps{
		Logger:      logger,
		Server:      cfg.Server,
		Pagination:  cfg.Pagination,
		RateLimit:   cfg.RateLimit,
		CORS:        cfg.CORS,
		Auth:        authsvc.NewService(logger, users, jwt, cfg.Auth),
		Users:       user.NewService(logger, users, recipes, subscriptions, images, rec, cfg.Auth),
		Recipes:     recipe.NewService(logger, recipes, ingredients, favorites, cart, images, tx, rec),
		Ingredients: ingredient.NewService(logger, ingredients),
		Loaders: &dataloader.Repos{
			Users:         users,
			Links:         recipes,
			Favorites:     favorites,
			Cart:          cart,
			Subscriptions: subscriptions,
		},
		Health: rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{
			"database": pool,
			"storage":  images,
		}),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/transport/dataloader"
	"github.com/heartmarshall/foodgram-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// accountService is the auth service as the router sees it.
type accountService interface {
	authService
	registrar
	tokenValidator
}

// Deps are the collaborators the router is built from.
type Deps struct {
	Logger      *slog.Logger
	Server      config.ServerConfig
	Pagination  config.PaginationConfig
	RateLimit   config.RateLimitConfig
	CORS        config.CORSConfig
	Auth        accountService
	Users       userService
	Recipes     recipeService
	Ingredients ingredientService
	Loaders     *dataloader.Repos
	Health      *HealthHandler
}

// NewRouter wires middleware and routes of the HTTP API.
func NewRouter(d Deps) http.Handler {
	pg := pager{cfg: d.Pagination, baseURL: d.Server.PublicURL}

	ingredients := NewIngredientHandler(d.Ingredients, d.Logger)
	recipes := NewRecipeHandler(d.Recipes, pg, d.Server.PublicURL, d.Logger)
	users := NewUserHandler(d.Users, d.Auth, pg, d.Logger)
	auth := NewAuthHandler(d.Auth, d.Logger)

	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.Metrics,
		middleware.CORS(d.CORS),
	)

	r.Get("/health", d.Health.Health)
	r.Get("/health/live", d.Health.Live)
	r.Get("/health/ready", d.Health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(
			middleware.RateLimit(d.RateLimit),
			maxBody(d.Server.MaxBodyBytes),
			middleware.Auth(d.Auth),
			dataloader.Middleware(d.Loaders),
		)

		r.Post("/auth/token/login/", auth.Login)
		r.Post("/auth/token/logout/", auth.Logout)

		r.Get("/ingredients/", ingredients.List)
		r.Get("/ingredients/{id}/", ingredients.Get)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.List)
			r.Post("/", recipes.Create)
			r.Get("/download_shopping_cart/", recipes.DownloadShoppingCart)
			r.Get("/{id}/", recipes.Get)
			r.Patch("/{id}/", recipes.Update)
			r.Delete("/{id}/", recipes.Delete)
			r.Get("/{id}/get-link/", recipes.ShortLink)
			r.Post("/{id}/favorite/", recipes.AddFavorite)
			r.Delete("/{id}/favorite/", recipes.RemoveFavorite)
			r.Post("/{id}/shopping_cart/", recipes.AddToCart)
			r.Delete("/{id}/shopping_cart/", recipes.RemoveFromCart)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.List)
			r.Post("/", users.Register)
			r.Get("/me/", users.Me)
			r.Put("/me/avatar/", users.SetAvatar)
			r.Delete("/me/avatar/", users.DeleteAvatar)
			r.Post("/set_password/", users.SetPassword)
			r.Get("/subscriptions/", users.Subscriptions)
			r.Get("/{id}/", users.Get)
			r.Post("/{id}/subscribe/", users.Subscribe)
			r.Delete("/{id}/subscribe/", users.Unsubscribe)
		})
	})

	return r
}

// maxBody caps request bodies; image payloads arrive inline as base64.
func maxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

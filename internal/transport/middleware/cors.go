package middleware

import (
	"github.com/go-chi/cors"

	"github.com/heartmarshall/foodgram-backend/internal/config"
)

// CORS builds the cross-origin handler from configuration.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{RequestIDHeader, "Content-Disposition"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

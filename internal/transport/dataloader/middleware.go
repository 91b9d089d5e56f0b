package dataloader

import (
	"net/http"

	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// Middleware instantiates per-request DataLoaders for the caller and stores
// them in the request context. It must run after the auth middleware.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerID, _ := ctxutil.UserIDFromCtx(r.Context())
			ctx := WithLoaders(r.Context(), NewLoaders(repos, callerID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

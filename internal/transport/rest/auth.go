package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodgram-backend/internal/service/auth"
)

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	Logout(ctx context.Context) error
}

// AuthHandler issues and drops access tokens.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AuthToken string `json:"auth_token"`
}

// Login handles POST /api/auth/token/login/.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AuthToken: result.AccessToken})
}

// Logout handles POST /api/auth/token/logout/.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/service/auth"
	"github.com/heartmarshall/foodgram-backend/internal/service/user"
)

type registrar interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
}

type userService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Me(ctx context.Context) (*domain.User, error)
	ListUsers(ctx context.Context, page domain.PageRequest) (*user.UserPage, error)
	SetPassword(ctx context.Context, input user.SetPasswordInput) error
	SetAvatar(ctx context.Context, payload string) (*domain.User, error)
	DeleteAvatar(ctx context.Context) error
	Subscribe(ctx context.Context, authorID uuid.UUID, recipesLimit int) (*user.AuthorWithRecipes, error)
	Unsubscribe(ctx context.Context, authorID uuid.UUID) error
	ListSubscriptions(ctx context.Context, page domain.PageRequest, recipesLimit int) (*user.SubscriptionPage, error)
}

// UserHandler serves accounts, profiles, avatars and subscriptions.
type UserHandler struct {
	svc      userService
	accounts registrar
	pager    pager
	log      *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, accounts registrar, pg pager, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, accounts: accounts, pager: pg, log: logger.With("handler", "user")}
}

type registerRequest struct {
	Email     string `json:"email"      validate:"required,email,max=254"`
	Username  string `json:"username"   validate:"required,max=150"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name"  validate:"required,max=150"`
	Password  string `json:"password"   validate:"required"`
}

type registeredResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type setPasswordRequest struct {
	NewPassword     string `json:"new_password"     validate:"required"`
	CurrentPassword string `json:"current_password" validate:"required"`
}

type avatarRequest struct {
	Avatar string `json:"avatar" validate:"required"`
}

type avatarResponse struct {
	Avatar *string `json:"avatar"`
}

// Register handles POST /api/users/. No token is issued.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.accounts.Register(r.Context(), auth.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registeredResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	})
}

// List handles GET /api/users/.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.pager.page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListUsers(r.Context(), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rendered, err := renderUsers(r.Context(), result.Users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp, err := envelope(h.pager, r, page, result.Total, rendered)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/users/{id}/.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeUser(w, r, u)
}

// Me handles GET /api/users/me/.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeUser(w, r, u)
}

// SetPassword handles POST /api/users/set_password/.
func (h *UserHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	var req setPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	err := h.svc.SetPassword(r.Context(), user.SetPasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetAvatar handles PUT /api/users/me/avatar/.
func (h *UserHandler) SetAvatar(w http.ResponseWriter, r *http.Request) {
	var req avatarRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.SetAvatar(r.Context(), req.Avatar)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, avatarResponse{Avatar: u.AvatarURL})
}

// DeleteAvatar handles DELETE /api/users/me/avatar/.
func (h *UserHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAvatar(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Subscriptions handles GET /api/users/subscriptions/.
func (h *UserHandler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	page, err := h.pager.page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit := user.ParseRecipesLimit(r.URL.Query().Get("recipes_limit"))
	result, err := h.svc.ListSubscriptions(r.Context(), page, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rendered, err := renderSubscriptions(r.Context(), result.Authors)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp, err := envelope(h.pager, r, page, result.Total, rendered)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Subscribe handles POST /api/users/{id}/subscribe/.
func (h *UserHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit := user.ParseRecipesLimit(r.URL.Query().Get("recipes_limit"))
	author, err := h.svc.Subscribe(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rendered, err := renderSubscriptions(r.Context(), []user.AuthorWithRecipes{*author})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rendered[0])
}

// Unsubscribe handles DELETE /api/users/{id}/subscribe/.
func (h *UserHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Unsubscribe(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) writeUser(w http.ResponseWriter, r *http.Request, u *domain.User) {
	resp, err := renderUser(r.Context(), *u)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

type ingredientService interface {
	List(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error)
}

// IngredientHandler serves the read-only ingredient catalogue.
type IngredientHandler struct {
	svc ingredientService
	log *slog.Logger
}

// NewIngredientHandler creates an IngredientHandler.
func NewIngredientHandler(svc ingredientService, logger *slog.Logger) *IngredientHandler {
	return &IngredientHandler{svc: svc, log: logger.With("handler", "ingredient")}
}

// List handles GET /api/ingredients/?name=prefix. The listing is unpaginated.
func (h *IngredientHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]ingredientResponse, len(items))
	for i, it := range items {
		out[i] = toIngredient(it)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/ingredients/{id}/.
func (h *IngredientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIngredient(*item))
}

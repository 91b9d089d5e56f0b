package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/service/recipe"
)

type recipeService interface {
	CreateRecipe(ctx context.Context, input recipe.CreateRecipeInput) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, input recipe.UpdateRecipeInput) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error
	GetRecipe(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error)
	ListRecipes(ctx context.Context, input recipe.ListRecipesInput) (*recipe.RecipePage, error)
	ShortLink(ctx context.Context, baseURL string, recipeID uuid.UUID) (string, error)
	AddFavorite(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error)
	RemoveFavorite(ctx context.Context, recipeID uuid.UUID) error
	AddToCart(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error)
	RemoveFromCart(ctx context.Context, recipeID uuid.UUID) error
	ShoppingList(ctx context.Context) ([]domain.ShoppingListItem, error)
}

// RecipeHandler serves recipes, favorites, the shopping cart and its report.
type RecipeHandler struct {
	svc       recipeService
	pager     pager
	publicURL string
	log       *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(svc recipeService, pg pager, publicURL string, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{svc: svc, pager: pg, publicURL: publicURL, log: logger.With("handler", "recipe")}
}

type ingredientAmountRequest struct {
	ID     string `json:"id"     validate:"required,uuid"`
	Amount int    `json:"amount"`
}

type createRecipeRequest struct {
	Ingredients []ingredientAmountRequest `json:"ingredients" validate:"dive"`
	Image       string                    `json:"image"`
	Name        string                    `json:"name"`
	Text        string                    `json:"text"`
	CookingTime int                       `json:"cooking_time"`
}

type updateRecipeRequest struct {
	Ingredients []ingredientAmountRequest `json:"ingredients" validate:"omitempty,dive"`
	Image       string                    `json:"image"`
	Name        *string                   `json:"name"`
	Text        *string                   `json:"text"`
	CookingTime *int                      `json:"cooking_time"`
}

// toAmounts converts validated ingredient rows. A nil slice stays nil so an
// absent field can be told apart from an empty list.
func toAmounts(items []ingredientAmountRequest) []domain.IngredientAmount {
	if items == nil {
		return nil
	}
	out := make([]domain.IngredientAmount, len(items))
	for i, it := range items {
		out[i] = domain.IngredientAmount{IngredientID: uuid.MustParse(it.ID), Amount: it.Amount}
	}
	return out
}

// List handles GET /api/recipes/.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.pager.page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := recipe.ListRecipesInput{
		Page:             page,
		IsFavorited:      queryBool(r, "is_favorited"),
		IsInShoppingCart: queryBool(r, "is_in_shopping_cart"),
		Ordering:         r.URL.Query().Get("ordering"),
	}
	if raw := r.URL.Query().Get("author"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("author", "must be a valid id"))
			return
		}
		input.AuthorID = &authorID
	}

	result, err := h.svc.ListRecipes(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rendered, err := renderRecipes(r.Context(), result.Recipes)
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

// Get handles GET /api/recipes/{id}/.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.GetRecipe(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeRecipe(w, r, http.StatusOK, rec)
}

// Create handles POST /api/recipes/.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ingredients := toAmounts(req.Ingredients)
	if ingredients == nil {
		ingredients = []domain.IngredientAmount{}
	}
	rec, err := h.svc.CreateRecipe(r.Context(), recipe.CreateRecipeInput{
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		Ingredients: ingredients,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeRecipe(w, r, http.StatusCreated, rec)
}

// Update handles PATCH /api/recipes/{id}/.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.UpdateRecipe(r.Context(), recipe.UpdateRecipeInput{
		RecipeID:    id,
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		Ingredients: toAmounts(req.Ingredients),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeRecipe(w, r, http.StatusOK, rec)
}

// Delete handles DELETE /api/recipes/{id}/.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.noContent(w, r, h.svc.DeleteRecipe)
}

// ShortLink handles GET /api/recipes/{id}/get-link/.
func (h *RecipeHandler) ShortLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	link, err := h.svc.ShortLink(r.Context(), absoluteBase(h.publicURL, r), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shortLinkResponse{ShortLink: link})
}

// AddFavorite handles POST /api/recipes/{id}/favorite/.
func (h *RecipeHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.created(w, r, h.svc.AddFavorite)
}

// RemoveFavorite handles DELETE /api/recipes/{id}/favorite/.
func (h *RecipeHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.noContent(w, r, h.svc.RemoveFavorite)
}

// AddToCart handles POST /api/recipes/{id}/shopping_cart/.
func (h *RecipeHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	h.created(w, r, h.svc.AddToCart)
}

// RemoveFromCart handles DELETE /api/recipes/{id}/shopping_cart/.
func (h *RecipeHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.noContent(w, r, h.svc.RemoveFromCart)
}

// DownloadShoppingCart handles GET /api/recipes/download_shopping_cart/.
// The report is rebuilt on every call.
func (h *RecipeHandler) DownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ShoppingList(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="cart.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(recipe.RenderShoppingList(items)))
}

func (h *RecipeHandler) writeRecipe(w http.ResponseWriter, r *http.Request, status int, rec *domain.Recipe) {
	resp, err := renderRecipe(r.Context(), *rec)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, resp)
}

// created runs an add-relation operation and answers with the short recipe.
func (h *RecipeHandler) created(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Recipe, error)) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toShortRecipe(*rec))
}

func (h *RecipeHandler) noContent(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) error) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := op(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

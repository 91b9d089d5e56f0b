package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// ShoppingListHeader is the first line of a rendered shopping list.
const ShoppingListHeader = "Shopping list:"

// ShoppingList sums the ingredient amounts of every recipe in the caller's
// cart, grouped by ingredient name and unit and sorted by name. The list is
// computed from the current cart on every call.
func (s *Service) ShoppingList(ctx context.Context) ([]domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	recipeIDs, err := s.cart.TargetIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recipe.ShoppingList: %w", err)
	}
	if len(recipeIDs) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items, err := s.recipes.SumIngredients(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("recipe.ShoppingList: %w", err)
	}

	s.metrics.ShoppingListBuilt(len(items))
	s.log.InfoContext(ctx, "shopping list built",
		slog.String("user_id", userID.String()),
		slog.Int("recipes", len(recipeIDs)),
		slog.Int("items", len(items)),
	)

	return items, nil
}

// RenderShoppingList formats items as a plain-text report: the header line
// followed by one line per item.
func RenderShoppingList(items []domain.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString(ShoppingListHeader)
	b.WriteByte('\n')
	for _, it := range items {
		b.WriteString("- ")
		b.WriteString(it.Name)
		b.WriteString(" (")
		b.WriteString(it.MeasurementUnit)
		b.WriteString(") — ")
		b.WriteString(strconv.FormatInt(it.Amount, 10))
		b.WriteByte('\n')
	}
	return b.String()
}

package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// DeleteRecipe removes a recipe owned by the caller. Links, favorites and
// cart entries go with it; the image is removed after the row is gone.
func (s *Service) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	existing, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("recipe.DeleteRecipe: %w", err)
	}
	if existing.AuthorID != userID {
		return domain.ErrForbidden
	}

	if err := s.recipes.Delete(ctx, recipeID); err != nil {
		return fmt.Errorf("recipe.DeleteRecipe: %w", err)
	}

	s.discardImage(ctx, recipeID, existing.ImageURL)

	s.metrics.RecipeWritten("delete")
	s.log.InfoContext(ctx, "recipe deleted",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", recipeID.String()),
	)

	return nil
}

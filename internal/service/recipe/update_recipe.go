package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// UpdateRecipe applies a partial update to a recipe owned by the caller.
// A supplied ingredient list replaces every existing link in the same
// transaction as the recipe row.
func (s *Service) UpdateRecipe(ctx context.Context, input UpdateRecipeInput) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	existing, err := s.recipes.GetByID(ctx, input.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("recipe.UpdateRecipe: %w", err)
	}
	if existing.AuthorID != userID {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Ingredients != nil {
		if err := s.checkIngredientsExist(ctx, input.Ingredients); err != nil {
			return nil, fmt.Errorf("recipe.UpdateRecipe: %w", err)
		}
	}

	imageURL, err := s.saveImage(ctx, input.Image)
	if err != nil {
		return nil, fmt.Errorf("recipe.UpdateRecipe: %w", err)
	}

	changed := *existing
	changed.ImageURL = imageURL
	if input.Name != nil {
		changed.Name = domain.CollapseSpaces(*input.Name)
	}
	if input.Text != nil {
		changed.Text = strings.TrimSpace(*input.Text)
	}
	if input.CookingTime != nil {
		changed.CookingTime = *input.CookingTime
	}

	var updated *domain.Recipe
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.recipes.Update(txCtx, &changed)
		if updateErr != nil {
			return fmt.Errorf("update recipe: %w", updateErr)
		}
		if input.Ingredients == nil {
			return nil
		}
		if _, err := s.recipes.DeleteIngredients(txCtx, updated.ID); err != nil {
			return fmt.Errorf("clear ingredients: %w", err)
		}
		if err := s.recipes.InsertIngredients(txCtx, updated.ID, input.Ingredients); err != nil {
			return fmt.Errorf("insert ingredients: %w", err)
		}
		return nil
	})
	if err != nil {
		s.discardImage(ctx, existing.ID, imageURL)
		return nil, fmt.Errorf("recipe.UpdateRecipe: %w", err)
	}

	if existing.ImageURL != imageURL {
		s.discardImage(ctx, existing.ID, existing.ImageURL)
	}

	s.metrics.RecipeWritten("update")
	s.log.InfoContext(ctx, "recipe updated",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", updated.ID.String()),
		slog.Bool("ingredients_replaced", input.Ingredients != nil),
	)

	return updated, nil
}

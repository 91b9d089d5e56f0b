package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// checkIngredientsExist fails with a validation error naming the first
// unknown ingredient.
func (s *Service) checkIngredientsExist(ctx context.Context, items []domain.IngredientAmount) error {
	ids := ingredientIDs(items)
	found, err := s.ingredients.ExistingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("lookup ingredients: %w", err)
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return domain.NewValidationError("ingredients", fmt.Sprintf("ingredient %s does not exist", id))
		}
	}
	return nil
}

// saveImage uploads an encoded image and returns its reference.
func (s *Service) saveImage(ctx context.Context, payload string) (string, error) {
	ref, err := s.images.Save(ctx, imagePrefix, payload)
	s.metrics.ImageStored("save", err)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidImage) {
			return "", domain.NewValidationError("image", err.Error())
		}
		return "", fmt.Errorf("save image: %w", err)
	}
	return ref, nil
}

// discardImage removes a stored image. Failures are logged only: the
// recipe row is already consistent and an orphaned object is harmless.
func (s *Service) discardImage(ctx context.Context, recipeID uuid.UUID, ref string) {
	if ref == "" {
		return
	}
	err := s.images.Delete(ctx, ref)
	s.metrics.ImageStored("delete", err)
	if err != nil {
		s.log.WarnContext(ctx, "image delete failed",
			slog.String("recipe_id", recipeID.String()),
			slog.String("image", ref),
			slog.String("error", err.Error()),
		)
	}
}

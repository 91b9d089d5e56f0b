package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// CreateRecipe stores a recipe authored by the caller together with its
// ingredient links. Either everything is stored or nothing is.
func (s *Service) CreateRecipe(ctx context.Context, input CreateRecipeInput) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkIngredientsExist(ctx, input.Ingredients); err != nil {
		return nil, fmt.Errorf("recipe.CreateRecipe: %w", err)
	}

	imageURL, err := s.saveImage(ctx, input.Image)
	if err != nil {
		return nil, fmt.Errorf("recipe.CreateRecipe: %w", err)
	}

	rec := &domain.Recipe{
		ID:          uuid.New(),
		AuthorID:    userID,
		Name:        domain.CollapseSpaces(input.Name),
		Text:        strings.TrimSpace(input.Text),
		ImageURL:    imageURL,
		CookingTime: input.CookingTime,
		PubDate:     time.Now().UTC(),
	}

	var created *domain.Recipe
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.recipes.Create(txCtx, rec)
		if createErr != nil {
			return fmt.Errorf("create recipe: %w", createErr)
		}
		if err := s.recipes.InsertIngredients(txCtx, created.ID, input.Ingredients); err != nil {
			return fmt.Errorf("insert ingredients: %w", err)
		}
		return nil
	})
	if err != nil {
		s.discardImage(ctx, rec.ID, imageURL)
		return nil, fmt.Errorf("recipe.CreateRecipe: %w", err)
	}

	s.metrics.RecipeWritten("create")
	s.log.InfoContext(ctx, "recipe created",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", created.ID.String()),
		slog.Int("ingredients", len(input.Ingredients)),
	)

	return created, nil
}

package recipe

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// GetRecipe returns a recipe by id. Anonymous callers are allowed.
func (s *Service) GetRecipe(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("recipe.GetRecipe: %w", err)
	}
	return rec, nil
}

// ShortLink returns the absolute URL of the recipe's detail view under baseURL.
func (s *Service) ShortLink(ctx context.Context, baseURL string, recipeID uuid.UUID) (string, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return "", fmt.Errorf("recipe.ShortLink: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("recipe.ShortLink: invalid base url %q", baseURL)
	}
	return base.JoinPath("api", "recipes", rec.ID.String()).String() + "/", nil
}

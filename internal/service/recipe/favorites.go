package recipe

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// AddFavorite marks a recipe as a favorite of the caller.
func (s *Service) AddFavorite(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	rec, _, err := s.favorites.Add(ctx, recipeID)
	return rec, err
}

// RemoveFavorite unmarks a favorite recipe of the caller.
func (s *Service) RemoveFavorite(ctx context.Context, recipeID uuid.UUID) error {
	return s.favorites.Remove(ctx, recipeID)
}

// AddToCart puts a recipe into the caller's shopping cart.
func (s *Service) AddToCart(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	rec, _, err := s.carted.Add(ctx, recipeID)
	return rec, err
}

// RemoveFromCart takes a recipe out of the caller's shopping cart.
func (s *Service) RemoveFromCart(ctx context.Context, recipeID uuid.UUID) error {
	return s.carted.Remove(ctx, recipeID)
}

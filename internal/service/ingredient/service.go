package ingredient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// ingredientRepo defines the ingredient repository interface needed by ingredient service.
type ingredientRepo interface {
	List(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error)
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, items []domain.Ingredient) (int, error)
}

// Service implements the read-mostly ingredient catalogue.
type Service struct {
	log         *slog.Logger
	ingredients ingredientRepo
}

// NewService creates a new ingredient service instance.
func NewService(logger *slog.Logger, ingredients ingredientRepo) *Service {
	return &Service{
		log:         logger.With("service", "ingredient"),
		ingredients: ingredients,
	}
}

// List returns ingredients whose name starts with prefix, ordered by name.
// An empty prefix lists the whole catalogue.
func (s *Service) List(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	items, err := s.ingredients.List(ctx, strings.TrimSpace(prefix))
	if err != nil {
		return nil, fmt.Errorf("ingredient.List: %w", err)
	}
	return items, nil
}

// Get returns one ingredient.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	item, err := s.ingredients.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ingredient.Get: %w", err)
	}
	return item, nil
}

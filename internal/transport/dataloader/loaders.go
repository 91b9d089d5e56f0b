package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Users by ID
// ---------------------------------------------------------------------------

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			if u, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.User]{Data: u}
			} else {
				results[i] = &dataloader.Result[*domain.User]{Error: fmt.Errorf("user %s: %w", key, domain.ErrNotFound)}
			}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Ingredient links by RecipeID
// ---------------------------------------------------------------------------

func newIngredientsBatchFn(repo ingredientLinkRepo) dataloader.BatchFunc[uuid.UUID, []domain.RecipeIngredient] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.RecipeIngredient] {
		links, err := repo.IngredientsByRecipeIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.RecipeIngredient](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.RecipeIngredient, len(keys))
		for _, l := range links {
			grouped[l.RecipeID] = append(grouped[l.RecipeID], l)
		}

		return mapResults(keys, grouped, emptySlice[domain.RecipeIngredient])
	}
}

// ---------------------------------------------------------------------------
// Caller relation flags by target ID
// ---------------------------------------------------------------------------

func newFlagBatchFn(repo relationRepo, callerID uuid.UUID) dataloader.BatchFunc[uuid.UUID, bool] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[bool] {
		if callerID == uuid.Nil {
			return mapResults(keys, nil, falseValue)
		}
		found, err := repo.ExistingTargets(ctx, callerID, keys)
		if err != nil {
			return errorResults[bool](len(keys), err)
		}
		return mapResults(keys, found, falseValue)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}

func falseValue() bool { return false }

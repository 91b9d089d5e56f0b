// Package dataloader provides per-request DataLoaders that batch the reads
// needed to render recipe and user responses: authors, ingredient links and
// the caller's favorite, cart and subscription flags. Loaders call
// repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type ingredientLinkRepo interface {
	IngredientsByRecipeIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]domain.RecipeIngredient, error)
}

type relationRepo interface {
	ExistingTargets(ctx context.Context, subjectID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Users         userRepo
	Links         ingredientLinkRepo
	Favorites     relationRepo
	Cart          relationRepo
	Subscriptions relationRepo
}

// Loaders contains the per-request DataLoaders. The relation flags are
// answered for the caller the loaders were created for.
type Loaders struct {
	UserByID              *dataloader.Loader[uuid.UUID, *domain.User]
	IngredientsByRecipeID *dataloader.Loader[uuid.UUID, []domain.RecipeIngredient]
	IsFavorited           *dataloader.Loader[uuid.UUID, bool]
	IsInShoppingCart      *dataloader.Loader[uuid.UUID, bool]
	IsSubscribed          *dataloader.Loader[uuid.UUID, bool]
}

// NewLoaders creates a set of DataLoaders for one request. callerID is
// uuid.Nil for anonymous requests, in which case every flag is false.
func NewLoaders(repos *Repos, callerID uuid.UUID) *Loaders {
	return &Loaders{
		UserByID:              newLoader(newUsersBatchFn(repos.Users)),
		IngredientsByRecipeID: newLoader(newIngredientsBatchFn(repos.Links)),
		IsFavorited:           newLoader(newFlagBatchFn(repos.Favorites, callerID)),
		IsInShoppingCart:      newLoader(newFlagBatchFn(repos.Cart, callerID)),
		IsSubscribed:          newLoader(newFlagBatchFn(repos.Subscriptions, callerID)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present, which means the middleware is missing.
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}

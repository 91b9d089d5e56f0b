package recipe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/service/relation"
)

// recipeRepo defines the recipe repository interface needed by recipe service.
type recipeRepo interface {
	Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f domain.RecipeFilter) ([]domain.Recipe, error)
	Count(ctx context.Context, f domain.RecipeFilter) (int, error)
	InsertIngredients(ctx context.Context, recipeID uuid.UUID, items []domain.IngredientAmount) error
	DeleteIngredients(ctx context.Context, recipeID uuid.UUID) (int64, error)
	SumIngredients(ctx context.Context, recipeIDs []uuid.UUID) ([]domain.ShoppingListItem, error)
}

// ingredientRepo defines the ingredient lookups needed by recipe service.
type ingredientRepo interface {
	ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error)
}

// cartStore is the shopping cart relation with the listing the report needs.
type cartStore interface {
	relation.Store
	TargetIDs(ctx context.Context, subjectID uuid.UUID) ([]uuid.UUID, error)
}

// imageStore persists encoded recipe images.
type imageStore interface {
	Save(ctx context.Context, prefix, payload string) (string, error)
	Delete(ctx context.Context, ref string) error
}

// txManager defines the transaction manager interface needed by recipe service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// recorder receives domain metrics.
type recorder interface {
	relation.Recorder
	RecipeWritten(op string)
	ShoppingListBuilt(items int)
	ImageStored(op string, err error)
}

const imagePrefix = "recipes/images"

// Service implements recipe authoring, listing, favorites, the shopping
// cart and the shopping list report.
type Service struct {
	log         *slog.Logger
	recipes     recipeRepo
	ingredients ingredientRepo
	cart        cartStore
	images      imageStore
	tx          txManager
	metrics     recorder

	favorites *relation.Manager[*domain.Recipe]
	carted    *relation.Manager[*domain.Recipe]
}

// NewService creates a new recipe service instance.
func NewService(
	logger *slog.Logger,
	recipes recipeRepo,
	ingredients ingredientRepo,
	favorites relation.Store,
	cart cartStore,
	images imageStore,
	tx txManager,
	metrics recorder,
) *Service {
	s := &Service{
		log:         logger.With("service", "recipe"),
		recipes:     recipes,
		ingredients: ingredients,
		cart:        cart,
		images:      images,
		tx:          tx,
		metrics:     metrics,
	}
	s.favorites = relation.NewManager[*domain.Recipe](s.log, domain.RelationFavorite, favorites, s.lookupRecipe,
		relation.WithRecorder(metrics))
	s.carted = relation.NewManager[*domain.Recipe](s.log, domain.RelationShoppingCart, cart, s.lookupRecipe,
		relation.WithRecorder(metrics))
	return s
}

func (s *Service) lookupRecipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

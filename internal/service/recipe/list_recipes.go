package recipe

import (
	"context"
	"fmt"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// RecipePage is one page of a recipe listing with the unpaged total.
type RecipePage struct {
	Recipes []domain.Recipe
	Total   int
}

// ListRecipes returns a filtered, ordered page of recipes.
//
// The relation flags narrow to the caller's favorites or cart. A set flag
// from an anonymous caller yields an empty page; an unset flag never narrows.
// An unknown ordering falls back to newest first.
func (s *Service) ListRecipes(ctx context.Context, input ListRecipesInput) (*RecipePage, error) {
	userID, authenticated := ctxutil.UserIDFromCtx(ctx)
	if (input.IsFavorited || input.IsInShoppingCart) && !authenticated {
		return &RecipePage{Recipes: []domain.Recipe{}}, nil
	}

	ordering, ok := domain.ParseRecipeOrdering(input.Ordering)
	if !ok {
		ordering = domain.DefaultRecipeOrdering
	}

	f := domain.RecipeFilter{
		AuthorID: input.AuthorID,
		Ordering: ordering,
		Limit:    input.Page.Size,
		Offset:   input.Page.Offset(),
	}
	if input.IsFavorited {
		f.FavoritedBy = &userID
	}
	if input.IsInShoppingCart {
		f.InCartOf = &userID
	}

	total, err := s.recipes.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("recipe.ListRecipes: %w", err)
	}
	if total == 0 {
		return &RecipePage{Recipes: []domain.Recipe{}}, nil
	}

	recipes, err := s.recipes.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("recipe.ListRecipes: %w", err)
	}

	return &RecipePage{Recipes: recipes, Total: total}, nil
}

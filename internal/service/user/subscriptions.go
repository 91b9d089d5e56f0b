package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// AuthorWithRecipes is a followed author with a possibly truncated list of
// their recipes. RecipesCount is always the full total.
type AuthorWithRecipes struct {
	Author       domain.User
	Recipes      []domain.Recipe
	RecipesCount int
}

// SubscriptionPage is one page of followed authors with the unpaged total.
type SubscriptionPage struct {
	Authors []AuthorWithRecipes
	Total   int
}

// Subscribe makes the caller follow authorID and returns the author with
// up to recipesLimit recipes (AllRecipes for no limit).
func (s *Service) Subscribe(ctx context.Context, authorID uuid.UUID, recipesLimit int) (*AuthorWithRecipes, error) {
	author, _, err := s.subscriptions.Add(ctx, authorID)
	if err != nil {
		return nil, err
	}

	annotated, err := s.withRecipes(ctx, []domain.User{*author}, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("user.Subscribe: %w", err)
	}
	return &annotated[0], nil
}

// Unsubscribe stops the caller following authorID.
func (s *Service) Unsubscribe(ctx context.Context, authorID uuid.UUID) error {
	return s.subscriptions.Remove(ctx, authorID)
}

// ListSubscriptions returns one page of the authors the caller follows,
// each with up to recipesLimit recipes and the full recipe count.
func (s *Service) ListSubscriptions(ctx context.Context, page domain.PageRequest, recipesLimit int) (*SubscriptionPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	total, err := s.users.CountSubscribedAuthors(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.ListSubscriptions: %w", err)
	}
	if total == 0 {
		return &SubscriptionPage{Authors: []AuthorWithRecipes{}}, nil
	}

	authors, err := s.users.ListSubscribedAuthors(ctx, userID, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("user.ListSubscriptions: %w", err)
	}

	annotated, err := s.withRecipes(ctx, authors, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("user.ListSubscriptions: %w", err)
	}
	return &SubscriptionPage{Authors: annotated, Total: total}, nil
}

// withRecipes attaches recipes and recipe counts to authors in two queries.
func (s *Service) withRecipes(ctx context.Context, authors []domain.User, recipesLimit int) ([]AuthorWithRecipes, error) {
	out := make([]AuthorWithRecipes, len(authors))
	if len(authors) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(authors))
	for i, a := range authors {
		ids[i] = a.ID
	}

	counts, err := s.recipes.CountByAuthors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count recipes: %w", err)
	}

	byAuthor := make(map[uuid.UUID][]domain.Recipe, len(authors))
	if recipesLimit != 0 {
		recipes, err := s.recipes.ListByAuthors(ctx, ids, recipesLimit)
		if err != nil {
			return nil, fmt.Errorf("list recipes: %w", err)
		}
		for _, r := range recipes {
			byAuthor[r.AuthorID] = append(byAuthor[r.AuthorID], r)
		}
	}

	for i, a := range authors {
		recipes := byAuthor[a.ID]
		if recipes == nil {
			recipes = []domain.Recipe{}
		}
		out[i] = AuthorWithRecipes{Author: a, Recipes: recipes, RecipesCount: counts[a.ID]}
	}
	return out, nil
}

package rest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/service/user"
	"github.com/heartmarshall/foodgram-backend/internal/transport/dataloader"
)

type userResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsSubscribed bool      `json:"is_subscribed"`
	Avatar       *string   `json:"avatar"`
}

type ingredientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
}

type recipeIngredientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
	Amount          int       `json:"amount"`
}

type recipeResponse struct {
	ID               uuid.UUID                  `json:"id"`
	Author           userResponse               `json:"author"`
	Ingredients      []recipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
}

type shortRecipeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CookingTime int       `json:"cooking_time"`
}

type subscriptionResponse struct {
	userResponse
	Recipes      []shortRecipeResponse `json:"recipes"`
	RecipesCount int                   `json:"recipes_count"`
}

type shortLinkResponse struct {
	ShortLink string `json:"short-link"`
}

func toIngredient(i domain.Ingredient) ingredientResponse {
	return ingredientResponse{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}

func toShortRecipe(r domain.Recipe) shortRecipeResponse {
	return shortRecipeResponse{ID: r.ID, Name: r.Name, Image: r.ImageURL, CookingTime: r.CookingTime}
}

func toUserResponse(u domain.User, subscribed bool) userResponse {
	resp := userResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}
	if u.HasAvatar() {
		resp.Avatar = u.AvatarURL
	}
	return resp
}

// renderUsers annotates users with the caller's subscription flag. All flags
// are requested before any is awaited so the loader answers them in one query.
func renderUsers(ctx context.Context, users []domain.User) ([]userResponse, error) {
	loaders := dataloader.FromContext(ctx)

	thunks := make([]func() (bool, error), len(users))
	for i, u := range users {
		thunks[i] = loaders.IsSubscribed.Load(ctx, u.ID)
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		subscribed, err := thunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load subscription flag: %w", err)
		}
		out[i] = toUserResponse(u, subscribed)
	}
	return out, nil
}

func renderUser(ctx context.Context, u domain.User) (userResponse, error) {
	out, err := renderUsers(ctx, []domain.User{u})
	if err != nil {
		return userResponse{}, err
	}
	return out[0], nil
}

// recipeThunks are the pending loads for one recipe.
type recipeThunks struct {
	author      func() (*domain.User, error)
	subscribed  func() (bool, error)
	ingredients func() ([]domain.RecipeIngredient, error)
	favorited   func() (bool, error)
	inCart      func() (bool, error)
}

// renderRecipes hydrates recipes with author, ingredient links and the
// caller's flags. Every load is queued first, then awaited.
func renderRecipes(ctx context.Context, recipes []domain.Recipe) ([]recipeResponse, error) {
	loaders := dataloader.FromContext(ctx)

	pending := make([]recipeThunks, len(recipes))
	for i, rec := range recipes {
		pending[i] = recipeThunks{
			author:      loaders.UserByID.Load(ctx, rec.AuthorID),
			subscribed:  loaders.IsSubscribed.Load(ctx, rec.AuthorID),
			ingredients: loaders.IngredientsByRecipeID.Load(ctx, rec.ID),
			favorited:   loaders.IsFavorited.Load(ctx, rec.ID),
			inCart:      loaders.IsInShoppingCart.Load(ctx, rec.ID),
		}
	}

	out := make([]recipeResponse, len(recipes))
	for i, rec := range recipes {
		resp, err := pending[i].resolve(rec)
		if err != nil {
			return nil, fmt.Errorf("render recipe %s: %w", rec.ID, err)
		}
		out[i] = resp
	}
	return out, nil
}

func renderRecipe(ctx context.Context, rec domain.Recipe) (recipeResponse, error) {
	out, err := renderRecipes(ctx, []domain.Recipe{rec})
	if err != nil {
		return recipeResponse{}, err
	}
	return out[0], nil
}

func (t recipeThunks) resolve(rec domain.Recipe) (recipeResponse, error) {
	author, err := t.author()
	if err != nil {
		return recipeResponse{}, err
	}
	subscribed, err := t.subscribed()
	if err != nil {
		return recipeResponse{}, err
	}
	links, err := t.ingredients()
	if err != nil {
		return recipeResponse{}, err
	}
	favorited, err := t.favorited()
	if err != nil {
		return recipeResponse{}, err
	}
	inCart, err := t.inCart()
	if err != nil {
		return recipeResponse{}, err
	}

	ingredients := make([]recipeIngredientResponse, len(links))
	for i, l := range links {
		ingredients[i] = recipeIngredientResponse{
			ID:              l.IngredientID,
			Name:            l.Name,
			MeasurementUnit: l.MeasurementUnit,
			Amount:          l.Amount,
		}
	}

	return recipeResponse{
		ID:               rec.ID,
		Author:           toUserResponse(*author, subscribed),
		Ingredients:      ingredients,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             rec.Name,
		Image:            rec.ImageURL,
		Text:             rec.Text,
		CookingTime:      rec.CookingTime,
	}, nil
}

// renderSubscriptions renders followed authors with their recipe previews.
func renderSubscriptions(ctx context.Context, authors []user.AuthorWithRecipes) ([]subscriptionResponse, error) {
	users := make([]domain.User, len(authors))
	for i, a := range authors {
		users[i] = a.Author
	}
	rendered, err := renderUsers(ctx, users)
	if err != nil {
		return nil, err
	}

	out := make([]subscriptionResponse, len(authors))
	for i, a := range authors {
		recipes := make([]shortRecipeResponse, len(a.Recipes))
		for j, rec := range a.Recipes {
			recipes[j] = toShortRecipe(rec)
		}
		out[i] = subscriptionResponse{
			userResponse: rendered[i],
			Recipes:      recipes,
			RecipesCount: a.RecipesCount,
		}
	}
	return out, nil
}

package recipe

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// CreateRecipeInput holds parameters for recipe creation.
// Image is an encoded payload (data URI or bare base64).
type CreateRecipeInput struct {
	Name        string
	Text        string
	Image       string
	CookingTime int
	Ingredients []domain.IngredientAmount
}

// Validate validates the create recipe input.
func (i CreateRecipeInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateText(errs, i.Text)
	if strings.TrimSpace(i.Image) == "" {
		errs = append(errs, domain.FieldError{Field: "image", Message: "required"})
	}
	errs = validateCookingTime(errs, i.CookingTime)
	errs = validateIngredients(errs, i.Ingredients)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRecipeInput holds parameters for a partial recipe update.
// Nil fields keep their stored value. A nil Ingredients slice leaves the
// links untouched; a non-nil one replaces them all. Image is always required.
type UpdateRecipeInput struct {
	RecipeID    uuid.UUID
	Name        *string
	Text        *string
	Image       string
	CookingTime *int
	Ingredients []domain.IngredientAmount
}

// Validate validates the update recipe input.
func (i UpdateRecipeInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Text != nil {
		errs = validateText(errs, *i.Text)
	}
	if strings.TrimSpace(i.Image) == "" {
		errs = append(errs, domain.FieldError{Field: "image", Message: "required"})
	}
	if i.CookingTime != nil {
		errs = validateCookingTime(errs, *i.CookingTime)
	}
	if i.Ingredients != nil {
		errs = validateIngredients(errs, i.Ingredients)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRecipesInput holds the recipe listing filter as received from the caller.
type ListRecipesInput struct {
	Page             domain.PageRequest
	AuthorID         *uuid.UUID
	IsFavorited      bool
	IsInShoppingCart bool
	Ordering         string
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > domain.MaxRecipeNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}

func validateText(errs []domain.FieldError, text string) []domain.FieldError {
	if strings.TrimSpace(text) == "" {
		return append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	return errs
}

func validateCookingTime(errs []domain.FieldError, minutes int) []domain.FieldError {
	if !domain.CookingTimeInRange(minutes) {
		return append(errs, domain.FieldError{
			Field:   "cooking_time",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinCookingTime, domain.MaxCookingTime),
		})
	}
	return errs
}

// validateIngredients rejects empty lists, repeated ingredients and amounts
// out of bounds. Existence is checked against storage separately.
func validateIngredients(errs []domain.FieldError, items []domain.IngredientAmount) []domain.FieldError {
	if len(items) == 0 {
		return append(errs, domain.FieldError{Field: "ingredients", Message: "at least one ingredient is required"})
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		seen[it.IngredientID] = struct{}{}
	}
	if len(seen) != len(items) {
		errs = append(errs, domain.FieldError{Field: "ingredients", Message: "ingredients must not repeat"})
	}

	for _, it := range items {
		if !domain.AmountInRange(it.Amount) {
			errs = append(errs, domain.FieldError{
				Field:   "ingredients",
				Message: fmt.Sprintf("amount must be between %d and %d", domain.MinAmount, domain.MaxAmount),
			})
			break
		}
	}
	return errs
}

func ingredientIDs(items []domain.IngredientAmount) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.IngredientID
	}
	return ids
}

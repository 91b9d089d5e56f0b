package user

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/service/auth"
)

// SetPasswordInput holds parameters for a password change.
type SetPasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the set password input.
func (i SetPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	errs = auth.ValidatePassword(errs, "new_password", i.NewPassword)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AllRecipes asks for every recipe of each author.
const AllRecipes = -1

// ParseRecipesLimit interprets the recipes_limit query value. Absent,
// non-numeric or negative values are ignored and mean AllRecipes.
func ParseRecipesLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return AllRecipes
	}
	return n
}

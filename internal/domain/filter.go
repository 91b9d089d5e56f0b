package domain

import (
	"strings"

	"github.com/google/uuid"
)

// RecipeSortField is a column recipes may be ordered by.
type RecipeSortField string

const (
	SortByPubDate     RecipeSortField = "pub_date"
	SortByName        RecipeSortField = "name"
	SortByCookingTime RecipeSortField = "cooking_time"
)

// RecipeOrdering is a sort field with direction.
type RecipeOrdering struct {
	Field RecipeSortField
	Desc  bool
}

// DefaultRecipeOrdering lists newest recipes first.
var DefaultRecipeOrdering = RecipeOrdering{Field: SortByPubDate, Desc: true}

// ParseRecipeOrdering parses "name", "-pub_date" and the like.
// Unknown fields report ok=false.
func ParseRecipeOrdering(s string) (RecipeOrdering, bool) {
	s = strings.TrimSpace(s)
	desc := strings.HasPrefix(s, "-")
	field := RecipeSortField(strings.TrimPrefix(s, "-"))

	switch field {
	case SortByPubDate, SortByName, SortByCookingTime:
		return RecipeOrdering{Field: field, Desc: desc}, true
	default:
		return RecipeOrdering{}, false
	}
}

// RecipeFilter narrows a recipe listing. Nil pointers mean "no narrowing".
type RecipeFilter struct {
	AuthorID    *uuid.UUID
	FavoritedBy *uuid.UUID
	InCartOf    *uuid.UUID
	Ordering    RecipeOrdering
	Limit       int
	Offset      int
}

// PageRequest is a 1-based page number with a page size.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows skipped before the page.
func (p PageRequest) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

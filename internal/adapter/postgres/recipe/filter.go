package recipe

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

const (
	defaultLimit = 6
	maxLimit     = 100
)

var sortColumns = map[domain.RecipeSortField]string{
	domain.SortByPubDate:     "r.pub_date",
	domain.SortByName:        "r.name",
	domain.SortByCookingTime: "r.cooking_time",
}

// normalize applies defaults and clamps values.
func normalize(f domain.RecipeFilter) domain.RecipeFilter {
	if _, ok := sortColumns[f.Ordering.Field]; !ok {
		f.Ordering = domain.DefaultRecipeOrdering
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// where turns the narrowing part of f into predicates on alias r.
func where(f domain.RecipeFilter) sq.And {
	conds := sq.And{}
	if f.AuthorID != nil {
		conds = append(conds, sq.Eq{"r.author_id": *f.AuthorID})
	}
	if f.FavoritedBy != nil {
		conds = append(conds, sq.Expr(
			"EXISTS (SELECT 1 FROM favorite_recipes fr WHERE fr.recipe_id = r.id AND fr.user_id = ?)", *f.FavoritedBy,
		))
	}
	if f.InCartOf != nil {
		conds = append(conds, sq.Expr(
			"EXISTS (SELECT 1 FROM shopping_list_entries sl WHERE sl.recipe_id = r.id AND sl.user_id = ?)", *f.InCartOf,
		))
	}
	return conds
}

// orderBy renders the ORDER BY clause. The id tiebreak keeps pages stable.
func orderBy(o domain.RecipeOrdering) []string {
	dir := " ASC"
	if o.Desc {
		dir = " DESC"
	}
	return []string{sortColumns[o.Field] + dir, "r.id" + dir}
}

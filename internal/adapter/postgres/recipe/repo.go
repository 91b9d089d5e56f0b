// Package recipe implements the Recipe repository, including ingredient
// links and shopping list aggregation, using PostgreSQL.
package recipe

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

var columns = []string{
	"r.id", "r.author_id", "r.name", "r.text", "r.image_url", "r.cooking_time", "r.pub_date",
}

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recipe repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Recipes
// ---------------------------------------------------------------------------

// Create inserts a recipe row. Ingredient links are inserted separately.
func (r *Repo) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanRecipe(postgres.QueryRow(ctx, q,
		postgres.Builder().Insert("recipes AS r").
			Columns("id", "author_id", "name", "text", "image_url", "cooking_time", "pub_date").
			Values(rec.ID, rec.AuthorID, rec.Name, rec.Text, rec.ImageURL, rec.CookingTime, rec.PubDate).
			Suffix("RETURNING "+returning()),
	))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}
	return &created, nil
}

// GetByID returns a recipe by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecipe(postgres.QueryRow(ctx, q,
		postgres.Builder().Select(columns...).From("recipes r").Where(sq.Eq{"r.id": id}),
	))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", id)
	}
	return &rec, nil
}

// Update overwrites the editable recipe fields. Author and pub_date never change.
func (r *Repo) Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanRecipe(postgres.QueryRow(ctx, q,
		postgres.Builder().Update("recipes AS r").
			Set("name", rec.Name).
			Set("text", rec.Text).
			Set("image_url", rec.ImageURL).
			Set("cooking_time", rec.CookingTime).
			Where(sq.Eq{"r.id": rec.ID}).
			Suffix("RETURNING "+returning()),
	))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}
	return &updated, nil
}

// Delete removes a recipe; links and relation edges cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete("recipes").Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "recipe", id)
	}
	if n == 0 {
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns one page of recipes matching f.
func (r *Repo) List(ctx context.Context, f domain.RecipeFilter) ([]domain.Recipe, error) {
	f = normalize(f)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(columns...).From("recipes r").
		OrderBy(orderBy(f.Ordering)...).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
	if conds := where(f); len(conds) > 0 {
		b = b.Where(conds)
	}

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return collectRecipes(rows)
}

// Count returns how many recipes match f, ignoring paging.
func (r *Repo) Count(ctx context.Context, f domain.RecipeFilter) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select("COUNT(*)").From("recipes r")
	if conds := where(f); len(conds) > 0 {
		b = b.Where(conds)
	}

	var n int64
	if err := postgres.QueryRow(ctx, q, b).Scan(&n); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return int(n), nil
}

// ListByAuthors returns recipes of the given authors, newest first per
// author. perAuthor < 0 means no limit.
func (r *Repo) ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, perAuthor int) ([]domain.Recipe, error) {
	if len(authorIDs) == 0 || perAuthor == 0 {
		return []domain.Recipe{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rankedColumns := append(append([]string{}, columns...),
		"ROW_NUMBER() OVER (PARTITION BY r.author_id ORDER BY r.pub_date DESC, r.id DESC) AS rn")
	ranked := postgres.Builder().
		Select(rankedColumns...).
		From("recipes r").
		Where(sq.Eq{"r.author_id": authorIDs})

	b := postgres.Builder().
		Select("id", "author_id", "name", "text", "image_url", "cooking_time", "pub_date").
		FromSelect(ranked, "ranked").
		OrderBy("author_id", "rn")
	if perAuthor > 0 {
		b = b.Where(sq.LtOrEq{"rn": perAuthor})
	}

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list recipes by authors: %w", err)
	}
	return collectRecipes(rows)
}

// CountByAuthors returns the number of recipes per author. Authors without
// recipes are absent from the map.
func (r *Repo) CountByAuthors(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q,
		postgres.Builder().Select("author_id", "COUNT(*)").
			From("recipes").
			Where(sq.Eq{"author_id": authorIDs}).
			GroupBy("author_id"),
	)
	if err != nil {
		return nil, fmt.Errorf("count recipes by authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id uuid.UUID
			n  int64
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan recipe count: %w", err)
		}
		counts[id] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe counts: %w", err)
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Ingredient links
// ---------------------------------------------------------------------------

// A link pointing at an ingredient removed since the caller checked it is a
// bad payload, not a missing recipe.
var linkCodes = map[string]error{
	postgres.CodeForeignKeyViolation: domain.NewValidationError("ingredients", "ingredient does not exist"),
}

// InsertIngredients inserts all links of a recipe in a single statement.
func (r *Repo) InsertIngredients(ctx context.Context, recipeID uuid.UUID, items []domain.IngredientAmount) error {
	if len(items) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Insert("recipe_ingredients").
		Columns("id", "recipe_id", "ingredient_id", "amount")
	for _, it := range items {
		b = b.Values(uuid.New(), recipeID, it.IngredientID, it.Amount)
	}

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapErrorWith(err, "recipe ingredients", recipeID, linkCodes)
	}
	return nil
}

// DeleteIngredients removes every link of a recipe.
func (r *Repo) DeleteIngredients(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q,
		postgres.Builder().Delete("recipe_ingredients").Where(sq.Eq{"recipe_id": recipeID}),
	)
	if err != nil {
		return 0, postgres.MapError(err, "recipe ingredients", recipeID)
	}
	return n, nil
}

// IngredientsByRecipeIDs returns the links of the given recipes joined with
// ingredient name and unit, ordered by ingredient name.
func (r *Repo) IngredientsByRecipeIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]domain.RecipeIngredient, error) {
	if len(recipeIDs) == 0 {
		return []domain.RecipeIngredient{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q,
		postgres.Builder().
			Select("ri.id", "ri.recipe_id", "ri.ingredient_id", "i.name", "i.measurement_unit", "ri.amount").
			From("recipe_ingredients ri").
			Join("ingredients i ON i.id = ri.ingredient_id").
			Where(sq.Eq{"ri.recipe_id": recipeIDs}).
			OrderBy("ri.recipe_id", "i.name", "i.measurement_unit"),
	)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()

	links := make([]domain.RecipeIngredient, 0)
	for rows.Next() {
		var l domain.RecipeIngredient
		if err := rows.Scan(&l.ID, &l.RecipeID, &l.IngredientID, &l.Name, &l.MeasurementUnit, &l.Amount); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe ingredients: %w", err)
	}
	return links, nil
}

// SumIngredients totals link amounts over the given recipes grouped by
// (ingredient name, unit), ordered by name.
func (r *Repo) SumIngredients(ctx context.Context, recipeIDs []uuid.UUID) ([]domain.ShoppingListItem, error) {
	items := make([]domain.ShoppingListItem, 0)
	if len(recipeIDs) == 0 {
		return items, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q,
		postgres.Builder().
			Select("i.name", "i.measurement_unit", "SUM(ri.amount)").
			From("recipe_ingredients ri").
			Join("ingredients i ON i.id = ri.ingredient_id").
			Where(sq.Eq{"ri.recipe_id": recipeIDs}).
			GroupBy("i.name", "i.measurement_unit").
			OrderBy("i.name", "i.measurement_unit"),
	)
	if err != nil {
		return nil, fmt.Errorf("sum recipe ingredients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.ShoppingListItem
		if err := rows.Scan(&it.Name, &it.MeasurementUnit, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan shopping list item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shopping list: %w", err)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanRecipe(row pgx.Row) (domain.Recipe, error) {
	var rec domain.Recipe
	err := row.Scan(&rec.ID, &rec.AuthorID, &rec.Name, &rec.Text, &rec.ImageURL, &rec.CookingTime, &rec.PubDate)
	return rec, err
}

func collectRecipes(rows pgx.Rows) ([]domain.Recipe, error) {
	defer rows.Close()

	out := make([]domain.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return out, nil
}

func returning() string {
	return "r.id, r.author_id, r.name, r.text, r.image_url, r.cooking_time, r.pub_date"
}

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with unique email and username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "cook-" + suffix + "@example.com",
		Username:     "cook_" + suffix,
		FirstName:    "Test",
		LastName:     "Cook " + suffix,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhashnotarealhashnotar",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, first_name, last_name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Username, user.FirstName, user.LastName, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedIngredient inserts an ingredient. A unique suffix is appended to name
// so parallel tests never collide on (name, measurement_unit).
func SeedIngredient(t *testing.T, pool *pgxpool.Pool, name, unit string) domain.Ingredient {
	t.Helper()

	ing := domain.Ingredient{
		ID:              uuid.New(),
		Name:            name + " " + uniqueSuffix(),
		MeasurementUnit: unit,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO ingredients (id, name, measurement_unit) VALUES ($1, $2, $3)`,
		ing.ID, ing.Name, ing.MeasurementUnit,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIngredient: %v", err)
	}

	return ing
}

// SeedRecipe inserts a recipe for author together with the given ingredient links.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, name string, links ...domain.IngredientAmount) domain.Recipe {
	t.Helper()
	ctx := context.Background()

	recipe := domain.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        name,
		Text:        "Mix and bake.",
		ImageURL:    "https://cdn.example.com/recipes/images/" + uniqueSuffix() + ".png",
		CookingTime: 30,
		PubDate:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO recipes (id, author_id, name, text, image_url, cooking_time, pub_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		recipe.ID, recipe.AuthorID, recipe.Name, recipe.Text, recipe.ImageURL, recipe.CookingTime, recipe.PubDate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe: %v", err)
	}

	for _, l := range links {
		_, err := pool.Exec(ctx,
			`INSERT INTO recipe_ingredients (id, recipe_id, ingredient_id, amount) VALUES ($1, $2, $3, $4)`,
			uuid.New(), recipe.ID, l.IngredientID, l.Amount,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRecipe link: %v", err)
		}
	}

	return recipe
}

// SeedFavorite marks recipeID as a favorite of userID.
func SeedFavorite(t *testing.T, pool *pgxpool.Pool, userID, recipeID uuid.UUID) {
	t.Helper()
	seedEdge(t, pool, `INSERT INTO favorite_recipes (user_id, recipe_id) VALUES ($1, $2)`, userID, recipeID)
}

// SeedCartEntry puts recipeID into the shopping cart of userID.
func SeedCartEntry(t *testing.T, pool *pgxpool.Pool, userID, recipeID uuid.UUID) {
	t.Helper()
	seedEdge(t, pool, `INSERT INTO shopping_list_entries (user_id, recipe_id) VALUES ($1, $2)`, userID, recipeID)
}

// SeedSubscription subscribes followerID to authorID.
func SeedSubscription(t *testing.T, pool *pgxpool.Pool, followerID, authorID uuid.UUID) {
	t.Helper()
	seedEdge(t, pool, `INSERT INTO user_subscriptions (user_id, author_id) VALUES ($1, $2)`, followerID, authorID)
}

func seedEdge(t *testing.T, pool *pgxpool.Pool, sql string, subjectID, targetID uuid.UUID) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), sql, subjectID, targetID); err != nil {
		t.Fatalf("testhelper: seed relation: %v", err)
	}
}

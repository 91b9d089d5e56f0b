package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bounds shared by cooking time (minutes) and ingredient amounts.
// Values outside the range are rejected, never clamped.
const (
	MinCookingTime = 1
	MaxCookingTime = 32000
	MinAmount      = 1
	MaxAmount      = 32000

	MaxRecipeNameLength = 256
)

// Recipe is authored by exactly one user. PubDate is set once at creation.
type Recipe struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Name        string
	Text        string
	ImageURL    string
	CookingTime int
	PubDate     time.Time
}

// RecipeIngredient links a recipe to an ingredient with an amount.
// Name and MeasurementUnit are denormalised from the ingredient on reads.
type RecipeIngredient struct {
	ID              uuid.UUID
	RecipeID        uuid.UUID
	IngredientID    uuid.UUID
	Name            string
	MeasurementUnit string
	Amount          int
}

// IngredientAmount is one requested (ingredient, amount) pair of a recipe write.
type IngredientAmount struct {
	IngredientID uuid.UUID
	Amount       int
}

// CookingTimeInRange reports whether minutes is an acceptable cooking time.
func CookingTimeInRange(minutes int) bool {
	return minutes >= MinCookingTime && minutes <= MaxCookingTime
}

// AmountInRange reports whether n is an acceptable ingredient amount.
func AmountInRange(n int) bool {
	return n >= MinAmount && n <= MaxAmount
}

package domain

import "github.com/google/uuid"

// Field limits for ingredients.
const (
	MaxIngredientNameLength  = 128
	MaxMeasurementUnitLength = 64
)

// Ingredient is a catalogue item. The (Name, MeasurementUnit) pair is unique.
type Ingredient struct {
	ID              uuid.UUID
	Name            string
	MeasurementUnit string
}

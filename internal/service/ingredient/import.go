package ingredient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// fixtureItem accepts both the fixture dump layout
// ({"fields": {"name": ..., "measurement_unit": ...}}) and flat objects.
type fixtureItem struct {
	Fields          *fixtureFields `json:"fields"`
	Name            string         `json:"name"`
	MeasurementUnit string         `json:"measurement_unit"`
}

type fixtureFields struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// ImportResult summarises an ingredient import.
type ImportResult struct {
	Parsed   int
	Skipped  int
	Inserted int
	// AlreadyLoaded is set when the catalogue was not empty and nothing was imported.
	AlreadyLoaded bool
}

// ParseFixture decodes an ingredient fixture. Items without a name or unit
// are skipped and reported through skipped.
func ParseFixture(r io.Reader) (items []domain.Ingredient, skipped []int, err error) {
	var raw []fixtureItem
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode ingredient fixture: %w", err)
	}

	items = make([]domain.Ingredient, 0, len(raw))
	for i, it := range raw {
		name, unit := it.Name, it.MeasurementUnit
		if it.Fields != nil {
			name, unit = it.Fields.Name, it.Fields.MeasurementUnit
		}
		name, unit = strings.TrimSpace(name), strings.TrimSpace(unit)
		if name == "" || unit == "" ||
			utf8.RuneCountInString(name) > domain.MaxIngredientNameLength ||
			utf8.RuneCountInString(unit) > domain.MaxMeasurementUnitLength {
			skipped = append(skipped, i)
			continue
		}
		items = append(items, domain.Ingredient{ID: uuid.New(), Name: name, MeasurementUnit: unit})
	}
	return items, skipped, nil
}

// Import loads a fixture into an empty catalogue. A catalogue that already
// holds ingredients is left untouched.
func (s *Service) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	var res ImportResult

	count, err := s.ingredients.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("ingredient.Import: %w", err)
	}
	if count > 0 {
		s.log.WarnContext(ctx, "ingredients already loaded", slog.Int("count", count))
		res.AlreadyLoaded = true
		return res, nil
	}

	items, skipped, err := ParseFixture(r)
	if err != nil {
		return res, fmt.Errorf("ingredient.Import: %w", err)
	}
	for _, idx := range skipped {
		s.log.WarnContext(ctx, "malformed ingredient skipped", slog.Int("index", idx))
	}
	res.Parsed = len(items)
	res.Skipped = len(skipped)

	inserted, err := s.ingredients.BulkInsert(ctx, items)
	if err != nil {
		return res, fmt.Errorf("ingredient.Import: %w", err)
	}
	res.Inserted = inserted

	s.log.InfoContext(ctx, "ingredients imported",
		slog.Int("inserted", inserted),
		slog.Int("skipped", len(skipped)),
	)
	return res, nil
}

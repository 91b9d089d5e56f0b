// Package ingredient implements the Ingredient catalogue repository using PostgreSQL.
package ingredient

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

const table = "ingredients"

var columns = []string{"id", "name", "measurement_unit"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repo provides ingredient persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ingredient repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns ingredients ordered by name. A non-empty prefix keeps only
// names starting with it (case-sensitive).
func (r *Repo) List(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(columns...).From(table).OrderBy("name ASC", "measurement_unit ASC")
	if prefix != "" {
		b = b.Where(sq.Like{"name": likeEscaper.Replace(prefix) + "%"})
	}

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Ingredient, 0)
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out = append(out, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return out, nil
}

// GetByID returns an ingredient by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var ing domain.Ingredient
	err := postgres.QueryRow(ctx, q,
		postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}),
	).Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit)
	if err != nil {
		return nil, postgres.MapError(err, "ingredient", id)
	}
	return &ing, nil
}

// ExistingIDs returns the subset of ids that exist in the catalogue.
func (r *Repo) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	found := make(map[uuid.UUID]struct{}, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q,
		postgres.Builder().Select("id").From(table).Where(sq.Eq{"id": ids}),
	)
	if err != nil {
		return nil, fmt.Errorf("check ingredient ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan ingredient id: %w", err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredient ids: %w", err)
	}
	return found, nil
}

// Count returns the number of catalogue rows.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := postgres.QueryRow(ctx, q, postgres.Builder().Select("COUNT(*)").From(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ingredients: %w", err)
	}
	return int(n), nil
}

// BulkInsert inserts ingredients using pgx.Batch. Rows whose
// (name, measurement_unit) pair already exists are skipped.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, items []domain.Ingredient) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, ing := range items {
		batch.Queue(
			`INSERT INTO ingredients (id, name, measurement_unit)
			 VALUES ($1, $2, $3)
			 ON CONFLICT ON CONSTRAINT unique_ingredient_unit DO NOTHING`,
			ing.ID, ing.Name, ing.MeasurementUnit,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch insert ingredients: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

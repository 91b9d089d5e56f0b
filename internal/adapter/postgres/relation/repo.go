// Package relation implements storage for user-owned (subject, target) edges:
// favorites, shopping cart entries and subscriptions share one repository
// parameterised by table layout.
package relation

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// Table describes where one relation kind is stored.
type Table struct {
	Kind          domain.RelationKind
	Name          string
	SubjectColumn string
	TargetColumn  string
	CreatedColumn string
}

// Tables for every relation kind.
var (
	Favorites = Table{
		Kind:          domain.RelationFavorite,
		Name:          "favorite_recipes",
		SubjectColumn: "user_id",
		TargetColumn:  "recipe_id",
		CreatedColumn: "added_at",
	}
	ShoppingCart = Table{
		Kind:          domain.RelationShoppingCart,
		Name:          "shopping_list_entries",
		SubjectColumn: "user_id",
		TargetColumn:  "recipe_id",
		CreatedColumn: "added_at",
	}
	Subscriptions = Table{
		Kind:          domain.RelationSubscription,
		Name:          "user_subscriptions",
		SubjectColumn: "user_id",
		TargetColumn:  "author_id",
		CreatedColumn: "created_at",
	}
)

// A CHECK violation on a relation table can only be the self-edge guard.
var relationCodes = map[string]error{
	postgres.CodeCheckViolation: domain.ErrInvalidRelation,
}

// Repo stores edges of one relation kind.
type Repo struct {
	pool  *pgxpool.Pool
	table Table
}

// New creates a relation repository over the given table.
func New(pool *pgxpool.Pool, table Table) *Repo {
	return &Repo{pool: pool, table: table}
}

// Kind reports which relation the repository stores.
func (r *Repo) Kind() domain.RelationKind { return r.table.Kind }

// Exists reports whether the (subject, target) edge is stored.
func (r *Repo) Exists(ctx context.Context, subjectID, targetID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := postgres.QueryRow(ctx, q,
		postgres.Builder().Select("1").Prefix("SELECT EXISTS (").
			From(r.table.Name).
			Where(r.pair(subjectID, targetID)).
			Suffix(")"),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s exists: %w", r.table.Kind, err)
	}
	return exists, nil
}

// Insert stores the edge and returns it with its creation time.
// A concurrent duplicate surfaces as domain.ErrAlreadyExists, a self-edge
// rejected by the table's CHECK constraint as domain.ErrInvalidRelation.
func (r *Repo) Insert(ctx context.Context, subjectID, targetID uuid.UUID) (*domain.Relation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rel := domain.Relation{Kind: r.table.Kind, SubjectID: subjectID, TargetID: targetID}
	err := postgres.QueryRow(ctx, q,
		postgres.Builder().Insert(r.table.Name).
			Columns(r.table.SubjectColumn, r.table.TargetColumn).
			Values(subjectID, targetID).
			Suffix("RETURNING "+r.table.CreatedColumn),
	).Scan(&rel.CreatedAt)
	if err != nil {
		return nil, postgres.MapErrorWith(err, string(r.table.Kind), edgeKey(subjectID, targetID), relationCodes)
	}
	return &rel, nil
}

// Delete removes the edge and returns the number of deleted rows (0 or 1).
func (r *Repo) Delete(ctx context.Context, subjectID, targetID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q,
		postgres.Builder().Delete(r.table.Name).Where(r.pair(subjectID, targetID)),
	)
	if err != nil {
		return 0, postgres.MapErrorWith(err, string(r.table.Kind), edgeKey(subjectID, targetID), relationCodes)
	}
	return n, nil
}

// TargetIDs returns every target of subjectID, newest edge first.
func (r *Repo) TargetIDs(ctx context.Context, subjectID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q,
		postgres.Builder().Select(r.table.TargetColumn).
			From(r.table.Name).
			Where(sq.Eq{r.table.SubjectColumn: subjectID}).
			OrderBy(r.table.CreatedColumn+" DESC"),
	)
	if err != nil {
		return nil, fmt.Errorf("%s targets of %s: %w", r.table.Kind, subjectID, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s target: %w", r.table.Kind, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s targets: %w", r.table.Kind, err)
	}
	return ids, nil
}

// ExistingTargets returns which of targetIDs are linked to subjectID.
func (r *Repo) ExistingTargets(ctx context.Context, subjectID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	found := make(map[uuid.UUID]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return found, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q,
		postgres.Builder().Select(r.table.TargetColumn).
			From(r.table.Name).
			Where(sq.Eq{r.table.SubjectColumn: subjectID, r.table.TargetColumn: targetIDs}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s lookup for %s: %w", r.table.Kind, subjectID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s target: %w", r.table.Kind, err)
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s targets: %w", r.table.Kind, err)
	}
	return found, nil
}

func (r *Repo) pair(subjectID, targetID uuid.UUID) sq.Eq {
	return sq.Eq{r.table.SubjectColumn: subjectID, r.table.TargetColumn: targetID}
}

func edgeKey(subjectID, targetID uuid.UUID) string {
	return subjectID.String() + "->" + targetID.String()
}

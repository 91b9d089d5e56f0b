package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Query renders b and runs it, returning the rows.
func Query(ctx context.Context, q Querier, b sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.Query(ctx, sql, args...)
}

// QueryRow renders b and runs it, returning a single row.
// Build errors surface from Scan.
func QueryRow(ctx context.Context, q Querier, b sq.Sqlizer) pgx.Row {
	sql, args, err := b.ToSql()
	if err != nil {
		return errRow{err: fmt.Errorf("build query: %w", err)}
	}
	return q.QueryRow(ctx, sql, args...)
}

// Exec renders b and executes it, returning the number of affected rows.
func Exec(ctx context.Context, q Querier, b sq.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

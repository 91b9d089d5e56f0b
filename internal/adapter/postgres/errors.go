package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// PostgreSQL error codes the repositories translate.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
)

var defaultCodes = map[string]error{
	CodeUniqueViolation:     domain.ErrAlreadyExists,
	CodeForeignKeyViolation: domain.ErrNotFound,
	CodeCheckViolation:      domain.ErrValidation,
}

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// key identifies the row in the message and may be any printable value.
func MapError(err error, entity string, key any) error {
	return MapErrorWith(err, entity, key, nil)
}

// MapErrorWith is MapError with per-code overrides, e.g. a CHECK violation
// that means something more specific than a validation failure.
func MapErrorWith(err error, entity string, key any, overrides map[string]error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if target, ok := overrides[pgErr.Code]; ok {
			return fmt.Errorf("%s %v: %w", entity, key, target)
		}
		if target, ok := defaultCodes[pgErr.Code]; ok {
			return fmt.Errorf("%s %v: %w", entity, key, target)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}

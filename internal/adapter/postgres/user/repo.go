// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "username", "first_name", "last_name",
	"password_hash", "avatar_url", "created_at", "updated_at",
}

// uniqueFields maps unique constraint names to the field they protect.
var uniqueFields = map[string]string{
	"unique_user_email":    "email",
	"unique_user_username": "username",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(postgres.QueryRow(ctx, q,
		postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}),
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(postgres.QueryRow(ctx, q,
		postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"email": email}),
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &u, nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q,
		postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": ids}),
	)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	return collectUsers(rows)
}

// Create inserts a new user and returns the persisted row.
// A taken email or username is reported as a field validation error.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(postgres.QueryRow(ctx, q,
		postgres.Builder().Insert(table).
			Columns(columns...).
			Values(u.ID, u.Email, u.Username, u.FirstName, u.LastName,
				u.PasswordHash, u.AvatarURL, u.CreatedAt, u.UpdatedAt).
			Suffix("RETURNING "+strings.Join(columns, ", ")),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == postgres.CodeUniqueViolation {
			if field, ok := uniqueFields[pgErr.ConstraintName]; ok {
				return nil, domain.NewValidationError(field, fmt.Sprintf("a user with this %s already exists", field))
			}
		}
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &created, nil
}

// List returns one page of users ordered by username.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q,
		postgres.Builder().Select(columns...).From(table).
			OrderBy("username ASC", "id ASC").
			Limit(uint64(limit)).Offset(uint64(offset)),
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return collectUsers(rows)
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := postgres.QueryRow(ctx, q, postgres.Builder().Select("COUNT(*)").From(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return int(n), nil
}

// ListSubscribedAuthors returns one page of the authors followerID is
// subscribed to, ordered by username.
func (r *Repo) ListSubscribedAuthors(ctx context.Context, followerID uuid.UUID, limit, offset int) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q,
		postgres.Builder().Select(qualified("u")...).
			From(table+" u").
			Join("user_subscriptions s ON s.author_id = u.id").
			Where(sq.Eq{"s.user_id": followerID}).
			OrderBy("u.username ASC", "u.id ASC").
			Limit(uint64(limit)).Offset(uint64(offset)),
	)
	if err != nil {
		return nil, fmt.Errorf("list subscribed authors of %s: %w", followerID, err)
	}
	return collectUsers(rows)
}

// CountSubscribedAuthors returns how many authors followerID is subscribed to.
func (r *Repo) CountSubscribedAuthors(ctx context.Context, followerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	err := postgres.QueryRow(ctx, q,
		postgres.Builder().Select("COUNT(*)").From("user_subscriptions").Where(sq.Eq{"user_id": followerID}),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count subscribed authors of %s: %w", followerID, err)
	}
	return int(n), nil
}

// UpdateAvatar sets or clears (nil) the avatar reference.
func (r *Repo) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(postgres.QueryRow(ctx, q,
		postgres.Builder().Update(table).
			Set("avatar_url", avatarURL).
			Set("updated_at", time.Now().UTC()).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING "+strings.Join(columns, ", ")),
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q,
		postgres.Builder().Update(table).
			Set("password_hash", passwordHash).
			Set("updated_at", time.Now().UTC()).
			Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func qualified(alias string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

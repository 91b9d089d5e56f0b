// Package relation manages user-owned edges (favorites, shopping cart
// entries and subscriptions) with one set of add/remove rules shared by
// every relation kind.
package relation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// Store persists the edges of one relation kind.
type Store interface {
	Exists(ctx context.Context, subjectID, targetID uuid.UUID) (bool, error)
	Insert(ctx context.Context, subjectID, targetID uuid.UUID) (*domain.Relation, error)
	Delete(ctx context.Context, subjectID, targetID uuid.UUID) (int64, error)
}

// Lookup loads the target entity of an edge. It must return an error
// wrapping domain.ErrNotFound for unknown ids.
type Lookup[T any] func(ctx context.Context, id uuid.UUID) (T, error)

// Recorder receives a notification for every stored or removed edge.
type Recorder interface {
	RelationChanged(kind, op string)
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	forbidSelf bool
	recorder   Recorder
}

// ForbidSelf rejects edges whose subject and target are the same id.
func ForbidSelf() Option {
	return func(o *options) { o.forbidSelf = true }
}

// WithRecorder reports changes to rec.
func WithRecorder(rec Recorder) Option {
	return func(o *options) {
		if rec != nil {
			o.recorder = rec
		}
	}
}

type nopRecorder struct{}

func (nopRecorder) RelationChanged(string, string) {}

// Manager adds and removes edges from the authenticated user to targets of
// type T.
type Manager[T any] struct {
	log    *slog.Logger
	kind   domain.RelationKind
	store  Store
	lookup Lookup[T]
	opts   options
}

// NewManager creates a manager for one relation kind.
func NewManager[T any](logger *slog.Logger, kind domain.RelationKind, store Store, lookup Lookup[T], opts ...Option) *Manager[T] {
	o := options{recorder: nopRecorder{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[T]{
		log:    logger.With("relation", string(kind)),
		kind:   kind,
		store:  store,
		lookup: lookup,
		opts:   o,
	}
}

// Kind reports the relation kind the manager handles.
func (m *Manager[T]) Kind() domain.RelationKind { return m.kind }

// Add links the caller to targetID and returns the target with the new edge.
//
// Checks run in a fixed order: caller identity, self-edge, target existence,
// then pair existence.
func (m *Manager[T]) Add(ctx context.Context, targetID uuid.UUID) (T, *domain.Relation, error) {
	var zero T

	subjectID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return zero, nil, domain.ErrUnauthorized
	}

	if m.opts.forbidSelf && subjectID == targetID {
		return zero, nil, fmt.Errorf("%s with self: %w", m.kind, domain.ErrInvalidRelation)
	}

	target, err := m.lookup(ctx, targetID)
	if err != nil {
		return zero, nil, fmt.Errorf("relation.Add %s: %w", m.kind, err)
	}

	exists, err := m.store.Exists(ctx, subjectID, targetID)
	if err != nil {
		return zero, nil, fmt.Errorf("relation.Add %s: %w", m.kind, err)
	}
	if exists {
		return zero, nil, fmt.Errorf("%s %s: %w", m.kind, targetID, domain.ErrAlreadyExists)
	}

	rel, err := m.store.Insert(ctx, subjectID, targetID)
	if err != nil {
		return zero, nil, fmt.Errorf("relation.Add %s: %w", m.kind, err)
	}

	m.opts.recorder.RelationChanged(string(m.kind), "add")
	m.log.InfoContext(ctx, "relation added",
		slog.String("user_id", subjectID.String()),
		slog.String("target_id", targetID.String()),
	)

	return target, rel, nil
}

// Remove deletes the caller's edge to targetID. A missing target or a
// missing edge both report domain.ErrNotFound.
func (m *Manager[T]) Remove(ctx context.Context, targetID uuid.UUID) error {
	subjectID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := m.lookup(ctx, targetID); err != nil {
		return fmt.Errorf("relation.Remove %s: %w", m.kind, err)
	}

	n, err := m.store.Delete(ctx, subjectID, targetID)
	if err != nil {
		return fmt.Errorf("relation.Remove %s: %w", m.kind, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", m.kind, targetID, domain.ErrNotFound)
	}

	m.opts.recorder.RelationChanged(string(m.kind), "remove")
	m.log.InfoContext(ctx, "relation removed",
		slog.String("user_id", subjectID.String()),
		slog.String("target_id", targetID.String()),
	)

	return nil
}

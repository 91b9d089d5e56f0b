package domain

import (
	"time"

	"github.com/google/uuid"
)

// RelationKind names one of the user-owned relation tables.
type RelationKind string

const (
	RelationFavorite     RelationKind = "favorite"
	RelationShoppingCart RelationKind = "shopping_cart"
	RelationSubscription RelationKind = "subscription"
)

func (k RelationKind) String() string { return string(k) }

// Relation is a timestamped (subject, target) edge. The subject is always the
// owning user; the target is a recipe or, for subscriptions, an author.
type Relation struct {
	Kind      RelationKind
	SubjectID uuid.UUID
	TargetID  uuid.UUID
	CreatedAt time.Time
}

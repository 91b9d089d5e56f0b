package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Field limits for user accounts.
const (
	MaxEmailLength    = 254
	MaxUsernameLength = 150
	MaxNameLength     = 150
	MinPasswordLength = 8
)

// UsernamePattern is the set of characters allowed in a username.
var UsernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// User is a registered account. Email is the login key, Username the display key.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasAvatar reports whether the user has an avatar stored.
func (u *User) HasAvatar() bool {
	return u.AvatarURL != nil && *u.AvatarURL != ""
}

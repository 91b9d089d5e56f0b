package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// UserPage is one page of users with the unpaged total.
type UserPage struct {
	Users []domain.User
	Total int
}

// GetUser returns any user's public profile. Anonymous callers are allowed.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	return user, nil
}

// Me returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}
	return user, nil
}

// ListUsers returns one page of users ordered by username.
func (s *Service) ListUsers(ctx context.Context, page domain.PageRequest) (*UserPage, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	if total == 0 {
		return &UserPage{Users: []domain.User{}}, nil
	}

	users, err := s.users.List(ctx, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return &UserPage{Users: users, Total: total}, nil
}

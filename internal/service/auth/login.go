package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return &LoginResult{AccessToken: token, User: user}, nil
}

// Logout ends the caller's session. Tokens are stateless, so this only
// checks the caller is authenticated and records the event; the client
// discards its token.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", userID.String()))

	return nil
}

// ValidateToken resolves an access token to the user it was issued for.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return userID, nil
}

package user

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// SetPassword replaces the caller's password after checking the current one.
func (s *Service) SetPassword(ctx context.Context, input SetPasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user.SetPassword: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return domain.NewValidationError("current_password", "incorrect password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("user.SetPassword hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("user.SetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed",
		slog.String("user_id", userID.String()))

	return nil
}

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// SetAvatar stores a new avatar for the caller and removes the previous one.
// Concurrent replacements resolve last-writer-wins.
func (s *Service) SetAvatar(ctx context.Context, payload string) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if strings.TrimSpace(payload) == "" {
		return nil, domain.NewValidationError("avatar", "required")
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.SetAvatar: %w", err)
	}

	ref, err := s.images.Save(ctx, avatarPrefix, payload)
	s.metrics.ImageStored("save", err)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidImage) {
			return nil, domain.NewValidationError("avatar", err.Error())
		}
		return nil, fmt.Errorf("user.SetAvatar save: %w", err)
	}

	updated, err := s.users.UpdateAvatar(ctx, userID, &ref)
	if err != nil {
		s.discardAvatar(ctx, userID, ref)
		return nil, fmt.Errorf("user.SetAvatar: %w", err)
	}

	if current.HasAvatar() && *current.AvatarURL != ref {
		s.discardAvatar(ctx, userID, *current.AvatarURL)
	}

	s.log.InfoContext(ctx, "avatar updated",
		slog.String("user_id", userID.String()))

	return updated, nil
}

// DeleteAvatar removes the caller's avatar. Returns ErrNotFound if there is none.
func (s *Service) DeleteAvatar(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user.DeleteAvatar: %w", err)
	}
	if !current.HasAvatar() {
		return fmt.Errorf("avatar of %s: %w", userID, domain.ErrNotFound)
	}

	if _, err := s.users.UpdateAvatar(ctx, userID, nil); err != nil {
		return fmt.Errorf("user.DeleteAvatar: %w", err)
	}

	s.discardAvatar(ctx, userID, *current.AvatarURL)

	s.log.InfoContext(ctx, "avatar deleted",
		slog.String("user_id", userID.String()))

	return nil
}

func (s *Service) discardAvatar(ctx context.Context, userID uuid.UUID, ref string) {
	err := s.images.Delete(ctx, ref)
	s.metrics.ImageStored("delete", err)
	if err != nil {
		s.log.WarnContext(ctx, "avatar delete failed",
			slog.String("user_id", userID.String()),
			slog.String("avatar", ref),
			slog.String("error", err.Error()),
		)
	}
}

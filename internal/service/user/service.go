package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/service/relation"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	ListSubscribedAuthors(ctx context.Context, followerID uuid.UUID, limit, offset int) ([]domain.User, error)
	CountSubscribedAuthors(ctx context.Context, followerID uuid.UUID) (int, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL *string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// recipeRepo defines the recipe reads needed to annotate subscriptions.
type recipeRepo interface {
	ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, perAuthor int) ([]domain.Recipe, error)
	CountByAuthors(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// subscriptionStore persists follower -> author edges.
type subscriptionStore interface {
	relation.Store
}

// imageStore persists encoded avatar images.
type imageStore interface {
	Save(ctx context.Context, prefix, payload string) (string, error)
	Delete(ctx context.Context, ref string) error
}

// recorder receives domain metrics.
type recorder interface {
	relation.Recorder
	ImageStored(op string, err error)
}

const avatarPrefix = "users/avatars"

// Service implements user profiles, avatars, passwords and subscriptions.
type Service struct {
	log     *slog.Logger
	users   userRepo
	recipes recipeRepo
	images  imageStore
	metrics recorder
	cfg     config.AuthConfig

	subscriptions *relation.Manager[*domain.User]
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	recipes recipeRepo,
	subscriptions subscriptionStore,
	images imageStore,
	metrics recorder,
	cfg config.AuthConfig,
) *Service {
	s := &Service{
		log:     logger.With("service", "user"),
		users:   users,
		recipes: recipes,
		images:  images,
		metrics: metrics,
		cfg:     cfg,
	}
	s.subscriptions = relation.NewManager[*domain.User](s.log, domain.RelationSubscription, subscriptions, s.lookupUser,
		relation.ForbidSelf(), relation.WithRecorder(metrics))
	return s
}

func (s *Service) lookupUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

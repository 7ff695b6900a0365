package user

import (
	"context"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// tokenRevoker defines the refresh-token revocation interface needed when a
// user is deleted.
type tokenRevoker interface {
	RevokeAllForUser(ctx context.Context, userID primitive.ObjectID) error
}

// Service implements user account operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	tokens     tokenRevoker
	bcryptCost int
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenRevoker, bcryptCost int) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

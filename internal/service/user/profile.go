package user

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/pkg/ctxutil"
)

// Me returns the account of the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}
	return u, nil
}

// GetUser returns a user by ID. Players may only look up their own account;
// admins may look up anyone.
func (s *Service) GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if userID != id && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns a user by email address. Admin only.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("user.GetUserByEmail: %w", err)
	}
	return u, nil
}

// ListUsers returns all user accounts. Admin only.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

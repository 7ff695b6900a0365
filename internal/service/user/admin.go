package user

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/pkg/ctxutil"
)

// CreateUser creates a new account with an explicit role. Admin only; regular
// signup goes through the auth service.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	// Step 2: hash the password.
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: hash password: %w", err)
	}

	// Step 3: persist.
	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hash),
		Role:         input.Role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created", "user_id", created.ID.Hex(), "role", created.Role)
	return created, nil
}

// UpdateUser updates an account. Players may only update themselves and may
// not change roles; admins may update anyone but cannot demote their own
// account, so at least one admin always remains reachable.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	isAdmin := ctxutil.IsAdminCtx(ctx)
	if callerID != input.ID && !isAdmin {
		return nil, domain.ErrForbidden
	}

	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	// Step 2: role changes are admin-only, and never on yourself.
	if input.Role != nil {
		if !isAdmin {
			return nil, domain.ErrForbidden
		}
		if callerID == input.ID && *input.Role != domain.UserRoleAdmin {
			return nil, fmt.Errorf("user.UpdateUser: cannot demote own account: %w", domain.ErrForbidden)
		}
	}

	// Step 3: load and apply changes.
	u, err := s.users.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	if input.Email != nil {
		u.Email = normalizeEmail(*input.Email)
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateUser: hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.FirstName != nil {
		u.FirstName = input.FirstName
	}
	if input.LastName != nil {
		u.LastName = input.LastName
	}
	u.UpdatedAt = time.Now().UTC()

	// Step 4: persist.
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", "user_id", updated.ID.Hex())
	return updated, nil
}

// DeleteUser deletes an account and revokes all of its refresh tokens.
// Players may only delete themselves; admins may delete anyone.
func (s *Service) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID != id && !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	// Step 1: delete the account.
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("user.DeleteUser: %w", err)
	}

	// Step 2: kill every active session. The account is already gone, so a
	// revocation failure is logged but not surfaced.
	if err := s.tokens.RevokeAllForUser(ctx, id); err != nil {
		s.log.ErrorContext(ctx, "failed to revoke tokens for deleted user", "user_id", id.Hex(), "error", err)
	}

	s.log.InfoContext(ctx, "user deleted", "user_id", id.Hex())
	return nil
}

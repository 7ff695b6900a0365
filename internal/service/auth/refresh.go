package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nmoreaux/storyforge-backend/internal/auth"
	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// Presenting a revoked token is treated as reuse: every token of that user is
// revoked and ErrUnauthorized is returned. Unknown, expired, and
// deleted-user tokens also return ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash the refresh token
	hash := auth.HashToken(input.RefreshToken)

	// Step 3: Get token from DB
	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	// Step 4: Reuse detection. A revoked token coming back means the raw
	// token leaked; kill the whole session family.
	if token.IsRevoked() {
		s.log.WarnContext(ctx, "refresh token reuse attempted",
			slog.String("user_id", token.UserID.Hex()))
		if err := s.tokens.RevokeAllForUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke family: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	// Step 5: Check if token is expired
	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	// Step 6: Get user
	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.Hex()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Step 7: Revoke old token
	if err := s.tokens.Revoke(ctx, hash); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	// Step 8: Issue new token pair
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}

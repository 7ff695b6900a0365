package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// MapError converts mongo driver errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped — they pass through.
func MapError(err error, entity string, id primitive.ObjectID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id.Hex(), err)
	}

	// mongo.ErrNoDocuments -> domain.ErrNotFound
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", entity, id.Hex(), domain.ErrNotFound)
	}

	// unique index violation -> domain.ErrAlreadyExists
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s %s: %w", entity, id.Hex(), domain.ErrAlreadyExists)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id.Hex(), err)
}

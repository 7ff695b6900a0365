// Package token implements the refresh-token repository using MongoDB.
package token

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb"
	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// Repo provides refresh-token persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new refresh-token repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.CollRefreshTokens)}
}

type tokenDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	TokenHash string             `bson:"token_hash"`
	ExpiresAt time.Time          `bson:"expires_at"`
	CreatedAt time.Time          `bson:"created_at"`
	RevokedAt *time.Time         `bson:"revoked_at,omitempty"`
}

// Create stores a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	doc := fromDomain(t)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mongodb.MapError(err, "refresh_token", doc.ID)
	}
	return nil
}

// GetByHash returns the refresh token with the given hash, revoked or not.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	var doc tokenDoc
	if err := r.coll.FindOne(ctx, bson.M{"token_hash": hash}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "refresh_token", primitive.NilObjectID)
	}

	t := toDomain(doc)
	return &t, nil
}

// Revoke marks the token with the given hash as revoked.
func (r *Repo) Revoke(ctx context.Context, hash string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"token_hash": hash, "revoked_at": nil},
		bson.M{"$set": bson.M{"revoked_at": time.Now()}},
	)
	if err != nil {
		return mongodb.MapError(err, "refresh_token", primitive.NilObjectID)
	}
	if res.MatchedCount == 0 {
		return mongodb.MapError(mongo.ErrNoDocuments, "refresh_token", primitive.NilObjectID)
	}
	return nil
}

// RevokeAllForUser revokes every active token belonging to the user.
// Used on refresh-token reuse detection and on account deletion.
func (r *Repo) RevokeAllForUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"user_id": userID, "revoked_at": nil},
		bson.M{"$set": bson.M{"revoked_at": time.Now()}},
	)
	if err != nil {
		return mongodb.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes tokens that expired before the cutoff.
// Returns the number of tokens removed.
func (r *Repo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, mongodb.MapError(err, "refresh_token", primitive.NilObjectID)
	}
	return res.DeletedCount, nil
}

func fromDomain(t *domain.RefreshToken) tokenDoc {
	return tokenDoc{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
		RevokedAt: t.RevokedAt,
	}
}

func toDomain(doc tokenDoc) domain.RefreshToken {
	return domain.RefreshToken{
		ID:        doc.ID,
		UserID:    doc.UserID,
		TokenHash: doc.TokenHash,
		ExpiresAt: doc.ExpiresAt,
		CreatedAt: doc.CreatedAt,
		RevokedAt: doc.RevokedAt,
	}
}

// Package mongodb provides the MongoDB connection and shared helpers for the
// entity repositories in its subpackages.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nmoreaux/storyforge-backend/internal/config"
)

// Collection names used across the repositories.
const (
	CollUsers          = "users"
	CollRefreshTokens  = "refresh_tokens"
	CollScenarios      = "scenarios"
	CollScenes         = "scenes"
	CollChoices        = "choices"
	CollPlayerProgress = "player_progress"
	CollAssets         = "assets"
)

// Connect establishes a MongoDB client configured from MongoConfig, pings the
// server for fail-fast validation, and returns a handle to the configured
// database.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes every repository relies on. It is safe to
// call on every startup; MongoDB treats an existing identical index as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		CollUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollRefreshTokens: {
			{Keys: bson.D{{Key: "token_hash", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "expires_at", Value: 1}}},
		},
		CollScenarios: {
			{Keys: bson.D{{Key: "author_id", Value: 1}}},
			{Keys: bson.D{{Key: "is_published", Value: 1}}},
		},
		CollScenes: {
			{Keys: bson.D{{Key: "scenario_id", Value: 1}, {Key: "order", Value: 1}}},
		},
		CollChoices: {
			{Keys: bson.D{{Key: "from_scene_id", Value: 1}, {Key: "order", Value: 1}}},
			{Keys: bson.D{{Key: "to_scene_id", Value: 1}}},
		},
		CollPlayerProgress: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "scenario_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollAssets: {
			{Keys: bson.D{{Key: "type", Value: 1}}},
			{Keys: bson.D{{Key: "uploaded_by", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}

	return nil
}

// EmptyCollections deletes every document from the application collections,
// referencing collections first so a partial failure never leaves progress
// or choices pointing at removed documents. Indexes are kept. Returns the
// total number of deleted documents.
func EmptyCollections(ctx context.Context, db *mongo.Database) (int64, error) {
	collections := []string{
		CollPlayerProgress,
		CollChoices,
		CollScenes,
		CollScenarios,
		CollAssets,
		CollRefreshTokens,
		CollUsers,
	}

	var total int64
	for _, name := range collections {
		res, err := db.Collection(name).DeleteMany(ctx, bson.M{})
		if err != nil {
			return total, fmt.Errorf("empty collection %s: %w", name, err)
		}
		total += res.DeletedCount
	}
	return total, nil
}

// Package testhelper starts a shared MongoDB container for repository tests.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongoadapter "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb"
	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

var (
	once      sync.Once
	sharedURI string
	initErr   error
	dbCounter atomic.Int64
)

// SetupTestDB starts a shared MongoDB container (once for the entire test run),
// creates indexes, and returns a handle to a fresh database unique to the
// calling test. The client is disconnected via t.Cleanup; the container lives
// until the process exits.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	once.Do(func() {
		sharedURI, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(sharedURI))
	if err != nil {
		t.Fatalf("testhelper: failed to connect: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	})

	// Each test gets its own database so parallel tests never collide.
	db := client.Database(fmt.Sprintf("storyforge_test_%d", dbCounter.Add(1)))

	if err := mongoadapter.EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("testhelper: failed to create indexes: %v", err)
	}

	return db
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		return "", fmt.Errorf("get connection string: %w", err)
	}

	return uri, nil
}

// SeedUser inserts a player user directly and returns it.
func SeedUser(t *testing.T, db *mongo.Database) *domain.User {
	t.Helper()
	return seedUser(t, db, domain.UserRolePlayer)
}

// SeedAdmin inserts an admin user directly and returns it.
func SeedAdmin(t *testing.T, db *mongo.Database) *domain.User {
	t.Helper()
	return seedUser(t, db, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, db *mongo.Database, role domain.UserRole) *domain.User {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	id := primitive.NewObjectID()
	u := &domain.User{
		ID:           id,
		Email:        fmt.Sprintf("user-%s@example.com", id.Hex()),
		PasswordHash: "$2a$10$seeded-hash-not-a-real-one",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := db.Collection(mongoadapter.CollUsers).InsertOne(ctx, map[string]any{
		"_id":           u.ID,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"role":          u.Role.String(),
		"created_at":    u.CreatedAt,
		"updated_at":    u.UpdatedAt,
	})
	if err != nil {
		t.Fatalf("testhelper: failed to seed user: %v", err)
	}

	return u
}

// PromoteToAdmin flips an existing user's role to admin directly in the
// database. Tokens issued before the promotion keep their old role claim.
func PromoteToAdmin(t *testing.T, db *mongo.Database, idHex string) {
	t.Helper()

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		t.Fatalf("testhelper: invalid user id %q: %v", idHex, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := db.Collection(mongoadapter.CollUsers).UpdateOne(ctx,
		map[string]any{"_id": id},
		map[string]any{"$set": map[string]any{"role": domain.UserRoleAdmin.String()}},
	)
	if err != nil {
		t.Fatalf("testhelper: failed to promote user: %v", err)
	}
	if res.MatchedCount == 0 {
		t.Fatalf("testhelper: no user with id %s", idHex)
	}
}

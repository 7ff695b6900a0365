// Package user implements the User repository using MongoDB.
package user

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb"
	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// Repo provides user persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new user repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.CollUsers)}
}

// userDoc is the BSON shape of a user document.
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	FirstName    *string            `bson:"first_name,omitempty"`
	LastName     *string            `bson:"last_name,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	doc := fromDomain(u)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "user", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "user", id)
	}

	u := toDomain(doc)
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "user", primitive.NilObjectID)
	}

	u := toDomain(doc)
	return &u, nil
}

// List returns all users sorted by creation time.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, mongodb.MapError(err, "user", primitive.NilObjectID)
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "user", primitive.NilObjectID)
	}

	users := make([]domain.User, len(docs))
	for i, doc := range docs {
		users[i] = toDomain(doc)
	}
	return users, nil
}

// GetByIDs returns the users matching the given IDs, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, mongodb.MapError(err, "user", primitive.NilObjectID)
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "user", primitive.NilObjectID)
	}

	users := make([]domain.User, len(docs))
	for i, doc := range docs {
		users[i] = toDomain(doc)
	}
	return users, nil
}

// Update replaces the stored document for u.ID with u.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	doc := fromDomain(u)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, mongodb.MapError(err, "user", doc.ID)
	}
	if res.MatchedCount == 0 {
		return nil, mongodb.MapError(mongo.ErrNoDocuments, "user", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// Delete removes a user by ID.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongodb.MapError(err, "user", id)
	}
	if res.DeletedCount == 0 {
		return mongodb.MapError(mongo.ErrNoDocuments, "user", id)
	}
	return nil
}

func fromDomain(u *domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toDomain(doc userDoc) domain.User {
	return domain.User{
		ID:           doc.ID,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         domain.UserRole(doc.Role),
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

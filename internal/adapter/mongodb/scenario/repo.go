// Package scenario implements the Scenario repository using MongoDB.
package scenario

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

// Repo provides scenario persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new scenario repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.CollScenarios)}
}

type scenarioDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description *string            `bson:"description,omitempty"`
	AuthorID    primitive.ObjectID `bson:"author_id"`
	IsPublished bool               `bson:"is_published"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// Create inserts a new scenario.
func (r *Repo) Create(ctx context.Context, s *domain.Scenario) (*domain.Scenario, error) {
	doc := fromDomain(s)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "scenario", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// GetByID returns a scenario by primary key.
func (r *Repo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error) {
	var doc scenarioDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "scenario", id)
	}

	s := toDomain(doc)
	return &s, nil
}

// GetByIDs returns the scenarios matching the given IDs, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Scenario, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// List returns all scenarios, optionally restricted to published ones,
// newest first.
func (r *Repo) List(ctx context.Context, publishedOnly bool) ([]domain.Scenario, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["is_published"] = true
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

// ListByAuthor returns the scenarios created by the given author, newest first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]domain.Scenario, error) {
	return r.find(ctx, bson.M{"author_id": authorID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

// Update replaces the stored document for s.ID with s.
func (r *Repo) Update(ctx context.Context, s *domain.Scenario) (*domain.Scenario, error) {
	doc := fromDomain(s)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, mongodb.MapError(err, "scenario", doc.ID)
	}
	if res.MatchedCount == 0 {
		return nil, mongodb.MapError(mongo.ErrNoDocuments, "scenario", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// Delete removes a scenario by ID.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongodb.MapError(err, "scenario", id)
	}
	if res.DeletedCount == 0 {
		return mongodb.MapError(mongo.ErrNoDocuments, "scenario", id)
	}
	return nil
}

func (r *Repo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Scenario, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.coll.Find(ctx, filter, opts)
	} else {
		cur, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, mongodb.MapError(err, "scenario", primitive.NilObjectID)
	}

	var docs []scenarioDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "scenario", primitive.NilObjectID)
	}

	scenarios := make([]domain.Scenario, len(docs))
	for i, doc := range docs {
		scenarios[i] = toDomain(doc)
	}
	return scenarios, nil
}

func fromDomain(s *domain.Scenario) scenarioDoc {
	return scenarioDoc{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		AuthorID:    s.AuthorID,
		IsPublished: s.IsPublished,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toDomain(doc scenarioDoc) domain.Scenario {
	return domain.Scenario{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		AuthorID:    doc.AuthorID,
		IsPublished: doc.IsPublished,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// Package choice implements the Choice repository using MongoDB.
package choice

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

// Repo provides choice persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new choice repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.CollChoices)}
}

type choiceDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	FromSceneID primitive.ObjectID `bson:"from_scene_id"`
	ToSceneID   primitive.ObjectID `bson:"to_scene_id"`
	Text        string             `bson:"text"`
	Condition   map[string]any     `bson:"condition,omitempty"`
	Order       int                `bson:"order"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// Create inserts a new choice.
func (r *Repo) Create(ctx context.Context, c *domain.Choice) (*domain.Choice, error) {
	doc := fromDomain(c)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "choice", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// GetByID returns a choice by primary key.
func (r *Repo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Choice, error) {
	var doc choiceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "choice", id)
	}

	c := toDomain(doc)
	return &c, nil
}

// ListByScene returns the choices leading out of a scene ordered by position.
func (r *Repo) ListByScene(ctx context.Context, fromSceneID primitive.ObjectID) ([]domain.Choice, error) {
	return r.find(ctx, bson.M{"from_scene_id": fromSceneID},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}}))
}

// ListBySceneIDs returns all choices leading out of any of the given scenes,
// ordered by position. Used for batch loading.
func (r *Repo) ListBySceneIDs(ctx context.Context, fromSceneIDs []primitive.ObjectID) ([]domain.Choice, error) {
	if len(fromSceneIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"from_scene_id": bson.M{"$in": fromSceneIDs}},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}}))
}

// Update replaces the stored document for c.ID with c.
func (r *Repo) Update(ctx context.Context, c *domain.Choice) (*domain.Choice, error) {
	doc := fromDomain(c)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, mongodb.MapError(err, "choice", doc.ID)
	}
	if res.MatchedCount == 0 {
		return nil, mongodb.MapError(mongo.ErrNoDocuments, "choice", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// Delete removes a choice by ID.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongodb.MapError(err, "choice", id)
	}
	if res.DeletedCount == 0 {
		return mongodb.MapError(mongo.ErrNoDocuments, "choice", id)
	}
	return nil
}

// DeleteByScenes removes every choice leading into or out of any of the given
// scenes. Returns the number of choices removed. Used on scene and scenario
// deletion.
func (r *Repo) DeleteByScenes(ctx context.Context, sceneIDs []primitive.ObjectID) (int64, error) {
	if len(sceneIDs) == 0 {
		return 0, nil
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{"$or": bson.A{
		bson.M{"from_scene_id": bson.M{"$in": sceneIDs}},
		bson.M{"to_scene_id": bson.M{"$in": sceneIDs}},
	}})
	if err != nil {
		return 0, mongodb.MapError(err, "choice", primitive.NilObjectID)
	}
	return res.DeletedCount, nil
}

func (r *Repo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Choice, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, mongodb.MapError(err, "choice", primitive.NilObjectID)
	}

	var docs []choiceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "choice", primitive.NilObjectID)
	}

	choices := make([]domain.Choice, len(docs))
	for i, doc := range docs {
		choices[i] = toDomain(doc)
	}
	return choices, nil
}

func fromDomain(c *domain.Choice) choiceDoc {
	return choiceDoc{
		ID:          c.ID,
		FromSceneID: c.FromSceneID,
		ToSceneID:   c.ToSceneID,
		Text:        c.Text,
		Condition:   c.Condition,
		Order:       c.Order,
		CreatedAt:   c.CreatedAt,
	}
}

func toDomain(doc choiceDoc) domain.Choice {
	return domain.Choice{
		ID:          doc.ID,
		FromSceneID: doc.FromSceneID,
		ToSceneID:   doc.ToSceneID,
		Text:        doc.Text,
		Condition:   doc.Condition,
		Order:       doc.Order,
		CreatedAt:   doc.CreatedAt,
	}
}

// Package scene implements the Scene repository using MongoDB.
package scene

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

// Repo provides scene persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new scene repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.CollScenes)}
}

type sceneDoc struct {
	ID           primitive.ObjectID  `bson:"_id"`
	ScenarioID   primitive.ObjectID  `bson:"scenario_id"`
	Title        string              `bson:"title"`
	Text         string              `bson:"text"`
	Order        int                 `bson:"order"`
	ImageID      *primitive.ObjectID `bson:"image_id,omitempty"`
	SoundID      *primitive.ObjectID `bson:"sound_id,omitempty"`
	MusicID      *primitive.ObjectID `bson:"music_id,omitempty"`
	IsStartScene bool                `bson:"is_start_scene"`
	IsEndScene   bool                `bson:"is_end_scene"`
	CreatedAt    time.Time           `bson:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at"`
}

// Create inserts a new scene.
func (r *Repo) Create(ctx context.Context, s *domain.Scene) (*domain.Scene, error) {
	doc := fromDomain(s)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "scene", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// GetByID returns a scene by primary key.
func (r *Repo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error) {
	var doc sceneDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "scene", id)
	}

	s := toDomain(doc)
	return &s, nil
}

// GetByIDs returns the scenes matching the given IDs, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Scene, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// ListByScenario returns the scenes of a scenario ordered by their position.
func (r *Repo) ListByScenario(ctx context.Context, scenarioID primitive.ObjectID) ([]domain.Scene, error) {
	return r.find(ctx, bson.M{"scenario_id": scenarioID},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}}))
}

// ListByScenarioIDs returns all scenes belonging to any of the given
// scenarios, ordered by position. Used for batch loading.
func (r *Repo) ListByScenarioIDs(ctx context.Context, scenarioIDs []primitive.ObjectID) ([]domain.Scene, error) {
	if len(scenarioIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"scenario_id": bson.M{"$in": scenarioIDs}},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}}))
}

// CountByScenario returns the number of scenes in a scenario.
func (r *Repo) CountByScenario(ctx context.Context, scenarioID primitive.ObjectID) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"scenario_id": scenarioID})
	if err != nil {
		return 0, mongodb.MapError(err, "scene", scenarioID)
	}
	return int(n), nil
}

// GetStartScene returns the designated start scene of a scenario.
func (r *Repo) GetStartScene(ctx context.Context, scenarioID primitive.ObjectID) (*domain.Scene, error) {
	var doc sceneDoc
	err := r.coll.FindOne(ctx,
		bson.M{"scenario_id": scenarioID, "is_start_scene": true},
		options.FindOne().SetSort(bson.D{{Key: "order", Value: 1}}),
	).Decode(&doc)
	if err != nil {
		return nil, mongodb.MapError(err, "scene", scenarioID)
	}

	s := toDomain(doc)
	return &s, nil
}

// Update replaces the stored document for s.ID with s.
func (r *Repo) Update(ctx context.Context, s *domain.Scene) (*domain.Scene, error) {
	doc := fromDomain(s)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, mongodb.MapError(err, "scene", doc.ID)
	}
	if res.MatchedCount == 0 {
		return nil, mongodb.MapError(mongo.ErrNoDocuments, "scene", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// Delete removes a scene by ID.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongodb.MapError(err, "scene", id)
	}
	if res.DeletedCount == 0 {
		return mongodb.MapError(mongo.ErrNoDocuments, "scene", id)
	}
	return nil
}

// DeleteByScenario removes every scene of a scenario. Returns the number of
// scenes removed. Used when a scenario is deleted.
func (r *Repo) DeleteByScenario(ctx context.Context, scenarioID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"scenario_id": scenarioID})
	if err != nil {
		return 0, mongodb.MapError(err, "scene", scenarioID)
	}
	return res.DeletedCount, nil
}

func (r *Repo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Scene, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.coll.Find(ctx, filter, opts)
	} else {
		cur, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, mongodb.MapError(err, "scene", primitive.NilObjectID)
	}

	var docs []sceneDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "scene", primitive.NilObjectID)
	}

	scenes := make([]domain.Scene, len(docs))
	for i, doc := range docs {
		scenes[i] = toDomain(doc)
	}
	return scenes, nil
}

func fromDomain(s *domain.Scene) sceneDoc {
	return sceneDoc{
		ID:           s.ID,
		ScenarioID:   s.ScenarioID,
		Title:        s.Title,
		Text:         s.Text,
		Order:        s.Order,
		ImageID:      s.ImageID,
		SoundID:      s.SoundID,
		MusicID:      s.MusicID,
		IsStartScene: s.IsStartScene,
		IsEndScene:   s.IsEndScene,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toDomain(doc sceneDoc) domain.Scene {
	return domain.Scene{
		ID:           doc.ID,
		ScenarioID:   doc.ScenarioID,
		Title:        doc.Title,
		Text:         doc.Text,
		Order:        doc.Order,
		ImageID:      doc.ImageID,
		SoundID:      doc.SoundID,
		MusicID:      doc.MusicID,
		IsStartScene: doc.IsStartScene,
		IsEndScene:   doc.IsEndScene,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

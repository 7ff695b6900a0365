// Package progress implements the PlayerProgress repository using MongoDB.
package progress

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

// Repo provides player-progress persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new player-progress repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.CollPlayerProgress)}
}

type historyDoc struct {
	SceneID   primitive.ObjectID  `bson:"scene_id"`
	ChoiceID  *primitive.ObjectID `bson:"choice_id,omitempty"`
	Timestamp time.Time           `bson:"timestamp"`
	Metadata  map[string]any      `bson:"metadata,omitempty"`
}

type progressDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	UserID         primitive.ObjectID `bson:"user_id"`
	ScenarioID     primitive.ObjectID `bson:"scenario_id"`
	CurrentSceneID primitive.ObjectID `bson:"current_scene_id"`
	History        []historyDoc       `bson:"history"`
	IsCompleted    bool               `bson:"is_completed"`
	CompletedAt    *time.Time         `bson:"completed_at,omitempty"`
	TotalTimeSpent int                `bson:"total_time_spent"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

// Create inserts a new progress record. The unique (user_id, scenario_id)
// index rejects a second record for the same pair with ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.PlayerProgress) (*domain.PlayerProgress, error) {
	doc := fromDomain(p)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "player_progress", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// GetByID returns a progress record by primary key.
func (r *Repo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlayerProgress, error) {
	var doc progressDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "player_progress", id)
	}

	p := toDomain(doc)
	return &p, nil
}

// GetByUserAndScenario returns the progress of a user in a scenario.
func (r *Repo) GetByUserAndScenario(ctx context.Context, userID, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error) {
	var doc progressDoc
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "scenario_id": scenarioID}).Decode(&doc)
	if err != nil {
		return nil, mongodb.MapError(err, "player_progress", primitive.NilObjectID)
	}

	p := toDomain(doc)
	return &p, nil
}

// List returns all progress records, most recently updated first.
func (r *Repo) List(ctx context.Context) ([]domain.PlayerProgress, error) {
	return r.find(ctx, bson.M{})
}

// ListByUser returns all progress records of a user, most recently updated first.
func (r *Repo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.PlayerProgress, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// Update replaces the stored document for p.ID with p.
func (r *Repo) Update(ctx context.Context, p *domain.PlayerProgress) (*domain.PlayerProgress, error) {
	doc := fromDomain(p)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, mongodb.MapError(err, "player_progress", doc.ID)
	}
	if res.MatchedCount == 0 {
		return nil, mongodb.MapError(mongo.ErrNoDocuments, "player_progress", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// Delete removes a progress record by ID.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongodb.MapError(err, "player_progress", id)
	}
	if res.DeletedCount == 0 {
		return mongodb.MapError(mongo.ErrNoDocuments, "player_progress", id)
	}
	return nil
}

// DeleteByScenario removes every progress record of a scenario. Used when a
// scenario is deleted.
func (r *Repo) DeleteByScenario(ctx context.Context, scenarioID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"scenario_id": scenarioID})
	if err != nil {
		return 0, mongodb.MapError(err, "player_progress", scenarioID)
	}
	return res.DeletedCount, nil
}

func (r *Repo) find(ctx context.Context, filter bson.M) ([]domain.PlayerProgress, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, mongodb.MapError(err, "player_progress", primitive.NilObjectID)
	}

	var docs []progressDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "player_progress", primitive.NilObjectID)
	}

	records := make([]domain.PlayerProgress, len(docs))
	for i, doc := range docs {
		records[i] = toDomain(doc)
	}
	return records, nil
}

func fromDomain(p *domain.PlayerProgress) progressDoc {
	history := make([]historyDoc, len(p.History))
	for i, h := range p.History {
		history[i] = historyDoc{
			SceneID:   h.SceneID,
			ChoiceID:  h.ChoiceID,
			Timestamp: h.Timestamp,
			Metadata:  h.Metadata,
		}
	}
	return progressDoc{
		ID:             p.ID,
		UserID:         p.UserID,
		ScenarioID:     p.ScenarioID,
		CurrentSceneID: p.CurrentSceneID,
		History:        history,
		IsCompleted:    p.IsCompleted,
		CompletedAt:    p.CompletedAt,
		TotalTimeSpent: p.TotalTimeSpent,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toDomain(doc progressDoc) domain.PlayerProgress {
	history := make([]domain.HistoryEntry, len(doc.History))
	for i, h := range doc.History {
		history[i] = domain.HistoryEntry{
			SceneID:   h.SceneID,
			ChoiceID:  h.ChoiceID,
			Timestamp: h.Timestamp,
			Metadata:  h.Metadata,
		}
	}
	return domain.PlayerProgress{
		ID:             doc.ID,
		UserID:         doc.UserID,
		ScenarioID:     doc.ScenarioID,
		CurrentSceneID: doc.CurrentSceneID,
		History:        history,
		IsCompleted:    doc.IsCompleted,
		CompletedAt:    doc.CompletedAt,
		TotalTimeSpent: doc.TotalTimeSpent,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

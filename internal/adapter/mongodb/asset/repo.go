// Package asset implements the Asset repository using MongoDB.
package asset

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

// Repo provides asset persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new asset repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.CollAssets)}
}

type assetDoc struct {
	ID         primitive.ObjectID `bson:"_id"`
	Type       string             `bson:"type"`
	Name       string             `bson:"name"`
	Filename   string             `bson:"filename"`
	URL        string             `bson:"url"`
	FileSize   int64              `bson:"file_size"`
	MimeType   string             `bson:"mime_type"`
	Metadata   map[string]any     `bson:"metadata,omitempty"`
	UploadedBy primitive.ObjectID `bson:"uploaded_by"`
	IsPublic   bool               `bson:"is_public"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

// Create inserts a new asset.
func (r *Repo) Create(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
	doc := fromDomain(a)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "asset", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// GetByID returns an asset by primary key.
func (r *Repo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error) {
	var doc assetDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "asset", id)
	}

	a := toDomain(doc)
	return &a, nil
}

// GetByIDs returns the assets matching the given IDs, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Asset, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// List returns all assets, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Asset, error) {
	return r.find(ctx, bson.M{})
}

// ListByType returns all assets of the given type, newest first.
func (r *Repo) ListByType(ctx context.Context, t domain.AssetType) ([]domain.Asset, error) {
	return r.find(ctx, bson.M{"type": t.String()})
}

// ListByUploader returns all assets uploaded by the given user, newest first.
func (r *Repo) ListByUploader(ctx context.Context, userID primitive.ObjectID) ([]domain.Asset, error) {
	return r.find(ctx, bson.M{"uploaded_by": userID})
}

// ListPublic returns all public assets, newest first.
func (r *Repo) ListPublic(ctx context.Context) ([]domain.Asset, error) {
	return r.find(ctx, bson.M{"is_public": true})
}

// Update replaces the stored document for a.ID with a.
func (r *Repo) Update(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
	doc := fromDomain(a)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, mongodb.MapError(err, "asset", doc.ID)
	}
	if res.MatchedCount == 0 {
		return nil, mongodb.MapError(mongo.ErrNoDocuments, "asset", doc.ID)
	}

	result := toDomain(doc)
	return &result, nil
}

// Delete removes an asset by ID.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongodb.MapError(err, "asset", id)
	}
	if res.DeletedCount == 0 {
		return mongodb.MapError(mongo.ErrNoDocuments, "asset", id)
	}
	return nil
}

func (r *Repo) find(ctx context.Context, filter bson.M) ([]domain.Asset, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, mongodb.MapError(err, "asset", primitive.NilObjectID)
	}

	var docs []assetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "asset", primitive.NilObjectID)
	}

	assets := make([]domain.Asset, len(docs))
	for i, doc := range docs {
		assets[i] = toDomain(doc)
	}
	return assets, nil
}

func fromDomain(a *domain.Asset) assetDoc {
	return assetDoc{
		ID:         a.ID,
		Type:       a.Type.String(),
		Name:       a.Name,
		Filename:   a.Filename,
		URL:        a.URL,
		FileSize:   a.FileSize,
		MimeType:   a.MimeType,
		Metadata:   a.Metadata,
		UploadedBy: a.UploadedBy,
		IsPublic:   a.IsPublic,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toDomain(doc assetDoc) domain.Asset {
	return domain.Asset{
		ID:         doc.ID,
		Type:       domain.AssetType(doc.Type),
		Name:       doc.Name,
		Filename:   doc.Filename,
		URL:        doc.URL,
		FileSize:   doc.FileSize,
		MimeType:   doc.MimeType,
		Metadata:   doc.Metadata,
		UploadedBy: doc.UploadedBy,
		IsPublic:   doc.IsPublic,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

// Package dataloader provides per-request DataLoaders for batching GraphQL
// resolver queries into single MongoDB calls. DataLoaders call repositories
// directly, bypassing the service layer: the objects they load are only
// reachable through parents the resolver has already authorized.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
}

type scenarioRepo interface {
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Scenario, error)
}

type sceneRepo interface {
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Scene, error)
	ListByScenarioIDs(ctx context.Context, scenarioIDs []primitive.ObjectID) ([]domain.Scene, error)
}

type choiceRepo interface {
	ListBySceneIDs(ctx context.Context, fromSceneIDs []primitive.ObjectID) ([]domain.Choice, error)
}

type assetRepo interface {
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Asset, error)
}

// ---------------------------------------------------------------------------
// Repos aggregates all repositories needed by DataLoaders.
// ---------------------------------------------------------------------------

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User     userRepo
	Scenario scenarioRepo
	Scene    sceneRepo
	Choice   choiceRepo
	Asset    assetRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains all 6 DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	UserByID           *dataloader.Loader[primitive.ObjectID, *domain.User]
	ScenarioByID       *dataloader.Loader[primitive.ObjectID, *domain.Scenario]
	SceneByID          *dataloader.Loader[primitive.ObjectID, *domain.Scene]
	AssetByID          *dataloader.Loader[primitive.ObjectID, *domain.Asset]
	ScenesByScenarioID *dataloader.Loader[primitive.ObjectID, []domain.Scene]
	ChoicesBySceneID   *dataloader.Loader[primitive.ObjectID, []domain.Choice]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:           newLoader(newUserBatchFn(repos.User)),
		ScenarioByID:       newLoader(newScenarioBatchFn(repos.Scenario)),
		SceneByID:          newLoader(newSceneBatchFn(repos.Scene)),
		AssetByID:          newLoader(newAssetBatchFn(repos.Asset)),
		ScenesByScenarioID: newLoader(newScenesByScenarioBatchFn(repos.Scene)),
		ChoicesBySceneID:   newLoader(newChoicesBySceneBatchFn(repos.Choice)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[primitive.ObjectID, V]) *dataloader.Loader[primitive.ObjectID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[primitive.ObjectID, V](wait),
		dataloader.WithBatchCapacity[primitive.ObjectID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context - is middleware configured?")
	}
	return l
}

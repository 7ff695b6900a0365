package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// User by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newUserBatchFn(repo userRepo) dataloader.BatchFunc[primitive.ObjectID, *domain.User] {
	return func(ctx context.Context, keys []primitive.ObjectID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[primitive.ObjectID]*domain.User, len(users))
		for i := range users {
			u := users[i] // copy to avoid aliasing
			byID[u.ID] = &u
		}

		return byIDResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Scenario by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newScenarioBatchFn(repo scenarioRepo) dataloader.BatchFunc[primitive.ObjectID, *domain.Scenario] {
	return func(ctx context.Context, keys []primitive.ObjectID) []*dataloader.Result[*domain.Scenario] {
		scenarios, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Scenario](len(keys), err)
		}

		byID := make(map[primitive.ObjectID]*domain.Scenario, len(scenarios))
		for i := range scenarios {
			sc := scenarios[i]
			byID[sc.ID] = &sc
		}

		return byIDResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Scene by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newSceneBatchFn(repo sceneRepo) dataloader.BatchFunc[primitive.ObjectID, *domain.Scene] {
	return func(ctx context.Context, keys []primitive.ObjectID) []*dataloader.Result[*domain.Scene] {
		scenes, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Scene](len(keys), err)
		}

		byID := make(map[primitive.ObjectID]*domain.Scene, len(scenes))
		for i := range scenes {
			s := scenes[i]
			byID[s.ID] = &s
		}

		return byIDResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Asset by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newAssetBatchFn(repo assetRepo) dataloader.BatchFunc[primitive.ObjectID, *domain.Asset] {
	return func(ctx context.Context, keys []primitive.ObjectID) []*dataloader.Result[*domain.Asset] {
		assets, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Asset](len(keys), err)
		}

		byID := make(map[primitive.ObjectID]*domain.Asset, len(assets))
		for i := range assets {
			a := assets[i]
			byID[a.ID] = &a
		}

		return byIDResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Scenes by ScenarioID
// ---------------------------------------------------------------------------

func newScenesByScenarioBatchFn(repo sceneRepo) dataloader.BatchFunc[primitive.ObjectID, []domain.Scene] {
	return func(ctx context.Context, keys []primitive.ObjectID) []*dataloader.Result[[]domain.Scene] {
		scenes, err := repo.ListByScenarioIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Scene](len(keys), err)
		}

		grouped := make(map[primitive.ObjectID][]domain.Scene, len(keys))
		for _, s := range scenes {
			grouped[s.ScenarioID] = append(grouped[s.ScenarioID], s)
		}

		return mapResults(keys, grouped, emptySlice[domain.Scene])
	}
}

// ---------------------------------------------------------------------------
// Choices by FromSceneID
// ---------------------------------------------------------------------------

func newChoicesBySceneBatchFn(repo choiceRepo) dataloader.BatchFunc[primitive.ObjectID, []domain.Choice] {
	return func(ctx context.Context, keys []primitive.ObjectID) []*dataloader.Result[[]domain.Choice] {
		choices, err := repo.ListBySceneIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Choice](len(keys), err)
		}

		grouped := make(map[primitive.ObjectID][]domain.Choice, len(keys))
		for _, c := range choices {
			grouped[c.FromSceneID] = append(grouped[c.FromSceneID], c)
		}

		return mapResults(keys, grouped, emptySlice[domain.Choice])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// byIDResults maps 1:1 lookups back to key order. Missing keys yield nil data.
func byIDResults[V any](keys []primitive.ObjectID, byID map[primitive.ObjectID]*V) []*dataloader.Result[*V] {
	results := make([]*dataloader.Result[*V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[*V]{Data: byID[key]}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []primitive.ObjectID, grouped map[primitive.ObjectID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}

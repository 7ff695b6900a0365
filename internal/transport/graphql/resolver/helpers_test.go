package resolver

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/dataloader"
)

// Stub repositories backing DataLoaders in field-resolver tests. They serve
// from in-memory fixtures the way the Mongo repositories serve from
// collections.

type stubLoaderRepo struct {
	users     []domain.User
	scenarios []domain.Scenario
	scenes    []domain.Scene
	choices   []domain.Choice
	assets    []domain.Asset
}

func (s *stubLoaderRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	var out []domain.User
	for _, u := range s.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

type stubScenarioRepo struct{ *stubLoaderRepo }

func (s stubScenarioRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Scenario, error) {
	var out []domain.Scenario
	for _, sc := range s.scenarios {
		for _, id := range ids {
			if sc.ID == id {
				out = append(out, sc)
			}
		}
	}
	return out, nil
}

type stubSceneRepo struct{ *stubLoaderRepo }

func (s stubSceneRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Scene, error) {
	var out []domain.Scene
	for _, sc := range s.scenes {
		for _, id := range ids {
			if sc.ID == id {
				out = append(out, sc)
			}
		}
	}
	return out, nil
}

func (s stubSceneRepo) ListByScenarioIDs(ctx context.Context, scenarioIDs []primitive.ObjectID) ([]domain.Scene, error) {
	var out []domain.Scene
	for _, sc := range s.scenes {
		for _, id := range scenarioIDs {
			if sc.ScenarioID == id {
				out = append(out, sc)
			}
		}
	}
	return out, nil
}

type stubChoiceRepo struct{ *stubLoaderRepo }

func (s stubChoiceRepo) ListBySceneIDs(ctx context.Context, fromSceneIDs []primitive.ObjectID) ([]domain.Choice, error) {
	var out []domain.Choice
	for _, c := range s.choices {
		for _, id := range fromSceneIDs {
			if c.FromSceneID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

type stubAssetRepo struct{ *stubLoaderRepo }

func (s stubAssetRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Asset, error) {
	var out []domain.Asset
	for _, a := range s.assets {
		for _, id := range ids {
			if a.ID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

// loadersCtx returns a context carrying DataLoaders backed by the fixtures.
func loadersCtx(fixtures *stubLoaderRepo) context.Context {
	repos := &dataloader.Repos{
		User:     fixtures,
		Scenario: stubScenarioRepo{fixtures},
		Scene:    stubSceneRepo{fixtures},
		Choice:   stubChoiceRepo{fixtures},
		Asset:    stubAssetRepo{fixtures},
	}
	return dataloader.WithLoaders(context.Background(), dataloader.NewLoaders(repos))
}

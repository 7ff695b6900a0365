package story

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

var _ sceneRepo = &sceneRepoMock{}

type sceneRepoMock struct {
	CreateFunc           func(ctx context.Context, s *domain.Scene) (*domain.Scene, error)
	GetByIDFunc          func(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error)
	ListByScenarioFunc   func(ctx context.Context, scenarioID primitive.ObjectID) ([]domain.Scene, error)
	UpdateFunc           func(ctx context.Context, s *domain.Scene) (*domain.Scene, error)
	DeleteFunc           func(ctx context.Context, id primitive.ObjectID) error
	DeleteByScenarioFunc func(ctx context.Context, scenarioID primitive.ObjectID) (int64, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Scene *domain.Scene
		}
		GetByID []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		ListByScenario []struct {
			Ctx        context.Context
			ScenarioID primitive.ObjectID
		}
		Update []struct {
			Ctx   context.Context
			Scene *domain.Scene
		}
		Delete []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		DeleteByScenario []struct {
			Ctx        context.Context
			ScenarioID primitive.ObjectID
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockListByScenario   sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockDeleteByScenario sync.RWMutex
}

func (mock *sceneRepoMock) Create(ctx context.Context, s *domain.Scene) (*domain.Scene, error) {
	if mock.CreateFunc == nil {
		panic("sceneRepoMock.CreateFunc: method is nil but sceneRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scene *domain.Scene
	}{Ctx: ctx, Scene: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sceneRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Scene *domain.Scene
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sceneRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error) {
	if mock.GetByIDFunc == nil {
		panic("sceneRepoMock.GetByIDFunc: method is nil but sceneRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sceneRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sceneRepoMock) ListByScenario(ctx context.Context, scenarioID primitive.ObjectID) ([]domain.Scene, error) {
	if mock.ListByScenarioFunc == nil {
		panic("sceneRepoMock.ListByScenarioFunc: method is nil but sceneRepo.ListByScenario was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ScenarioID primitive.ObjectID
	}{Ctx: ctx, ScenarioID: scenarioID}
	mock.lockListByScenario.Lock()
	mock.calls.ListByScenario = append(mock.calls.ListByScenario, callInfo)
	mock.lockListByScenario.Unlock()
	return mock.ListByScenarioFunc(ctx, scenarioID)
}

func (mock *sceneRepoMock) ListByScenarioCalls() []struct {
	Ctx        context.Context
	ScenarioID primitive.ObjectID
} {
	mock.lockListByScenario.RLock()
	calls := mock.calls.ListByScenario
	mock.lockListByScenario.RUnlock()
	return calls
}

func (mock *sceneRepoMock) Update(ctx context.Context, s *domain.Scene) (*domain.Scene, error) {
	if mock.UpdateFunc == nil {
		panic("sceneRepoMock.UpdateFunc: method is nil but sceneRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scene *domain.Scene
	}{Ctx: ctx, Scene: s}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *sceneRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	Scene *domain.Scene
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *sceneRepoMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteFunc == nil {
		panic("sceneRepoMock.DeleteFunc: method is nil but sceneRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sceneRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sceneRepoMock) DeleteByScenario(ctx context.Context, scenarioID primitive.ObjectID) (int64, error) {
	if mock.DeleteByScenarioFunc == nil {
		panic("sceneRepoMock.DeleteByScenarioFunc: method is nil but sceneRepo.DeleteByScenario was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ScenarioID primitive.ObjectID
	}{Ctx: ctx, ScenarioID: scenarioID}
	mock.lockDeleteByScenario.Lock()
	mock.calls.DeleteByScenario = append(mock.calls.DeleteByScenario, callInfo)
	mock.lockDeleteByScenario.Unlock()
	return mock.DeleteByScenarioFunc(ctx, scenarioID)
}

func (mock *sceneRepoMock) DeleteByScenarioCalls() []struct {
	Ctx        context.Context
	ScenarioID primitive.ObjectID
} {
	mock.lockDeleteByScenario.RLock()
	calls := mock.calls.DeleteByScenario
	mock.lockDeleteByScenario.RUnlock()
	return calls
}

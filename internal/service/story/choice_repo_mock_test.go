package story

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

var _ choiceRepo = &choiceRepoMock{}

type choiceRepoMock struct {
	CreateFunc         func(ctx context.Context, c *domain.Choice) (*domain.Choice, error)
	GetByIDFunc        func(ctx context.Context, id primitive.ObjectID) (*domain.Choice, error)
	ListBySceneFunc    func(ctx context.Context, fromSceneID primitive.ObjectID) ([]domain.Choice, error)
	UpdateFunc         func(ctx context.Context, c *domain.Choice) (*domain.Choice, error)
	DeleteFunc         func(ctx context.Context, id primitive.ObjectID) error
	DeleteByScenesFunc func(ctx context.Context, sceneIDs []primitive.ObjectID) (int64, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Choice *domain.Choice
		}
		GetByID []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		ListByScene []struct {
			Ctx         context.Context
			FromSceneID primitive.ObjectID
		}
		Update []struct {
			Ctx    context.Context
			Choice *domain.Choice
		}
		Delete []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		DeleteByScenes []struct {
			Ctx      context.Context
			SceneIDs []primitive.ObjectID
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockListByScene    sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockDeleteByScenes sync.RWMutex
}

func (mock *choiceRepoMock) Create(ctx context.Context, c *domain.Choice) (*domain.Choice, error) {
	if mock.CreateFunc == nil {
		panic("choiceRepoMock.CreateFunc: method is nil but choiceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Choice *domain.Choice
	}{Ctx: ctx, Choice: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *choiceRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Choice *domain.Choice
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *choiceRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Choice, error) {
	if mock.GetByIDFunc == nil {
		panic("choiceRepoMock.GetByIDFunc: method is nil but choiceRepo.GetByID was just called")
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

func (mock *choiceRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *choiceRepoMock) ListByScene(ctx context.Context, fromSceneID primitive.ObjectID) ([]domain.Choice, error) {
	if mock.ListBySceneFunc == nil {
		panic("choiceRepoMock.ListBySceneFunc: method is nil but choiceRepo.ListByScene was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		FromSceneID primitive.ObjectID
	}{Ctx: ctx, FromSceneID: fromSceneID}
	mock.lockListByScene.Lock()
	mock.calls.ListByScene = append(mock.calls.ListByScene, callInfo)
	mock.lockListByScene.Unlock()
	return mock.ListBySceneFunc(ctx, fromSceneID)
}

func (mock *choiceRepoMock) ListBySceneCalls() []struct {
	Ctx         context.Context
	FromSceneID primitive.ObjectID
} {
	mock.lockListByScene.RLock()
	calls := mock.calls.ListByScene
	mock.lockListByScene.RUnlock()
	return calls
}

func (mock *choiceRepoMock) Update(ctx context.Context, c *domain.Choice) (*domain.Choice, error) {
	if mock.UpdateFunc == nil {
		panic("choiceRepoMock.UpdateFunc: method is nil but choiceRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Choice *domain.Choice
	}{Ctx: ctx, Choice: c}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *choiceRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Choice *domain.Choice
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *choiceRepoMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteFunc == nil {
		panic("choiceRepoMock.DeleteFunc: method is nil but choiceRepo.Delete was just called")
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

func (mock *choiceRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *choiceRepoMock) DeleteByScenes(ctx context.Context, sceneIDs []primitive.ObjectID) (int64, error) {
	if mock.DeleteByScenesFunc == nil {
		panic("choiceRepoMock.DeleteByScenesFunc: method is nil but choiceRepo.DeleteByScenes was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SceneIDs []primitive.ObjectID
	}{Ctx: ctx, SceneIDs: sceneIDs}
	mock.lockDeleteByScenes.Lock()
	mock.calls.DeleteByScenes = append(mock.calls.DeleteByScenes, callInfo)
	mock.lockDeleteByScenes.Unlock()
	return mock.DeleteByScenesFunc(ctx, sceneIDs)
}

func (mock *choiceRepoMock) DeleteByScenesCalls() []struct {
	Ctx      context.Context
	SceneIDs []primitive.ObjectID
} {
	mock.lockDeleteByScenes.RLock()
	calls := mock.calls.DeleteByScenes
	mock.lockDeleteByScenes.RUnlock()
	return calls
}

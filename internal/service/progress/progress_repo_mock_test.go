package progress

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	CreateFunc               func(ctx context.Context, p *domain.PlayerProgress) (*domain.PlayerProgress, error)
	GetByIDFunc              func(ctx context.Context, id primitive.ObjectID) (*domain.PlayerProgress, error)
	GetByUserAndScenarioFunc func(ctx context.Context, userID, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error)
	ListFunc                 func(ctx context.Context) ([]domain.PlayerProgress, error)
	ListByUserFunc           func(ctx context.Context, userID primitive.ObjectID) ([]domain.PlayerProgress, error)
	UpdateFunc               func(ctx context.Context, p *domain.PlayerProgress) (*domain.PlayerProgress, error)
	DeleteFunc               func(ctx context.Context, id primitive.ObjectID) error

	calls struct {
		Create []struct {
			Ctx      context.Context
			Progress *domain.PlayerProgress
		}
		GetByID []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		GetByUserAndScenario []struct {
			Ctx        context.Context
			UserID     primitive.ObjectID
			ScenarioID primitive.ObjectID
		}
		List []struct {
			Ctx context.Context
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID primitive.ObjectID
		}
		Update []struct {
			Ctx      context.Context
			Progress *domain.PlayerProgress
		}
		Delete []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
	}
	lockCreate               sync.RWMutex
	lockGetByID              sync.RWMutex
	lockGetByUserAndScenario sync.RWMutex
	lockList                 sync.RWMutex
	lockListByUser           sync.RWMutex
	lockUpdate               sync.RWMutex
	lockDelete               sync.RWMutex
}

func (mock *progressRepoMock) Create(ctx context.Context, p *domain.PlayerProgress) (*domain.PlayerProgress, error) {
	if mock.CreateFunc == nil {
		panic("progressRepoMock.CreateFunc: method is nil but progressRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Progress *domain.PlayerProgress
	}{Ctx: ctx, Progress: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *progressRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	Progress *domain.PlayerProgress
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *progressRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlayerProgress, error) {
	if mock.GetByIDFunc == nil {
		panic("progressRepoMock.GetByIDFunc: method is nil but progressRepo.GetByID was just called")
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

func (mock *progressRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *progressRepoMock) GetByUserAndScenario(ctx context.Context, userID, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error) {
	if mock.GetByUserAndScenarioFunc == nil {
		panic("progressRepoMock.GetByUserAndScenarioFunc: method is nil but progressRepo.GetByUserAndScenario was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     primitive.ObjectID
		ScenarioID primitive.ObjectID
	}{Ctx: ctx, UserID: userID, ScenarioID: scenarioID}
	mock.lockGetByUserAndScenario.Lock()
	mock.calls.GetByUserAndScenario = append(mock.calls.GetByUserAndScenario, callInfo)
	mock.lockGetByUserAndScenario.Unlock()
	return mock.GetByUserAndScenarioFunc(ctx, userID, scenarioID)
}

func (mock *progressRepoMock) GetByUserAndScenarioCalls() []struct {
	Ctx        context.Context
	UserID     primitive.ObjectID
	ScenarioID primitive.ObjectID
} {
	mock.lockGetByUserAndScenario.RLock()
	calls := mock.calls.GetByUserAndScenario
	mock.lockGetByUserAndScenario.RUnlock()
	return calls
}

func (mock *progressRepoMock) List(ctx context.Context) ([]domain.PlayerProgress, error) {
	if mock.ListFunc == nil {
		panic("progressRepoMock.ListFunc: method is nil but progressRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *progressRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *progressRepoMock) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.PlayerProgress, error) {
	if mock.ListByUserFunc == nil {
		panic("progressRepoMock.ListByUserFunc: method is nil but progressRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID primitive.ObjectID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *progressRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID primitive.ObjectID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *progressRepoMock) Update(ctx context.Context, p *domain.PlayerProgress) (*domain.PlayerProgress, error) {
	if mock.UpdateFunc == nil {
		panic("progressRepoMock.UpdateFunc: method is nil but progressRepo.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Progress *domain.PlayerProgress
	}{Ctx: ctx, Progress: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *progressRepoMock) UpdateCalls() []struct {
	Ctx      context.Context
	Progress *domain.PlayerProgress
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *progressRepoMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteFunc == nil {
		panic("progressRepoMock.DeleteFunc: method is nil but progressRepo.Delete was just called")
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

func (mock *progressRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

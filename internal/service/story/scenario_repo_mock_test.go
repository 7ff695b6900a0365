package story

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

var _ scenarioRepo = &scenarioRepoMock{}

type scenarioRepoMock struct {
	CreateFunc       func(ctx context.Context, s *domain.Scenario) (*domain.Scenario, error)
	GetByIDFunc      func(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error)
	ListFunc         func(ctx context.Context, publishedOnly bool) ([]domain.Scenario, error)
	ListByAuthorFunc func(ctx context.Context, authorID primitive.ObjectID) ([]domain.Scenario, error)
	UpdateFunc       func(ctx context.Context, s *domain.Scenario) (*domain.Scenario, error)
	DeleteFunc       func(ctx context.Context, id primitive.ObjectID) error

	calls struct {
		Create []struct {
			Ctx      context.Context
			Scenario *domain.Scenario
		}
		GetByID []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		List []struct {
			Ctx           context.Context
			PublishedOnly bool
		}
		ListByAuthor []struct {
			Ctx      context.Context
			AuthorID primitive.ObjectID
		}
		Update []struct {
			Ctx      context.Context
			Scenario *domain.Scenario
		}
		Delete []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
	lockListByAuthor sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *scenarioRepoMock) Create(ctx context.Context, s *domain.Scenario) (*domain.Scenario, error) {
	if mock.CreateFunc == nil {
		panic("scenarioRepoMock.CreateFunc: method is nil but scenarioRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Scenario *domain.Scenario
	}{Ctx: ctx, Scenario: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *scenarioRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	Scenario *domain.Scenario
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *scenarioRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error) {
	if mock.GetByIDFunc == nil {
		panic("scenarioRepoMock.GetByIDFunc: method is nil but scenarioRepo.GetByID was just called")
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

func (mock *scenarioRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *scenarioRepoMock) List(ctx context.Context, publishedOnly bool) ([]domain.Scenario, error) {
	if mock.ListFunc == nil {
		panic("scenarioRepoMock.ListFunc: method is nil but scenarioRepo.List was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		PublishedOnly bool
	}{Ctx: ctx, PublishedOnly: publishedOnly}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, publishedOnly)
}

func (mock *scenarioRepoMock) ListCalls() []struct {
	Ctx           context.Context
	PublishedOnly bool
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *scenarioRepoMock) ListByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]domain.Scenario, error) {
	if mock.ListByAuthorFunc == nil {
		panic("scenarioRepoMock.ListByAuthorFunc: method is nil but scenarioRepo.ListByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID primitive.ObjectID
	}{Ctx: ctx, AuthorID: authorID}
	mock.lockListByAuthor.Lock()
	mock.calls.ListByAuthor = append(mock.calls.ListByAuthor, callInfo)
	mock.lockListByAuthor.Unlock()
	return mock.ListByAuthorFunc(ctx, authorID)
}

func (mock *scenarioRepoMock) ListByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID primitive.ObjectID
} {
	mock.lockListByAuthor.RLock()
	calls := mock.calls.ListByAuthor
	mock.lockListByAuthor.RUnlock()
	return calls
}

func (mock *scenarioRepoMock) Update(ctx context.Context, s *domain.Scenario) (*domain.Scenario, error) {
	if mock.UpdateFunc == nil {
		panic("scenarioRepoMock.UpdateFunc: method is nil but scenarioRepo.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Scenario *domain.Scenario
	}{Ctx: ctx, Scenario: s}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *scenarioRepoMock) UpdateCalls() []struct {
	Ctx      context.Context
	Scenario *domain.Scenario
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *scenarioRepoMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteFunc == nil {
		panic("scenarioRepoMock.DeleteFunc: method is nil but scenarioRepo.Delete was just called")
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

func (mock *scenarioRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

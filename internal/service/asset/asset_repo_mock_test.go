package asset

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

var _ assetRepo = &assetRepoMock{}

type assetRepoMock struct {
	CreateFunc         func(ctx context.Context, a *domain.Asset) (*domain.Asset, error)
	GetByIDFunc        func(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error)
	ListFunc           func(ctx context.Context) ([]domain.Asset, error)
	ListByTypeFunc     func(ctx context.Context, t domain.AssetType) ([]domain.Asset, error)
	ListByUploaderFunc func(ctx context.Context, userID primitive.ObjectID) ([]domain.Asset, error)
	ListPublicFunc     func(ctx context.Context) ([]domain.Asset, error)
	UpdateFunc         func(ctx context.Context, a *domain.Asset) (*domain.Asset, error)
	DeleteFunc         func(ctx context.Context, id primitive.ObjectID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Asset *domain.Asset
		}
		GetByID []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		List []struct {
			Ctx context.Context
		}
		ListByType []struct {
			Ctx  context.Context
			Type domain.AssetType
		}
		ListByUploader []struct {
			Ctx    context.Context
			UserID primitive.ObjectID
		}
		ListPublic []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Asset *domain.Asset
		}
		Delete []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockListByType     sync.RWMutex
	lockListByUploader sync.RWMutex
	lockListPublic     sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *assetRepoMock) Create(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
	if mock.CreateFunc == nil {
		panic("assetRepoMock.CreateFunc: method is nil but assetRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Asset *domain.Asset
	}{Ctx: ctx, Asset: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *assetRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Asset *domain.Asset
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *assetRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error) {
	if mock.GetByIDFunc == nil {
		panic("assetRepoMock.GetByIDFunc: method is nil but assetRepo.GetByID was just called")
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

func (mock *assetRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *assetRepoMock) List(ctx context.Context) ([]domain.Asset, error) {
	if mock.ListFunc == nil {
		panic("assetRepoMock.ListFunc: method is nil but assetRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *assetRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *assetRepoMock) ListByType(ctx context.Context, t domain.AssetType) ([]domain.Asset, error) {
	if mock.ListByTypeFunc == nil {
		panic("assetRepoMock.ListByTypeFunc: method is nil but assetRepo.ListByType was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Type domain.AssetType
	}{Ctx: ctx, Type: t}
	mock.lockListByType.Lock()
	mock.calls.ListByType = append(mock.calls.ListByType, callInfo)
	mock.lockListByType.Unlock()
	return mock.ListByTypeFunc(ctx, t)
}

func (mock *assetRepoMock) ListByTypeCalls() []struct {
	Ctx  context.Context
	Type domain.AssetType
} {
	mock.lockListByType.RLock()
	calls := mock.calls.ListByType
	mock.lockListByType.RUnlock()
	return calls
}

func (mock *assetRepoMock) ListByUploader(ctx context.Context, userID primitive.ObjectID) ([]domain.Asset, error) {
	if mock.ListByUploaderFunc == nil {
		panic("assetRepoMock.ListByUploaderFunc: method is nil but assetRepo.ListByUploader was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID primitive.ObjectID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUploader.Lock()
	mock.calls.ListByUploader = append(mock.calls.ListByUploader, callInfo)
	mock.lockListByUploader.Unlock()
	return mock.ListByUploaderFunc(ctx, userID)
}

func (mock *assetRepoMock) ListByUploaderCalls() []struct {
	Ctx    context.Context
	UserID primitive.ObjectID
} {
	mock.lockListByUploader.RLock()
	calls := mock.calls.ListByUploader
	mock.lockListByUploader.RUnlock()
	return calls
}

func (mock *assetRepoMock) ListPublic(ctx context.Context) ([]domain.Asset, error) {
	if mock.ListPublicFunc == nil {
		panic("assetRepoMock.ListPublicFunc: method is nil but assetRepo.ListPublic was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListPublic.Lock()
	mock.calls.ListPublic = append(mock.calls.ListPublic, callInfo)
	mock.lockListPublic.Unlock()
	return mock.ListPublicFunc(ctx)
}

func (mock *assetRepoMock) ListPublicCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPublic.RLock()
	calls := mock.calls.ListPublic
	mock.lockListPublic.RUnlock()
	return calls
}

func (mock *assetRepoMock) Update(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
	if mock.UpdateFunc == nil {
		panic("assetRepoMock.UpdateFunc: method is nil but assetRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Asset *domain.Asset
	}{Ctx: ctx, Asset: a}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, a)
}

func (mock *assetRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	Asset *domain.Asset
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *assetRepoMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteFunc == nil {
		panic("assetRepoMock.DeleteFunc: method is nil but assetRepo.Delete was just called")
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

func (mock *assetRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

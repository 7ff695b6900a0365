package resolver

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/service/asset"
)

var _ assetService = &assetServiceMock{}

type assetServiceMock struct {
	CreateAssetFunc          func(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error)
	GetAssetFunc             func(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error)
	ListAssetsFunc           func(ctx context.Context, typeFilter *domain.AssetType) ([]domain.Asset, error)
	ListAssetsByUploaderFunc func(ctx context.Context, uploaderID primitive.ObjectID) ([]domain.Asset, error)
	MyAssetsFunc             func(ctx context.Context) ([]domain.Asset, error)
	ListPublicAssetsFunc     func(ctx context.Context, typeFilter *domain.AssetType) ([]domain.Asset, error)
	UpdateAssetFunc          func(ctx context.Context, input asset.UpdateAssetInput) (*domain.Asset, error)
	DeleteAssetFunc          func(ctx context.Context, id primitive.ObjectID) error
	GenerateAssetFunc        func(ctx context.Context, input asset.GenerateAssetInput) (*domain.Asset, error)

	calls struct {
		CreateAsset []struct {
			Ctx   context.Context
			Input asset.CreateAssetInput
		}
		GetAsset []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		ListAssets []struct {
			Ctx        context.Context
			TypeFilter *domain.AssetType
		}
		ListAssetsByUploader []struct {
			Ctx        context.Context
			UploaderID primitive.ObjectID
		}
		MyAssets []struct {
			Ctx context.Context
		}
		ListPublicAssets []struct {
			Ctx        context.Context
			TypeFilter *domain.AssetType
		}
		UpdateAsset []struct {
			Ctx   context.Context
			Input asset.UpdateAssetInput
		}
		DeleteAsset []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		GenerateAsset []struct {
			Ctx   context.Context
			Input asset.GenerateAssetInput
		}
	}
	lockCreateAsset          sync.RWMutex
	lockGetAsset             sync.RWMutex
	lockListAssets           sync.RWMutex
	lockListAssetsByUploader sync.RWMutex
	lockMyAssets             sync.RWMutex
	lockListPublicAssets     sync.RWMutex
	lockUpdateAsset          sync.RWMutex
	lockDeleteAsset          sync.RWMutex
	lockGenerateAsset        sync.RWMutex
}

func (mock *assetServiceMock) CreateAsset(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error) {
	if mock.CreateAssetFunc == nil {
		panic("assetServiceMock.CreateAssetFunc: method is nil but assetService.CreateAsset was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input asset.CreateAssetInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateAsset.Lock()
	mock.calls.CreateAsset = append(mock.calls.CreateAsset, callInfo)
	mock.lockCreateAsset.Unlock()
	return mock.CreateAssetFunc(ctx, input)
}

func (mock *assetServiceMock) CreateAssetCalls() []struct {
	Ctx   context.Context
	Input asset.CreateAssetInput
} {
	mock.lockCreateAsset.RLock()
	calls := mock.calls.CreateAsset
	mock.lockCreateAsset.RUnlock()
	return calls
}

func (mock *assetServiceMock) GetAsset(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error) {
	if mock.GetAssetFunc == nil {
		panic("assetServiceMock.GetAssetFunc: method is nil but assetService.GetAsset was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockGetAsset.Lock()
	mock.calls.GetAsset = append(mock.calls.GetAsset, callInfo)
	mock.lockGetAsset.Unlock()
	return mock.GetAssetFunc(ctx, id)
}

func (mock *assetServiceMock) GetAssetCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetAsset.RLock()
	calls := mock.calls.GetAsset
	mock.lockGetAsset.RUnlock()
	return calls
}

func (mock *assetServiceMock) ListAssets(ctx context.Context, typeFilter *domain.AssetType) ([]domain.Asset, error) {
	if mock.ListAssetsFunc == nil {
		panic("assetServiceMock.ListAssetsFunc: method is nil but assetService.ListAssets was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		TypeFilter *domain.AssetType
	}{Ctx: ctx, TypeFilter: typeFilter}
	mock.lockListAssets.Lock()
	mock.calls.ListAssets = append(mock.calls.ListAssets, callInfo)
	mock.lockListAssets.Unlock()
	return mock.ListAssetsFunc(ctx, typeFilter)
}

func (mock *assetServiceMock) ListAssetsCalls() []struct {
	Ctx        context.Context
	TypeFilter *domain.AssetType
} {
	mock.lockListAssets.RLock()
	calls := mock.calls.ListAssets
	mock.lockListAssets.RUnlock()
	return calls
}

func (mock *assetServiceMock) ListAssetsByUploader(ctx context.Context, uploaderID primitive.ObjectID) ([]domain.Asset, error) {
	if mock.ListAssetsByUploaderFunc == nil {
		panic("assetServiceMock.ListAssetsByUploaderFunc: method is nil but assetService.ListAssetsByUploader was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UploaderID primitive.ObjectID
	}{Ctx: ctx, UploaderID: uploaderID}
	mock.lockListAssetsByUploader.Lock()
	mock.calls.ListAssetsByUploader = append(mock.calls.ListAssetsByUploader, callInfo)
	mock.lockListAssetsByUploader.Unlock()
	return mock.ListAssetsByUploaderFunc(ctx, uploaderID)
}

func (mock *assetServiceMock) ListAssetsByUploaderCalls() []struct {
	Ctx        context.Context
	UploaderID primitive.ObjectID
} {
	mock.lockListAssetsByUploader.RLock()
	calls := mock.calls.ListAssetsByUploader
	mock.lockListAssetsByUploader.RUnlock()
	return calls
}

func (mock *assetServiceMock) MyAssets(ctx context.Context) ([]domain.Asset, error) {
	if mock.MyAssetsFunc == nil {
		panic("assetServiceMock.MyAssetsFunc: method is nil but assetService.MyAssets was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMyAssets.Lock()
	mock.calls.MyAssets = append(mock.calls.MyAssets, callInfo)
	mock.lockMyAssets.Unlock()
	return mock.MyAssetsFunc(ctx)
}

func (mock *assetServiceMock) MyAssetsCalls() []struct {
	Ctx context.Context
} {
	mock.lockMyAssets.RLock()
	calls := mock.calls.MyAssets
	mock.lockMyAssets.RUnlock()
	return calls
}

func (mock *assetServiceMock) ListPublicAssets(ctx context.Context, typeFilter *domain.AssetType) ([]domain.Asset, error) {
	if mock.ListPublicAssetsFunc == nil {
		panic("assetServiceMock.ListPublicAssetsFunc: method is nil but assetService.ListPublicAssets was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		TypeFilter *domain.AssetType
	}{Ctx: ctx, TypeFilter: typeFilter}
	mock.lockListPublicAssets.Lock()
	mock.calls.ListPublicAssets = append(mock.calls.ListPublicAssets, callInfo)
	mock.lockListPublicAssets.Unlock()
	return mock.ListPublicAssetsFunc(ctx, typeFilter)
}

func (mock *assetServiceMock) ListPublicAssetsCalls() []struct {
	Ctx        context.Context
	TypeFilter *domain.AssetType
} {
	mock.lockListPublicAssets.RLock()
	calls := mock.calls.ListPublicAssets
	mock.lockListPublicAssets.RUnlock()
	return calls
}

func (mock *assetServiceMock) UpdateAsset(ctx context.Context, input asset.UpdateAssetInput) (*domain.Asset, error) {
	if mock.UpdateAssetFunc == nil {
		panic("assetServiceMock.UpdateAssetFunc: method is nil but assetService.UpdateAsset was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input asset.UpdateAssetInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateAsset.Lock()
	mock.calls.UpdateAsset = append(mock.calls.UpdateAsset, callInfo)
	mock.lockUpdateAsset.Unlock()
	return mock.UpdateAssetFunc(ctx, input)
}

func (mock *assetServiceMock) UpdateAssetCalls() []struct {
	Ctx   context.Context
	Input asset.UpdateAssetInput
} {
	mock.lockUpdateAsset.RLock()
	calls := mock.calls.UpdateAsset
	mock.lockUpdateAsset.RUnlock()
	return calls
}

func (mock *assetServiceMock) DeleteAsset(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteAssetFunc == nil {
		panic("assetServiceMock.DeleteAssetFunc: method is nil but assetService.DeleteAsset was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteAsset.Lock()
	mock.calls.DeleteAsset = append(mock.calls.DeleteAsset, callInfo)
	mock.lockDeleteAsset.Unlock()
	return mock.DeleteAssetFunc(ctx, id)
}

func (mock *assetServiceMock) DeleteAssetCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDeleteAsset.RLock()
	calls := mock.calls.DeleteAsset
	mock.lockDeleteAsset.RUnlock()
	return calls
}

func (mock *assetServiceMock) GenerateAsset(ctx context.Context, input asset.GenerateAssetInput) (*domain.Asset, error) {
	if mock.GenerateAssetFunc == nil {
		panic("assetServiceMock.GenerateAssetFunc: method is nil but assetService.GenerateAsset was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input asset.GenerateAssetInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerateAsset.Lock()
	mock.calls.GenerateAsset = append(mock.calls.GenerateAsset, callInfo)
	mock.lockGenerateAsset.Unlock()
	return mock.GenerateAssetFunc(ctx, input)
}

func (mock *assetServiceMock) GenerateAssetCalls() []struct {
	Ctx   context.Context
	Input asset.GenerateAssetInput
} {
	mock.lockGenerateAsset.RLock()
	calls := mock.calls.GenerateAsset
	mock.lockGenerateAsset.RUnlock()
	return calls
}

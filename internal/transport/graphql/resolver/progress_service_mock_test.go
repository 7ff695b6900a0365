package resolver

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/service/progress"
)

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	CreateProgressFunc               func(ctx context.Context, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error)
	RecordProgressFunc               func(ctx context.Context, input progress.RecordProgressInput) (*domain.PlayerProgress, error)
	UpdateProgressFunc               func(ctx context.Context, input progress.UpdateProgressInput) (*domain.PlayerProgress, error)
	DeleteProgressFunc               func(ctx context.Context, id primitive.ObjectID) error
	GetProgressFunc                  func(ctx context.Context, id primitive.ObjectID) (*domain.PlayerProgress, error)
	GetProgressByUserAndScenarioFunc func(ctx context.Context, userID primitive.ObjectID, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error)
	ListAllProgressFunc              func(ctx context.Context) ([]domain.PlayerProgress, error)
	ListProgressByUserFunc           func(ctx context.Context, userID primitive.ObjectID) ([]domain.PlayerProgress, error)
	MyProgressFunc                   func(ctx context.Context) ([]domain.PlayerProgress, error)
	ProgressPercentageFunc           func(ctx context.Context, p *domain.PlayerProgress) (float64, error)

	calls struct {
		CreateProgress []struct {
			Ctx        context.Context
			ScenarioID primitive.ObjectID
		}
		RecordProgress []struct {
			Ctx   context.Context
			Input progress.RecordProgressInput
		}
		UpdateProgress []struct {
			Ctx   context.Context
			Input progress.UpdateProgressInput
		}
		DeleteProgress []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		GetProgress []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		GetProgressByUserAndScenario []struct {
			Ctx        context.Context
			UserID     primitive.ObjectID
			ScenarioID primitive.ObjectID
		}
		ListAllProgress []struct {
			Ctx context.Context
		}
		ListProgressByUser []struct {
			Ctx    context.Context
			UserID primitive.ObjectID
		}
		MyProgress []struct {
			Ctx context.Context
		}
		ProgressPercentage []struct {
			Ctx context.Context
			P   *domain.PlayerProgress
		}
	}
	lockCreateProgress               sync.RWMutex
	lockRecordProgress               sync.RWMutex
	lockUpdateProgress               sync.RWMutex
	lockDeleteProgress               sync.RWMutex
	lockGetProgress                  sync.RWMutex
	lockGetProgressByUserAndScenario sync.RWMutex
	lockListAllProgress              sync.RWMutex
	lockListProgressByUser           sync.RWMutex
	lockMyProgress                   sync.RWMutex
	lockProgressPercentage           sync.RWMutex
}

func (mock *progressServiceMock) CreateProgress(ctx context.Context, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error) {
	if mock.CreateProgressFunc == nil {
		panic("progressServiceMock.CreateProgressFunc: method is nil but progressService.CreateProgress was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ScenarioID primitive.ObjectID
	}{Ctx: ctx, ScenarioID: scenarioID}
	mock.lockCreateProgress.Lock()
	mock.calls.CreateProgress = append(mock.calls.CreateProgress, callInfo)
	mock.lockCreateProgress.Unlock()
	return mock.CreateProgressFunc(ctx, scenarioID)
}

func (mock *progressServiceMock) CreateProgressCalls() []struct {
	Ctx        context.Context
	ScenarioID primitive.ObjectID
} {
	mock.lockCreateProgress.RLock()
	calls := mock.calls.CreateProgress
	mock.lockCreateProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) RecordProgress(ctx context.Context, input progress.RecordProgressInput) (*domain.PlayerProgress, error) {
	if mock.RecordProgressFunc == nil {
		panic("progressServiceMock.RecordProgressFunc: method is nil but progressService.RecordProgress was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.RecordProgressInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordProgress.Lock()
	mock.calls.RecordProgress = append(mock.calls.RecordProgress, callInfo)
	mock.lockRecordProgress.Unlock()
	return mock.RecordProgressFunc(ctx, input)
}

func (mock *progressServiceMock) RecordProgressCalls() []struct {
	Ctx   context.Context
	Input progress.RecordProgressInput
} {
	mock.lockRecordProgress.RLock()
	calls := mock.calls.RecordProgress
	mock.lockRecordProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) UpdateProgress(ctx context.Context, input progress.UpdateProgressInput) (*domain.PlayerProgress, error) {
	if mock.UpdateProgressFunc == nil {
		panic("progressServiceMock.UpdateProgressFunc: method is nil but progressService.UpdateProgress was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.UpdateProgressInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProgress.Lock()
	mock.calls.UpdateProgress = append(mock.calls.UpdateProgress, callInfo)
	mock.lockUpdateProgress.Unlock()
	return mock.UpdateProgressFunc(ctx, input)
}

func (mock *progressServiceMock) UpdateProgressCalls() []struct {
	Ctx   context.Context
	Input progress.UpdateProgressInput
} {
	mock.lockUpdateProgress.RLock()
	calls := mock.calls.UpdateProgress
	mock.lockUpdateProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) DeleteProgress(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteProgressFunc == nil {
		panic("progressServiceMock.DeleteProgressFunc: method is nil but progressService.DeleteProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteProgress.Lock()
	mock.calls.DeleteProgress = append(mock.calls.DeleteProgress, callInfo)
	mock.lockDeleteProgress.Unlock()
	return mock.DeleteProgressFunc(ctx, id)
}

func (mock *progressServiceMock) DeleteProgressCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDeleteProgress.RLock()
	calls := mock.calls.DeleteProgress
	mock.lockDeleteProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) GetProgress(ctx context.Context, id primitive.ObjectID) (*domain.PlayerProgress, error) {
	if mock.GetProgressFunc == nil {
		panic("progressServiceMock.GetProgressFunc: method is nil but progressService.GetProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockGetProgress.Lock()
	mock.calls.GetProgress = append(mock.calls.GetProgress, callInfo)
	mock.lockGetProgress.Unlock()
	return mock.GetProgressFunc(ctx, id)
}

func (mock *progressServiceMock) GetProgressCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetProgress.RLock()
	calls := mock.calls.GetProgress
	mock.lockGetProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) GetProgressByUserAndScenario(ctx context.Context, userID primitive.ObjectID, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error) {
	if mock.GetProgressByUserAndScenarioFunc == nil {
		panic("progressServiceMock.GetProgressByUserAndScenarioFunc: method is nil but progressService.GetProgressByUserAndScenario was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     primitive.ObjectID
		ScenarioID primitive.ObjectID
	}{Ctx: ctx, UserID: userID, ScenarioID: scenarioID}
	mock.lockGetProgressByUserAndScenario.Lock()
	mock.calls.GetProgressByUserAndScenario = append(mock.calls.GetProgressByUserAndScenario, callInfo)
	mock.lockGetProgressByUserAndScenario.Unlock()
	return mock.GetProgressByUserAndScenarioFunc(ctx, userID, scenarioID)
}

func (mock *progressServiceMock) GetProgressByUserAndScenarioCalls() []struct {
	Ctx        context.Context
	UserID     primitive.ObjectID
	ScenarioID primitive.ObjectID
} {
	mock.lockGetProgressByUserAndScenario.RLock()
	calls := mock.calls.GetProgressByUserAndScenario
	mock.lockGetProgressByUserAndScenario.RUnlock()
	return calls
}

func (mock *progressServiceMock) ListAllProgress(ctx context.Context) ([]domain.PlayerProgress, error) {
	if mock.ListAllProgressFunc == nil {
		panic("progressServiceMock.ListAllProgressFunc: method is nil but progressService.ListAllProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAllProgress.Lock()
	mock.calls.ListAllProgress = append(mock.calls.ListAllProgress, callInfo)
	mock.lockListAllProgress.Unlock()
	return mock.ListAllProgressFunc(ctx)
}

func (mock *progressServiceMock) ListAllProgressCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAllProgress.RLock()
	calls := mock.calls.ListAllProgress
	mock.lockListAllProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) ListProgressByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.PlayerProgress, error) {
	if mock.ListProgressByUserFunc == nil {
		panic("progressServiceMock.ListProgressByUserFunc: method is nil but progressService.ListProgressByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID primitive.ObjectID
	}{Ctx: ctx, UserID: userID}
	mock.lockListProgressByUser.Lock()
	mock.calls.ListProgressByUser = append(mock.calls.ListProgressByUser, callInfo)
	mock.lockListProgressByUser.Unlock()
	return mock.ListProgressByUserFunc(ctx, userID)
}

func (mock *progressServiceMock) ListProgressByUserCalls() []struct {
	Ctx    context.Context
	UserID primitive.ObjectID
} {
	mock.lockListProgressByUser.RLock()
	calls := mock.calls.ListProgressByUser
	mock.lockListProgressByUser.RUnlock()
	return calls
}

func (mock *progressServiceMock) MyProgress(ctx context.Context) ([]domain.PlayerProgress, error) {
	if mock.MyProgressFunc == nil {
		panic("progressServiceMock.MyProgressFunc: method is nil but progressService.MyProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMyProgress.Lock()
	mock.calls.MyProgress = append(mock.calls.MyProgress, callInfo)
	mock.lockMyProgress.Unlock()
	return mock.MyProgressFunc(ctx)
}

func (mock *progressServiceMock) MyProgressCalls() []struct {
	Ctx context.Context
} {
	mock.lockMyProgress.RLock()
	calls := mock.calls.MyProgress
	mock.lockMyProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) ProgressPercentage(ctx context.Context, p *domain.PlayerProgress) (float64, error) {
	if mock.ProgressPercentageFunc == nil {
		panic("progressServiceMock.ProgressPercentageFunc: method is nil but progressService.ProgressPercentage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.PlayerProgress
	}{Ctx: ctx, P: p}
	mock.lockProgressPercentage.Lock()
	mock.calls.ProgressPercentage = append(mock.calls.ProgressPercentage, callInfo)
	mock.lockProgressPercentage.Unlock()
	return mock.ProgressPercentageFunc(ctx, p)
}

func (mock *progressServiceMock) ProgressPercentageCalls() []struct {
	Ctx context.Context
	P   *domain.PlayerProgress
} {
	mock.lockProgressPercentage.RLock()
	calls := mock.calls.ProgressPercentage
	mock.lockProgressPercentage.RUnlock()
	return calls
}

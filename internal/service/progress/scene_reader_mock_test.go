package progress

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

var (
	_ sceneReader    = &sceneReaderMock{}
	_ scenarioReader = &scenarioReaderMock{}
)

type sceneReaderMock struct {
	GetByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error)
	GetStartSceneFunc   func(ctx context.Context, scenarioID primitive.ObjectID) (*domain.Scene, error)
	CountByScenarioFunc func(ctx context.Context, scenarioID primitive.ObjectID) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		GetStartScene []struct {
			Ctx        context.Context
			ScenarioID primitive.ObjectID
		}
		CountByScenario []struct {
			Ctx        context.Context
			ScenarioID primitive.ObjectID
		}
	}
	lockGetByID         sync.RWMutex
	lockGetStartScene   sync.RWMutex
	lockCountByScenario sync.RWMutex
}

func (mock *sceneReaderMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error) {
	if mock.GetByIDFunc == nil {
		panic("sceneReaderMock.GetByIDFunc: method is nil but sceneReader.GetByID was just called")
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

func (mock *sceneReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sceneReaderMock) GetStartScene(ctx context.Context, scenarioID primitive.ObjectID) (*domain.Scene, error) {
	if mock.GetStartSceneFunc == nil {
		panic("sceneReaderMock.GetStartSceneFunc: method is nil but sceneReader.GetStartScene was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ScenarioID primitive.ObjectID
	}{Ctx: ctx, ScenarioID: scenarioID}
	mock.lockGetStartScene.Lock()
	mock.calls.GetStartScene = append(mock.calls.GetStartScene, callInfo)
	mock.lockGetStartScene.Unlock()
	return mock.GetStartSceneFunc(ctx, scenarioID)
}

func (mock *sceneReaderMock) GetStartSceneCalls() []struct {
	Ctx        context.Context
	ScenarioID primitive.ObjectID
} {
	mock.lockGetStartScene.RLock()
	calls := mock.calls.GetStartScene
	mock.lockGetStartScene.RUnlock()
	return calls
}

func (mock *sceneReaderMock) CountByScenario(ctx context.Context, scenarioID primitive.ObjectID) (int, error) {
	if mock.CountByScenarioFunc == nil {
		panic("sceneReaderMock.CountByScenarioFunc: method is nil but sceneReader.CountByScenario was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ScenarioID primitive.ObjectID
	}{Ctx: ctx, ScenarioID: scenarioID}
	mock.lockCountByScenario.Lock()
	mock.calls.CountByScenario = append(mock.calls.CountByScenario, callInfo)
	mock.lockCountByScenario.Unlock()
	return mock.CountByScenarioFunc(ctx, scenarioID)
}

func (mock *sceneReaderMock) CountByScenarioCalls() []struct {
	Ctx        context.Context
	ScenarioID primitive.ObjectID
} {
	mock.lockCountByScenario.RLock()
	calls := mock.calls.CountByScenario
	mock.lockCountByScenario.RUnlock()
	return calls
}

type scenarioReaderMock struct {
	GetByIDFunc func(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *scenarioReaderMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error) {
	if mock.GetByIDFunc == nil {
		panic("scenarioReaderMock.GetByIDFunc: method is nil but scenarioReader.GetByID was just called")
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

func (mock *scenarioReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

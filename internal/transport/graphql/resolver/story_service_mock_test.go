package resolver

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/service/story"
)

var _ storyService = &storyServiceMock{}

type storyServiceMock struct {
	CreateScenarioFunc        func(ctx context.Context, input story.CreateScenarioInput) (*domain.Scenario, error)
	GetScenarioFunc           func(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error)
	ListScenariosFunc         func(ctx context.Context, publishedOnly bool) ([]domain.Scenario, error)
	ListScenariosByAuthorFunc func(ctx context.Context, authorID primitive.ObjectID) ([]domain.Scenario, error)
	UpdateScenarioFunc        func(ctx context.Context, input story.UpdateScenarioInput) (*domain.Scenario, error)
	DeleteScenarioFunc        func(ctx context.Context, id primitive.ObjectID) error
	CreateSceneFunc           func(ctx context.Context, input story.CreateSceneInput) (*domain.Scene, error)
	GetSceneFunc              func(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error)
	ListScenesByScenarioFunc  func(ctx context.Context, scenarioID primitive.ObjectID) ([]domain.Scene, error)
	UpdateSceneFunc           func(ctx context.Context, input story.UpdateSceneInput) (*domain.Scene, error)
	DeleteSceneFunc           func(ctx context.Context, id primitive.ObjectID) error
	CreateChoiceFunc          func(ctx context.Context, input story.CreateChoiceInput) (*domain.Choice, error)
	GetChoiceFunc             func(ctx context.Context, id primitive.ObjectID) (*domain.Choice, error)
	ListChoicesBySceneFunc    func(ctx context.Context, sceneID primitive.ObjectID) ([]domain.Choice, error)
	UpdateChoiceFunc          func(ctx context.Context, input story.UpdateChoiceInput) (*domain.Choice, error)
	DeleteChoiceFunc          func(ctx context.Context, id primitive.ObjectID) error

	calls struct {
		CreateScenario []struct {
			Ctx   context.Context
			Input story.CreateScenarioInput
		}
		GetScenario []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		ListScenarios []struct {
			Ctx           context.Context
			PublishedOnly bool
		}
		ListScenariosByAuthor []struct {
			Ctx      context.Context
			AuthorID primitive.ObjectID
		}
		UpdateScenario []struct {
			Ctx   context.Context
			Input story.UpdateScenarioInput
		}
		DeleteScenario []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		CreateScene []struct {
			Ctx   context.Context
			Input story.CreateSceneInput
		}
		GetScene []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		ListScenesByScenario []struct {
			Ctx        context.Context
			ScenarioID primitive.ObjectID
		}
		UpdateScene []struct {
			Ctx   context.Context
			Input story.UpdateSceneInput
		}
		DeleteScene []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		CreateChoice []struct {
			Ctx   context.Context
			Input story.CreateChoiceInput
		}
		GetChoice []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		ListChoicesByScene []struct {
			Ctx     context.Context
			SceneID primitive.ObjectID
		}
		UpdateChoice []struct {
			Ctx   context.Context
			Input story.UpdateChoiceInput
		}
		DeleteChoice []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
	}
	lockCreateScenario        sync.RWMutex
	lockGetScenario           sync.RWMutex
	lockListScenarios         sync.RWMutex
	lockListScenariosByAuthor sync.RWMutex
	lockUpdateScenario        sync.RWMutex
	lockDeleteScenario        sync.RWMutex
	lockCreateScene           sync.RWMutex
	lockGetScene              sync.RWMutex
	lockListScenesByScenario  sync.RWMutex
	lockUpdateScene           sync.RWMutex
	lockDeleteScene           sync.RWMutex
	lockCreateChoice          sync.RWMutex
	lockGetChoice             sync.RWMutex
	lockListChoicesByScene    sync.RWMutex
	lockUpdateChoice          sync.RWMutex
	lockDeleteChoice          sync.RWMutex
}

func (mock *storyServiceMock) CreateScenario(ctx context.Context, input story.CreateScenarioInput) (*domain.Scenario, error) {
	if mock.CreateScenarioFunc == nil {
		panic("storyServiceMock.CreateScenarioFunc: method is nil but storyService.CreateScenario was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.CreateScenarioInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateScenario.Lock()
	mock.calls.CreateScenario = append(mock.calls.CreateScenario, callInfo)
	mock.lockCreateScenario.Unlock()
	return mock.CreateScenarioFunc(ctx, input)
}

func (mock *storyServiceMock) CreateScenarioCalls() []struct {
	Ctx   context.Context
	Input story.CreateScenarioInput
} {
	mock.lockCreateScenario.RLock()
	calls := mock.calls.CreateScenario
	mock.lockCreateScenario.RUnlock()
	return calls
}

func (mock *storyServiceMock) GetScenario(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error) {
	if mock.GetScenarioFunc == nil {
		panic("storyServiceMock.GetScenarioFunc: method is nil but storyService.GetScenario was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockGetScenario.Lock()
	mock.calls.GetScenario = append(mock.calls.GetScenario, callInfo)
	mock.lockGetScenario.Unlock()
	return mock.GetScenarioFunc(ctx, id)
}

func (mock *storyServiceMock) GetScenarioCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetScenario.RLock()
	calls := mock.calls.GetScenario
	mock.lockGetScenario.RUnlock()
	return calls
}

func (mock *storyServiceMock) ListScenarios(ctx context.Context, publishedOnly bool) ([]domain.Scenario, error) {
	if mock.ListScenariosFunc == nil {
		panic("storyServiceMock.ListScenariosFunc: method is nil but storyService.ListScenarios was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		PublishedOnly bool
	}{Ctx: ctx, PublishedOnly: publishedOnly}
	mock.lockListScenarios.Lock()
	mock.calls.ListScenarios = append(mock.calls.ListScenarios, callInfo)
	mock.lockListScenarios.Unlock()
	return mock.ListScenariosFunc(ctx, publishedOnly)
}

func (mock *storyServiceMock) ListScenariosCalls() []struct {
	Ctx           context.Context
	PublishedOnly bool
} {
	mock.lockListScenarios.RLock()
	calls := mock.calls.ListScenarios
	mock.lockListScenarios.RUnlock()
	return calls
}

func (mock *storyServiceMock) ListScenariosByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]domain.Scenario, error) {
	if mock.ListScenariosByAuthorFunc == nil {
		panic("storyServiceMock.ListScenariosByAuthorFunc: method is nil but storyService.ListScenariosByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID primitive.ObjectID
	}{Ctx: ctx, AuthorID: authorID}
	mock.lockListScenariosByAuthor.Lock()
	mock.calls.ListScenariosByAuthor = append(mock.calls.ListScenariosByAuthor, callInfo)
	mock.lockListScenariosByAuthor.Unlock()
	return mock.ListScenariosByAuthorFunc(ctx, authorID)
}

func (mock *storyServiceMock) ListScenariosByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID primitive.ObjectID
} {
	mock.lockListScenariosByAuthor.RLock()
	calls := mock.calls.ListScenariosByAuthor
	mock.lockListScenariosByAuthor.RUnlock()
	return calls
}

func (mock *storyServiceMock) UpdateScenario(ctx context.Context, input story.UpdateScenarioInput) (*domain.Scenario, error) {
	if mock.UpdateScenarioFunc == nil {
		panic("storyServiceMock.UpdateScenarioFunc: method is nil but storyService.UpdateScenario was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.UpdateScenarioInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateScenario.Lock()
	mock.calls.UpdateScenario = append(mock.calls.UpdateScenario, callInfo)
	mock.lockUpdateScenario.Unlock()
	return mock.UpdateScenarioFunc(ctx, input)
}

func (mock *storyServiceMock) UpdateScenarioCalls() []struct {
	Ctx   context.Context
	Input story.UpdateScenarioInput
} {
	mock.lockUpdateScenario.RLock()
	calls := mock.calls.UpdateScenario
	mock.lockUpdateScenario.RUnlock()
	return calls
}

func (mock *storyServiceMock) DeleteScenario(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteScenarioFunc == nil {
		panic("storyServiceMock.DeleteScenarioFunc: method is nil but storyService.DeleteScenario was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteScenario.Lock()
	mock.calls.DeleteScenario = append(mock.calls.DeleteScenario, callInfo)
	mock.lockDeleteScenario.Unlock()
	return mock.DeleteScenarioFunc(ctx, id)
}

func (mock *storyServiceMock) DeleteScenarioCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDeleteScenario.RLock()
	calls := mock.calls.DeleteScenario
	mock.lockDeleteScenario.RUnlock()
	return calls
}

func (mock *storyServiceMock) CreateScene(ctx context.Context, input story.CreateSceneInput) (*domain.Scene, error) {
	if mock.CreateSceneFunc == nil {
		panic("storyServiceMock.CreateSceneFunc: method is nil but storyService.CreateScene was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.CreateSceneInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateScene.Lock()
	mock.calls.CreateScene = append(mock.calls.CreateScene, callInfo)
	mock.lockCreateScene.Unlock()
	return mock.CreateSceneFunc(ctx, input)
}

func (mock *storyServiceMock) CreateSceneCalls() []struct {
	Ctx   context.Context
	Input story.CreateSceneInput
} {
	mock.lockCreateScene.RLock()
	calls := mock.calls.CreateScene
	mock.lockCreateScene.RUnlock()
	return calls
}

func (mock *storyServiceMock) GetScene(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error) {
	if mock.GetSceneFunc == nil {
		panic("storyServiceMock.GetSceneFunc: method is nil but storyService.GetScene was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockGetScene.Lock()
	mock.calls.GetScene = append(mock.calls.GetScene, callInfo)
	mock.lockGetScene.Unlock()
	return mock.GetSceneFunc(ctx, id)
}

func (mock *storyServiceMock) GetSceneCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetScene.RLock()
	calls := mock.calls.GetScene
	mock.lockGetScene.RUnlock()
	return calls
}

func (mock *storyServiceMock) ListScenesByScenario(ctx context.Context, scenarioID primitive.ObjectID) ([]domain.Scene, error) {
	if mock.ListScenesByScenarioFunc == nil {
		panic("storyServiceMock.ListScenesByScenarioFunc: method is nil but storyService.ListScenesByScenario was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ScenarioID primitive.ObjectID
	}{Ctx: ctx, ScenarioID: scenarioID}
	mock.lockListScenesByScenario.Lock()
	mock.calls.ListScenesByScenario = append(mock.calls.ListScenesByScenario, callInfo)
	mock.lockListScenesByScenario.Unlock()
	return mock.ListScenesByScenarioFunc(ctx, scenarioID)
}

func (mock *storyServiceMock) ListScenesByScenarioCalls() []struct {
	Ctx        context.Context
	ScenarioID primitive.ObjectID
} {
	mock.lockListScenesByScenario.RLock()
	calls := mock.calls.ListScenesByScenario
	mock.lockListScenesByScenario.RUnlock()
	return calls
}

func (mock *storyServiceMock) UpdateScene(ctx context.Context, input story.UpdateSceneInput) (*domain.Scene, error) {
	if mock.UpdateSceneFunc == nil {
		panic("storyServiceMock.UpdateSceneFunc: method is nil but storyService.UpdateScene was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.UpdateSceneInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateScene.Lock()
	mock.calls.UpdateScene = append(mock.calls.UpdateScene, callInfo)
	mock.lockUpdateScene.Unlock()
	return mock.UpdateSceneFunc(ctx, input)
}

func (mock *storyServiceMock) UpdateSceneCalls() []struct {
	Ctx   context.Context
	Input story.UpdateSceneInput
} {
	mock.lockUpdateScene.RLock()
	calls := mock.calls.UpdateScene
	mock.lockUpdateScene.RUnlock()
	return calls
}

func (mock *storyServiceMock) DeleteScene(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteSceneFunc == nil {
		panic("storyServiceMock.DeleteSceneFunc: method is nil but storyService.DeleteScene was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteScene.Lock()
	mock.calls.DeleteScene = append(mock.calls.DeleteScene, callInfo)
	mock.lockDeleteScene.Unlock()
	return mock.DeleteSceneFunc(ctx, id)
}

func (mock *storyServiceMock) DeleteSceneCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDeleteScene.RLock()
	calls := mock.calls.DeleteScene
	mock.lockDeleteScene.RUnlock()
	return calls
}

func (mock *storyServiceMock) CreateChoice(ctx context.Context, input story.CreateChoiceInput) (*domain.Choice, error) {
	if mock.CreateChoiceFunc == nil {
		panic("storyServiceMock.CreateChoiceFunc: method is nil but storyService.CreateChoice was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.CreateChoiceInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateChoice.Lock()
	mock.calls.CreateChoice = append(mock.calls.CreateChoice, callInfo)
	mock.lockCreateChoice.Unlock()
	return mock.CreateChoiceFunc(ctx, input)
}

func (mock *storyServiceMock) CreateChoiceCalls() []struct {
	Ctx   context.Context
	Input story.CreateChoiceInput
} {
	mock.lockCreateChoice.RLock()
	calls := mock.calls.CreateChoice
	mock.lockCreateChoice.RUnlock()
	return calls
}

func (mock *storyServiceMock) GetChoice(ctx context.Context, id primitive.ObjectID) (*domain.Choice, error) {
	if mock.GetChoiceFunc == nil {
		panic("storyServiceMock.GetChoiceFunc: method is nil but storyService.GetChoice was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockGetChoice.Lock()
	mock.calls.GetChoice = append(mock.calls.GetChoice, callInfo)
	mock.lockGetChoice.Unlock()
	return mock.GetChoiceFunc(ctx, id)
}

func (mock *storyServiceMock) GetChoiceCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetChoice.RLock()
	calls := mock.calls.GetChoice
	mock.lockGetChoice.RUnlock()
	return calls
}

func (mock *storyServiceMock) ListChoicesByScene(ctx context.Context, sceneID primitive.ObjectID) ([]domain.Choice, error) {
	if mock.ListChoicesBySceneFunc == nil {
		panic("storyServiceMock.ListChoicesBySceneFunc: method is nil but storyService.ListChoicesByScene was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		SceneID primitive.ObjectID
	}{Ctx: ctx, SceneID: sceneID}
	mock.lockListChoicesByScene.Lock()
	mock.calls.ListChoicesByScene = append(mock.calls.ListChoicesByScene, callInfo)
	mock.lockListChoicesByScene.Unlock()
	return mock.ListChoicesBySceneFunc(ctx, sceneID)
}

func (mock *storyServiceMock) ListChoicesBySceneCalls() []struct {
	Ctx     context.Context
	SceneID primitive.ObjectID
} {
	mock.lockListChoicesByScene.RLock()
	calls := mock.calls.ListChoicesByScene
	mock.lockListChoicesByScene.RUnlock()
	return calls
}

func (mock *storyServiceMock) UpdateChoice(ctx context.Context, input story.UpdateChoiceInput) (*domain.Choice, error) {
	if mock.UpdateChoiceFunc == nil {
		panic("storyServiceMock.UpdateChoiceFunc: method is nil but storyService.UpdateChoice was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.UpdateChoiceInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateChoice.Lock()
	mock.calls.UpdateChoice = append(mock.calls.UpdateChoice, callInfo)
	mock.lockUpdateChoice.Unlock()
	return mock.UpdateChoiceFunc(ctx, input)
}

func (mock *storyServiceMock) UpdateChoiceCalls() []struct {
	Ctx   context.Context
	Input story.UpdateChoiceInput
} {
	mock.lockUpdateChoice.RLock()
	calls := mock.calls.UpdateChoice
	mock.lockUpdateChoice.RUnlock()
	return calls
}

func (mock *storyServiceMock) DeleteChoice(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteChoiceFunc == nil {
		panic("storyServiceMock.DeleteChoiceFunc: method is nil but storyService.DeleteChoice was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteChoice.Lock()
	mock.calls.DeleteChoice = append(mock.calls.DeleteChoice, callInfo)
	mock.lockDeleteChoice.Unlock()
	return mock.DeleteChoiceFunc(ctx, id)
}

func (mock *storyServiceMock) DeleteChoiceCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDeleteChoice.RLock()
	calls := mock.calls.DeleteChoice
	mock.lockDeleteChoice.RUnlock()
	return calls
}

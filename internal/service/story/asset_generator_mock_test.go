package story

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

var (
	_ assetGenerator  = &assetGeneratorMock{}
	_ progressRemover = &progressRemoverMock{}
)

type assetGeneratorMock struct {
	GenerateImageFunc func(ctx context.Context, name, description string) (*domain.Asset, error)
	GenerateTTSFunc   func(ctx context.Context, name, text string) (*domain.Asset, error)
	GenerateMusicFunc func(ctx context.Context, name, description string) (*domain.Asset, error)

	calls struct {
		GenerateImage []struct {
			Ctx         context.Context
			Name        string
			Description string
		}
		GenerateTTS []struct {
			Ctx  context.Context
			Name string
			Text string
		}
		GenerateMusic []struct {
			Ctx         context.Context
			Name        string
			Description string
		}
	}
	lockGenerateImage sync.RWMutex
	lockGenerateTTS   sync.RWMutex
	lockGenerateMusic sync.RWMutex
}

func (mock *assetGeneratorMock) GenerateImage(ctx context.Context, name, description string) (*domain.Asset, error) {
	if mock.GenerateImageFunc == nil {
		panic("assetGeneratorMock.GenerateImageFunc: method is nil but assetGenerator.GenerateImage was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Name        string
		Description string
	}{Ctx: ctx, Name: name, Description: description}
	mock.lockGenerateImage.Lock()
	mock.calls.GenerateImage = append(mock.calls.GenerateImage, callInfo)
	mock.lockGenerateImage.Unlock()
	return mock.GenerateImageFunc(ctx, name, description)
}

func (mock *assetGeneratorMock) GenerateImageCalls() []struct {
	Ctx         context.Context
	Name        string
	Description string
} {
	mock.lockGenerateImage.RLock()
	calls := mock.calls.GenerateImage
	mock.lockGenerateImage.RUnlock()
	return calls
}

func (mock *assetGeneratorMock) GenerateTTS(ctx context.Context, name, text string) (*domain.Asset, error) {
	if mock.GenerateTTSFunc == nil {
		panic("assetGeneratorMock.GenerateTTSFunc: method is nil but assetGenerator.GenerateTTS was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Text string
	}{Ctx: ctx, Name: name, Text: text}
	mock.lockGenerateTTS.Lock()
	mock.calls.GenerateTTS = append(mock.calls.GenerateTTS, callInfo)
	mock.lockGenerateTTS.Unlock()
	return mock.GenerateTTSFunc(ctx, name, text)
}

func (mock *assetGeneratorMock) GenerateTTSCalls() []struct {
	Ctx  context.Context
	Name string
	Text string
} {
	mock.lockGenerateTTS.RLock()
	calls := mock.calls.GenerateTTS
	mock.lockGenerateTTS.RUnlock()
	return calls
}

func (mock *assetGeneratorMock) GenerateMusic(ctx context.Context, name, description string) (*domain.Asset, error) {
	if mock.GenerateMusicFunc == nil {
		panic("assetGeneratorMock.GenerateMusicFunc: method is nil but assetGenerator.GenerateMusic was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Name        string
		Description string
	}{Ctx: ctx, Name: name, Description: description}
	mock.lockGenerateMusic.Lock()
	mock.calls.GenerateMusic = append(mock.calls.GenerateMusic, callInfo)
	mock.lockGenerateMusic.Unlock()
	return mock.GenerateMusicFunc(ctx, name, description)
}

func (mock *assetGeneratorMock) GenerateMusicCalls() []struct {
	Ctx         context.Context
	Name        string
	Description string
} {
	mock.lockGenerateMusic.RLock()
	calls := mock.calls.GenerateMusic
	mock.lockGenerateMusic.RUnlock()
	return calls
}

type progressRemoverMock struct {
	DeleteByScenarioFunc func(ctx context.Context, scenarioID primitive.ObjectID) (int64, error)

	calls struct {
		DeleteByScenario []struct {
			Ctx        context.Context
			ScenarioID primitive.ObjectID
		}
	}
	lockDeleteByScenario sync.RWMutex
}

func (mock *progressRemoverMock) DeleteByScenario(ctx context.Context, scenarioID primitive.ObjectID) (int64, error) {
	if mock.DeleteByScenarioFunc == nil {
		panic("progressRemoverMock.DeleteByScenarioFunc: method is nil but progressRemover.DeleteByScenario was just called")
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

func (mock *progressRemoverMock) DeleteByScenarioCalls() []struct {
	Ctx        context.Context
	ScenarioID primitive.ObjectID
} {
	mock.lockDeleteByScenario.RLock()
	calls := mock.calls.DeleteByScenario
	mock.lockDeleteByScenario.RUnlock()
	return calls
}

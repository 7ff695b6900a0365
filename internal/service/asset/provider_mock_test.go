package asset

import (
	"context"
	"sync"

	"github.com/nmoreaux/storyforge-backend/internal/provider"
)

var (
	_ fileStore         = &fileStoreMock{}
	_ aiGenerator       = &aiGeneratorMock{}
	_ speechSynthesizer = &speechSynthesizerMock{}
)

type fileStoreMock struct {
	SaveFunc   func(filename string, data []byte) (int64, error)
	DeleteFunc func(filename string) error
	URLFunc    func(filename string) string

	calls struct {
		Save []struct {
			Filename string
			Data     []byte
		}
		Delete []struct {
			Filename string
		}
		URL []struct {
			Filename string
		}
	}
	lockSave   sync.RWMutex
	lockDelete sync.RWMutex
	lockURL    sync.RWMutex
}

func (mock *fileStoreMock) Save(filename string, data []byte) (int64, error) {
	if mock.SaveFunc == nil {
		panic("fileStoreMock.SaveFunc: method is nil but fileStore.Save was just called")
	}
	callInfo := struct {
		Filename string
		Data     []byte
	}{Filename: filename, Data: data}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(filename, data)
}

func (mock *fileStoreMock) SaveCalls() []struct {
	Filename string
	Data     []byte
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *fileStoreMock) Delete(filename string) error {
	if mock.DeleteFunc == nil {
		panic("fileStoreMock.DeleteFunc: method is nil but fileStore.Delete was just called")
	}
	callInfo := struct {
		Filename string
	}{Filename: filename}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(filename)
}

func (mock *fileStoreMock) DeleteCalls() []struct {
	Filename string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *fileStoreMock) URL(filename string) string {
	if mock.URLFunc == nil {
		panic("fileStoreMock.URLFunc: method is nil but fileStore.URL was just called")
	}
	callInfo := struct {
		Filename string
	}{Filename: filename}
	mock.lockURL.Lock()
	mock.calls.URL = append(mock.calls.URL, callInfo)
	mock.lockURL.Unlock()
	return mock.URLFunc(filename)
}

func (mock *fileStoreMock) URLCalls() []struct {
	Filename string
} {
	mock.lockURL.RLock()
	calls := mock.calls.URL
	mock.lockURL.RUnlock()
	return calls
}

type aiGeneratorMock struct {
	GenerateImageFunc func(ctx context.Context, prompt string) (*provider.GeneratedImage, error)
	GenerateMusicFunc func(ctx context.Context, prompt string) (*provider.GeneratedAudio, error)

	calls struct {
		GenerateImage []struct {
			Ctx    context.Context
			Prompt string
		}
		GenerateMusic []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockGenerateImage sync.RWMutex
	lockGenerateMusic sync.RWMutex
}

func (mock *aiGeneratorMock) GenerateImage(ctx context.Context, prompt string) (*provider.GeneratedImage, error) {
	if mock.GenerateImageFunc == nil {
		panic("aiGeneratorMock.GenerateImageFunc: method is nil but aiGenerator.GenerateImage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockGenerateImage.Lock()
	mock.calls.GenerateImage = append(mock.calls.GenerateImage, callInfo)
	mock.lockGenerateImage.Unlock()
	return mock.GenerateImageFunc(ctx, prompt)
}

func (mock *aiGeneratorMock) GenerateImageCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockGenerateImage.RLock()
	calls := mock.calls.GenerateImage
	mock.lockGenerateImage.RUnlock()
	return calls
}

func (mock *aiGeneratorMock) GenerateMusic(ctx context.Context, prompt string) (*provider.GeneratedAudio, error) {
	if mock.GenerateMusicFunc == nil {
		panic("aiGeneratorMock.GenerateMusicFunc: method is nil but aiGenerator.GenerateMusic was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockGenerateMusic.Lock()
	mock.calls.GenerateMusic = append(mock.calls.GenerateMusic, callInfo)
	mock.lockGenerateMusic.Unlock()
	return mock.GenerateMusicFunc(ctx, prompt)
}

func (mock *aiGeneratorMock) GenerateMusicCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockGenerateMusic.RLock()
	calls := mock.calls.GenerateMusic
	mock.lockGenerateMusic.RUnlock()
	return calls
}

type speechSynthesizerMock struct {
	SynthesizeFunc func(ctx context.Context, text, lang string) (*provider.GeneratedAudio, error)

	calls struct {
		Synthesize []struct {
			Ctx  context.Context
			Text string
			Lang string
		}
	}
	lockSynthesize sync.RWMutex
}

func (mock *speechSynthesizerMock) Synthesize(ctx context.Context, text, lang string) (*provider.GeneratedAudio, error) {
	if mock.SynthesizeFunc == nil {
		panic("speechSynthesizerMock.SynthesizeFunc: method is nil but speechSynthesizer.Synthesize was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
		Lang string
	}{Ctx: ctx, Text: text, Lang: lang}
	mock.lockSynthesize.Lock()
	mock.calls.Synthesize = append(mock.calls.Synthesize, callInfo)
	mock.lockSynthesize.Unlock()
	return mock.SynthesizeFunc(ctx, text, lang)
}

func (mock *speechSynthesizerMock) SynthesizeCalls() []struct {
	Ctx  context.Context
	Text string
	Lang string
} {
	mock.lockSynthesize.RLock()
	calls := mock.calls.Synthesize
	mock.lockSynthesize.RUnlock()
	return calls
}

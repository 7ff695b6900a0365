package asset

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/config"
	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/provider"
)

// assetRepo defines the asset repository interface needed by asset service.
type assetRepo interface {
	Create(ctx context.Context, a *domain.Asset) (*domain.Asset, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error)
	List(ctx context.Context) ([]domain.Asset, error)
	ListByType(ctx context.Context, t domain.AssetType) ([]domain.Asset, error)
	ListByUploader(ctx context.Context, userID primitive.ObjectID) ([]domain.Asset, error)
	ListPublic(ctx context.Context) ([]domain.Asset, error)
	Update(ctx context.Context, a *domain.Asset) (*domain.Asset, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// fileStore persists asset files and serves their public URLs.
type fileStore interface {
	Save(filename string, data []byte) (int64, error)
	Delete(filename string) error
	URL(filename string) string
}

// aiGenerator produces images and ambient music from text prompts.
type aiGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (*provider.GeneratedImage, error)
	GenerateMusic(ctx context.Context, prompt string) (*provider.GeneratedAudio, error)
}

// speechSynthesizer narrates text. An empty lang selects the default voice.
type speechSynthesizer interface {
	Synthesize(ctx context.Context, text, lang string) (*provider.GeneratedAudio, error)
}

// Service implements asset metadata, file storage and AI generation.
type Service struct {
	log   *slog.Logger
	asset assetRepo
	files fileStore
	ai    aiGenerator
	tts   speechSynthesizer
	cfg   config.AIConfig
}

// NewService creates a new asset service instance.
func NewService(logger *slog.Logger, assets assetRepo, files fileStore, ai aiGenerator, tts speechSynthesizer, cfg config.AIConfig) *Service {
	return &Service{
		log:   logger.With("service", "asset"),
		asset: assets,
		files: files,
		ai:    ai,
		tts:   tts,
		cfg:   cfg,
	}
}

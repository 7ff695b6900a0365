package story

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// scenarioRepo defines the scenario repository interface needed by story service.
type scenarioRepo interface {
	Create(ctx context.Context, s *domain.Scenario) (*domain.Scenario, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error)
	List(ctx context.Context, publishedOnly bool) ([]domain.Scenario, error)
	ListByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]domain.Scenario, error)
	Update(ctx context.Context, s *domain.Scenario) (*domain.Scenario, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// sceneRepo defines the scene repository interface needed by story service.
type sceneRepo interface {
	Create(ctx context.Context, s *domain.Scene) (*domain.Scene, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error)
	ListByScenario(ctx context.Context, scenarioID primitive.ObjectID) ([]domain.Scene, error)
	Update(ctx context.Context, s *domain.Scene) (*domain.Scene, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByScenario(ctx context.Context, scenarioID primitive.ObjectID) (int64, error)
}

// choiceRepo defines the choice repository interface needed by story service.
type choiceRepo interface {
	Create(ctx context.Context, c *domain.Choice) (*domain.Choice, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Choice, error)
	ListByScene(ctx context.Context, fromSceneID primitive.ObjectID) ([]domain.Choice, error)
	Update(ctx context.Context, c *domain.Choice) (*domain.Choice, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByScenes(ctx context.Context, sceneIDs []primitive.ObjectID) (int64, error)
}

// progressRemover cascades progress deletion when a scenario is removed.
type progressRemover interface {
	DeleteByScenario(ctx context.Context, scenarioID primitive.ObjectID) (int64, error)
}

// assetGenerator produces AI assets attached to newly created scenes.
// Implementations may return domain.ErrGenerationUnavailable when the
// backing provider is not configured.
type assetGenerator interface {
	GenerateImage(ctx context.Context, name, description string) (*domain.Asset, error)
	GenerateTTS(ctx context.Context, name, text string) (*domain.Asset, error)
	GenerateMusic(ctx context.Context, name, description string) (*domain.Asset, error)
}

// Service implements scenario, scene and choice operations.
type Service struct {
	log       *slog.Logger
	scenarios scenarioRepo
	scenes    sceneRepo
	choices   choiceRepo
	progress  progressRemover
	generator assetGenerator
}

// NewService creates a new story service instance.
func NewService(logger *slog.Logger, scenarios scenarioRepo, scenes sceneRepo, choices choiceRepo, progress progressRemover, generator assetGenerator) *Service {
	return &Service{
		log:       logger.With("service", "story"),
		scenarios: scenarios,
		scenes:    scenes,
		choices:   choices,
		progress:  progress,
		generator: generator,
	}
}

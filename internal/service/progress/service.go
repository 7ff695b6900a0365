package progress

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// progressRepo defines the progress repository interface needed by progress service.
type progressRepo interface {
	Create(ctx context.Context, p *domain.PlayerProgress) (*domain.PlayerProgress, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlayerProgress, error)
	GetByUserAndScenario(ctx context.Context, userID, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error)
	List(ctx context.Context) ([]domain.PlayerProgress, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.PlayerProgress, error)
	Update(ctx context.Context, p *domain.PlayerProgress) (*domain.PlayerProgress, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// scenarioReader checks scenario existence and visibility.
type scenarioReader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error)
}

// sceneReader resolves scenes for history recording and percentage math.
type sceneReader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error)
	GetStartScene(ctx context.Context, scenarioID primitive.ObjectID) (*domain.Scene, error)
	CountByScenario(ctx context.Context, scenarioID primitive.ObjectID) (int, error)
}

// Service implements player progress tracking.
type Service struct {
	log       *slog.Logger
	progress  progressRepo
	scenarios scenarioReader
	scenes    sceneReader
}

// NewService creates a new progress service instance.
func NewService(logger *slog.Logger, progress progressRepo, scenarios scenarioReader, scenes sceneReader) *Service {
	return &Service{
		log:       logger.With("service", "progress"),
		progress:  progress,
		scenarios: scenarios,
		scenes:    scenes,
	}
}

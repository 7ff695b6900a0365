package resolver

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/service/asset"
	"github.com/nmoreaux/storyforge-backend/internal/service/auth"
	"github.com/nmoreaux/storyforge-backend/internal/service/progress"
	"github.com/nmoreaux/storyforge-backend/internal/service/story"
	"github.com/nmoreaux/storyforge-backend/internal/service/user"
)

// authService defines what resolver needs from Auth service.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
}

// userService defines what resolver needs from User service.
type userService interface {
	Me(ctx context.Context) (*domain.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input user.UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// storyService defines what resolver needs from Story service.
type storyService interface {
	CreateScenario(ctx context.Context, input story.CreateScenarioInput) (*domain.Scenario, error)
	GetScenario(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error)
	ListScenarios(ctx context.Context, publishedOnly bool) ([]domain.Scenario, error)
	ListScenariosByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]domain.Scenario, error)
	UpdateScenario(ctx context.Context, input story.UpdateScenarioInput) (*domain.Scenario, error)
	DeleteScenario(ctx context.Context, id primitive.ObjectID) error
	CreateScene(ctx context.Context, input story.CreateSceneInput) (*domain.Scene, error)
	GetScene(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error)
	ListScenesByScenario(ctx context.Context, scenarioID primitive.ObjectID) ([]domain.Scene, error)
	UpdateScene(ctx context.Context, input story.UpdateSceneInput) (*domain.Scene, error)
	DeleteScene(ctx context.Context, id primitive.ObjectID) error
	CreateChoice(ctx context.Context, input story.CreateChoiceInput) (*domain.Choice, error)
	GetChoice(ctx context.Context, id primitive.ObjectID) (*domain.Choice, error)
	ListChoicesByScene(ctx context.Context, sceneID primitive.ObjectID) ([]domain.Choice, error)
	UpdateChoice(ctx context.Context, input story.UpdateChoiceInput) (*domain.Choice, error)
	DeleteChoice(ctx context.Context, id primitive.ObjectID) error
}

// progressService defines what resolver needs from Progress service.
type progressService interface {
	CreateProgress(ctx context.Context, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error)
	RecordProgress(ctx context.Context, input progress.RecordProgressInput) (*domain.PlayerProgress, error)
	UpdateProgress(ctx context.Context, input progress.UpdateProgressInput) (*domain.PlayerProgress, error)
	DeleteProgress(ctx context.Context, id primitive.ObjectID) error
	GetProgress(ctx context.Context, id primitive.ObjectID) (*domain.PlayerProgress, error)
	GetProgressByUserAndScenario(ctx context.Context, userID, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error)
	ListAllProgress(ctx context.Context) ([]domain.PlayerProgress, error)
	ListProgressByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.PlayerProgress, error)
	MyProgress(ctx context.Context) ([]domain.PlayerProgress, error)
	ProgressPercentage(ctx context.Context, p *domain.PlayerProgress) (float64, error)
}

// assetService defines what resolver needs from Asset service.
type assetService interface {
	CreateAsset(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error)
	GetAsset(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error)
	ListAssets(ctx context.Context, typeFilter *domain.AssetType) ([]domain.Asset, error)
	ListAssetsByUploader(ctx context.Context, uploaderID primitive.ObjectID) ([]domain.Asset, error)
	MyAssets(ctx context.Context) ([]domain.Asset, error)
	ListPublicAssets(ctx context.Context, typeFilter *domain.AssetType) ([]domain.Asset, error)
	UpdateAsset(ctx context.Context, input asset.UpdateAssetInput) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, id primitive.ObjectID) error
	GenerateAsset(ctx context.Context, input asset.GenerateAssetInput) (*domain.Asset, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	auth     authService
	user     userService
	story    storyService
	progress progressService
	asset    assetService
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	auth authService,
	user userService,
	story storyService,
	progress progressService,
	asset assetService,
) *Resolver {
	return &Resolver{
		auth:     auth,
		user:     user,
		story:    story,
		progress: progress,
		asset:    asset,
		log:      log.With("component", "graphql"),
	}
}

package resolver

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"
	"encoding/base64"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/service/asset"
	"github.com/nmoreaux/storyforge-backend/internal/service/auth"
	"github.com/nmoreaux/storyforge-backend/internal/service/progress"
	"github.com/nmoreaux/storyforge-backend/internal/service/story"
	"github.com/nmoreaux/storyforge-backend/internal/service/user"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/dataloader"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/generated"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileSize is the resolver for the fileSize field.
func (r *assetResolver) FileSize(ctx context.Context, obj *domain.Asset) (int, error) {
	return int(obj.FileSize), nil
}

// UploadedBy is the resolver for the uploadedBy field.
func (r *assetResolver) UploadedBy(ctx context.Context, obj *domain.Asset) (*domain.User, error) {
	u, err := dataloader.FromContext(ctx).UserByID.Load(ctx, obj.UploadedBy)()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// ToScene is the resolver for the toScene field.
func (r *choiceResolver) ToScene(ctx context.Context, obj *domain.Choice) (*domain.Scene, error) {
	s, err := dataloader.FromContext(ctx).SceneByID.Load(ctx, obj.ToSceneID)()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// Register is the resolver for the register field.
func (r *mutationResolver) Register(ctx context.Context, input model.RegisterInput) (*model.AuthPayload, error) {
	res, err := r.auth.Register(ctx, auth.RegisterInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		return nil, err
	}
	return authPayload(res), nil
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, email string, password string) (*model.AuthPayload, error) {
	res, err := r.auth.Login(ctx, auth.LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return authPayload(res), nil
}

// RefreshToken is the resolver for the refreshToken field.
func (r *mutationResolver) RefreshToken(ctx context.Context, refreshToken string) (*model.AuthPayload, error) {
	res, err := r.auth.Refresh(ctx, auth.RefreshInput{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	return authPayload(res), nil
}

// Logout is the resolver for the logout field.
func (r *mutationResolver) Logout(ctx context.Context) (bool, error) {
	if err := r.auth.Logout(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// CreateUser is the resolver for the createUser field.
func (r *mutationResolver) CreateUser(ctx context.Context, input model.CreateUserInput) (*domain.User, error) {
	return r.user.CreateUser(ctx, user.CreateUserInput{
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
}

// UpdateUser is the resolver for the updateUser field.
func (r *mutationResolver) UpdateUser(ctx context.Context, id primitive.ObjectID, input model.UpdateUserInput) (*domain.User, error) {
	return r.user.UpdateUser(ctx, user.UpdateUserInput{
		ID:        id,
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
}

// DeleteUser is the resolver for the deleteUser field.
func (r *mutationResolver) DeleteUser(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if err := r.user.DeleteUser(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// CreateScenario is the resolver for the createScenario field.
func (r *mutationResolver) CreateScenario(ctx context.Context, input model.CreateScenarioInput) (*domain.Scenario, error) {
	return r.story.CreateScenario(ctx, story.CreateScenarioInput{
		Title:       input.Title,
		Description: input.Description,
		IsPublished: boolVal(input.IsPublished),
	})
}

// UpdateScenario is the resolver for the updateScenario field.
func (r *mutationResolver) UpdateScenario(ctx context.Context, id primitive.ObjectID, input model.UpdateScenarioInput) (*domain.Scenario, error) {
	return r.story.UpdateScenario(ctx, story.UpdateScenarioInput{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		IsPublished: input.IsPublished,
	})
}

// DeleteScenario is the resolver for the deleteScenario field.
func (r *mutationResolver) DeleteScenario(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if err := r.story.DeleteScenario(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// CreateScene is the resolver for the createScene field.
func (r *mutationResolver) CreateScene(ctx context.Context, input model.CreateSceneInput) (*domain.Scene, error) {
	return r.story.CreateScene(ctx, story.CreateSceneInput{
		ScenarioID:        input.ScenarioID,
		Title:             input.Title,
		Text:              input.Text,
		Order:             intVal(input.Order),
		ImageID:           input.ImageID,
		SoundID:           input.SoundID,
		MusicID:           input.MusicID,
		IsStartScene:      boolVal(input.IsStartScene),
		IsEndScene:        boolVal(input.IsEndScene),
		AutoGenerateImage: boolVal(input.AutoGenerateImage),
		AutoGenerateSound: boolVal(input.AutoGenerateSound),
		AutoGenerateMusic: boolVal(input.AutoGenerateMusic),
	})
}

// UpdateScene is the resolver for the updateScene field.
func (r *mutationResolver) UpdateScene(ctx context.Context, id primitive.ObjectID, input model.UpdateSceneInput) (*domain.Scene, error) {
	return r.story.UpdateScene(ctx, story.UpdateSceneInput{
		ID:           id,
		Title:        input.Title,
		Text:         input.Text,
		Order:        input.Order,
		ImageID:      input.ImageID,
		SoundID:      input.SoundID,
		MusicID:      input.MusicID,
		IsStartScene: input.IsStartScene,
		IsEndScene:   input.IsEndScene,
		ClearImage:   boolVal(input.ClearImage),
		ClearSound:   boolVal(input.ClearSound),
		ClearMusic:   boolVal(input.ClearMusic),
	})
}

// DeleteScene is the resolver for the deleteScene field.
func (r *mutationResolver) DeleteScene(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if err := r.story.DeleteScene(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// CreateChoice is the resolver for the createChoice field.
func (r *mutationResolver) CreateChoice(ctx context.Context, input model.CreateChoiceInput) (*domain.Choice, error) {
	return r.story.CreateChoice(ctx, story.CreateChoiceInput{
		FromSceneID: input.FromSceneID,
		ToSceneID:   input.ToSceneID,
		Text:        input.Text,
		Condition:   input.Condition,
		Order:       intVal(input.Order),
	})
}

// UpdateChoice is the resolver for the updateChoice field.
func (r *mutationResolver) UpdateChoice(ctx context.Context, id primitive.ObjectID, input model.UpdateChoiceInput) (*domain.Choice, error) {
	return r.story.UpdateChoice(ctx, story.UpdateChoiceInput{
		ID:        id,
		ToSceneID: input.ToSceneID,
		Text:      input.Text,
		Condition: input.Condition,
		Order:     input.Order,
	})
}

// DeleteChoice is the resolver for the deleteChoice field.
func (r *mutationResolver) DeleteChoice(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if err := r.story.DeleteChoice(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// CreateProgress is the resolver for the createProgress field.
func (r *mutationResolver) CreateProgress(ctx context.Context, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error) {
	return r.progress.CreateProgress(ctx, scenarioID)
}

// RecordProgress is the resolver for the recordProgress field.
func (r *mutationResolver) RecordProgress(ctx context.Context, input model.RecordProgressInput) (*domain.PlayerProgress, error) {
	return r.progress.RecordProgress(ctx, progress.RecordProgressInput{
		ScenarioID: input.ScenarioID,
		SceneID:    input.SceneID,
		ChoiceID:   input.ChoiceID,
		TimeSpent:  intVal(input.TimeSpent),
		Metadata:   input.Metadata,
	})
}

// UpdateProgress is the resolver for the updateProgress field.
func (r *mutationResolver) UpdateProgress(ctx context.Context, id primitive.ObjectID, input model.UpdateProgressInput) (*domain.PlayerProgress, error) {
	return r.progress.UpdateProgress(ctx, progress.UpdateProgressInput{
		ID:             id,
		CurrentSceneID: input.CurrentSceneID,
		IsCompleted:    input.IsCompleted,
		TotalTimeSpent: input.TotalTimeSpent,
	})
}

// DeleteProgress is the resolver for the deleteProgress field.
func (r *mutationResolver) DeleteProgress(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if err := r.progress.DeleteProgress(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// CreateAsset is the resolver for the createAsset field.
func (r *mutationResolver) CreateAsset(ctx context.Context, input model.CreateAssetInput) (*domain.Asset, error) {
	data, err := base64.StdEncoding.DecodeString(input.Data)
	if err != nil {
		return nil, domain.NewValidationError("data", "must be base64-encoded")
	}
	return r.asset.CreateAsset(ctx, asset.CreateAssetInput{
		Type:     input.Type,
		Name:     input.Name,
		Filename: input.Filename,
		Data:     data,
		MimeType: input.MimeType,
		IsPublic: boolVal(input.IsPublic),
		Metadata: input.Metadata,
	})
}

// UpdateAsset is the resolver for the updateAsset field.
func (r *mutationResolver) UpdateAsset(ctx context.Context, id primitive.ObjectID, input model.UpdateAssetInput) (*domain.Asset, error) {
	return r.asset.UpdateAsset(ctx, asset.UpdateAssetInput{
		ID:       id,
		Name:     input.Name,
		IsPublic: input.IsPublic,
		Metadata: input.Metadata,
	})
}

// DeleteAsset is the resolver for the deleteAsset field.
func (r *mutationResolver) DeleteAsset(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if err := r.asset.DeleteAsset(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// GenerateAsset is the resolver for the generateAsset field.
func (r *mutationResolver) GenerateAsset(ctx context.Context, input model.GenerateAssetInput) (*domain.Asset, error) {
	in := asset.GenerateAssetInput{
		Type:        input.Type,
		Name:        input.Name,
		Description: input.Description,
		Language:    strVal(input.Language),
		Duration:    intVal(input.Duration),
	}
	if input.SoundKind != nil {
		in.SoundKind = *input.SoundKind
	}
	return r.asset.GenerateAsset(ctx, in)
}

// User is the resolver for the user field.
func (r *playerProgressResolver) User(ctx context.Context, obj *domain.PlayerProgress) (*domain.User, error) {
	u, err := dataloader.FromContext(ctx).UserByID.Load(ctx, obj.UserID)()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Scenario is the resolver for the scenario field.
func (r *playerProgressResolver) Scenario(ctx context.Context, obj *domain.PlayerProgress) (*domain.Scenario, error) {
	sc, err := dataloader.FromContext(ctx).ScenarioByID.Load(ctx, obj.ScenarioID)()
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrNotFound
	}
	return sc, nil
}

// CurrentScene is the resolver for the currentScene field.
func (r *playerProgressResolver) CurrentScene(ctx context.Context, obj *domain.PlayerProgress) (*domain.Scene, error) {
	s, err := dataloader.FromContext(ctx).SceneByID.Load(ctx, obj.CurrentSceneID)()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// ProgressPercentage is the resolver for the progressPercentage field.
func (r *playerProgressResolver) ProgressPercentage(ctx context.Context, obj *domain.PlayerProgress) (float64, error) {
	return r.progress.ProgressPercentage(ctx, obj)
}

// Me is the resolver for the me field.
func (r *queryResolver) Me(ctx context.Context) (*domain.User, error) {
	return r.user.Me(ctx)
}

// Users is the resolver for the users field.
func (r *queryResolver) Users(ctx context.Context) ([]domain.User, error) {
	return r.user.ListUsers(ctx)
}

// User is the resolver for the user field.
func (r *queryResolver) User(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.user.GetUser(ctx, id)
}

// UserByEmail is the resolver for the userByEmail field.
func (r *queryResolver) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.user.GetUserByEmail(ctx, email)
}

// Scenarios is the resolver for the scenarios field.
func (r *queryResolver) Scenarios(ctx context.Context, publishedOnly bool) ([]domain.Scenario, error) {
	return r.story.ListScenarios(ctx, publishedOnly)
}

// Scenario is the resolver for the scenario field.
func (r *queryResolver) Scenario(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error) {
	return r.story.GetScenario(ctx, id)
}

// ScenariosByAuthor is the resolver for the scenariosByAuthor field.
func (r *queryResolver) ScenariosByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]domain.Scenario, error) {
	return r.story.ListScenariosByAuthor(ctx, authorID)
}

// Scene is the resolver for the scene field.
func (r *queryResolver) Scene(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error) {
	return r.story.GetScene(ctx, id)
}

// ScenesByScenario is the resolver for the scenesByScenario field.
func (r *queryResolver) ScenesByScenario(ctx context.Context, scenarioID primitive.ObjectID) ([]domain.Scene, error) {
	return r.story.ListScenesByScenario(ctx, scenarioID)
}

// Choice is the resolver for the choice field.
func (r *queryResolver) Choice(ctx context.Context, id primitive.ObjectID) (*domain.Choice, error) {
	return r.story.GetChoice(ctx, id)
}

// ChoicesByScene is the resolver for the choicesByScene field.
func (r *queryResolver) ChoicesByScene(ctx context.Context, sceneID primitive.ObjectID) ([]domain.Choice, error) {
	return r.story.ListChoicesByScene(ctx, sceneID)
}

// AllProgress is the resolver for the allProgress field.
func (r *queryResolver) AllProgress(ctx context.Context) ([]domain.PlayerProgress, error) {
	return r.progress.ListAllProgress(ctx)
}

// Progress is the resolver for the progress field.
func (r *queryResolver) Progress(ctx context.Context, id primitive.ObjectID) (*domain.PlayerProgress, error) {
	return r.progress.GetProgress(ctx, id)
}

// ProgressByUser is the resolver for the progressByUser field.
func (r *queryResolver) ProgressByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.PlayerProgress, error) {
	return r.progress.ListProgressByUser(ctx, userID)
}

// ProgressByUserAndScenario is the resolver for the progressByUserAndScenario field.
func (r *queryResolver) ProgressByUserAndScenario(ctx context.Context, userID primitive.ObjectID, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error) {
	return r.progress.GetProgressByUserAndScenario(ctx, userID, scenarioID)
}

// MyProgress is the resolver for the myProgress field.
func (r *queryResolver) MyProgress(ctx context.Context) ([]domain.PlayerProgress, error) {
	return r.progress.MyProgress(ctx)
}

// Assets is the resolver for the assets field.
func (r *queryResolver) Assets(ctx context.Context, typeFilter *domain.AssetType) ([]domain.Asset, error) {
	return r.asset.ListAssets(ctx, typeFilter)
}

// Asset is the resolver for the asset field.
func (r *queryResolver) Asset(ctx context.Context, id primitive.ObjectID) (*domain.Asset, error) {
	return r.asset.GetAsset(ctx, id)
}

// AssetsByType is the resolver for the assetsByType field.
func (r *queryResolver) AssetsByType(ctx context.Context, typeArg domain.AssetType) ([]domain.Asset, error) {
	return r.asset.ListAssets(ctx, &typeArg)
}

// AssetsByUploader is the resolver for the assetsByUploader field.
func (r *queryResolver) AssetsByUploader(ctx context.Context, uploaderID primitive.ObjectID) ([]domain.Asset, error) {
	return r.asset.ListAssetsByUploader(ctx, uploaderID)
}

// MyAssets is the resolver for the myAssets field.
func (r *queryResolver) MyAssets(ctx context.Context) ([]domain.Asset, error) {
	return r.asset.MyAssets(ctx)
}

// PublicAssets is the resolver for the publicAssets field.
func (r *queryResolver) PublicAssets(ctx context.Context, typeFilter *domain.AssetType) ([]domain.Asset, error) {
	return r.asset.ListPublicAssets(ctx, typeFilter)
}

// Author is the resolver for the author field.
func (r *scenarioResolver) Author(ctx context.Context, obj *domain.Scenario) (*domain.User, error) {
	u, err := dataloader.FromContext(ctx).UserByID.Load(ctx, obj.AuthorID)()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Scenes is the resolver for the scenes field.
func (r *scenarioResolver) Scenes(ctx context.Context, obj *domain.Scenario) ([]domain.Scene, error) {
	return dataloader.FromContext(ctx).ScenesByScenarioID.Load(ctx, obj.ID)()
}

// Image is the resolver for the image field.
func (r *sceneResolver) Image(ctx context.Context, obj *domain.Scene) (*domain.Asset, error) {
	return r.loadAsset(ctx, obj.ImageID)
}

// Sound is the resolver for the sound field.
func (r *sceneResolver) Sound(ctx context.Context, obj *domain.Scene) (*domain.Asset, error) {
	return r.loadAsset(ctx, obj.SoundID)
}

// Music is the resolver for the music field.
func (r *sceneResolver) Music(ctx context.Context, obj *domain.Scene) (*domain.Asset, error) {
	return r.loadAsset(ctx, obj.MusicID)
}

// Choices is the resolver for the choices field.
func (r *sceneResolver) Choices(ctx context.Context, obj *domain.Scene) ([]domain.Choice, error) {
	return dataloader.FromContext(ctx).ChoicesBySceneID.Load(ctx, obj.ID)()
}

// Asset returns generated.AssetResolver implementation.
func (r *Resolver) Asset() generated.AssetResolver { return &assetResolver{r} }

// Choice returns generated.ChoiceResolver implementation.
func (r *Resolver) Choice() generated.ChoiceResolver { return &choiceResolver{r} }

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// PlayerProgress returns generated.PlayerProgressResolver implementation.
func (r *Resolver) PlayerProgress() generated.PlayerProgressResolver {
	return &playerProgressResolver{r}
}

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// Scenario returns generated.ScenarioResolver implementation.
func (r *Resolver) Scenario() generated.ScenarioResolver { return &scenarioResolver{r} }

// Scene returns generated.SceneResolver implementation.
func (r *Resolver) Scene() generated.SceneResolver { return &sceneResolver{r} }

type assetResolver struct{ *Resolver }
type choiceResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type playerProgressResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type scenarioResolver struct{ *Resolver }
type sceneResolver struct{ *Resolver }

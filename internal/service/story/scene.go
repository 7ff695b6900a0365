package story

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// CreateScene creates a scene in a scenario. Author or admin only. When an
// AutoGenerate flag is set, the matching asset is generated synchronously
// and attached; a generation failure is logged and the scene is created
// without the asset.
func (s *Service) CreateScene(ctx context.Context, input CreateSceneInput) (*domain.Scene, error) {
	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("story.CreateScene: %w", err)
	}

	// Step 2: load the scenario and gate.
	sc, err := s.scenarios.GetByID(ctx, input.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("story.CreateScene: %w", err)
	}
	if err := s.canMutate(ctx, sc); err != nil {
		return nil, err
	}

	scene := &domain.Scene{
		ScenarioID:   input.ScenarioID,
		Title:        input.Title,
		Text:         input.Text,
		Order:        input.Order,
		ImageID:      input.ImageID,
		SoundID:      input.SoundID,
		MusicID:      input.MusicID,
		IsStartScene: input.IsStartScene,
		IsEndScene:   input.IsEndScene,
	}

	// Step 3: generate requested assets. Failures never block the scene.
	if input.AutoGenerateImage && scene.ImageID == nil {
		if asset, err := s.generator.GenerateImage(ctx, input.Title, input.Text); err != nil {
			s.log.WarnContext(ctx, "scene image generation failed", "scene_title", input.Title, "error", err)
		} else {
			scene.ImageID = &asset.ID
		}
	}
	if input.AutoGenerateSound && scene.SoundID == nil {
		if asset, err := s.generator.GenerateTTS(ctx, input.Title, input.Text); err != nil {
			s.log.WarnContext(ctx, "scene narration generation failed", "scene_title", input.Title, "error", err)
		} else {
			scene.SoundID = &asset.ID
		}
	}
	if input.AutoGenerateMusic && scene.MusicID == nil {
		if asset, err := s.generator.GenerateMusic(ctx, input.Title, input.Text); err != nil {
			s.log.WarnContext(ctx, "scene music generation failed", "scene_title", input.Title, "error", err)
		} else {
			scene.MusicID = &asset.ID
		}
	}

	// Step 4: persist.
	now := time.Now().UTC()
	scene.CreatedAt = now
	scene.UpdatedAt = now
	created, err := s.scenes.Create(ctx, scene)
	if err != nil {
		return nil, fmt.Errorf("story.CreateScene: %w", err)
	}

	s.log.InfoContext(ctx, "scene created", "scene_id", created.ID.Hex(), "scenario_id", sc.ID.Hex())
	return created, nil
}

// GetScene returns a scene, gated by its scenario's visibility.
func (s *Service) GetScene(ctx context.Context, id primitive.ObjectID) (*domain.Scene, error) {
	scene, err := s.scenes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("story.GetScene: %w", err)
	}

	sc, err := s.scenarios.GetByID(ctx, scene.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("story.GetScene: %w", err)
	}
	if err := s.canRead(ctx, sc); err != nil {
		return nil, err
	}
	return scene, nil
}

// ListScenesByScenario lists a scenario's scenes ordered by their order
// field, gated by the scenario's visibility.
func (s *Service) ListScenesByScenario(ctx context.Context, scenarioID primitive.ObjectID) ([]domain.Scene, error) {
	sc, err := s.scenarios.GetByID(ctx, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("story.ListScenesByScenario: %w", err)
	}
	if err := s.canRead(ctx, sc); err != nil {
		return nil, err
	}

	scenes, err := s.scenes.ListByScenario(ctx, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("story.ListScenesByScenario: %w", err)
	}
	return scenes, nil
}

// UpdateScene updates a scene. Author or admin only.
func (s *Service) UpdateScene(ctx context.Context, input UpdateSceneInput) (*domain.Scene, error) {
	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("story.UpdateScene: %w", err)
	}

	// Step 2: load the scene and gate through its scenario.
	scene, err := s.scenes.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateScene: %w", err)
	}
	sc, err := s.scenarios.GetByID(ctx, scene.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateScene: %w", err)
	}
	if err := s.canMutate(ctx, sc); err != nil {
		return nil, err
	}

	// Step 3: apply changes.
	if input.Title != nil {
		scene.Title = *input.Title
	}
	if input.Text != nil {
		scene.Text = *input.Text
	}
	if input.Order != nil {
		scene.Order = *input.Order
	}
	if input.ImageID != nil {
		scene.ImageID = input.ImageID
	}
	if input.SoundID != nil {
		scene.SoundID = input.SoundID
	}
	if input.MusicID != nil {
		scene.MusicID = input.MusicID
	}
	if input.ClearImage {
		scene.ImageID = nil
	}
	if input.ClearSound {
		scene.SoundID = nil
	}
	if input.ClearMusic {
		scene.MusicID = nil
	}
	if input.IsStartScene != nil {
		scene.IsStartScene = *input.IsStartScene
	}
	if input.IsEndScene != nil {
		scene.IsEndScene = *input.IsEndScene
	}
	scene.UpdatedAt = time.Now().UTC()

	// Step 4: persist.
	updated, err := s.scenes.Update(ctx, scene)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateScene: %w", err)
	}

	s.log.InfoContext(ctx, "scene updated", "scene_id", updated.ID.Hex())
	return updated, nil
}

// DeleteScene deletes a scene along with every choice pointing to or from
// it. Author or admin only.
func (s *Service) DeleteScene(ctx context.Context, id primitive.ObjectID) error {
	// Step 1: load the scene and gate through its scenario.
	scene, err := s.scenes.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("story.DeleteScene: %w", err)
	}
	sc, err := s.scenarios.GetByID(ctx, scene.ScenarioID)
	if err != nil {
		return fmt.Errorf("story.DeleteScene: %w", err)
	}
	if err := s.canMutate(ctx, sc); err != nil {
		return err
	}

	// Step 2: remove inbound and outbound choices.
	deletedChoices, err := s.choices.DeleteByScenes(ctx, []primitive.ObjectID{id})
	if err != nil {
		return fmt.Errorf("story.DeleteScene: delete choices: %w", err)
	}

	// Step 3: remove the scene.
	if err := s.scenes.Delete(ctx, id); err != nil {
		return fmt.Errorf("story.DeleteScene: %w", err)
	}

	s.log.InfoContext(ctx, "scene deleted", "scene_id", id.Hex(), "choices", deletedChoices)
	return nil
}

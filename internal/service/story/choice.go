package story

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// CreateChoice creates a choice between two scenes of the same scenario.
// Author or admin only, gated via the source scene's scenario.
func (s *Service) CreateChoice(ctx context.Context, input CreateChoiceInput) (*domain.Choice, error) {
	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("story.CreateChoice: %w", err)
	}

	// Step 2: both endpoint scenes must exist and share a scenario.
	from, err := s.scenes.GetByID(ctx, input.FromSceneID)
	if err != nil {
		return nil, fmt.Errorf("story.CreateChoice: from scene: %w", err)
	}
	to, err := s.scenes.GetByID(ctx, input.ToSceneID)
	if err != nil {
		return nil, fmt.Errorf("story.CreateChoice: to scene: %w", err)
	}
	if from.ScenarioID != to.ScenarioID {
		return nil, fmt.Errorf("story.CreateChoice: %w", domain.NewValidationError("toSceneId", "scenes belong to different scenarios"))
	}

	// Step 3: gate through the scenario.
	sc, err := s.scenarios.GetByID(ctx, from.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("story.CreateChoice: %w", err)
	}
	if err := s.canMutate(ctx, sc); err != nil {
		return nil, err
	}

	// Step 4: persist.
	created, err := s.choices.Create(ctx, &domain.Choice{
		FromSceneID: input.FromSceneID,
		ToSceneID:   input.ToSceneID,
		Text:        input.Text,
		Condition:   input.Condition,
		Order:       input.Order,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("story.CreateChoice: %w", err)
	}

	s.log.InfoContext(ctx, "choice created", "choice_id", created.ID.Hex(), "from_scene_id", input.FromSceneID.Hex())
	return created, nil
}

// GetChoice returns a choice, gated by its scenario's visibility.
func (s *Service) GetChoice(ctx context.Context, id primitive.ObjectID) (*domain.Choice, error) {
	c, err := s.choices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("story.GetChoice: %w", err)
	}

	if err := s.gateChoiceRead(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListChoicesByScene lists a scene's outgoing choices ordered by their order
// field, gated by the scenario's visibility.
func (s *Service) ListChoicesByScene(ctx context.Context, sceneID primitive.ObjectID) ([]domain.Choice, error) {
	scene, err := s.scenes.GetByID(ctx, sceneID)
	if err != nil {
		return nil, fmt.Errorf("story.ListChoicesByScene: %w", err)
	}
	sc, err := s.scenarios.GetByID(ctx, scene.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("story.ListChoicesByScene: %w", err)
	}
	if err := s.canRead(ctx, sc); err != nil {
		return nil, err
	}

	choices, err := s.choices.ListByScene(ctx, sceneID)
	if err != nil {
		return nil, fmt.Errorf("story.ListChoicesByScene: %w", err)
	}
	return choices, nil
}

// UpdateChoice updates a choice. Author or admin only.
func (s *Service) UpdateChoice(ctx context.Context, input UpdateChoiceInput) (*domain.Choice, error) {
	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("story.UpdateChoice: %w", err)
	}

	// Step 2: load the choice and gate through its source scene.
	c, err := s.choices.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateChoice: %w", err)
	}
	from, err := s.scenes.GetByID(ctx, c.FromSceneID)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateChoice: %w", err)
	}
	sc, err := s.scenarios.GetByID(ctx, from.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateChoice: %w", err)
	}
	if err := s.canMutate(ctx, sc); err != nil {
		return nil, err
	}

	// Step 3: a retargeted edge must stay inside the scenario.
	if input.ToSceneID != nil && *input.ToSceneID != c.ToSceneID {
		to, err := s.scenes.GetByID(ctx, *input.ToSceneID)
		if err != nil {
			return nil, fmt.Errorf("story.UpdateChoice: to scene: %w", err)
		}
		if to.ScenarioID != from.ScenarioID {
			return nil, fmt.Errorf("story.UpdateChoice: %w", domain.NewValidationError("toSceneId", "scenes belong to different scenarios"))
		}
		c.ToSceneID = *input.ToSceneID
	}

	// Step 4: apply remaining changes and persist.
	if input.Text != nil {
		c.Text = *input.Text
	}
	if input.Condition != nil {
		c.Condition = input.Condition
	}
	if input.Order != nil {
		c.Order = *input.Order
	}

	updated, err := s.choices.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateChoice: %w", err)
	}

	s.log.InfoContext(ctx, "choice updated", "choice_id", updated.ID.Hex())
	return updated, nil
}

// DeleteChoice deletes a choice. Author or admin only.
func (s *Service) DeleteChoice(ctx context.Context, id primitive.ObjectID) error {
	c, err := s.choices.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("story.DeleteChoice: %w", err)
	}
	from, err := s.scenes.GetByID(ctx, c.FromSceneID)
	if err != nil {
		return fmt.Errorf("story.DeleteChoice: %w", err)
	}
	sc, err := s.scenarios.GetByID(ctx, from.ScenarioID)
	if err != nil {
		return fmt.Errorf("story.DeleteChoice: %w", err)
	}
	if err := s.canMutate(ctx, sc); err != nil {
		return err
	}

	if err := s.choices.Delete(ctx, id); err != nil {
		return fmt.Errorf("story.DeleteChoice: %w", err)
	}

	s.log.InfoContext(ctx, "choice deleted", "choice_id", id.Hex())
	return nil
}

// gateChoiceRead resolves a choice's scenario and applies read gating.
func (s *Service) gateChoiceRead(ctx context.Context, c *domain.Choice) error {
	from, err := s.scenes.GetByID(ctx, c.FromSceneID)
	if err != nil {
		return fmt.Errorf("story.gateChoiceRead: %w", err)
	}
	sc, err := s.scenarios.GetByID(ctx, from.ScenarioID)
	if err != nil {
		return fmt.Errorf("story.gateChoiceRead: %w", err)
	}
	return s.canRead(ctx, sc)
}

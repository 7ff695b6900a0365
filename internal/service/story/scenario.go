package story

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/pkg/ctxutil"
)

// CreateScenario creates a scenario owned by the authenticated user.
func (s *Service) CreateScenario(ctx context.Context, input CreateScenarioInput) (*domain.Scenario, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("story.CreateScenario: %w", err)
	}

	// Step 2: persist.
	now := time.Now().UTC()
	created, err := s.scenarios.Create(ctx, &domain.Scenario{
		Title:       input.Title,
		Description: input.Description,
		AuthorID:    userID,
		IsPublished: input.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("story.CreateScenario: %w", err)
	}

	s.log.InfoContext(ctx, "scenario created", "scenario_id", created.ID.Hex(), "author_id", userID.Hex())
	return created, nil
}

// GetScenario returns a scenario. Unpublished scenarios are visible only to
// their author and to admins.
func (s *Service) GetScenario(ctx context.Context, id primitive.ObjectID) (*domain.Scenario, error) {
	sc, err := s.scenarios.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("story.GetScenario: %w", err)
	}
	if err := s.canRead(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// ListScenarios lists scenarios. Non-admin callers only ever see published
// ones regardless of the flag.
func (s *Service) ListScenarios(ctx context.Context, publishedOnly bool) ([]domain.Scenario, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		publishedOnly = true
	}

	scenarios, err := s.scenarios.List(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("story.ListScenarios: %w", err)
	}
	return scenarios, nil
}

// ListScenariosByAuthor lists an author's scenarios. Unpublished ones are
// filtered out unless the caller is the author or an admin.
func (s *Service) ListScenariosByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]domain.Scenario, error) {
	scenarios, err := s.scenarios.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("story.ListScenariosByAuthor: %w", err)
	}

	callerID, _ := ctxutil.UserIDFromCtx(ctx)
	if callerID == authorID || ctxutil.IsAdminCtx(ctx) {
		return scenarios, nil
	}

	published := scenarios[:0]
	for _, sc := range scenarios {
		if sc.IsPublished {
			published = append(published, sc)
		}
	}
	return published, nil
}

// UpdateScenario updates a scenario. Author or admin only.
func (s *Service) UpdateScenario(ctx context.Context, input UpdateScenarioInput) (*domain.Scenario, error) {
	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("story.UpdateScenario: %w", err)
	}

	// Step 2: load and gate.
	sc, err := s.scenarios.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateScenario: %w", err)
	}
	if err := s.canMutate(ctx, sc); err != nil {
		return nil, err
	}

	// Step 3: apply changes.
	if input.Title != nil {
		sc.Title = *input.Title
	}
	if input.Description != nil {
		sc.Description = input.Description
	}
	if input.IsPublished != nil {
		sc.IsPublished = *input.IsPublished
	}
	sc.UpdatedAt = time.Now().UTC()

	// Step 4: persist.
	updated, err := s.scenarios.Update(ctx, sc)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateScenario: %w", err)
	}

	s.log.InfoContext(ctx, "scenario updated", "scenario_id", updated.ID.Hex())
	return updated, nil
}

// DeleteScenario deletes a scenario and cascades to its scenes, their
// choices, and player progress. Author or admin only.
func (s *Service) DeleteScenario(ctx context.Context, id primitive.ObjectID) error {
	// Step 1: load and gate.
	sc, err := s.scenarios.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("story.DeleteScenario: %w", err)
	}
	if err := s.canMutate(ctx, sc); err != nil {
		return err
	}

	// Step 2: remove choices attached to the scenario's scenes.
	scenes, err := s.scenes.ListByScenario(ctx, id)
	if err != nil {
		return fmt.Errorf("story.DeleteScenario: list scenes: %w", err)
	}
	if len(scenes) > 0 {
		sceneIDs := make([]primitive.ObjectID, len(scenes))
		for i, sn := range scenes {
			sceneIDs[i] = sn.ID
		}
		if _, err := s.choices.DeleteByScenes(ctx, sceneIDs); err != nil {
			return fmt.Errorf("story.DeleteScenario: delete choices: %w", err)
		}
	}

	// Step 3: remove the scenes themselves.
	deletedScenes, err := s.scenes.DeleteByScenario(ctx, id)
	if err != nil {
		return fmt.Errorf("story.DeleteScenario: delete scenes: %w", err)
	}

	// Step 4: remove player progress for the scenario.
	if _, err := s.progress.DeleteByScenario(ctx, id); err != nil {
		return fmt.Errorf("story.DeleteScenario: delete progress: %w", err)
	}

	// Step 5: remove the scenario itself.
	if err := s.scenarios.Delete(ctx, id); err != nil {
		return fmt.Errorf("story.DeleteScenario: %w", err)
	}

	s.log.InfoContext(ctx, "scenario deleted", "scenario_id", id.Hex(), "scenes", deletedScenes)
	return nil
}

// canRead gates read access to a scenario.
func (s *Service) canRead(ctx context.Context, sc *domain.Scenario) error {
	if sc.IsPublished || ctxutil.IsAdminCtx(ctx) {
		return nil
	}
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if ok && callerID == sc.AuthorID {
		return nil
	}
	return domain.ErrForbidden
}

// canMutate gates write access to a scenario.
func (s *Service) canMutate(ctx context.Context, sc *domain.Scenario) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID == sc.AuthorID || ctxutil.IsAdminCtx(ctx) {
		return nil
	}
	return domain.ErrForbidden
}

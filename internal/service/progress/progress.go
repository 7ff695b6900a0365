package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/pkg/ctxutil"
)

// CreateProgress starts a playthrough of a scenario for the authenticated
// user, positioned at the start scene. Idempotent: a second call for the
// same scenario returns the existing progress untouched.
func (s *Service) CreateProgress(ctx context.Context, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 1: the scenario must exist and be playable by the caller.
	sc, err := s.scenarios.GetByID(ctx, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("progress.CreateProgress: %w", err)
	}
	if !sc.IsPublished && sc.AuthorID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	// Step 2: resolve the start scene.
	start, err := s.scenes.GetStartScene(ctx, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("progress.CreateProgress: start scene: %w", err)
	}

	// Step 3: persist. The unique (user, scenario) index detects a
	// concurrent or repeated start; return the existing run in that case.
	now := time.Now().UTC()
	created, err := s.progress.Create(ctx, &domain.PlayerProgress{
		UserID:         userID,
		ScenarioID:     scenarioID,
		CurrentSceneID: start.ID,
		History: []domain.HistoryEntry{
			{SceneID: start.ID, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			existing, getErr := s.progress.GetByUserAndScenario(ctx, userID, scenarioID)
			if getErr != nil {
				return nil, fmt.Errorf("progress.CreateProgress: %w", getErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("progress.CreateProgress: %w", err)
	}

	s.log.InfoContext(ctx, "progress created", "progress_id", created.ID.Hex(), "scenario_id", scenarioID.Hex())
	return created, nil
}

// RecordProgress appends a history entry for the authenticated user's run
// and advances the current scene. Reaching an end scene marks the run
// completed.
func (s *Service) RecordProgress(ctx context.Context, input RecordProgressInput) (*domain.PlayerProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("progress.RecordProgress: %w", err)
	}

	// Step 2: the target scene must belong to the scenario being played.
	scene, err := s.scenes.GetByID(ctx, input.SceneID)
	if err != nil {
		return nil, fmt.Errorf("progress.RecordProgress: %w", err)
	}
	if scene.ScenarioID != input.ScenarioID {
		return nil, fmt.Errorf("progress.RecordProgress: %w", domain.NewValidationError("sceneId", "scene belongs to a different scenario"))
	}

	// Step 3: load the run.
	p, err := s.progress.GetByUserAndScenario(ctx, userID, input.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("progress.RecordProgress: %w", err)
	}

	// Step 4: advance.
	now := time.Now().UTC()
	p.History = append(p.History, domain.HistoryEntry{
		SceneID:   input.SceneID,
		ChoiceID:  input.ChoiceID,
		Timestamp: now,
		Metadata:  input.Metadata,
	})
	p.CurrentSceneID = input.SceneID
	p.TotalTimeSpent += input.TimeSpent
	if scene.IsEndScene && !p.IsCompleted {
		p.IsCompleted = true
		p.CompletedAt = &now
	}
	p.UpdatedAt = now

	updated, err := s.progress.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("progress.RecordProgress: %w", err)
	}

	s.log.InfoContext(ctx, "progress recorded", "progress_id", updated.ID.Hex(), "scene_id", input.SceneID.Hex(), "completed", updated.IsCompleted)
	return updated, nil
}

// UpdateProgress applies a direct edit to a run. Owner or admin only.
func (s *Service) UpdateProgress(ctx context.Context, input UpdateProgressInput) (*domain.PlayerProgress, error) {
	// Step 1: validate input.
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("progress.UpdateProgress: %w", err)
	}

	// Step 2: load and gate.
	p, err := s.progress.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("progress.UpdateProgress: %w", err)
	}
	if err := s.canAccess(ctx, p); err != nil {
		return nil, err
	}

	// Step 3: apply changes.
	now := time.Now().UTC()
	if input.CurrentSceneID != nil {
		scene, err := s.scenes.GetByID(ctx, *input.CurrentSceneID)
		if err != nil {
			return nil, fmt.Errorf("progress.UpdateProgress: %w", err)
		}
		if scene.ScenarioID != p.ScenarioID {
			return nil, fmt.Errorf("progress.UpdateProgress: %w", domain.NewValidationError("currentSceneId", "scene belongs to a different scenario"))
		}
		p.CurrentSceneID = *input.CurrentSceneID
	}
	if input.IsCompleted != nil {
		p.IsCompleted = *input.IsCompleted
		if *input.IsCompleted {
			if p.CompletedAt == nil {
				p.CompletedAt = &now
			}
		} else {
			p.CompletedAt = nil
		}
	}
	if input.TotalTimeSpent != nil {
		p.TotalTimeSpent = *input.TotalTimeSpent
	}
	p.UpdatedAt = now

	updated, err := s.progress.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("progress.UpdateProgress: %w", err)
	}

	s.log.InfoContext(ctx, "progress updated", "progress_id", updated.ID.Hex())
	return updated, nil
}

// DeleteProgress removes a run. Owner or admin only.
func (s *Service) DeleteProgress(ctx context.Context, id primitive.ObjectID) error {
	p, err := s.progress.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("progress.DeleteProgress: %w", err)
	}
	if err := s.canAccess(ctx, p); err != nil {
		return err
	}

	if err := s.progress.Delete(ctx, id); err != nil {
		return fmt.Errorf("progress.DeleteProgress: %w", err)
	}

	s.log.InfoContext(ctx, "progress deleted", "progress_id", id.Hex())
	return nil
}

// GetProgress returns a run by ID. Owner or admin only.
func (s *Service) GetProgress(ctx context.Context, id primitive.ObjectID) (*domain.PlayerProgress, error) {
	p, err := s.progress.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("progress.GetProgress: %w", err)
	}
	if err := s.canAccess(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProgressByUserAndScenario returns one user's run of one scenario.
// Owner or admin only.
func (s *Service) GetProgressByUserAndScenario(ctx context.Context, userID, scenarioID primitive.ObjectID) (*domain.PlayerProgress, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if callerID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	p, err := s.progress.GetByUserAndScenario(ctx, userID, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("progress.GetProgressByUserAndScenario: %w", err)
	}
	return p, nil
}

// ListAllProgress lists every run. Admin only.
func (s *Service) ListAllProgress(ctx context.Context) ([]domain.PlayerProgress, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	runs, err := s.progress.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("progress.ListAllProgress: %w", err)
	}
	return runs, nil
}

// ListProgressByUser lists a user's runs. Owner or admin only.
func (s *Service) ListProgressByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.PlayerProgress, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if callerID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	runs, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("progress.ListProgressByUser: %w", err)
	}
	return runs, nil
}

// MyProgress lists the authenticated user's runs.
func (s *Service) MyProgress(ctx context.Context) ([]domain.PlayerProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	runs, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("progress.MyProgress: %w", err)
	}
	return runs, nil
}

// ProgressPercentage computes how much of the scenario a run has visited,
// as a 0..100 value.
func (s *Service) ProgressPercentage(ctx context.Context, p *domain.PlayerProgress) (float64, error) {
	total, err := s.scenes.CountByScenario(ctx, p.ScenarioID)
	if err != nil {
		return 0, fmt.Errorf("progress.ProgressPercentage: %w", err)
	}
	return p.ProgressPercentage(total), nil
}

// canAccess gates access to a run: its owner or an admin.
func (s *Service) canAccess(ctx context.Context, p *domain.PlayerProgress) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID == p.UserID || ctxutil.IsAdminCtx(ctx) {
		return nil
	}
	return domain.ErrForbidden
}

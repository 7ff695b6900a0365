package progress

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// RecordProgressInput holds one step of a playthrough: the scene the player
// advanced to and, when they moved via a choice, which choice.
type RecordProgressInput struct {
	ScenarioID primitive.ObjectID
	SceneID    primitive.ObjectID
	ChoiceID   *primitive.ObjectID
	TimeSpent  int
	Metadata   map[string]any
}

// Validate validates the record-progress input.
func (i RecordProgressInput) Validate() error {
	var errs []domain.FieldError

	if i.ScenarioID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "scenarioId", Message: "required"})
	}
	if i.SceneID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "sceneId", Message: "required"})
	}
	if i.TimeSpent < 0 {
		errs = append(errs, domain.FieldError{Field: "timeSpent", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProgressInput holds parameters for a direct progress update.
// Nil fields are left unchanged.
type UpdateProgressInput struct {
	ID             primitive.ObjectID
	CurrentSceneID *primitive.ObjectID
	IsCompleted    *bool
	TotalTimeSpent *int
}

// Validate validates the update-progress input.
func (i UpdateProgressInput) Validate() error {
	var errs []domain.FieldError

	if i.ID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.CurrentSceneID != nil && i.CurrentSceneID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "currentSceneId", Message: "must not be empty"})
	}
	if i.TotalTimeSpent != nil && *i.TotalTimeSpent < 0 {
		errs = append(errs, domain.FieldError{Field: "totalTimeSpent", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

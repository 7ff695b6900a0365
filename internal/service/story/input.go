package story

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

const (
	maxTitleLen = 200
	maxTextLen  = 10000
)

// CreateScenarioInput holds parameters for creating a scenario.
type CreateScenarioInput struct {
	Title       string
	Description *string
	IsPublished bool
}

// Validate validates the create-scenario input.
func (i CreateScenarioInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateScenarioInput holds parameters for updating a scenario.
// Nil fields are left unchanged.
type UpdateScenarioInput struct {
	ID          primitive.ObjectID
	Title       *string
	Description *string
	IsPublished *bool
}

// Validate validates the update-scenario input.
func (i UpdateScenarioInput) Validate() error {
	var errs []domain.FieldError

	if i.ID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateSceneInput holds parameters for creating a scene. The AutoGenerate
// flags request synchronous AI asset generation for the corresponding field.
type CreateSceneInput struct {
	ScenarioID   primitive.ObjectID
	Title        string
	Text         string
	Order        int
	ImageID      *primitive.ObjectID
	SoundID      *primitive.ObjectID
	MusicID      *primitive.ObjectID
	IsStartScene bool
	IsEndScene   bool

	AutoGenerateImage bool
	AutoGenerateSound bool
	AutoGenerateMusic bool
}

// Validate validates the create-scene input.
func (i CreateSceneInput) Validate() error {
	var errs []domain.FieldError

	if i.ScenarioID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "scenarioId", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(i.Text) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}
	if i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSceneInput holds parameters for updating a scene.
// Nil fields are left unchanged; asset references can be cleared by the
// dedicated Clear flags.
type UpdateSceneInput struct {
	ID           primitive.ObjectID
	Title        *string
	Text         *string
	Order        *int
	ImageID      *primitive.ObjectID
	SoundID      *primitive.ObjectID
	MusicID      *primitive.ObjectID
	IsStartScene *bool
	IsEndScene   *bool

	ClearImage bool
	ClearSound bool
	ClearMusic bool
}

// Validate validates the update-scene input.
func (i UpdateSceneInput) Validate() error {
	var errs []domain.FieldError

	if i.ID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Text != nil {
		if *i.Text == "" {
			errs = append(errs, domain.FieldError{Field: "text", Message: "must not be empty"})
		} else if len(*i.Text) > maxTextLen {
			errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
		}
	}
	if i.Order != nil && *i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateChoiceInput holds parameters for creating a choice between two scenes.
type CreateChoiceInput struct {
	FromSceneID primitive.ObjectID
	ToSceneID   primitive.ObjectID
	Text        string
	Condition   map[string]any
	Order       int
}

// Validate validates the create-choice input.
func (i CreateChoiceInput) Validate() error {
	var errs []domain.FieldError

	if i.FromSceneID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "fromSceneId", Message: "required"})
	}
	if i.ToSceneID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "toSceneId", Message: "required"})
	}
	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(i.Text) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}
	if i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateChoiceInput holds parameters for updating a choice.
// Nil fields are left unchanged.
type UpdateChoiceInput struct {
	ID        primitive.ObjectID
	ToSceneID *primitive.ObjectID
	Text      *string
	Condition map[string]any
	Order     *int
}

// Validate validates the update-choice input.
func (i UpdateChoiceInput) Validate() error {
	var errs []domain.FieldError

	if i.ID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.ToSceneID != nil && i.ToSceneID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "toSceneId", Message: "must not be empty"})
	}
	if i.Text != nil {
		if *i.Text == "" {
			errs = append(errs, domain.FieldError{Field: "text", Message: "must not be empty"})
		} else if len(*i.Text) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
		}
	}
	if i.Order != nil && *i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

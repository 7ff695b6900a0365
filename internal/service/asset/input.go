package asset

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

const (
	maxNameLen = 200
	maxDescLen = 2000
)

// CreateAssetInput holds an uploaded file and its metadata.
type CreateAssetInput struct {
	Type     domain.AssetType
	Name     string
	Filename string
	Data     []byte
	MimeType string
	IsPublic bool
	Metadata map[string]any
}

// Validate validates the create-asset input.
func (i CreateAssetInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be 'image', 'sound' or 'video'"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateAssetInput holds parameters for updating asset metadata.
// Nil fields are left unchanged.
type UpdateAssetInput struct {
	ID       primitive.ObjectID
	Name     *string
	IsPublic *bool
	Metadata map[string]any
}

// Validate validates the update-asset input.
func (i UpdateAssetInput) Validate() error {
	var errs []domain.FieldError

	if i.ID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GenerateAssetInput holds parameters for synchronous AI generation.
type GenerateAssetInput struct {
	Type        domain.AssetType
	Name        string
	Description string
	// SoundKind selects narration or ambient music for sound assets.
	SoundKind domain.SoundKind
	// Language is a BCP-47 code for narration; empty uses the default.
	Language string
	// Duration is the requested clip length in seconds for music; zero
	// leaves it to the model.
	Duration int
}

// Validate validates the generate-asset input.
func (i GenerateAssetInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be 'image', 'sound' or 'video'"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if len(i.Description) > maxDescLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Type == domain.AssetTypeSound && !i.SoundKind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "soundType", Message: "must be 'tts' or 'music'"})
	}
	if i.Duration < 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

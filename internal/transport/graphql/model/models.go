package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// AuthPayload is returned by register, login, and refreshToken mutations.
type AuthPayload struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *domain.User `json:"user"`
}

type RegisterInput struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

type CreateUserInput struct {
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Role      domain.UserRole `json:"role"`
	FirstName *string         `json:"firstName,omitempty"`
	LastName  *string         `json:"lastName,omitempty"`
}

type UpdateUserInput struct {
	Email     *string          `json:"email,omitempty"`
	Password  *string          `json:"password,omitempty"`
	Role      *domain.UserRole `json:"role,omitempty"`
	FirstName *string          `json:"firstName,omitempty"`
	LastName  *string          `json:"lastName,omitempty"`
}

type CreateScenarioInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

type UpdateScenarioInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

type CreateSceneInput struct {
	ScenarioID        primitive.ObjectID  `json:"scenarioId"`
	Title             string              `json:"title"`
	Text              string              `json:"text"`
	Order             *int                `json:"order,omitempty"`
	ImageID           *primitive.ObjectID `json:"imageId,omitempty"`
	SoundID           *primitive.ObjectID `json:"soundId,omitempty"`
	MusicID           *primitive.ObjectID `json:"musicId,omitempty"`
	IsStartScene      *bool               `json:"isStartScene,omitempty"`
	IsEndScene        *bool               `json:"isEndScene,omitempty"`
	AutoGenerateImage *bool               `json:"autoGenerateImage,omitempty"`
	AutoGenerateSound *bool               `json:"autoGenerateSound,omitempty"`
	AutoGenerateMusic *bool               `json:"autoGenerateMusic,omitempty"`
}

type UpdateSceneInput struct {
	Title        *string             `json:"title,omitempty"`
	Text         *string             `json:"text,omitempty"`
	Order        *int                `json:"order,omitempty"`
	ImageID      *primitive.ObjectID `json:"imageId,omitempty"`
	SoundID      *primitive.ObjectID `json:"soundId,omitempty"`
	MusicID      *primitive.ObjectID `json:"musicId,omitempty"`
	ClearImage   *bool               `json:"clearImage,omitempty"`
	ClearSound   *bool               `json:"clearSound,omitempty"`
	ClearMusic   *bool               `json:"clearMusic,omitempty"`
	IsStartScene *bool               `json:"isStartScene,omitempty"`
	IsEndScene   *bool               `json:"isEndScene,omitempty"`
}

type CreateChoiceInput struct {
	FromSceneID primitive.ObjectID `json:"fromSceneId"`
	ToSceneID   primitive.ObjectID `json:"toSceneId"`
	Text        string             `json:"text"`
	Condition   map[string]any     `json:"condition,omitempty"`
	Order       *int               `json:"order,omitempty"`
}

type UpdateChoiceInput struct {
	ToSceneID *primitive.ObjectID `json:"toSceneId,omitempty"`
	Text      *string             `json:"text,omitempty"`
	Condition map[string]any      `json:"condition,omitempty"`
	Order     *int                `json:"order,omitempty"`
}

type RecordProgressInput struct {
	ScenarioID primitive.ObjectID  `json:"scenarioId"`
	SceneID    primitive.ObjectID  `json:"sceneId"`
	ChoiceID   *primitive.ObjectID `json:"choiceId,omitempty"`
	TimeSpent  *int                `json:"timeSpent,omitempty"`
	Metadata   map[string]any      `json:"metadata,omitempty"`
}

type UpdateProgressInput struct {
	CurrentSceneID *primitive.ObjectID `json:"currentSceneId,omitempty"`
	IsCompleted    *bool               `json:"isCompleted,omitempty"`
	TotalTimeSpent *int                `json:"totalTimeSpent,omitempty"`
}

type CreateAssetInput struct {
	Type     domain.AssetType `json:"type"`
	Name     string           `json:"name"`
	Filename string           `json:"filename"`
	Data     string           `json:"data"`
	MimeType string           `json:"mimeType"`
	IsPublic *bool            `json:"isPublic,omitempty"`
	Metadata map[string]any   `json:"metadata,omitempty"`
}

type UpdateAssetInput struct {
	Name     *string        `json:"name,omitempty"`
	IsPublic *bool          `json:"isPublic,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type GenerateAssetInput struct {
	Type        domain.AssetType  `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	SoundKind   *domain.SoundKind `json:"soundKind,omitempty"`
	Language    *string           `json:"language,omitempty"`
	Duration    *int              `json:"duration,omitempty"`
}

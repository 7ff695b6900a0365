package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scenario is a branching story: a titled graph of scenes connected by
// choices. Scenes reference their scenario; the scenario document itself
// carries no scene list.
type Scenario struct {
	ID          primitive.ObjectID
	Title       string
	Description *string
	AuthorID    primitive.ObjectID
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Scene is a node in a scenario. Asset references are optional: ImageID is an
// illustration, SoundID a narration track, MusicID an ambient music track.
type Scene struct {
	ID           primitive.ObjectID
	ScenarioID   primitive.ObjectID
	Title        string
	Text         string
	Order        int
	ImageID      *primitive.ObjectID
	SoundID      *primitive.ObjectID
	MusicID      *primitive.ObjectID
	IsStartScene bool
	IsEndScene   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Choice is a directed edge between two scenes of the same scenario.
// Condition is an opaque document the client interprets when deciding
// whether to display the choice.
type Choice struct {
	ID          primitive.ObjectID
	FromSceneID primitive.ObjectID
	ToSceneID   primitive.ObjectID
	Text        string
	Condition   map[string]any
	Order       int
	CreatedAt   time.Time
}

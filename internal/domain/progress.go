package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HistoryEntry records one step a player took: the scene they were on and,
// when they advanced via a choice, which choice. Metadata is free-form
// (time spent on the scene and similar client-side measurements).
type HistoryEntry struct {
	SceneID   primitive.ObjectID
	ChoiceID  *primitive.ObjectID
	Timestamp time.Time
	Metadata  map[string]any
}

// PlayerProgress tracks one player's run through one scenario. There is at
// most one progress document per (user, scenario) pair.
type PlayerProgress struct {
	ID             primitive.ObjectID
	UserID         primitive.ObjectID
	ScenarioID     primitive.ObjectID
	CurrentSceneID primitive.ObjectID
	History        []HistoryEntry
	IsCompleted    bool
	CompletedAt    *time.Time
	TotalTimeSpent int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// VisitedScenes returns the number of distinct scenes in the history.
func (p *PlayerProgress) VisitedScenes() int {
	seen := make(map[primitive.ObjectID]struct{}, len(p.History))
	for _, e := range p.History {
		seen[e.SceneID] = struct{}{}
	}
	return len(seen)
}

// ProgressPercentage computes how much of the scenario the player has seen,
// given the scenario's total scene count. Capped at 100.
func (p *PlayerProgress) ProgressPercentage(totalScenes int) float64 {
	if totalScenes <= 0 {
		return 0
	}
	pct := float64(p.VisitedScenes()) / float64(totalScenes) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

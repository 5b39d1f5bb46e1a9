// Package levelgen computes level-configuration records from the world catalog.
package levelgen

import "github.com/vovakirdan/worldgen/internal/config"

// ObjectiveType is the win condition kind of an objective.
type ObjectiveType string

const (
	ObjectiveCollectTiles ObjectiveType = "collectTiles"
	ObjectiveReachScore   ObjectiveType = "reachScore"
)

// Objective is one win-condition clause of a level.
// TileType is set only for collectTiles objectives.
type Objective struct {
	Type     ObjectiveType `json:"type"`
	TileType string        `json:"tileType,omitempty"`
	Target   int           `json:"target"`
}

// Level is a complete level-configuration record.
// Field order matches the key order of the data file.
type Level struct {
	ID          int               `json:"id"`
	WorldID     int               `json:"worldId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Difficulty  config.Difficulty `json:"difficulty"`
	GridSize    int               `json:"gridSize"`
	MaxMoves    int               `json:"maxMoves"`
	TargetScore int               `json:"targetScore"`
	Objectives  []Objective       `json:"objectives"`
	EnergyCost  int               `json:"energyCost"`
	Rewards     []string          `json:"rewards"`
}

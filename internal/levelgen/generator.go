package levelgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/worldgen/internal/config"
)

var (
	// ErrUnknownTheme is returned when a world's theme has no name table.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrLevelOutOfRange is returned when the level id has no entry in the theme's name table.
	ErrLevelOutOfRange = errors.New("level id out of range")

	// ErrInvalidDifficulty is returned when a world's difficulty has no tier.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// descriptionObjectives is how many objectives the description text lists.
const descriptionObjectives = 2

// Reward formulas.
const (
	baseCoins       = 50
	coinsPerLevel   = 5
	baseExperience  = 40
	expPerLevel     = 4
	gemLevelDivisor = 3

	// Expert levels above this id gain an extra reachScore objective.
	scoreObjectiveAfter = 7
)

// Generate computes the level record for one level of a world.
// It is a pure function of its inputs.
func Generate(worldID, levelID int, world config.World, cat *config.Catalog) (Level, error) {
	if !world.Difficulty.Valid() {
		return Level{}, fmt.Errorf("levelgen: world %d: %w %q", worldID, ErrInvalidDifficulty, world.Difficulty)
	}
	theme, ok := cat.Theme(world.Theme)
	if !ok {
		return Level{}, fmt.Errorf("levelgen: world %d: %w %q", worldID, ErrUnknownTheme, world.Theme)
	}
	if levelID < 1 || levelID > len(theme.LevelNames) {
		return Level{}, fmt.Errorf("levelgen: world %d level %d: %w (theme %q has %d names)",
			worldID, levelID, ErrLevelOutOfRange, world.Theme, len(theme.LevelNames))
	}

	tier := world.Difficulty.Tier()
	objectives := buildObjectives(levelID, world, tier, cat)

	return Level{
		ID:          levelID,
		WorldID:     worldID,
		Name:        theme.LevelNames[levelID-1],
		Description: describe(theme.Intro, objectives),
		Difficulty:  world.Difficulty,
		GridSize:    tier.GridSize,
		MaxMoves:    tier.BaseMoves + levelID,
		TargetScore: tier.BaseScore + levelID*300,
		Objectives:  objectives,
		EnergyCost:  tier.EnergyCost,
		Rewards:     rewards(levelID),
	}, nil
}

// GenerateWorld computes levels 1..config.LevelsPerWorld of a world, in order.
func GenerateWorld(world config.World, cat *config.Catalog) ([]Level, error) {
	levels := make([]Level, 0, config.LevelsPerWorld)
	for levelID := 1; levelID <= config.LevelsPerWorld; levelID++ {
		lvl, err := Generate(world.ID, levelID, world, cat)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// buildObjectives picks a distinct tile type per collect objective, falling
// back to the full palette once every type has been used.
func buildObjectives(levelID int, world config.World, tier config.Tier, cat *config.Catalog) []Objective {
	objectives := make([]Objective, 0, tier.NumObjectives+1)
	used := make(map[string]bool, len(world.TileTypes))

	for i := 0; i < tier.NumObjectives; i++ {
		available := make([]string, 0, len(world.TileTypes))
		for _, t := range world.TileTypes {
			if !used[t] {
				available = append(available, t)
			}
		}
		if len(available) == 0 {
			available = world.TileTypes
		}

		tileType := available[i%len(available)]
		used[tileType] = true

		objectives = append(objectives, Objective{
			Type:     ObjectiveCollectTiles,
			TileType: tileType,
			Target:   cat.TileTarget(tileType) + levelID*2,
		})
	}

	if world.Difficulty == config.DifficultyExpert && levelID > scoreObjectiveAfter {
		objectives = append(objectives, Objective{
			Type:   ObjectiveReachScore,
			Target: tier.BaseScore + levelID*200,
		})
	}

	return objectives
}

// describe appends the first two objectives to the theme intro.
func describe(intro string, objectives []Objective) string {
	n := min(len(objectives), descriptionObjectives)
	parts := make([]string, n)
	for i, o := range objectives[:n] {
		parts[i] = fmt.Sprintf("%d %s", o.Target, o.TileType)
	}
	return intro + " " + strings.Join(parts, ", ")
}

func rewards(levelID int) []string {
	coins := baseCoins + levelID*coinsPerLevel
	experience := baseExperience + levelID*expPerLevel
	gems := 0
	if levelID%gemLevelDivisor == 0 {
		gems = 1
	}

	out := []string{
		fmt.Sprintf("coins:%d", coins),
		fmt.Sprintf("experience:%d", experience),
	}
	if gems > 0 {
		out = append(out, fmt.Sprintf("gems:%d", gems))
	}
	return out
}

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Difficulty is the difficulty tier of a world.
type Difficulty string

const (
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Tier holds the level parameters shared by every level of a difficulty.
type Tier struct {
	GridSize      int
	EnergyCost    int
	BaseMoves     int
	BaseScore     int
	NumObjectives int
}

// ParseDifficulty converts a tag into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}

// Tier returns the parameter table for the difficulty.
// Callers check Valid first; the catalog loader and levelgen.Generate both
// do, so an unknown value here is a programming error.
func (d Difficulty) Tier() Tier {
	switch d {
	case DifficultyHard:
		return Tier{GridSize: 8, EnergyCost: 2, BaseMoves: 20, BaseScore: 3000, NumObjectives: 2}
	case DifficultyExpert:
		return Tier{GridSize: 9, EnergyCost: 3, BaseMoves: 22, BaseScore: 3500, NumObjectives: 3}
	}
	panic(fmt.Sprintf("config: no tier for difficulty %q", string(d)))
}

// UnmarshalYAML rejects unknown difficulty tags at load time.
func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid world catalog")

// MaxTileTypes is the largest palette a world may declare.
const MaxTileTypes = 4

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e ValidationError) Unwrap() error {
	return ErrInvalidCatalog
}

// Validate checks the catalog so that every lookup the generator makes
// succeeds for level ids 1..LevelsPerWorld.
func Validate(c *Catalog) error {
	if len(c.Worlds) == 0 {
		return ValidationError{Code: "NO_WORLDS", Message: "catalog declares no worlds"}
	}

	seen := make(map[int]bool, len(c.Worlds))
	for _, w := range c.Worlds {
		if err := validateWorld(c, w); err != nil {
			return err
		}
		if seen[w.ID] {
			return ValidationError{
				Code:    "DUPLICATE_WORLD",
				Message: fmt.Sprintf("world %d declared twice", w.ID),
			}
		}
		seen[w.ID] = true
	}

	for tile, target := range c.TileTargets {
		if target <= 0 {
			return ValidationError{
				Code:    "INVALID_TARGET",
				Message: fmt.Sprintf("tile %q has non-positive base target %d", tile, target),
			}
		}
	}

	return nil
}

func validateWorld(c *Catalog, w World) error {
	if w.ID <= 0 {
		return ValidationError{Code: "INVALID_ID", Message: fmt.Sprintf("world id %d must be positive", w.ID)}
	}
	if w.Name == "" {
		return ValidationError{Code: "MISSING_NAME", Message: fmt.Sprintf("world %d has no name", w.ID)}
	}
	if !w.Difficulty.Valid() {
		return ValidationError{
			Code:    "INVALID_DIFFICULTY",
			Message: fmt.Sprintf("world %d has unknown difficulty %q", w.ID, string(w.Difficulty)),
		}
	}
	if len(w.TileTypes) == 0 || len(w.TileTypes) > MaxTileTypes {
		return ValidationError{
			Code:    "INVALID_TILES",
			Message: fmt.Sprintf("world %d declares %d tile types, want 1-%d", w.ID, len(w.TileTypes), MaxTileTypes),
		}
	}
	for _, t := range w.TileTypes {
		if t == "" {
			return ValidationError{Code: "INVALID_TILES", Message: fmt.Sprintf("world %d has an empty tile type", w.ID)}
		}
	}

	theme, ok := c.Themes[w.Theme]
	if !ok {
		return ValidationError{
			Code:    "UNKNOWN_THEME",
			Message: fmt.Sprintf("world %d uses theme %q with no name table", w.ID, w.Theme),
		}
	}
	if theme.Intro == "" {
		return ValidationError{
			Code:    "MISSING_INTRO",
			Message: fmt.Sprintf("theme %q has no description intro", w.Theme),
		}
	}
	if len(theme.LevelNames) != LevelsPerWorld {
		return ValidationError{
			Code:    "NAME_TABLE_SIZE",
			Message: fmt.Sprintf("theme %q has %d level names, want %d", w.Theme, len(theme.LevelNames), LevelsPerWorld),
		}
	}
	return nil
}

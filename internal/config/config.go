// Package config provides YAML-based world catalog loading and the
// difficulty tiers used by the level generator.
package config

// Catalog holds every static table the level generator reads.
// It is loaded once at startup and treated as read-only afterwards.
type Catalog struct {
	Worlds      []World          `yaml:"worlds"`
	Themes      map[string]Theme `yaml:"themes"`
	TileTargets map[string]int   `yaml:"tile_targets"`
}

// World is the static metadata of one world.
type World struct {
	ID         int        `yaml:"id"`
	Name       string     `yaml:"name"`
	Theme      string     `yaml:"theme"`
	TileTypes  []string   `yaml:"tile_types"`
	Colors     []string   `yaml:"colors"`
	Icon       string     `yaml:"icon"`
	Difficulty Difficulty `yaml:"difficulty"`
}

// Theme holds the per-theme texts: the description intro and one name per level.
type Theme struct {
	Intro      string   `yaml:"intro"`
	LevelNames []string `yaml:"level_names"`
}

// LevelsPerWorld is the number of levels generated for every world.
const LevelsPerWorld = 10

// DefaultTileTarget is the base collect target for tile types missing from TileTargets.
const DefaultTileTarget = 20

// World returns the world with the given id.
func (c *Catalog) World(id int) (World, bool) {
	for _, w := range c.Worlds {
		if w.ID == id {
			return w, true
		}
	}
	return World{}, false
}

// Theme returns the theme table for the given tag.
func (c *Catalog) Theme(tag string) (Theme, bool) {
	t, ok := c.Themes[tag]
	return t, ok
}

// TileTarget returns the base collect target for a tile type.
func (c *Catalog) TileTarget(tileType string) int {
	if v, ok := c.TileTargets[tileType]; ok {
		return v
	}
	return DefaultTileTarget
}

// WorldIDs returns the configured world ids in catalog order.
func (c *Catalog) WorldIDs() []int {
	ids := make([]int, len(c.Worlds))
	for i, w := range c.Worlds {
		ids[i] = w.ID
	}
	return ids
}

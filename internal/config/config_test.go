package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedCatalogMatchesBuiltin(t *testing.T) {
	cat, err := ParseCatalog(defaultWorldsYAML)
	if err != nil {
		t.Fatalf("ParseCatalog(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cat, DefaultCatalog()) {
		t.Error("embedded worlds.yaml and DefaultCatalog() differ")
	}
}

func TestDefaultCatalogValid(t *testing.T) {
	if err := Validate(DefaultCatalog()); err != nil {
		t.Fatalf("Validate(DefaultCatalog()) = %v", err)
	}

	ids := DefaultCatalog().WorldIDs()
	want := []int{6, 7, 8, 9, 10}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("WorldIDs() = %v, want %v", ids, want)
	}
}

func TestDifficultyTiers(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       Tier
	}{
		{DifficultyHard, Tier{GridSize: 8, EnergyCost: 2, BaseMoves: 20, BaseScore: 3000, NumObjectives: 2}},
		{DifficultyExpert, Tier{GridSize: 9, EnergyCost: 3, BaseMoves: 22, BaseScore: 3500, NumObjectives: 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			if got := tt.difficulty.Tier(); got != tt.want {
				t.Errorf("Tier() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := ParseDifficulty("expert"); err != nil || d != DifficultyExpert {
		t.Errorf("ParseDifficulty(expert) = %q, %v", d, err)
	}
	if _, err := ParseDifficulty("normal"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestTierPanicsOnUnknownDifficulty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown difficulty")
		}
	}()
	Difficulty("legendary").Tier()
}

func TestTileTargetDefault(t *testing.T) {
	cat := DefaultCatalog()
	if got := cat.TileTarget("gem"); got != 12 {
		t.Errorf("TileTarget(gem) = %d, want 12", got)
	}
	if got := cat.TileTarget("mushroom"); got != DefaultTileTarget {
		t.Errorf("TileTarget(mushroom) = %d, want %d", got, DefaultTileTarget)
	}
}

func TestParseCatalogRejectsUnknownDifficulty(t *testing.T) {
	data := []byte(`
worlds:
  - id: 6
    name: Test
    theme: t
    tile_types: [dew]
    difficulty: nightmare
`)
	_, err := ParseCatalog(data)
	if err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
	if !strings.Contains(err.Error(), "nightmare") {
		t.Errorf("error %q does not name the difficulty", err)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
		code   string
	}{
		{
			name:   "no worlds",
			mutate: func(c *Catalog) { c.Worlds = nil },
			code:   "NO_WORLDS",
		},
		{
			name:   "duplicate world",
			mutate: func(c *Catalog) { c.Worlds[1].ID = c.Worlds[0].ID },
			code:   "DUPLICATE_WORLD",
		},
		{
			name:   "missing theme",
			mutate: func(c *Catalog) { delete(c.Themes, "lost_rainbow") },
			code:   "UNKNOWN_THEME",
		},
		{
			name: "short name table",
			mutate: func(c *Catalog) {
				th := c.Themes["mystic_swamps"]
				th.LevelNames = th.LevelNames[:9]
				c.Themes["mystic_swamps"] = th
			},
			code: "NAME_TABLE_SIZE",
		},
		{
			name: "missing intro",
			mutate: func(c *Catalog) {
				th := c.Themes["burning_lands"]
				th.Intro = ""
				c.Themes["burning_lands"] = th
			},
			code: "MISSING_INTRO",
		},
		{
			name:   "too many tile types",
			mutate: func(c *Catalog) { c.Worlds[0].TileTypes = []string{"a", "b", "c", "d", "e"} },
			code:   "INVALID_TILES",
		},
		{
			name:   "no tile types",
			mutate: func(c *Catalog) { c.Worlds[0].TileTypes = nil },
			code:   "INVALID_TILES",
		},
		{
			name:   "bad difficulty",
			mutate: func(c *Catalog) { c.Worlds[2].Difficulty = "casual" },
			code:   "INVALID_DIFFICULTY",
		},
		{
			name:   "non-positive target",
			mutate: func(c *Catalog) { c.TileTargets["gem"] = 0 },
			code:   "INVALID_TARGET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := DefaultCatalog()
			tt.mutate(cat)

			err := Validate(cat)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("error %v does not wrap ErrInvalidCatalog", err)
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %v is not a ValidationError", err)
			}
			if verr.Code != tt.code {
				t.Errorf("Code = %s, want %s", verr.Code, tt.code)
			}
		})
	}
}

func TestLoadCatalogCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worlds.yaml")
	if err := os.WriteFile(path, defaultWorldsYAML, 0o644); err != nil {
		t.Fatal(err)
	}

	cat, source, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if len(cat.Worlds) != 5 {
		t.Errorf("expected 5 worlds, got %d", len(cat.Worlds))
	}
}

func TestLoadCatalogMissingCustomPath(t *testing.T) {
	_, _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadCatalogFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cat, source, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, want %q", source, SourceEmbedded)
	}
	if _, ok := cat.World(8); !ok {
		t.Error("world 8 missing from embedded catalog")
	}
}

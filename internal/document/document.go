// Package document reads and writes the world-levels JSON data file.
//
// The document is kept as an ordered map so that keys the generator does not
// touch (worlds 1-5, extra top-level fields) are written back in their
// original order.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iancoleman/orderedmap"

	"github.com/vovakirdan/worldgen/internal/levelgen"
)

// Top-level keys of the data file.
const (
	KeyWorlds      = "worlds"
	KeyTotalLevels = "totalLevels"
	KeyWorldsCount = "worldsCount"
)

// DefaultPath is where the game keeps its level data.
const DefaultPath = "assets/data/world_levels.json"

// ErrMalformed is wrapped by every structural problem with the input document.
var ErrMalformed = errors.New("malformed world levels document")

// Document is an in-memory world-levels file.
type Document struct {
	root   *orderedmap.OrderedMap
	worlds *orderedmap.OrderedMap
}

// WorldKey returns the document key for a world id.
func WorldKey(id int) string {
	return "world_" + strconv.Itoa(id)
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: cannot read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("document: %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. The top level must be an object with a
// "worlds" object inside it.
func Parse(data []byte) (*Document, error) {
	root := orderedmap.New()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	raw, ok := root.Get(KeyWorlds)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformed, KeyWorlds)
	}

	var worlds *orderedmap.OrderedMap
	switch w := raw.(type) {
	case orderedmap.OrderedMap:
		worlds = &w
	case *orderedmap.OrderedMap:
		worlds = w
	default:
		return nil, fmt.Errorf("%w: %q is not an object", ErrMalformed, KeyWorlds)
	}
	// Store the pointer so later SetWorld calls are visible through root.
	root.Set(KeyWorlds, worlds)

	return &Document{root: root, worlds: worlds}, nil
}

// SetWorld inserts or replaces the level list of a world.
// A new world key is appended after the existing ones.
func (d *Document) SetWorld(id int, levels []levelgen.Level) {
	d.worlds.Set(WorldKey(id), levels)
}

// HasWorld reports whether the document holds the given world key.
func (d *Document) HasWorld(id int) bool {
	_, ok := d.worlds.Get(WorldKey(id))
	return ok
}

// WorldKeys returns the world keys in document order.
func (d *Document) WorldKeys() []string {
	return d.worlds.Keys()
}

// LevelCount counts the levels stored across all worlds.
func (d *Document) LevelCount() int {
	total := 0
	for _, k := range d.worlds.Keys() {
		v, _ := d.worlds.Get(k)
		switch levels := v.(type) {
		case []levelgen.Level:
			total += len(levels)
		case []interface{}:
			total += len(levels)
		}
	}
	return total
}

// SetSummary overwrites the totalLevels and worldsCount counters.
func (d *Document) SetSummary(totalLevels, worldsCount int) {
	d.root.Set(KeyTotalLevels, totalLevels)
	d.root.Set(KeyWorldsCount, worldsCount)
}

// Summary returns the totalLevels and worldsCount counters.
// Missing or non-numeric counters read as zero.
func (d *Document) Summary() (totalLevels, worldsCount int) {
	return d.intField(KeyTotalLevels), d.intField(KeyWorldsCount)
}

func (d *Document) intField(key string) int {
	v, ok := d.root.Get(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	}
	return 0
}

// Marshal encodes the document with two-space indentation.
// Non-ASCII text is written as literal UTF-8.
func (d *Document) Marshal() ([]byte, error) {
	raw, err := json.Marshal(d.root)
	if err != nil {
		return nil, fmt.Errorf("document: cannot encode: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("document: cannot indent: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the whole document to path. With atomic set, the data goes to a
// temporary file in the same directory which is then renamed over path.
func (d *Document) Save(path string, atomic bool) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}

	if !atomic {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("document: cannot write %s: %w", path, err)
		}
		return nil
	}

	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("document: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("document: cannot write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("document: cannot sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("document: cannot close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("document: cannot set mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("document: cannot replace %s: %w", path, err)
	}
	return nil
}

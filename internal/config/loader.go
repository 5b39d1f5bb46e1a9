package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Catalog sources reported by LoadCatalog.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadCatalog loads and validates the world catalog.
// Search order: customPath -> ~/.worldgen/worlds.yaml -> ./configs/worlds.yaml -> embedded default.
// The second return value names where the catalog came from.
func LoadCatalog(customPath string) (*Catalog, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cat, err := ParseCatalog(data)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cat, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("worlds.yaml"), filepath.Join("configs", "worlds.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cat, err := ParseCatalog(data)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cat, path, nil
	}

	// Use embedded default YAML
	cat, err := ParseCatalog(defaultWorldsYAML)
	if err != nil {
		return DefaultCatalog(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cat, SourceEmbedded, nil
}

// ParseCatalog decodes a YAML catalog and validates it.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".worldgen", filename)
}

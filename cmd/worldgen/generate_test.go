package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const seedDoc = `{"worlds": {"world_1": []}, "totalLevels": 10, "worldsCount": 1}`

// setupGenerate points HOME and the data file at a temp tree and resets the
// global flags to their defaults.
func setupGenerate(t *testing.T) (root, dataPath string) {
	t.Helper()
	root = t.TempDir()
	home := filepath.Join(root, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", home)

	dataPath = filepath.Join(root, "data", "world_levels.json")
	if err := os.MkdirAll(filepath.Dir(dataPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dataPath, []byte(seedDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	flagDataPath = dataPath
	flagConfig = ""
	flagDBPath = "~/.worldgen/history.db"
	flagHistory = false
	flagVerbose = false
	flagDryRun = false
	flagRecount = false
	flagAtomic = false
	return root, dataPath
}

func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return files
}

func TestGenerateDefaultTouchesOnlyDataFile(t *testing.T) {
	root, dataPath := setupGenerate(t)

	runGenerate(nil, nil)

	files := listFiles(t, root)
	if len(files) != 1 || files[0] != dataPath {
		t.Errorf("files after default run = %v, want only %s", files, dataPath)
	}
	if _, err := os.Stat(filepath.Join(root, "home", ".worldgen")); !os.IsNotExist(err) {
		t.Errorf("~/.worldgen should not exist, stat err = %v", err)
	}
}

func TestGenerateWithHistoryRecordsRun(t *testing.T) {
	root, _ := setupGenerate(t)
	flagHistory = true

	runGenerate(nil, nil)

	dbPath := filepath.Join(root, "home", ".worldgen", "history.db")
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("expected history database at %s: %v", dbPath, err)
	}
}

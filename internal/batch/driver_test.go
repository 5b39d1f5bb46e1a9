package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/worldgen/internal/config"
	"github.com/vovakirdan/worldgen/internal/document"
)

const seedDoc = `{
  "worlds": {
    "world_1": [{"id": 1, "worldId": 1, "name": "Premier Pas"}],
    "world_2": [{"id": 1, "worldId": 2, "name": "Forêt"}]
  },
  "totalLevels": 50,
  "worldsCount": 5
}`

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world_levels.json")
	if err := os.WriteFile(path, []byte(seedDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

type fakeRecorder struct {
	runs []RunData
	err  error
}

func (f *fakeRecorder) RecordRun(data RunData) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, data)
	return int64(len(f.runs)), nil
}

func TestRunWritesAllWorlds(t *testing.T) {
	path := writeSeed(t)
	var out bytes.Buffer

	res, err := Run(Options{Path: path, Catalog: config.DefaultCatalog(), Out: &out})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Written {
		t.Error("expected file to be written")
	}
	if len(res.Worlds) != 5 {
		t.Fatalf("expected 5 worlds, got %d", len(res.Worlds))
	}
	if len(res.Levels()) != 50 {
		t.Errorf("expected 50 levels, got %d", len(res.Levels()))
	}

	doc, err := document.Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	want := []string{"world_1", "world_2", "world_6", "world_7", "world_8", "world_9", "world_10"}
	got := doc.WorldKeys()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("WorldKeys() = %v, want %v", got, want)
	}

	total, worlds := doc.Summary()
	if total != FixedTotalLevels || worlds != FixedWorldsCount {
		t.Errorf("Summary() = %d/%d, want %d/%d", total, worlds, FixedTotalLevels, FixedWorldsCount)
	}

	text := out.String()
	if strings.Count(text, "✅ Monde") != 5 {
		t.Errorf("expected 5 progress lines, got:\n%s", text)
	}
	if !strings.Contains(text, "✅ Monde 8 (Glacier Éternel): 10 niveaux générés") {
		t.Errorf("missing world 8 progress line:\n%s", text)
	}
	if !strings.Contains(text, "📊 Total: 100 niveaux dans 10 mondes") {
		t.Errorf("missing summary line:\n%s", text)
	}
	if !strings.Contains(text, "💾 Fichier sauvegardé: "+path) {
		t.Errorf("missing save line:\n%s", text)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	path := writeSeed(t)
	cat := config.DefaultCatalog()

	if _, err := Run(Options{Path: path, Catalog: cat}); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Run(Options{Path: path, Catalog: cat}); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("second run changed the file")
	}
}

func TestRunPassesThroughExistingWorlds(t *testing.T) {
	path := writeSeed(t)
	if _, err := Run(Options{Path: path, Catalog: config.DefaultCatalog()}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Worlds map[string][]map[string]any `json:"worlds"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if name := decoded.Worlds["world_2"][0]["name"]; name != "Forêt" {
		t.Errorf("world_2 name = %v, want Forêt", name)
	}
	if len(decoded.Worlds["world_9"]) != 10 {
		t.Errorf("world_9 has %d levels", len(decoded.Worlds["world_9"]))
	}
}

func TestRunReportsReplacedWorlds(t *testing.T) {
	path := writeSeed(t)
	cat := config.DefaultCatalog()

	first, err := Run(Options{Path: path, Catalog: cat})
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range first.Worlds {
		if w.Replaced {
			t.Errorf("world %d: first run should add, not replace", w.World.ID)
		}
	}

	second, err := Run(Options{Path: path, Catalog: cat})
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range second.Worlds {
		if !w.Replaced {
			t.Errorf("world %d: second run should replace", w.World.ID)
		}
	}
}

func TestRunTouchesOnlyDataFile(t *testing.T) {
	path := writeSeed(t)
	dir := filepath.Dir(path)

	if _, err := Run(Options{Path: path, Catalog: config.DefaultCatalog(), Atomic: true}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(path) {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory holds %v, want only %s", names, filepath.Base(path))
	}
}

func TestRunRecount(t *testing.T) {
	path := writeSeed(t)

	res, err := Run(Options{Path: path, Catalog: config.DefaultCatalog(), Recount: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalLevels != 52 || res.WorldsCount != 7 {
		t.Errorf("counters = %d/%d, want 52/7", res.TotalLevels, res.WorldsCount)
	}
}

func TestRunDryRun(t *testing.T) {
	path := writeSeed(t)
	var out bytes.Buffer

	res, err := Run(Options{Path: path, Catalog: config.DefaultCatalog(), DryRun: true, Out: &out})
	if err != nil {
		t.Fatal(err)
	}
	if res.Written {
		t.Error("dry run should not write")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != seedDoc {
		t.Error("dry run modified the file")
	}
	if strings.Contains(out.String(), "💾") {
		t.Error("dry run should not report a save")
	}
}

func TestRunMissingFile(t *testing.T) {
	_, err := Run(Options{
		Path:    filepath.Join(t.TempDir(), "missing.json"),
		Catalog: config.DefaultCatalog(),
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestRunMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"levels": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Run(Options{Path: path, Catalog: config.DefaultCatalog()})
	if !errors.Is(err, document.ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}
}

func TestRunRecordsHistory(t *testing.T) {
	path := writeSeed(t)
	rec := &fakeRecorder{}

	res, err := Run(Options{
		Path:          path,
		Catalog:       config.DefaultCatalog(),
		CatalogSource: config.SourceEmbedded,
		Recorder:      rec,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.RunID != 1 {
		t.Errorf("RunID = %d, want 1", res.RunID)
	}
	if len(rec.runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(rec.runs))
	}

	run := rec.runs[0]
	if run.DataPath != path || run.CatalogSource != config.SourceEmbedded {
		t.Errorf("recorded run = %+v", run)
	}
	if len(run.Levels) != 50 || len(run.WorldIDs) != 5 {
		t.Errorf("recorded %d levels / %d worlds", len(run.Levels), len(run.WorldIDs))
	}
}

func TestRunRecorderFailureIsNotFatal(t *testing.T) {
	path := writeSeed(t)
	rec := &fakeRecorder{err: errors.New("disk full")}

	res, err := Run(Options{Path: path, Catalog: config.DefaultCatalog(), Recorder: rec})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Written || res.RunID != 0 {
		t.Errorf("unexpected result: written=%v runID=%d", res.Written, res.RunID)
	}
}

func TestRunRequiresCatalog(t *testing.T) {
	if _, err := Run(Options{Path: writeSeed(t)}); err == nil {
		t.Error("expected error without catalog")
	}
}

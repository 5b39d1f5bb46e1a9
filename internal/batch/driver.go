// Package batch runs the generation pass: load the data file, generate every
// configured world, merge the results and write the file back.
package batch

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/worldgen/internal/config"
	"github.com/vovakirdan/worldgen/internal/document"
	"github.com/vovakirdan/worldgen/internal/levelgen"
)

// Counters written when Options.Recount is false.
const (
	FixedTotalLevels = 100
	FixedWorldsCount = 10
)

// RunData describes a finished run for history recording.
type RunData struct {
	DataPath      string
	CatalogSource string
	WorldIDs      []int
	TotalLevels   int
	WorldsCount   int
	DryRun        bool
	Levels        []levelgen.Level
}

// RunRecorder persists run history. Implemented by storage.Store.
type RunRecorder interface {
	RecordRun(data RunData) (int64, error)
}

// Options configures a run.
type Options struct {
	// Path is the data file; empty means document.DefaultPath.
	Path string

	Catalog       *config.Catalog
	CatalogSource string

	// Recount computes the counters from the merged document instead of
	// writing the fixed values.
	Recount bool

	// DryRun generates and reports but leaves the file untouched.
	DryRun bool

	// Atomic writes through a temporary file and rename.
	Atomic bool

	// Out receives the progress lines. Nil discards them.
	Out io.Writer

	Logger   *log.Logger
	Recorder RunRecorder
}

// WorldResult holds the levels generated for one world.
type WorldResult struct {
	World  config.World
	Levels []levelgen.Level
	// Replaced is set when the document already held the world.
	Replaced bool
}

// Result summarizes a run.
type Result struct {
	Path        string
	Worlds      []WorldResult
	TotalLevels int
	WorldsCount int
	Written     bool
	RunID       int64
}

// Run performs one generation pass.
func Run(opts Options) (Result, error) {
	path := opts.Path
	if path == "" {
		path = document.DefaultPath
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Catalog == nil {
		return Result{}, fmt.Errorf("batch: no world catalog")
	}

	res := Result{Path: path}

	doc, err := document.Load(path)
	if err != nil {
		return res, err
	}
	logger.Debug("loaded document", "path", path, "worlds", len(doc.WorldKeys()))

	for _, w := range opts.Catalog.Worlds {
		levels, err := levelgen.GenerateWorld(w, opts.Catalog)
		if err != nil {
			return res, fmt.Errorf("batch: %w", err)
		}

		replaced := doc.HasWorld(w.ID)
		doc.SetWorld(w.ID, levels)
		res.Worlds = append(res.Worlds, WorldResult{World: w, Levels: levels, Replaced: replaced})
		fmt.Fprintf(out, "✅ Monde %d (%s): %d niveaux générés\n", w.ID, w.Name, len(levels))
		logger.Debug("generated world", "id", w.ID, "theme", w.Theme, "difficulty", w.Difficulty, "replaced", replaced)
	}

	if opts.Recount {
		doc.SetSummary(doc.LevelCount(), len(doc.WorldKeys()))
	} else {
		doc.SetSummary(FixedTotalLevels, FixedWorldsCount)
	}
	res.TotalLevels, res.WorldsCount = doc.Summary()

	if opts.DryRun {
		logger.Info("dry run, file not written", "path", path)
	} else {
		if err := doc.Save(path, opts.Atomic); err != nil {
			return res, err
		}
		res.Written = true
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "🎉 Génération terminée !")
	fmt.Fprintf(out, "📊 Total: %d niveaux dans %d mondes\n", res.TotalLevels, res.WorldsCount)
	if res.Written {
		fmt.Fprintf(out, "💾 Fichier sauvegardé: %s\n", path)
	}

	if opts.Recorder != nil {
		id, err := opts.Recorder.RecordRun(res.runData(opts))
		if err != nil {
			logger.Warn("could not record run history", "error", err)
		} else {
			res.RunID = id
			logger.Debug("recorded run", "id", id)
		}
	}

	return res, nil
}

// Levels returns every generated level in world order.
func (r Result) Levels() []levelgen.Level {
	var all []levelgen.Level
	for _, w := range r.Worlds {
		all = append(all, w.Levels...)
	}
	return all
}

func (r Result) runData(opts Options) RunData {
	ids := make([]int, len(r.Worlds))
	for i, w := range r.Worlds {
		ids[i] = w.World.ID
	}
	return RunData{
		DataPath:      r.Path,
		CatalogSource: opts.CatalogSource,
		WorldIDs:      ids,
		TotalLevels:   r.TotalLevels,
		WorldsCount:   r.WorldsCount,
		DryRun:        opts.DryRun,
		Levels:        r.Levels(),
	}
}

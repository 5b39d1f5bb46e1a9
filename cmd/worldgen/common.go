package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/worldgen/internal/config"
	"github.com/vovakirdan/worldgen/internal/levelgen"
	"github.com/vovakirdan/worldgen/internal/storage"
	"github.com/vovakirdan/worldgen/internal/tui"
)

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "worldgen",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// mustCatalog loads the world catalog or exits.
func mustCatalog(logger *log.Logger) (*config.Catalog, string) {
	cat, source, err := config.LoadCatalog(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world catalog: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("loaded world catalog", "source", source, "worlds", len(cat.Worlds))
	return cat, source
}

// openHistory opens the history store when --history is set.
// Failures are logged and yield nil.
func openHistory(logger *log.Logger) *storage.Store {
	if !flagHistory {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return nil
	}
	return store
}

// stdoutIsTerminal reports whether styled output should be used.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// generateAll computes every configured world without touching the data file.
func generateAll(cat *config.Catalog) ([]tui.BrowserWorld, error) {
	worlds := make([]tui.BrowserWorld, 0, len(cat.Worlds))
	for _, w := range cat.Worlds {
		levels, err := levelgen.GenerateWorld(w, cat)
		if err != nil {
			return nil, err
		}
		worlds = append(worlds, tui.BrowserWorld{World: w, Levels: levels})
	}
	return worlds, nil
}

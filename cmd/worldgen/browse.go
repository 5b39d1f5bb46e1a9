package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/worldgen/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse generated levels interactively",
	Long: `Open a terminal browser over the levels the catalog generates.
The data file is not read or written.

Controls:
  Left/Right/h/l  - Switch world
  Up/Down/j/k     - Select level
  Q/Esc           - Quit`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cat, _ := mustCatalog(logger)

	worlds, err := generateAll(cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.RunBrowser(worlds, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

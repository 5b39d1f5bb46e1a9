package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/worldgen/internal/config"
	"github.com/vovakirdan/worldgen/internal/levelgen"
	"github.com/vovakirdan/worldgen/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show <world> [level]",
	Short: "Show generated levels",
	Long: `Compute and print the levels of a world, or a single level, from the
catalog. The data file is not read or written.

Examples:
  worldgen show 6
  worldgen show 8 9`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cat, _ := mustCatalog(logger)

	worldID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid world id %q\n", args[0])
		os.Exit(1)
	}
	world, ok := cat.World(worldID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown world %d\n", worldID)
		fmt.Fprintln(os.Stderr, "Run 'worldgen list' to see configured worlds.")
		os.Exit(1)
	}

	var levels []levelgen.Level
	if len(args) == 2 {
		levelID, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid level id %q\n", args[1])
			os.Exit(1)
		}
		lvl, err := levelgen.Generate(worldID, levelID, world, cat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		levels = []levelgen.Level{lvl}
	} else {
		levels, err = levelgen.GenerateWorld(world, cat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	printLevels(world, levels)
}

func printLevels(world config.World, levels []levelgen.Level) {
	styled := stdoutIsTerminal()
	for i, lvl := range levels {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(tui.RenderLevelCard(world, lvl, styled))
	}
}

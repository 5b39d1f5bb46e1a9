package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/worldgen/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [run]",
	Short: "Show recorded generation runs",
	Long: `Without an argument, list the most recent generation runs.
With a run id, list the levels that run produced.

Runs are recorded by 'worldgen generate --history'.

Examples:
  worldgen history
  worldgen history --clear
  worldgen history --limit 20
  worldgen history 3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete every recorded run")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
			os.Exit(1)
		}
		showRun(store, id)
		return
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'worldgen generate --history' to record the first one.")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-14s  %-7s  %s\n", "Run", "Date", "Worlds", "Levels", "File")
	fmt.Printf("  %-4s  %-16s  %-14s  %-7s  %s\n", "---", "----", "------", "------", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		file := r.DataPath
		if r.DryRun {
			file += " (dry run)"
		}
		fmt.Printf("  %-4d  %-16s  %-14s  %-7d  %s\n", r.ID, dateStr, formatIDs(r.WorldIDs), r.TotalLevels, file)
	}
}

func showRun(store *storage.Store, id int64) {
	run, err := store.RunByID(id)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: no run with id %d\n", id)
		os.Exit(1)
	}

	levels, err := store.RunLevels(id)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %d - %s\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("File: %s  Catalog: %s  Counters: %d levels / %d worlds\n",
		run.DataPath, run.CatalogSource, run.TotalLevels, run.WorldsCount)
	fmt.Println()

	fmt.Printf("  %-6s  %-26s  %-6s  %-5s  %s\n", "Level", "Name", "Tier", "Moves", "Score")
	fmt.Printf("  %-6s  %-26s  %-6s  %-5s  %s\n", "-----", "----", "----", "-----", "-----")
	for _, sl := range levels {
		fmt.Printf("  %-6s  %-26s  %-6s  %-5d  %d\n",
			fmt.Sprintf("%d-%d", sl.WorldID, sl.LevelID), sl.Name,
			sl.Level.Difficulty, sl.Level.MaxMoves, sl.Level.TargetScore)
	}
}

func formatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

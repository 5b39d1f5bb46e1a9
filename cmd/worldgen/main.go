// worldgen generates the level data for worlds 6-10 of the puzzle game and
// merges it into the game's world levels file.
//
// Usage:
//
//	worldgen                       - Same as 'worldgen generate'
//	worldgen generate              - Generate worlds and write the data file
//	worldgen list                  - List configured worlds
//	worldgen show <world> [level]  - Show generated level(s)
//	worldgen browse                - Browse generated levels interactively
//	worldgen history [run]         - Show recorded generation runs
//
// Global flags:
//
//	--data <path>    - World levels file (default: assets/data/world_levels.json)
//	--config <path>  - World catalog YAML
//	--db <path>      - History database (default: ~/.worldgen/history.db)
//	--history        - Record generate runs in the history database
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/worldgen/internal/document"
)

var (
	// Global flags
	flagDataPath  string
	flagConfig    string
	flagDBPath    string
	flagHistory   bool
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "worldgen",
	Short: "Generate level data for worlds 6-10",
	Long: `worldgen computes the level configuration (grid, moves, objectives,
rewards, names) of worlds 6 to 10 and merges it into the game's
world levels file. Run without a command it generates.

Available commands:
  generate - Generate worlds and write the data file
  list     - List configured worlds
  show     - Show generated levels
  browse   - Browse generated levels interactively
  history  - Show recorded generation runs

Examples:
  worldgen
  worldgen generate --dry-run
  worldgen show 8 9
  worldgen history`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDataPath, "data", document.DefaultPath, "Path to world levels JSON file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom world catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.worldgen/history.db", "Path to run history database")
	rootCmd.PersistentFlags().BoolVar(&flagHistory, "history", false, "Record generate runs in the history database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// The bare command generates, so it takes the generate flags too.
	addGenerateFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(historyCmd)
}

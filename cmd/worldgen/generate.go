package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/worldgen/internal/batch"
)

var (
	flagDryRun  bool
	flagRecount bool
	flagAtomic  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate worlds and write the data file",
	Long: `Generate the 10 levels of every configured world, store them under
"world_<id>" in the data file and write the file back. Worlds already in
the file that are not in the catalog are kept as they are.

By default totalLevels and worldsCount are set to 100 and 10. With
--recount they are computed from the merged file instead.

Examples:
  worldgen generate
  worldgen generate --dry-run
  worldgen generate --data ./world_levels.json --atomic
  worldgen generate --config ./my-worlds.yaml --recount`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Generate and report without writing the file")
	cmd.Flags().BoolVar(&flagRecount, "recount", false, "Compute totalLevels/worldsCount from the merged file")
	cmd.Flags().BoolVar(&flagAtomic, "atomic", false, "Write through a temporary file and rename")
}

func runGenerate(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cat, source := mustCatalog(logger)

	opts := batch.Options{
		Path:          flagDataPath,
		Catalog:       cat,
		CatalogSource: source,
		Recount:       flagRecount,
		DryRun:        flagDryRun,
		Atomic:        flagAtomic,
		Out:           os.Stdout,
		Logger:        logger,
	}

	store := openHistory(logger)
	if store != nil {
		opts.Recorder = store
	}

	_, err := batch.Run(opts)
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

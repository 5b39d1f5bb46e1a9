package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/worldgen/internal/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured worlds",
	Long:  `Shows the worlds of the loaded catalog with their theme, tier and tile palette.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cat, source := mustCatalog(logger)

	if len(cat.Worlds) == 0 {
		fmt.Println("No worlds configured.")
		return
	}

	fmt.Printf("Worlds (%s):\n", source)
	fmt.Println()
	fmt.Println(tui.RenderWorldTable(cat, stdoutIsTerminal()))
	fmt.Println()
	fmt.Println("Run 'worldgen show <id>' to see a world's levels.")
}

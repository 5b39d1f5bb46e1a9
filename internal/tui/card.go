// Package tui renders generated levels for the terminal: static lipgloss
// cards for the show command and a Bubble Tea browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/worldgen/internal/config"
	"github.com/vovakirdan/worldgen/internal/levelgen"
)

const cardWidth = 56

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// accent returns the world's first palette color, or a neutral fallback.
func accent(w config.World) lipgloss.Color {
	if len(w.Colors) > 0 {
		return lipgloss.Color(w.Colors[0])
	}
	return lipgloss.Color("229")
}

// RenderLevelCard renders one level. With styled false the card is plain
// text suitable for pipes.
func RenderLevelCard(w config.World, lvl levelgen.Level, styled bool) string {
	if !styled {
		return plainCard(w, lvl)
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent(w)).
		Render(fmt.Sprintf("%d-%d  %s", lvl.WorldID, lvl.ID, lvl.Name))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(lipgloss.NewStyle().Width(cardWidth - 4).Render(lvl.Description)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("Difficulty", string(lvl.Difficulty))
	row("Grid", fmt.Sprintf("%dx%d", lvl.GridSize, lvl.GridSize))
	row("Moves", fmt.Sprintf("%d", lvl.MaxMoves))
	row("Score", fmt.Sprintf("%d", lvl.TargetScore))
	row("Energy", fmt.Sprintf("%d", lvl.EnergyCost))

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Objectives"))
	b.WriteString("\n")
	for _, o := range lvl.Objectives {
		b.WriteString("  • ")
		b.WriteString(objectiveText(o))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", "Rewards")))
	b.WriteString(strings.Join(lvl.Rewards, "  "))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent(w)).
		Width(cardWidth).
		Padding(0, 1).
		Render(b.String())
}

func plainCard(w config.World, lvl levelgen.Level) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d-%d %s (%s)\n", lvl.WorldID, lvl.ID, lvl.Name, w.Name)
	fmt.Fprintf(&b, "  %s\n", lvl.Description)
	fmt.Fprintf(&b, "  difficulty=%s grid=%d moves=%d score=%d energy=%d\n",
		lvl.Difficulty, lvl.GridSize, lvl.MaxMoves, lvl.TargetScore, lvl.EnergyCost)
	for _, o := range lvl.Objectives {
		fmt.Fprintf(&b, "  - %s\n", objectiveText(o))
	}
	fmt.Fprintf(&b, "  rewards: %s", strings.Join(lvl.Rewards, ", "))
	return b.String()
}

func objectiveText(o levelgen.Objective) string {
	switch o.Type {
	case levelgen.ObjectiveCollectTiles:
		return fmt.Sprintf("collect %d %s", o.Target, o.TileType)
	case levelgen.ObjectiveReachScore:
		return fmt.Sprintf("reach %d points", o.Target)
	}
	return fmt.Sprintf("%s %d", o.Type, o.Target)
}

// RenderWorldTable renders the catalog's worlds as a table.
func RenderWorldTable(cat *config.Catalog, styled bool) string {
	header := fmt.Sprintf("  %-4s  %-22s  %-18s  %-8s  %s", "ID", "Name", "Theme", "Tier", "Tiles")
	sep := fmt.Sprintf("  %-4s  %-22s  %-18s  %-8s  %s", "--", "----", "-----", "----", "-----")

	var b strings.Builder
	if styled {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	} else {
		b.WriteString(header)
	}
	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n")

	for _, w := range cat.Worlds {
		name := padRunes(w.Name, 22)
		if styled {
			name = lipgloss.NewStyle().Foreground(accent(w)).Render(name)
		}
		fmt.Fprintf(&b, "  %-4d  %s  %-18s  %-8s  %s\n",
			w.ID, name, w.Theme, w.Difficulty, strings.Join(w.TileTypes, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// padRunes pads s to n display columns. Padding happens before styling
// since fmt widths would count the ANSI escapes.
func padRunes(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

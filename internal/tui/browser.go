package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/worldgen/internal/config"
	"github.com/vovakirdan/worldgen/internal/levelgen"
)

// Browser layout constants
const (
	minWidthForCard = 110 // Minimum width to show the level card beside the table
	tableWidth      = 48
)

// BrowserWorld is one world with its generated levels.
type BrowserWorld struct {
	World  config.World
	Levels []levelgen.Level
}

// BrowserKeyMap defines the key bindings for the level browser.
type BrowserKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextWorld key.Binding
	PrevWorld key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevWorld, k.NextWorld, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevWorld, k.NextWorld},
		{k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev level"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next level"),
		),
		NextWorld: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next world"),
		),
		PrevWorld: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev world"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for browsing generated levels.
type BrowserModel struct {
	worlds      []BrowserWorld
	worldCursor int
	table       table.Model
	help        help.Model
	keys        BrowserKeyMap
	width       int
	height      int
	quitting    bool
}

// NewBrowserModel creates a new browser model.
func NewBrowserModel(worlds []BrowserWorld, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		worlds: worlds,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// RunBrowser runs the browser until the user quits.
func RunBrowser(worlds []BrowserWorld, width, height int) error {
	p := tea.NewProgram(NewBrowserModel(worlds, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// createTable creates the level table sized to the window.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 24},
		{Title: "Moves", Width: 5},
		{Title: "Score", Width: 6},
	}

	height := m.height - 8 // Leave room for header, tabs, and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the current world's levels.
func (m *BrowserModel) updateTableRows() {
	var rows []table.Row
	if len(m.worlds) > 0 {
		for _, lvl := range m.worlds[m.worldCursor].Levels {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", lvl.ID),
				lvl.Name,
				fmt.Sprintf("%d", lvl.MaxMoves),
				fmt.Sprintf("%d", lvl.TargetScore),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// WorldCursor returns the index of the selected world.
func (m BrowserModel) WorldCursor() int {
	return m.worldCursor
}

// SelectedLevel returns the level under the table cursor.
func (m BrowserModel) SelectedLevel() (levelgen.Level, bool) {
	if len(m.worlds) == 0 {
		return levelgen.Level{}, false
	}
	levels := m.worlds[m.worldCursor].Levels
	i := m.table.Cursor()
	if i < 0 || i >= len(levels) {
		return levelgen.Level{}, false
	}
	return levels[i], true
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextWorld):
			if len(m.worlds) > 0 {
				m.worldCursor = (m.worldCursor + 1) % len(m.worlds)
				m.updateTableRows()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevWorld):
			if len(m.worlds) > 0 {
				m.worldCursor--
				if m.worldCursor < 0 {
					m.worldCursor = len(m.worlds) - 1
				}
				m.updateTableRows()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.worlds) == 0 {
		return "No worlds configured.\n"
	}

	current := m.worlds[m.worldCursor].World
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent(current))
	b.WriteString(titleStyle.Render(fmt.Sprintf("WORLD %d - %s", current.ID, current.Name)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	tableRendered := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(tableWidth).
		Render(m.table.View())

	lvl, ok := m.SelectedLevel()
	switch {
	case ok && m.width >= minWidthForCard:
		card := RenderLevelCard(current, lvl, true)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", card))
	case ok:
		b.WriteString(tableRendered)
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(lvl.Description))
	default:
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders one tab per world, highlighting the current one.
func (m BrowserModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.worlds))
	for i, w := range m.worlds {
		label := fmt.Sprintf("%d", w.World.ID)
		if i == m.worldCursor {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(" " + label + " ")
		}
	}
	return strings.Join(tabs, " ")
}

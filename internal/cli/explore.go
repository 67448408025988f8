package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/feldi/pocketcube"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactive state-space explorer",
	Long: `Walk the pocket cube state space interactively.

Keyboard shortcuts:
  r / u / b   - turn the right/top/back face clockwise
  R / U / B   - counter-clockwise
  backspace   - undo the last move
  n           - reset to the solved state
  q/Esc       - quit`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

// Styles
var (
	exploreTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	exploreHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// keyActions maps explorer keys to actions.
var keyActions = map[string]pocketcube.Action{
	"r": pocketcube.R,
	"u": pocketcube.T,
	"b": pocketcube.B,
	"R": pocketcube.RPrime,
	"U": pocketcube.TPrime,
	"B": pocketcube.BPrime,
}

// Model
type exploreModel struct {
	state    pocketcube.State
	moves    []pocketcube.Action
	quitting bool
}

func newExploreModel() *exploreModel {
	return &exploreModel{state: pocketcube.Identity()}
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "n":
			m.state = pocketcube.Identity()
			m.moves = nil

		case "backspace":
			if n := len(m.moves); n > 0 {
				last := m.moves[n-1]
				m.state = pocketcube.Transform(m.state, last.Inverse())
				m.moves = m.moves[:n-1]
			}

		default:
			if a, ok := keyActions[key]; ok {
				m.state = pocketcube.Transform(m.state, a)
				m.moves = append(m.moves, a)
			}
		}
	}
	return m, nil
}

func (m *exploreModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(exploreTitleStyle.Render("Pocket Cube Explorer"))
	b.WriteString("\n\n")

	b.WriteString(renderNet(pocketcube.Render(m.state)))
	b.WriteString("\n")

	if m.state.IsGoal() {
		b.WriteString(goalStyle.Render("SOLVED"))
	} else {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%d moves from start", len(m.moves))))
	}
	b.WriteString("\n")

	if len(m.moves) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(m.moves) > 20 {
			start = len(m.moves) - 20
			b.WriteString("... ")
		}
		b.WriteString(movesStyle.Render(pocketcube.FormatActions(m.moves[start:])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(exploreHelpStyle.Render("Keys: r/u/b turn  R/U/B inverse  backspace=undo  n=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runExplore(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newExploreModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/feldi/pocketcube"
)

// Sticker styles per color, rendered as colored blocks with the color
// letter for terminals without background support.
var stickerStyles = map[pocketcube.Color]lipgloss.Style{
	pocketcube.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
	pocketcube.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
	pocketcube.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
	pocketcube.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208")),
	pocketcube.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")),
	pocketcube.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")),
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	goalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	movesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// sticker renders one colored cell.
func sticker(c pocketcube.Color) string {
	if style, ok := stickerStyles[c]; ok {
		return style.Render(" " + c.String() + " ")
	}
	return " " + c.String() + " "
}

// renderNet draws the unfolded cube as a colored net: top, then
// left/front/right/back side by side, then bottom.
func renderNet(r pocketcube.RenderedState) string {
	var b strings.Builder

	pad := strings.Repeat(" ", 6)
	for row := 0; row < 2; row++ {
		b.WriteString(pad)
		for col := 0; col < 2; col++ {
			b.WriteString(sticker(r.Top[row*2+col]))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 2; row++ {
		for _, face := range [][4]pocketcube.Color{r.Left, r.Front, r.Right, r.Back} {
			for col := 0; col < 2; col++ {
				b.WriteString(sticker(face[row*2+col]))
			}
		}
		b.WriteString("\n")
	}
	for row := 0; row < 2; row++ {
		b.WriteString(pad)
		for col := 0; col < 2; col++ {
			b.WriteString(sticker(r.Bottom[row*2+col]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// describeState renders the net plus a goal-status line.
func describeState(s pocketcube.State) string {
	out := renderNet(pocketcube.Render(s))
	if s.IsGoal() {
		out += goalStyle.Render("solved") + "\n"
	} else {
		out += labelStyle.Render("not solved") + "\n"
	}
	return out
}

package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and symbols for terminal output using lipgloss
type Theme struct {
	Plain  lipgloss.Style
	Bold   lipgloss.Style
	Green  lipgloss.Style
	Yellow lipgloss.Style
	Red    lipgloss.Style
	Dim    lipgloss.Style

	Bullet string
	Arrow  string
}

// NewTheme creates a theme rendered for w. Colors are dropped when w is not a
// terminal.
func NewTheme(w io.Writer) *Theme {
	r := lipgloss.NewRenderer(w)

	return &Theme{
		Plain:  r.NewStyle(),
		Bold:   r.NewStyle().Bold(true),
		Green:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Yellow: r.NewStyle().Foreground(lipgloss.Color("3")),
		Red:    r.NewStyle().Foreground(lipgloss.Color("1")),
		Dim:    r.NewStyle().Faint(true),

		Bullet: "•",
		Arrow:  "→",
	}
}

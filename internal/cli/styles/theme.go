// Package styles renders CLI output with lipgloss.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds lipgloss colors and the styles built from them.
type Theme struct {
	Background     lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	Badge        lipgloss.Style
	BadgeMuted   lipgloss.Style
	Box          lipgloss.Style
}

// NewTheme creates the dark theme for output written to w. Styles degrade
// to plain text when w is not a color terminal.
func NewTheme(w io.Writer) *Theme {
	r := lipgloss.NewRenderer(w)
	t := &Theme{
		Background:     lipgloss.Color("#0a0a0b"),
		SurfaceVariant: lipgloss.Color("#2d2d2d"),
		Text:           lipgloss.Color("#ffffff"),
		Muted:          lipgloss.Color("#909090"),
		Accent:         lipgloss.Color("#4ade80"),
		Border:         lipgloss.Color("#333333"),
		Error:          lipgloss.Color("#ef4444"),
		Warning:        lipgloss.Color("#f59e0b"),
	}
	t.buildStyles(r)
	return t
}

func (t *Theme) buildStyles(r *lipgloss.Renderer) {
	t.Title = r.NewStyle().Foreground(t.Text).Bold(true)
	t.Subtle = r.NewStyle().Foreground(t.Muted)
	t.Highlight = r.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = r.NewStyle().Foreground(t.Error)
	t.WarningStyle = r.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = r.NewStyle().Foreground(t.Accent)

	t.Badge = r.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)
	t.BadgeMuted = r.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	t.Box = r.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

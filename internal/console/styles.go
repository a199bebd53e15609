package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the console text styles. The renderer is bound to the output
// writer, so styling is dropped automatically when it is not a terminal.
type styles struct {
	heading   lipgloss.Style
	success   lipgloss.Style
	failure   lipgloss.Style
	full      lipgloss.Style
	available lipgloss.Style
	subtle    lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		plain := r.NewStyle()
		return styles{heading: plain, success: plain, failure: plain, full: plain, available: plain, subtle: plain}
	}
	return styles{
		heading:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		success:   r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		failure:   r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		full:      r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		available: r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		subtle:    r.NewStyle().Faint(true),
	}
}

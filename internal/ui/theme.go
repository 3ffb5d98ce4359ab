package ui

import "github.com/charmbracelet/lipgloss"

// Palette bundles the styles a month grid is drawn with.
type Palette struct {
	Header  lipgloss.Style
	Current lipgloss.Style
	Task    lipgloss.Style
	Today   lipgloss.Style
	Plain   lipgloss.Style
}

// NewPalette builds the classic palette on r: bold white header, bold green
// current task, cyan task days and bold magenta today.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Header:  r.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
		Current: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Task:    r.NewStyle().Foreground(lipgloss.Color("6")),
		Today:   r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		Plain:   r.NewStyle(),
	}
}

// Style returns the style for a highlight.
func (p Palette) Style(h Highlight) lipgloss.Style {
	switch h {
	case HighlightCurrent:
		return p.Current
	case HighlightTask:
		return p.Task
	case HighlightToday:
		return p.Today
	default:
		return p.Plain
	}
}

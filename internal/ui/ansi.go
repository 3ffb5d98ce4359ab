package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DetectProfile reports the color profile lipgloss would use for w.
// Non-terminals get termenv.Ascii, so piped output carries no escapes.
func DetectProfile(w io.Writer) termenv.Profile {
	return lipgloss.NewRenderer(w).ColorProfile()
}

// NewRenderer binds lipgloss styling to w with a fixed color profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

// Package ui holds layout helpers shared by the view packages.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pyanpyan/routinely/internal/theme"
)

// Layout tracks terminal dimensions and frames every view with a header
// and a status bar.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a Layout with the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ContentHeight returns the rows left for the main content area after the
// one-line header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - 2
}

// Frame composes the full terminal view: header, content, status bar.
func (l Layout) Frame(title, content, hints string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		l.bar(theme.HeaderStyle, title),
		content,
		l.bar(theme.StatusBarStyle, hints),
	)
}

// bar renders text padded to the full terminal width in the given style.
func (l Layout) bar(style lipgloss.Style, text string) string {
	rendered := style.Render(text)
	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}
	filler := style.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(style.GetBackground()).
			Render(""),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

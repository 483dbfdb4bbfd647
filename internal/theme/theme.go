// Package theme holds the shared lipgloss styles.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pyanpyan/routinely/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorAccent = lipgloss.AdaptiveColor{Dark: "#A8D5E2", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the application title bar.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorAccent).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// SectionStyle renders the Active/Inactive section headers in the library.
var SectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorAccent).
	MarginTop(1)

// ListItemStyle is the base style for rows in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused row.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorAccent).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorAccent)

// InactiveItemStyle dims checklists outside their schedule window.
var InactiveItemStyle = lipgloss.NewStyle().
	PaddingLeft(2).
	Foreground(ColorGray)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// PanelStyle provides a standard rounded border for panels.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ErrorStyle renders repository and validation failures.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed).
	Bold(true)

// ChecklistTint returns a style in the checklist's configured palette color.
func ChecklistTint(c model.ChecklistColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// StateStyle returns a color-coded style for an item state.
func StateStyle(s model.ChecklistItemState) lipgloss.Style {
	switch s {
	case model.StateDone:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case model.StateIgnoredToday:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return lipgloss.NewStyle().Foreground(ColorWhite)
	}
}

// StateGlyph returns the marker rendered before an item title.
func StateGlyph(s model.ChecklistItemState) string {
	switch s {
	case model.StateDone:
		return "[✓]"
	case model.StateIgnoredToday:
		return "[–]"
	default:
		return "[ ]"
	}
}

package library

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/query"
	"github.com/pyanpyan/routinely/internal/theme"
)

// Entry wraps a checklist with its activity classification so it can be
// used in a bubbles/list.
type Entry struct {
	Checklist model.Checklist
	Activity  query.ActivityState
}

// FilterValue returns the string used for fuzzy filtering.
func (e Entry) FilterValue() string { return e.Checklist.Name }

// doneCount counts Done items (ignored items are not "done").
func (e Entry) doneCount() int {
	n := 0
	for _, item := range e.Checklist.Items {
		if item.State == model.StateDone {
			n++
		}
	}
	return n
}

// scheduleSummary renders the schedule in one short fragment.
func (e Entry) scheduleSummary() string {
	s := e.Checklist.Schedule
	var parts []string
	if len(s.DaysOfWeek) > 0 {
		names := make([]string, len(s.DaysOfWeek))
		for i, d := range s.DaysOfWeek {
			name := d.String()
			names[i] = name[:1] + strings.ToLower(name[1:2])
		}
		parts = append(parts, strings.Join(names, " "))
	}
	if span, ok := s.TimeRange.(model.Specific); ok {
		parts = append(parts, span.StartTime.String()+"–"+span.EndTime.String())
	}
	if len(parts) == 0 {
		return "always"
	}
	return strings.Join(parts, " ")
}

// Delegate renders library rows: a color dot, the name, done/total, and the
// schedule fragment. Inactive checklists are dimmed.
type Delegate struct{}

// Height returns the number of lines each row takes.
func (Delegate) Height() int { return 1 }

// Spacing returns the number of blank lines between rows.
func (Delegate) Spacing() int { return 0 }

// Update handles per-row messages (unused).
func (Delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render draws a single library row.
func (Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(Entry)
	if !ok {
		return
	}

	dot := theme.ChecklistTint(entry.Checklist.Color).Render("●")
	progress := fmt.Sprintf("%d/%d", entry.doneCount(), len(entry.Checklist.Items))
	schedule := theme.HelpStyle.Render(entry.scheduleSummary())

	line := fmt.Sprintf("%s %s  %s  %s", dot, entry.Checklist.Name, progress, schedule)

	switch {
	case index == m.Index():
		line = theme.SelectedItemStyle.Render(line)
	case entry.Activity == query.Inactive:
		line = theme.InactiveItemStyle.Render(line)
	default:
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// Package transfer is the export/import view for the checklist collection.
package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pyanpyan/routinely/internal/command"
	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/repository"
	"github.com/pyanpyan/routinely/internal/theme"
)

// Mode selects which direction the transfer form runs in.
type Mode int

const (
	ModeExport Mode = iota
	ModeImport
)

// ExportedMsg is dispatched after the collection has been written out.
type ExportedMsg struct {
	Path string
}

// ImportedMsg is dispatched after an import replaced the collection.
type ImportedMsg struct {
	Count int
}

// ErrorMsg carries an export or import failure.
type ErrorMsg struct {
	Err error
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// formBindings holds field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	path    string
	confirm bool
}

// Model is the Bubble Tea model for the transfer form.
type Model struct {
	repo   repository.Repository
	form   *huh.Form
	fb     *formBindings
	mode   Mode
	width  int
	height int
}

// New creates a transfer model over the given repository.
func New(repo repository.Repository, width, height int) Model {
	return Model{repo: repo, fb: &formBindings{}, width: width, height: height}
}

// Start initializes the form for the given mode.
func (m *Model) Start(mode Mode) tea.Cmd {
	m.mode = mode
	*m.fb = formBindings{path: defaultPath(mode)}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		if m.mode == ModeImport && !m.fb.confirm {
			return m, func() tea.Msg { return CancelMsg{} }
		}
		return m, m.run()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

func (m Model) run() tea.Cmd {
	path := strings.TrimSpace(m.fb.path)
	if m.mode == ModeExport {
		return func() tea.Msg { return m.export(path) }
	}
	return func() tea.Msg { return m.importFrom(path) }
}

func (m Model) export(path string) tea.Msg {
	text, err := m.repo.ExportJSON(context.Background())
	if err != nil {
		return ErrorMsg{Err: err}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ErrorMsg{Err: fmt.Errorf("creating export directory %s: %w", dir, err)}
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return ErrorMsg{Err: fmt.Errorf("writing export to %s: %w", path, err)}
	}
	return ExportedMsg{Path: path}
}

// importFrom replaces the stored collection with the file's contents. Every
// item is cleared back to Pending before the replace, so nobody inherits
// another device's half-finished day and the store never holds an unreset
// intermediate state.
func (m Model) importFrom(path string) tea.Msg {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ErrorMsg{Err: fmt.Errorf("reading import file %s: %w", path, err)}
	}

	doc := string(raw)
	count := 0
	var checklists []model.Checklist
	if err := json.Unmarshal(raw, &checklists); err == nil {
		for i, checklist := range checklists {
			fresh := command.ResetDailyState{}.Execute(checklist)
			fresh.LastAccessedAt = nil
			checklists[i] = fresh
		}
		encoded, err := json.Marshal(checklists)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("encoding import document: %w", err)}
		}
		doc = string(encoded)
		count = len(checklists)
	}
	// A document we could not decode goes to the repository untouched; its
	// validation reports the failure with the proper error kind.

	if err := m.repo.ImportFromJSON(context.Background(), doc); err != nil {
		return ErrorMsg{Err: err}
	}
	return ImportedMsg{Count: count}
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	title := "Export Checklists"
	if m.mode == ModeImport {
		title = "Import Checklists"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(titleStyle.Render(title) + "\n" + m.form.View())
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("File").
			Placeholder(defaultPath(m.mode)).
			Value(&m.fb.path).
			Validate(validatePath),
	}
	if m.mode == ModeImport {
		fields = append(fields, huh.NewConfirm().
			Title("Replace everything?").
			Description("Importing replaces all checklists and clears their ticks.").
			Affirmative("Import").
			Negative("Cancel").
			Value(&m.fb.confirm))
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func defaultPath(mode Mode) string {
	if mode == ModeImport {
		return "checklists.json"
	}
	return "checklists-export.json"
}

func validatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a file path is required")
	}
	return nil
}

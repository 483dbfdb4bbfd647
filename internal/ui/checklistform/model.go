// Package checklistform is the create/edit form for a checklist.
package checklistform

import (
	"fmt"
	"reflect"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/pyanpyan/routinely/internal/command"
	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/theme"
)

// CreatedMsg is dispatched when a new checklist is built via the form.
type CreatedMsg struct {
	Checklist model.Checklist
}

// UpdatedMsg is dispatched when an existing checklist is edited via the
// form.
type UpdatedMsg struct {
	Checklist model.Checklist
	Changes   []command.ChangeKind
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// formBindings holds field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name        string
	days        []model.Weekday
	allDay      bool
	startTime   string
	endTime     string
	color       model.ChecklistColor
	persistence model.StatePersistenceDuration
	items       string
}

// Model is the Bubble Tea model for the checklist create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editing  model.Checklist
	errText  string
	width    int
	height   int
}

// New creates a checklist form model.
func New(width, height int) Model {
	return Model{fb: &formBindings{}, width: width, height: height}
}

// StartCreate initializes the form for a new checklist.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.errText = ""
	*m.fb = formBindings{
		allDay:      true,
		color:       model.ColorSoftBlue,
		persistence: model.DefaultStatePersistence,
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing checklist's values.
func (m *Model) StartEdit(c model.Checklist) tea.Cmd {
	m.editMode = true
	m.editing = c
	m.errText = ""

	fb := formBindings{
		name:        c.Name,
		days:        append([]model.Weekday(nil), c.Schedule.DaysOfWeek...),
		allDay:      true,
		color:       c.Color,
		persistence: c.StatePersistence,
	}
	if span, ok := c.Schedule.TimeRange.(model.Specific); ok {
		fb.allDay = false
		fb.startTime = span.StartTime.String()
		fb.endTime = span.EndTime.String()
	}
	var lines []string
	for _, item := range c.Items {
		lines = append(lines, item.Title)
	}
	fb.items = strings.Join(lines, "\n")

	*m.fb = fb
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
		return m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// handleSubmit runs the domain command over the collected bindings. A
// validation failure reopens the form with the message shown above it.
func (m Model) handleSubmit() (Model, tea.Cmd) {
	schedule, err := m.schedule()
	if err != nil {
		return m.reopenWithError(err)
	}

	if m.editMode {
		updated, changes, err := m.applyEdit(schedule)
		if err != nil {
			return m.reopenWithError(err)
		}
		return m, func() tea.Msg { return UpdatedMsg{Checklist: updated, Changes: changes} }
	}

	cmd, err := command.NewCreateChecklist(
		model.ChecklistID(uuid.New().String()),
		m.fb.name,
		schedule,
		m.parsedItems(nil),
		m.fb.color,
		m.fb.persistence,
	)
	if err != nil {
		return m.reopenWithError(err)
	}
	created := cmd.Execute()
	return m, func() tea.Msg { return CreatedMsg{Checklist: created} }
}

// applyEdit runs UpdateChecklist for the field changes and then replaces
// the item list. Items whose title survives the edit keep their id and
// day state; new lines become fresh Pending items.
func (m Model) applyEdit(schedule model.ChecklistSchedule) (model.Checklist, []command.ChangeKind, error) {
	changes := command.ChecklistChanges{}
	if m.fb.name != m.editing.Name {
		changes.Name = &m.fb.name
	}
	if !reflect.DeepEqual(schedule, m.editing.Schedule) {
		changes.Schedule = &schedule
	}
	if m.fb.color != m.editing.Color {
		changes.Color = &m.fb.color
	}
	if m.fb.persistence != m.editing.StatePersistence {
		changes.StatePersistence = &m.fb.persistence
	}

	cmd, err := command.NewUpdateChecklist(m.editing, changes)
	if err != nil {
		return model.Checklist{}, nil, err
	}
	updated := cmd.Execute()

	existing := make(map[string]model.ChecklistItem, len(m.editing.Items))
	for _, item := range m.editing.Items {
		existing[item.Title] = item
	}
	updated.Items = m.parsedItems(existing)

	return updated, cmd.ChangedKinds(), nil
}

// parsedItems turns the item text area into checklist items, one per line.
func (m Model) parsedItems(existing map[string]model.ChecklistItem) []model.ChecklistItem {
	var items []model.ChecklistItem
	for _, line := range strings.Split(m.fb.items, "\n") {
		title := strings.TrimSpace(line)
		if title == "" {
			continue
		}
		if prior, ok := existing[title]; ok {
			items = append(items, prior)
			continue
		}
		items = append(items, model.ChecklistItem{
			ID:    model.ChecklistItemID(uuid.New().String()),
			Title: title,
			State: model.StatePending,
		})
	}
	return items
}

func (m Model) schedule() (model.ChecklistSchedule, error) {
	if m.fb.allDay {
		return model.ChecklistSchedule{DaysOfWeek: m.fb.days, TimeRange: model.AllDay{}}, nil
	}
	start, err := model.ParseTimeOfDay(m.fb.startTime)
	if err != nil {
		return model.ChecklistSchedule{}, err
	}
	end, err := model.ParseTimeOfDay(m.fb.endTime)
	if err != nil {
		return model.ChecklistSchedule{}, err
	}
	return model.ChecklistSchedule{
		DaysOfWeek: m.fb.days,
		TimeRange:  model.Specific{StartTime: start, EndTime: end},
	}, nil
}

func (m Model) reopenWithError(err error) (Model, tea.Cmd) {
	m.errText = err.Error()
	m.form = m.buildForm()
	return m, m.form.Init()
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Checklist"
	if m.editMode {
		titleText = "Edit Checklist"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n"
	if m.errText != "" {
		content += theme.ErrorStyle.Render(m.errText) + "\n\n"
	}
	content += m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	dayOpts := make([]huh.Option[model.Weekday], 0, 7)
	for _, d := range model.Weekdays() {
		name := d.String()
		label := name[:1] + strings.ToLower(name[1:])
		dayOpts = append(dayOpts, huh.NewOption(label, d))
	}

	colorOpts := make([]huh.Option[model.ChecklistColor], 0, 8)
	for _, c := range model.ChecklistColors() {
		colorOpts = append(colorOpts, huh.NewOption(c.DisplayName(), c))
	}

	persistOpts := make([]huh.Option[model.StatePersistenceDuration], 0, 6)
	for _, p := range model.StatePersistenceDurations() {
		persistOpts = append(persistOpts, huh.NewOption(p.DisplayName(), p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Morning routine").
				Value(&m.fb.name).
				Validate(validateNonBlank("Name")),
			huh.NewMultiSelect[model.Weekday]().
				Title("Days").
				Description("No selection means every day").
				Options(dayOpts...).
				Value(&m.fb.days),
			huh.NewConfirm().
				Title("All day?").
				Affirmative("All day").
				Negative("Time window").
				Value(&m.fb.allDay),
			huh.NewInput().
				Title("From").
				Placeholder("06:00").
				Value(&m.fb.startTime).
				Validate(validateOptionalTime),
			huh.NewInput().
				Title("Until").
				Placeholder("09:00").
				Value(&m.fb.endTime).
				Validate(validateOptionalTime),
		),
		huh.NewGroup(
			huh.NewSelect[model.ChecklistColor]().
				Title("Color").
				Options(colorOpts...).
				Value(&m.fb.color),
			huh.NewSelect[model.StatePersistenceDuration]().
				Title("Keep ticks for").
				Options(persistOpts...).
				Value(&m.fb.persistence),
			huh.NewText().
				Title("Items").
				Description("One item per line").
				Value(&m.fb.items),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
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
	if h < 20 {
		h = 20
	}
	return h
}

func validateNonBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateOptionalTime accepts an empty value (the all-day case skips the
// time inputs) or a parsable HH:MM.
func validateOptionalTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := model.ParseTimeOfDay(s)
	return err
}

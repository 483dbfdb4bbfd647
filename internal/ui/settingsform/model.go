// Package settingsform is the preferences editing form.
package settingsform

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/theme"
)

// SavedMsg is dispatched when the user submits new settings.
type SavedMsg struct {
	Settings model.AppSettings
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// formBindings holds field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	swipeSound      model.SwipeSound
	completionSound model.CompletionSound
	haptics         bool
	fontName        string
	fontScale       string
}

// Model is the Bubble Tea model for the settings form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a settings form model.
func New(width, height int) Model {
	return Model{fb: &formBindings{}, width: width, height: height}
}

// Start initializes the form with the current settings.
func (m *Model) Start(s model.AppSettings) tea.Cmd {
	*m.fb = formBindings{
		swipeSound:      s.SwipeSound,
		completionSound: s.CompletionSound,
		haptics:         s.EnableHapticFeedback,
		fontName:        s.FontName,
		fontScale:       strconv.FormatFloat(s.FontScale, 'g', -1, 64),
	}
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
		settings := model.AppSettings{
			SwipeSound:           m.fb.swipeSound,
			CompletionSound:      m.fb.completionSound,
			EnableHapticFeedback: m.fb.haptics,
			FontName:             m.fb.fontName,
			FontScale:            parseScale(m.fb.fontScale),
		}.Normalized()
		return m, func() tea.Msg { return SavedMsg{Settings: settings} }
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(titleStyle.Render("Settings") + "\n" + m.form.View())
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	swipeOpts := make([]huh.Option[model.SwipeSound], 0, 4)
	for _, s := range model.SwipeSounds() {
		swipeOpts = append(swipeOpts, huh.NewOption(soundLabel(string(s)), s))
	}

	completionOpts := make([]huh.Option[model.CompletionSound], 0, 4)
	for _, s := range model.CompletionSounds() {
		completionOpts = append(completionOpts, huh.NewOption(soundLabel(string(s)), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.SwipeSound]().
				Title("Swipe sound").
				Options(swipeOpts...).
				Value(&m.fb.swipeSound),
			huh.NewSelect[model.CompletionSound]().
				Title("Completion sound").
				Options(completionOpts...).
				Value(&m.fb.completionSound),
			huh.NewConfirm().
				Title("Haptic feedback").
				Affirmative("On").
				Negative("Off").
				Value(&m.fb.haptics),
			huh.NewInput().
				Title("Font").
				Value(&m.fb.fontName),
			huh.NewInput().
				Title("Font scale").
				Description(fmt.Sprintf("Between %.1f and %.1f", model.MinFontScale, model.MaxFontScale)).
				Value(&m.fb.fontScale).
				Validate(validateScale),
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
	if h < 16 {
		h = 16
	}
	return h
}

// soundLabel turns a stored value like "soft_click" into "Soft click".
func soundLabel(value string) string {
	label := strings.ReplaceAll(value, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func validateScale(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number, e.g. 1.0")
	}
	return nil
}

func parseScale(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return model.DefaultAppSettings().FontScale
	}
	return f
}

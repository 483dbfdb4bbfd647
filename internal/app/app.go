package app

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyanpyan/routinely/internal/access"
	"github.com/pyanpyan/routinely/internal/events"
	"github.com/pyanpyan/routinely/internal/keys"
	"github.com/pyanpyan/routinely/internal/model"
	"github.com/pyanpyan/routinely/internal/repository"
	"github.com/pyanpyan/routinely/internal/settings"
	"github.com/pyanpyan/routinely/internal/ui"
	checklistview "github.com/pyanpyan/routinely/internal/ui/checklist"
	"github.com/pyanpyan/routinely/internal/ui/checklistform"
	helpview "github.com/pyanpyan/routinely/internal/ui/help"
	"github.com/pyanpyan/routinely/internal/ui/library"
	"github.com/pyanpyan/routinely/internal/ui/settingsform"
	"github.com/pyanpyan/routinely/internal/ui/transfer"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLibrary ViewState = iota
	ViewChecklist
	ViewForm
	ViewSettings
	ViewTransfer
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing, layout,
// and access to the persistence layer.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	repo         repository.Repository
	journal      *events.Store
	prefs        *settings.Store
	keys         *keys.KeyMap

	libraryView   library.Model
	checklistView checklistview.Model
	formView      checklistform.Model
	settingsView  settingsform.Model
	transferView  transfer.Model
	helpView      helpview.Model

	appSettings   model.AppSettings
	prefsUpdates  <-chan model.AppSettings
	statusMessage string
	ready         bool
}

// New creates the root application model. journal may be nil when event
// recording is unavailable.
func New(repo repository.Repository, journal *events.Store, prefs *settings.Store) Model {
	k := keys.DefaultKeyMap()

	var accessJournal access.Journal
	if journal != nil {
		accessJournal = journal
	}
	accessor := access.New(repo, accessJournal, nil)

	appSettings := model.DefaultAppSettings()
	var updates <-chan model.AppSettings
	if prefs != nil {
		if loaded, err := prefs.Load(); err == nil {
			appSettings = loaded
		} else {
			log.Printf("loading settings: %v", err)
		}
		if ch, err := prefs.Watch(context.Background()); err == nil {
			updates = ch
		} else {
			log.Printf("watching settings: %v", err)
		}
	}

	return Model{
		currentView:   ViewLibrary,
		repo:          repo,
		journal:       journal,
		prefs:         prefs,
		keys:          k,
		libraryView:   library.New(repo, k, nil, 80, 24),
		checklistView: checklistview.New(accessor, repo, k, 80, 24),
		formView:      checklistform.New(80, 24),
		settingsView:  settingsform.New(80, 24),
		transferView:  transfer.New(repo, 80, 24),
		helpView:      helpview.New(k, 80, 24),
		appSettings:   appSettings,
		prefsUpdates:  updates,
	}
}

// Init loads the library and starts listening for external settings edits.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.libraryView.Init(),
		m.waitForSettings(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentHeight := m.layout.ContentHeight()
		m.libraryView.SetSize(msg.Width, contentHeight)
		m.checklistView.SetSize(msg.Width, contentHeight)
		m.formView.SetSize(msg.Width, contentHeight)
		m.settingsView.SetSize(msg.Width, contentHeight)
		m.transferView.SetSize(msg.Width, contentHeight)
		m.helpView.SetSize(msg.Width, contentHeight)
		// Forward to the active view so huh forms can size themselves.
		return m.updateActiveView(msg)

	case settingsChangedMsg:
		m.appSettings = msg.settings
		return m, m.waitForSettings()

	case library.OpenMsg:
		m.previousView = m.currentView
		m.currentView = ViewChecklist
		m.statusMessage = ""
		return m, m.checklistView.Open(msg.ID)

	case library.EditMsg:
		m.previousView = m.currentView
		m.currentView = ViewForm
		return m, m.formView.StartEdit(msg.Checklist)

	case library.DeleteMsg:
		return m, m.deleteChecklist(msg.ID)

	case checklistview.BackMsg:
		m.currentView = ViewLibrary
		return m, m.libraryView.Load()

	case checklistform.CreatedMsg:
		m.currentView = ViewLibrary
		return m, m.createChecklist(msg.Checklist)

	case checklistform.UpdatedMsg:
		m.currentView = ViewLibrary
		return m, m.updateChecklist(msg.Checklist, msg.Changes)

	case checklistform.CancelMsg:
		m.currentView = ViewLibrary
		return m, nil

	case checklistSavedMsg:
		return m, m.libraryView.Load()

	case checklistDeletedMsg:
		m.statusMessage = "Checklist deleted"
		return m, m.libraryView.Load()

	case repoErrorMsg:
		m.statusMessage = msg.err.Error()
		return m, nil

	case settingsform.SavedMsg:
		m.currentView = ViewLibrary
		m.appSettings = msg.Settings
		return m, m.saveSettings(msg.Settings)

	case settingsform.CancelMsg:
		m.currentView = ViewLibrary
		return m, nil

	case transfer.ExportedMsg:
		m.currentView = ViewLibrary
		m.statusMessage = "Exported to " + msg.Path
		return m, nil

	case transfer.ImportedMsg:
		m.currentView = ViewLibrary
		m.statusMessage = importedStatus(msg.Count)
		return m, m.libraryView.Load()

	case transfer.ErrorMsg:
		m.currentView = ViewLibrary
		m.statusMessage = msg.Err.Error()
		return m, m.libraryView.Load()

	case transfer.CancelMsg:
		m.currentView = ViewLibrary
		return m, nil

	case tea.KeyMsg:
		if handled, model, cmd := m.handleGlobalKeys(msg); handled {
			return model, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleGlobalKeys deals with keys that switch views. Forms get every key
// so typing is never intercepted.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	inForm := m.currentView == ViewForm ||
		m.currentView == ViewSettings ||
		m.currentView == ViewTransfer

	switch msg.String() {
	case "ctrl+c":
		return true, m, tea.Quit

	case "q":
		if m.currentView == ViewLibrary {
			return true, m, tea.Quit
		}
		if inForm {
			return false, m, nil
		}

	case "?":
		if inForm {
			return false, m, nil
		}
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return true, m, nil

	case "esc":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}

	case "n":
		if m.currentView == ViewLibrary {
			m.previousView = m.currentView
			m.currentView = ViewForm
			return true, m, m.formView.StartCreate()
		}

	case "s":
		if m.currentView == ViewLibrary {
			m.previousView = m.currentView
			m.currentView = ViewSettings
			return true, m, m.settingsView.Start(m.appSettings)
		}

	case "E":
		if m.currentView == ViewLibrary {
			m.previousView = m.currentView
			m.currentView = ViewTransfer
			return true, m, m.transferView.Start(transfer.ModeExport)
		}

	case "I":
		if m.currentView == ViewLibrary {
			m.previousView = m.currentView
			m.currentView = ViewTransfer
			return true, m, m.transferView.Start(transfer.ModeImport)
		}
	}

	return false, m, nil
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLibrary:
		m.libraryView, cmd = m.libraryView.Update(msg)
	case ViewChecklist:
		m.checklistView, cmd = m.checklistView.Update(msg)
	case ViewForm:
		m.formView, cmd = m.formView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	case ViewTransfer:
		m.transferView, cmd = m.transferView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.layout.Frame("Routinely", m.renderContent(), m.keyHints())
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewLibrary:
		return m.libraryView.View()
	case ViewChecklist:
		return m.checklistView.View()
	case ViewForm:
		return m.formView.View()
	case ViewSettings:
		return m.settingsView.View()
	case ViewTransfer:
		return m.transferView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.statusMessage != "" && m.currentView == ViewLibrary {
		return m.statusMessage
	}

	switch m.currentView {
	case ViewChecklist:
		return "d/space done | i ignore | u undo | R reset all | esc back"
	case ViewForm, ViewSettings, ViewTransfer:
		return "enter next | shift+tab back | esc cancel"
	case ViewHelp:
		return "? close help | esc back"
	default:
		return "q quit | ? help | enter open | n new | e edit | x delete | E export | I import | s settings"
	}
}

// waitForSettings returns a command that blocks on the next external
// settings change, if watching is active.
func (m Model) waitForSettings() tea.Cmd {
	ch := m.prefsUpdates
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return settingsChangedMsg{settings: s}
	}
}

func importedStatus(count int) string {
	if count == 1 {
		return "Imported 1 checklist"
	}
	return fmt.Sprintf("Imported %d checklists", count)
}

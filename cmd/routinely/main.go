package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyanpyan/routinely/internal/app"
	"github.com/pyanpyan/routinely/internal/events"
	"github.com/pyanpyan/routinely/internal/repository/jsonfile"
	"github.com/pyanpyan/routinely/internal/settings"
)

func main() {
	dataDir := flag.String("data-dir", "", "directory for checklists, settings and history (default ~/.routinely)")
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "resolving home directory: %v\n", err)
			os.Exit(1)
		}
		dir = filepath.Join(home, ".routinely")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating data directory %s: %v\n", dir, err)
		os.Exit(1)
	}

	repo := jsonfile.New(dir)
	prefs := settings.NewStore(settings.DefaultPath(dir))

	// History is optional: the app runs without it if the database cannot
	// be opened.
	journal, err := events.NewStore(filepath.Join(dir, "events.db"))
	if err != nil {
		log.Printf("opening event journal: %v", err)
		journal = nil
	} else {
		defer journal.Close()
	}

	p := tea.NewProgram(app.New(repo, journal, prefs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "running app: %v\n", err)
		os.Exit(1)
	}
}

// Package settings stores user preferences as a small JSON key-value file
// and lets the UI observe changes made behind its back.
package settings

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/pyanpyan/routinely/internal/model"
)

// Store reads and writes AppSettings at a fixed path. Missing files resolve
// to defaults; nothing is written until the first Update.
type Store struct {
	mu   sync.RWMutex
	path string
}

// NewStore returns a settings store backed by the JSON file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the default settings location under dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, "settings.json")
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	defaults := model.DefaultAppSettings()
	v.SetDefault("swipeSound", string(defaults.SwipeSound))
	v.SetDefault("completionSound", string(defaults.CompletionSound))
	v.SetDefault("enableHapticFeedback", defaults.EnableHapticFeedback)
	v.SetDefault("fontName", defaults.FontName)
	v.SetDefault("fontScale", defaults.FontScale)
	return v
}

// Load reads the current settings. A missing file yields the defaults.
func (s *Store) Load() (model.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return load(s.path)
}

func load(path string) (model.AppSettings, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return model.DefaultAppSettings(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return model.DefaultAppSettings(), nil
		}
		return model.AppSettings{}, fmt.Errorf("reading settings %s: %w", path, err)
	}

	settings := model.DefaultAppSettings()
	if err := v.Unmarshal(&settings); err != nil {
		return model.AppSettings{}, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return settings.Normalized(), nil
}

// Update persists the given settings, clamping the font scale first.
func (s *Store) Update(settings model.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings = settings.Normalized()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating settings directory %s: %w", dir, err)
	}

	v := newViper(s.path)
	v.Set("swipeSound", string(settings.SwipeSound))
	v.Set("completionSound", string(settings.CompletionSound))
	v.Set("enableHapticFeedback", settings.EnableHapticFeedback)
	v.Set("fontName", settings.FontName)
	v.Set("fontScale", settings.FontScale)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing settings to %s: %w", s.path, err)
	}
	return nil
}

// Watch emits the freshly loaded settings whenever the backing file changes
// on disk. The channel closes when ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan model.AppSettings, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating settings watcher: %w", err)
	}

	// Watch the directory rather than the file so atomic replaces
	// (write-then-rename) are still seen.
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("creating settings directory %s: %w", dir, err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	ch := make(chan model.AppSettings, 1)
	go func() {
		defer watcher.Close()
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				settings, err := s.Load()
				if err != nil {
					log.Printf("reloading settings: %v", err)
					continue
				}
				select {
				case ch <- settings:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("settings watcher: %v", err)
			}
		}
	}()
	return ch, nil
}

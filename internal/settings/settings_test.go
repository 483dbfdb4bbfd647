package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyanpyan/routinely/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	store := NewStore(DefaultPath(t.TempDir()))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppSettings(), got)
}

func TestUpdateRoundTrip(t *testing.T) {
	store := NewStore(DefaultPath(t.TempDir()))

	want := model.AppSettings{
		SwipeSound:           model.SwipeSoundPop,
		CompletionSound:      model.CompletionSoundTada,
		EnableHapticFeedback: false,
		FontName:             "atkinson",
		FontScale:            1.3,
	}
	require.NoError(t, store.Update(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdateClampsFontScale(t *testing.T) {
	store := NewStore(DefaultPath(t.TempDir()))

	s := model.DefaultAppSettings()
	s.FontScale = 9.9
	require.NoError(t, store.Update(s))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, model.MaxFontScale, got.FontScale)

	s.FontScale = 0.01
	require.NoError(t, store.Update(s))

	got, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, model.MinFontScale, got.FontScale)
}

func TestLoadNormalizesStoredOutOfRangeScale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	store := NewStore(path)

	// A file edited by hand can hold any value; Load clamps it.
	writeFile(t, path, `{"swipeSound":"beep","completionSound":"none","enableHapticFeedback":true,"fontName":"x","fontScale":42}`)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, model.MaxFontScale, got.FontScale)
	assert.Equal(t, model.SwipeSoundBeep, got.SwipeSound)
}

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellolumen/lumenctl/internal/core/domain"
)

func TestNewStore_FirstRunDefaults(t *testing.T) {
	store, err := NewStore(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultState(), store.State())
}

func TestStore_Update_Persists(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	err = store.Update(func(s *domain.PersistedState) {
		s.Display.Theme = domain.ThemeDark
	})
	require.NoError(t, err)

	// The blob is written synchronously.
	_, err = os.Stat(filepath.Join(dir, stateFile))
	require.NoError(t, err)
}

func TestStore_Update_SaveFailureRollsBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	events, cancel := store.Subscribe()
	defer cancel()

	// A directory at the blob path makes the write fail regardless of
	// the caller's privileges.
	require.NoError(t, os.Mkdir(filepath.Join(dir, stateFile), 0700))

	err = store.Update(func(s *domain.PersistedState) {
		s.Display.Theme = domain.ThemeDark
	})

	require.Error(t, err)
	assert.Equal(t, domain.ThemeLight, store.State().Display.Theme)

	select {
	case <-events:
		t.Fatal("failed update must not notify subscribers")
	default:
	}
}

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)

	want := domain.DisplayConfig{
		LeftWidget:          domain.WidgetClock,
		CenterWidget:        domain.WidgetMusic,
		RightWidget:         domain.WidgetWeather,
		Theme:               domain.ThemeDark,
		Orientation:         domain.OrientationVertical,
		AccentColor:         "#ff8800",
		CharactersPerSecond: 7,
	}
	require.NoError(t, store.Update(func(s *domain.PersistedState) {
		s.Display = want
		s.Integrations[domain.IntegrationSpotify] = domain.OAuthClientConfig{
			ClientID:     "id",
			ClientSecret: "secret",
			CallbackURL:  "https://app.example/cb",
			GetTokenURL:  "https://backend.example/token",
			LastCode:     "abc123",
		}
	}))

	// Simulate a fresh session hydrating from durable storage.
	reloaded, err := NewStore(dir)
	require.NoError(t, err)

	state := reloaded.State()
	assert.Equal(t, want, state.Display)
	assert.Equal(t, "abc123", state.Integrations[domain.IntegrationSpotify].LastCode)
	assert.Equal(t, "secret", state.Integrations[domain.IntegrationSpotify].ClientSecret)
}

func TestStore_VersionMismatchResets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, stateFile)

	content := "version = 99\n\n[display]\ntheme = \"dark\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store, err := NewStore(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultState(), store.State())
}

func TestStore_CorruptFileResets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, stateFile)
	require.NoError(t, os.WriteFile(path, []byte("not { toml"), 0600))

	store, err := NewStore(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultState(), store.State())
}

func TestStore_Subscribe(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	events, cancel := store.Subscribe()
	defer cancel()

	require.NoError(t, store.Update(func(s *domain.PersistedState) {
		s.Display.Theme = domain.ThemeDark
	}))

	snapshot := <-events
	assert.Equal(t, domain.ThemeDark, snapshot.Display.Theme)
}

func TestStore_Reload_BroadcastsExternalEdit(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Update(func(s *domain.PersistedState) {})) // write the blob

	events, cancel := store.Subscribe()
	defer cancel()

	content := "version = 1\n\n[display]\ntheme = \"dark\"\norientation = \"vertical\"\ncharacters_per_second = 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFile), []byte(content), 0600))

	require.NoError(t, store.Reload())

	snapshot := <-events
	assert.Equal(t, domain.ThemeDark, snapshot.Display.Theme)
	assert.Equal(t, domain.OrientationVertical, snapshot.Display.Orientation)
}

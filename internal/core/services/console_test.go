package services

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statemem "github.com/hellolumen/lumenctl/internal/adapters/driven/state/memory"
	"github.com/hellolumen/lumenctl/internal/core/domain"
)

func newTestConsole(gateway *fakeGateway) (*Console, *statemem.Store, *recordingNotifier) {
	store := statemem.NewStoreWith(spotifyState())
	notifier := &recordingNotifier{}
	return NewConsole(store, gateway, notifier), store, notifier
}

func TestConsole_SetWidget(t *testing.T) {
	console, store, _ := newTestConsole(&fakeGateway{})

	require.NoError(t, console.SetWidget(domain.RegionLeft, domain.WidgetClock))
	require.NoError(t, console.SetWidget(domain.RegionCenter, domain.WidgetWeather))

	display := store.State().Display
	assert.Equal(t, domain.WidgetClock, display.LeftWidget)
	assert.Equal(t, domain.WidgetWeather, display.CenterWidget)
}

func TestConsole_SetWidget_Invalid(t *testing.T) {
	console, _, _ := newTestConsole(&fakeGateway{})

	assert.ErrorIs(t, console.SetWidget("top", domain.WidgetClock), domain.ErrInvalidInput)
	assert.ErrorIs(t, console.SetWidget(domain.RegionLeft, "tetris"), domain.ErrInvalidInput)
}

func TestConsole_SetTheme_Invalid(t *testing.T) {
	console, store, _ := newTestConsole(&fakeGateway{})

	assert.ErrorIs(t, console.SetTheme("sepia"), domain.ErrInvalidInput)
	assert.Equal(t, domain.ThemeLight, store.State().Display.Theme)
}

func TestConsole_SetAccentColor(t *testing.T) {
	console, store, _ := newTestConsole(&fakeGateway{})

	require.NoError(t, console.SetAccentColor("#A1B2C3"))
	assert.Equal(t, "#a1b2c3", store.State().Display.AccentColor)

	require.NoError(t, console.SetAccentColor("#fff"))
	assert.Equal(t, "#fff", store.State().Display.AccentColor)

	for _, bad := range []string{"", "fff", "#ggg", "#12345", "#1234567"} {
		assert.ErrorIs(t, console.SetAccentColor(bad), domain.ErrInvalidInput, bad)
	}
}

func TestConsole_SetCharactersPerSecond_Clamps(t *testing.T) {
	console, store, _ := newTestConsole(&fakeGateway{})

	require.NoError(t, console.SetCharactersPerSecond(99))
	assert.Equal(t, domain.MaxCharactersPerSecond, store.State().Display.CharactersPerSecond)

	require.NoError(t, console.SetCharactersPerSecond(0))
	assert.Equal(t, domain.MinCharactersPerSecond, store.State().Display.CharactersPerSecond)

	require.NoError(t, console.SetCharactersPerSecond(5))
	assert.Equal(t, 5, store.State().Display.CharactersPerSecond)
}

func TestConsole_SetIntegration_PreservesLastCode(t *testing.T) {
	console, store, _ := newTestConsole(&fakeGateway{})
	require.NoError(t, store.Update(func(s *domain.PersistedState) {
		cfg := s.Integrations["spotify"]
		cfg.LastCode = "already-exchanged"
		s.Integrations["spotify"] = cfg
	}))

	err := console.SetIntegration("spotify", domain.OAuthClientConfig{
		ClientID:     "new-client",
		ClientSecret: "new-secret",
		CallbackURL:  "https://console.example/callback",
		GetTokenURL:  "https://backend.example/oauth2/token",
		LastCode:     "should-be-ignored",
	})

	require.NoError(t, err)
	got := store.State().Integrations["spotify"]
	assert.Equal(t, "new-client", got.ClientID)
	assert.Equal(t, "already-exchanged", got.LastCode)
}

func TestConsole_SetIntegration_RejectsDuplicateCallback(t *testing.T) {
	console, store, _ := newTestConsole(&fakeGateway{})

	err := console.SetIntegration("tidal", domain.OAuthClientConfig{
		CallbackURL: "https://console.example/callback?extra=1",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateCallback)
	_, ok := store.State().Integrations["tidal"]
	assert.False(t, ok)
}

func TestConsole_SetIntegration_AllowsOwnCallback(t *testing.T) {
	console, _, _ := newTestConsole(&fakeGateway{})

	err := console.SetIntegration("spotify", domain.OAuthClientConfig{
		ClientID:    "client",
		CallbackURL: "https://console.example/callback",
	})

	assert.NoError(t, err)
}

func TestConsole_Integration_Unknown(t *testing.T) {
	console, _, _ := newTestConsole(&fakeGateway{})

	_, err := console.Integration("nonesuch")
	assert.ErrorIs(t, err, domain.ErrUnknownIntegration)
}

func TestConsole_AuthorizeURL(t *testing.T) {
	console, store, _ := newTestConsole(&fakeGateway{})
	require.NoError(t, store.Update(func(s *domain.PersistedState) {
		cfg := s.Integrations["spotify"]
		cfg.AuthorizeURL = "https://accounts.example/authorize"
		s.Integrations["spotify"] = cfg
	}))

	raw, err := console.AuthorizeURL("spotify")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "accounts.example", u.Host)
	assert.Equal(t, "/authorize", u.Path)
	query := u.Query()
	assert.Equal(t, "client", query.Get("client_id"))
	assert.Equal(t, "https://console.example/callback", query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.NotEmpty(t, query.Get("state"))
}

func TestConsole_AuthorizeURL_Unconfigured(t *testing.T) {
	console, _, _ := newTestConsole(&fakeGateway{})

	_, err := console.AuthorizeURL("spotify")
	assert.ErrorIs(t, err, domain.ErrCredentialsIncomplete)
}

func TestConsole_PushDisplayConfig(t *testing.T) {
	gateway := &fakeGateway{succeed: true}
	console, _, notifier := newTestConsole(gateway)

	assert.True(t, console.PushDisplayConfig(context.Background()))

	notice, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, domain.NotificationSuccess, notice.Level)
	assert.Equal(t, "Config uploaded successfully", notice.Message)
}

func TestConsole_PushDisplayConfig_Failure(t *testing.T) {
	console, _, notifier := newTestConsole(&fakeGateway{succeed: false})

	assert.False(t, console.PushDisplayConfig(context.Background()))

	notice, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, domain.NotificationFailure, notice.Level)
}

func TestConsole_PushBrokerageCredentials_RequiresBoth(t *testing.T) {
	console, _, _ := newTestConsole(&fakeGateway{succeed: true})

	_, err := console.PushBrokerageCredentials(context.Background(), domain.BrokerageCredentials{Email: "user@example.com"})
	assert.ErrorIs(t, err, domain.ErrCredentialsIncomplete)

	_, err = console.PushBrokerageCredentials(context.Background(), domain.BrokerageCredentials{Password: "hunter2"})
	assert.ErrorIs(t, err, domain.ErrCredentialsIncomplete)

	ok, err := console.PushBrokerageCredentials(context.Background(), domain.BrokerageCredentials{
		Email:    "user@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

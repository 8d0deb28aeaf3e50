package driving

import (
	"context"

	"github.com/hellolumen/lumenctl/internal/core/domain"
)

// ConsoleService is the editing and push surface over the console state.
// Validation happens here, at the edit boundary; the state store itself
// accepts whatever it is given.
type ConsoleService interface {
	// State returns a snapshot of the current console state.
	State() domain.PersistedState

	// SetWidget assigns a widget to a screen region.
	SetWidget(region domain.Region, widget domain.Widget) error

	// SetTheme updates the display theme.
	SetTheme(theme domain.Theme) error

	// SetOrientation updates the display orientation.
	SetOrientation(orientation domain.Orientation) error

	// SetAccentColor updates the accent colour (hex string).
	SetAccentColor(hex string) error

	// SetCharactersPerSecond updates the text rendering speed, clamped
	// to the supported range.
	SetCharactersPerSecond(cps int) error

	// Integration returns the OAuth client registration for an integration.
	Integration(name string) (domain.OAuthClientConfig, error)

	// SetIntegration creates or updates an integration's OAuth client
	// registration. A callback URL already used by another integration is
	// rejected with domain.ErrDuplicateCallback. LastCode is preserved
	// across edits.
	SetIntegration(name string, cfg domain.OAuthClientConfig) error

	// AuthorizeURL builds the provider consent URL for an integration.
	AuthorizeURL(name string) (string, error)

	// PushDisplayConfig uploads the current display configuration to the
	// backend. The outcome is also surfaced as a notification.
	PushDisplayConfig(ctx context.Context) bool

	// PushBrokerageCredentials submits brokerage login credentials to the
	// backend. Credentials are never persisted locally. Empty fields are
	// rejected before any network call.
	PushBrokerageCredentials(ctx context.Context, creds domain.BrokerageCredentials) (bool, error)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/hellolumen/lumenctl/internal/core/domain"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
	"github.com/hellolumen/lumenctl/internal/core/ports/driving"
)

// Ensure Console implements the interface.
var _ driving.ConsoleService = (*Console)(nil)

// Console is the editing and push surface over the console state.
type Console struct {
	store    driven.StateStore
	gateway  driven.Gateway
	notifier driven.Notifier
}

// NewConsole creates a new console service.
func NewConsole(store driven.StateStore, gateway driven.Gateway, notifier driven.Notifier) *Console {
	return &Console{
		store:    store,
		gateway:  gateway,
		notifier: notifier,
	}
}

// State returns a snapshot of the current console state.
func (c *Console) State() domain.PersistedState {
	return c.store.State()
}

// SetWidget assigns a widget to a screen region.
func (c *Console) SetWidget(region domain.Region, widget domain.Widget) error {
	if !region.IsValid() {
		return fmt.Errorf("region %q: %w", region, domain.ErrInvalidInput)
	}
	if !widget.IsValid() {
		return fmt.Errorf("widget %q: %w", widget, domain.ErrInvalidInput)
	}
	return c.store.Update(func(s *domain.PersistedState) {
		s.Display.SetWidget(region, widget)
	})
}

// SetTheme updates the display theme.
func (c *Console) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("theme %q: %w", theme, domain.ErrInvalidInput)
	}
	return c.store.Update(func(s *domain.PersistedState) {
		s.Display.Theme = theme
	})
}

// SetOrientation updates the display orientation.
func (c *Console) SetOrientation(orientation domain.Orientation) error {
	if !orientation.IsValid() {
		return fmt.Errorf("orientation %q: %w", orientation, domain.ErrInvalidInput)
	}
	return c.store.Update(func(s *domain.PersistedState) {
		s.Display.Orientation = orientation
	})
}

// SetAccentColor updates the accent colour. Accepts #rgb and #rrggbb forms.
func (c *Console) SetAccentColor(hex string) error {
	if !validHexColor(hex) {
		return fmt.Errorf("accent colour %q: %w", hex, domain.ErrInvalidInput)
	}
	return c.store.Update(func(s *domain.PersistedState) {
		s.Display.AccentColor = strings.ToLower(hex)
	})
}

// SetCharactersPerSecond updates the text rendering speed. Out-of-range
// values are clamped at this edit boundary.
func (c *Console) SetCharactersPerSecond(cps int) error {
	return c.store.Update(func(s *domain.PersistedState) {
		s.Display.CharactersPerSecond = domain.ClampCharactersPerSecond(cps)
	})
}

// Integration returns the OAuth client registration for an integration.
func (c *Console) Integration(name string) (domain.OAuthClientConfig, error) {
	state := c.store.State()
	cfg, ok := state.Integrations[name]
	if !ok {
		return domain.OAuthClientConfig{}, fmt.Errorf("integration %q: %w", name, domain.ErrUnknownIntegration)
	}
	return cfg, nil
}

// SetIntegration creates or updates an integration's OAuth client
// registration. LastCode is owned by the exchange flow and preserved here.
func (c *Console) SetIntegration(name string, cfg domain.OAuthClientConfig) error {
	if name == "" {
		return fmt.Errorf("integration name: %w", domain.ErrInvalidInput)
	}

	state := c.store.State()
	if other, conflict := state.Integrations.CallbackConflict(name, cfg.CallbackURL); conflict {
		return fmt.Errorf("integration %q and %q: %w", name, other, domain.ErrDuplicateCallback)
	}

	return c.store.Update(func(s *domain.PersistedState) {
		cfg.LastCode = s.Integrations[name].LastCode
		s.Integrations[name] = cfg
	})
}

// AuthorizeURL builds the provider consent URL for an integration.
func (c *Console) AuthorizeURL(name string) (string, error) {
	cfg, err := c.Integration(name)
	if err != nil {
		return "", err
	}
	if cfg.AuthorizeURL == "" {
		return "", fmt.Errorf("integration %q has no authorize URL: %w", name, domain.ErrCredentialsIncomplete)
	}

	oc := oauth2.Config{
		ClientID:    cfg.ClientID,
		RedirectURL: cfg.CallbackURL,
		Endpoint:    oauth2.Endpoint{AuthURL: cfg.AuthorizeURL},
	}
	return oc.AuthCodeURL(uuid.NewString()), nil
}

// PushDisplayConfig uploads the current display configuration to the backend.
func (c *Console) PushDisplayConfig(ctx context.Context) bool {
	ok := c.gateway.SubmitDisplayConfig(ctx, c.store.State().Display)
	if ok {
		c.notify(domain.NotificationSuccess, "Config uploaded successfully")
	} else {
		c.notify(domain.NotificationFailure, "Failed to upload config")
	}
	return ok
}

// PushBrokerageCredentials submits brokerage login credentials to the backend.
func (c *Console) PushBrokerageCredentials(ctx context.Context, creds domain.BrokerageCredentials) (bool, error) {
	if creds.Email == "" || creds.Password == "" {
		c.notify(domain.NotificationInfo, "Email and password are required")
		return false, domain.ErrCredentialsIncomplete
	}

	ok := c.gateway.SubmitIntegrationCredentials(ctx, "xtb", creds)
	if ok {
		c.notify(domain.NotificationSuccess, "Credentials submitted")
	} else {
		c.notify(domain.NotificationFailure, "Failed to submit credentials")
	}
	return ok, nil
}

func (c *Console) notify(level domain.NotificationLevel, message string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(domain.Notification{Level: level, Message: message})
}

// validHexColor accepts "#rgb" or "#rrggbb".
func validHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

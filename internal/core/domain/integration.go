package domain

import (
	"net/url"
	"sort"
	"strings"
)

// IntegrationSpotify is the integration shipped pre-registered: the music
// provider the display's now-playing widget reads from.
const IntegrationSpotify = "spotify"

// OAuthClientConfig holds the OAuth2 client registration for one integration.
// Credentials are opaque to the console; the backend performs the actual
// code-for-token exchange server-side.
type OAuthClientConfig struct {
	// ClientID is the OAuth client ID from the provider's developer console.
	ClientID string `toml:"client_id" json:"clientId"`

	// ClientSecret is the OAuth client secret from the developer console.
	ClientSecret string `toml:"client_secret" json:"clientSecret"`

	// AuthorizeURL is the provider consent page the user is sent to.
	// Used only for outbound navigation, never matched.
	AuthorizeURL string `toml:"authorize_url" json:"authorizeUrl"`

	// CallbackURL is the origin+path the provider redirects back to.
	// Compared against observed locations with query and fragment stripped.
	CallbackURL string `toml:"callback_url" json:"callbackUrl"`

	// GetTokenURL is the backend endpoint that exchanges the code for tokens.
	GetTokenURL string `toml:"get_token_url" json:"getTokenUrl"`

	// LastCode is the most recent authorization code successfully exchanged.
	// Used to deduplicate exchange attempts across re-evaluations.
	LastCode string `toml:"last_code" json:"lastCode"`
}

// HasCredentials returns true if the client registration is complete enough
// to attempt an exchange.
func (c OAuthClientConfig) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.GetTokenURL != ""
}

// CallbackTarget returns the callback URL with query and fragment stripped,
// or empty if the callback URL is unset or unparsable.
func (c OAuthClientConfig) CallbackTarget() string {
	return StripQuery(c.CallbackURL)
}

// StripQuery reduces a URL to origin+path, dropping query and fragment.
// Returns empty for unparsable or empty input.
func StripQuery(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""
	return strings.TrimSuffix(u.String(), "?")
}

// Integrations maps integration name to its OAuth client registration.
type Integrations map[string]OAuthClientConfig

// Names returns integration names in sorted order, so that callback
// matching iterates deterministically.
func (m Integrations) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Match finds the integration whose callback URL (query stripped) equals the
// given origin+path. Iteration is over sorted names; if two integrations
// share a callback URL the first in sort order wins. That configuration is
// rejected at edit time, so ties only arise from hand-edited state.
func (m Integrations) Match(originPath string) (string, OAuthClientConfig, bool) {
	if originPath == "" {
		return "", OAuthClientConfig{}, false
	}
	for _, name := range m.Names() {
		cfg := m[name]
		if target := cfg.CallbackTarget(); target != "" && target == originPath {
			return name, cfg, true
		}
	}
	return "", OAuthClientConfig{}, false
}

// CallbackConflict reports whether setting callbackURL on the named
// integration would collide with another integration's callback.
func (m Integrations) CallbackConflict(name, callbackURL string) (string, bool) {
	target := StripQuery(callbackURL)
	if target == "" {
		return "", false
	}
	for _, other := range m.Names() {
		if other == name {
			continue
		}
		if m[other].CallbackTarget() == target {
			return other, true
		}
	}
	return "", false
}

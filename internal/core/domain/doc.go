// Package domain defines the core business entities for lumenctl.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - OAuthClientConfig: the OAuth2 client registration for one integration
//   - DisplayConfig: widget assignment and appearance for the display
//   - PersistedState: the versioned aggregate persisted across sessions
//   - Location: an observed navigation target (origin+path plus query)
//   - ExchangeAttempt: a journalled code-exchange attempt
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

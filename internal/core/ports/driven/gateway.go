package driven

import (
	"context"

	"github.com/hellolumen/lumenctl/internal/core/domain"
)

// Gateway is the display backend. All operations fold transport errors and
// non-200 responses into a false return; callers surface the outcome as a
// notification, never as a crash.
type Gateway interface {
	// SubmitDisplayConfig uploads widget assignment and appearance.
	SubmitDisplayConfig(ctx context.Context, cfg domain.DisplayConfig) bool

	// SubmitIntegrationCredentials submits login credentials for a
	// non-OAuth integration (e.g. the brokerage login).
	SubmitIntegrationCredentials(ctx context.Context, integration string, creds domain.BrokerageCredentials) bool

	// ExchangeAuthorizationCode hands an authorization code to the backend,
	// which performs the code-for-token exchange server-side.
	ExchangeAuthorizationCode(ctx context.Context, req domain.ExchangeRequest) bool
}

package driven

import "github.com/hellolumen/lumenctl/internal/core/domain"

// Notifier surfaces user-visible notices. Implementations must not block;
// notification is fire-and-forget.
type Notifier interface {
	// Notify delivers a notice to the user.
	Notify(n domain.Notification)
}

package domain

// NotificationLevel classifies a user-facing notice.
type NotificationLevel string

// Available notification levels.
const (
	// NotificationInfo covers informational notices, e.g. incomplete
	// credentials preventing an exchange.
	NotificationInfo NotificationLevel = "info"

	// NotificationSuccess reports a completed backend operation.
	NotificationSuccess NotificationLevel = "success"

	// NotificationFailure reports a backend operation that failed.
	NotificationFailure NotificationLevel = "failure"
)

// Notification is a user-visible notice. Backend failures surface here
// rather than as errors; the console never crashes on a failed call.
type Notification struct {
	Level   NotificationLevel
	Message string
}

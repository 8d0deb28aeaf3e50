package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnknownIntegration indicates the named integration is not registered.
	ErrUnknownIntegration = errors.New("unknown integration")

	// ErrDuplicateCallback indicates two integrations would share a callback
	// URL, which makes redirect matching ambiguous.
	ErrDuplicateCallback = errors.New("callback URL already in use by another integration")

	// ErrCredentialsIncomplete indicates required credential fields are empty.
	// Surfaced as an informational notice; no backend call is made.
	ErrCredentialsIncomplete = errors.New("credentials incomplete")

	// ErrExchangeInFlight indicates an exchange is already running for the
	// integration. A second observation of the same code is deduplicated,
	// never queued.
	ErrExchangeInFlight = errors.New("exchange already in flight")
)

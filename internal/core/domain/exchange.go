package domain

import "time"

// ExchangeAttempt records one attempt to exchange an authorization code.
// Attempts are journalled before the backend call is made, so a code is
// never retried after a transient failure within the same journal lifetime.
type ExchangeAttempt struct {
	// ID is the unique identifier (UUID).
	ID string

	// Integration is the integration the code was observed for.
	Integration string

	// Code is the authorization code value.
	Code string

	// Succeeded is true once the backend reported a successful exchange.
	Succeeded bool

	// StartedAt is when the attempt was journalled.
	StartedAt time.Time

	// CompletedAt is when the backend call settled. Zero while in flight.
	CompletedAt time.Time
}

// ExchangeRequest is the payload handed to the backend for a code exchange.
type ExchangeRequest struct {
	Integration  string
	Code         string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	GetTokenURL  string
}

// BrokerageCredentials are the login credentials for the brokerage
// integration. They are submitted to the backend and never persisted locally.
type BrokerageCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

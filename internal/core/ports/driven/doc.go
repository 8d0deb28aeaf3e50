// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - StateStore: persisted console state (integrations + display config)
//   - Gateway: the display backend (config upload, credential submit,
//     authorization-code exchange)
//   - LocationSource: observed navigation events
//   - Notifier: user-visible notices
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - AttemptJournal: exchange-attempt dedup across transient failures.
//     Without it, only the LastCode comparison guards re-exchange.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

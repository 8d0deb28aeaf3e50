package driven

import "github.com/hellolumen/lumenctl/internal/core/domain"

// LocationSource emits navigation events. Every URL change produces an
// event, including query-string-only changes; a one-shot read at startup is
// not enough because OAuth redirects commonly change only the query string.
type LocationSource interface {
	// Subscribe returns a channel of observed locations plus a cancel
	// function. The current location, if any, is delivered first.
	Subscribe() (<-chan domain.Location, func())

	// Current returns the most recently observed location.
	Current() (domain.Location, bool)
}

package domain

import (
	"fmt"
	"net/url"
)

// Location is an observed navigation target: the origin+path of the current
// URL plus its query parameters. Query keys are unique; on duplicates the
// last value wins.
type Location struct {
	// OriginPath is scheme://host[:port]/path with query and fragment stripped.
	OriginPath string

	// Query holds the query parameters, last value winning per key.
	Query map[string]string

	// Raw is the URL as observed, unmodified.
	Raw string
}

// ParseLocation parses a raw URL into a Location.
func ParseLocation(rawURL string) (Location, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Location{}, fmt.Errorf("parse location: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Location{}, fmt.Errorf("parse location %q: %w", rawURL, ErrInvalidInput)
	}

	query := make(map[string]string)
	for key, values := range u.Query() {
		if len(values) > 0 {
			query[key] = values[len(values)-1]
		}
	}

	return Location{
		OriginPath: StripQuery(rawURL),
		Query:      query,
		Raw:        rawURL,
	}, nil
}

// Code returns the authorization code query parameter, if present.
func (l Location) Code() string {
	return l.Query["code"]
}

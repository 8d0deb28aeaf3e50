package domain

// SchemaVersion tags the persisted state blob. Hydration resets to defaults
// on mismatch rather than attempting migration.
const SchemaVersion = 1

// PersistedState is the full console state: one OAuth client registration per
// integration plus the display configuration. It is serialised as a single
// versioned blob and models exactly one local user's configuration.
type PersistedState struct {
	// Integrations holds OAuth client registrations keyed by integration name.
	Integrations Integrations `toml:"integrations"`

	// Display holds widget assignment and appearance preferences.
	Display DisplayConfig `toml:"display"`
}

// DefaultState returns the state created on first run: default display
// configuration and an empty registration for the music integration.
func DefaultState() PersistedState {
	return PersistedState{
		Integrations: Integrations{
			IntegrationSpotify: {},
		},
		Display: DefaultDisplayConfig(),
	}
}

// Clone returns a deep copy, so that snapshots handed to subscribers cannot
// alias the store's internal map.
func (s PersistedState) Clone() PersistedState {
	out := s
	out.Integrations = make(Integrations, len(s.Integrations))
	for name, cfg := range s.Integrations {
		out.Integrations[name] = cfg
	}
	return out
}

// Normalise repairs invalid enum values and ensures the integrations map is
// usable after hydration from disk.
func (s *PersistedState) Normalise() {
	if s.Integrations == nil {
		s.Integrations = make(Integrations)
	}
	s.Display.Normalise()
}

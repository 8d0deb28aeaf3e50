package domain

const unknownDescription = "Unknown"

// Widget identifies a content module assignable to a display region.
type Widget string

// Available widgets.
const (
	// WidgetNone leaves the region blank.
	WidgetNone Widget = "none"

	// WidgetMusic shows the currently playing track from the music integration.
	WidgetMusic Widget = "music"

	// WidgetWeather shows current weather conditions.
	WidgetWeather Widget = "weather"

	// WidgetBrokerage shows portfolio figures from the brokerage integration.
	WidgetBrokerage Widget = "brokerage"

	// WidgetClock shows the current time.
	WidgetClock Widget = "clock"
)

// IsValid returns true if the widget is recognised.
func (w Widget) IsValid() bool {
	switch w {
	case WidgetNone, WidgetMusic, WidgetWeather, WidgetBrokerage, WidgetClock:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (w Widget) String() string {
	return string(w)
}

// Description returns a human-readable description of the widget.
func (w Widget) Description() string {
	switch w {
	case WidgetNone:
		return "None (blank region)"
	case WidgetMusic:
		return "Music (now playing)"
	case WidgetWeather:
		return "Weather"
	case WidgetBrokerage:
		return "Brokerage (portfolio)"
	case WidgetClock:
		return "Clock"
	default:
		return unknownDescription
	}
}

// Theme defines the display colour scheme.
type Theme string

// Available themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// Orientation defines how the physical display is mounted.
type Orientation string

// Available orientations.
const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// IsValid returns true if the orientation is recognised.
func (o Orientation) IsValid() bool {
	return o == OrientationHorizontal || o == OrientationVertical
}

// String returns the string representation.
func (o Orientation) String() string {
	return string(o)
}

// Text scrolling speed bounds for the physical display.
const (
	MinCharactersPerSecond = 1
	MaxCharactersPerSecond = 10
)

// DisplayConfig holds widget assignment and appearance for the display.
type DisplayConfig struct {
	// LeftWidget, CenterWidget and RightWidget assign content modules
	// to the three screen regions.
	LeftWidget   Widget `toml:"left_widget" json:"leftWidget"`
	CenterWidget Widget `toml:"center_widget" json:"centerWidget"`
	RightWidget  Widget `toml:"right_widget" json:"rightWidget"`

	// Theme is the display colour scheme.
	Theme Theme `toml:"theme" json:"theme"`

	// Orientation is how the display is mounted.
	Orientation Orientation `toml:"orientation" json:"orientation"`

	// AccentColor is a hex colour string (e.g. "#ff8800").
	AccentColor string `toml:"accent_color" json:"accentColor"`

	// CharactersPerSecond is the text rendering speed on the device,
	// clamped to [MinCharactersPerSecond, MaxCharactersPerSecond].
	CharactersPerSecond int `toml:"characters_per_second" json:"charactersPerSecond"`
}

// DefaultDisplayConfig returns the display configuration used on first run.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		LeftWidget:          WidgetNone,
		CenterWidget:        WidgetNone,
		RightWidget:         WidgetNone,
		Theme:               ThemeLight,
		Orientation:         OrientationHorizontal,
		AccentColor:         "#ffffff",
		CharactersPerSecond: 2,
	}
}

// ClampCharactersPerSecond forces a speed into the supported range.
func ClampCharactersPerSecond(cps int) int {
	if cps < MinCharactersPerSecond {
		return MinCharactersPerSecond
	}
	if cps > MaxCharactersPerSecond {
		return MaxCharactersPerSecond
	}
	return cps
}

// Normalise replaces invalid enum values with defaults and clamps the
// rendering speed. Used when hydrating state written by older versions
// or edited by hand.
func (c *DisplayConfig) Normalise() {
	defaults := DefaultDisplayConfig()
	if !c.LeftWidget.IsValid() {
		c.LeftWidget = defaults.LeftWidget
	}
	if !c.CenterWidget.IsValid() {
		c.CenterWidget = defaults.CenterWidget
	}
	if !c.RightWidget.IsValid() {
		c.RightWidget = defaults.RightWidget
	}
	if !c.Theme.IsValid() {
		c.Theme = defaults.Theme
	}
	if !c.Orientation.IsValid() {
		c.Orientation = defaults.Orientation
	}
	if c.AccentColor == "" {
		c.AccentColor = defaults.AccentColor
	}
	c.CharactersPerSecond = ClampCharactersPerSecond(c.CharactersPerSecond)
}

// AllWidgets returns all available widgets.
func AllWidgets() []Widget {
	return []Widget{
		WidgetNone,
		WidgetMusic,
		WidgetWeather,
		WidgetBrokerage,
		WidgetClock,
	}
}

// AllThemes returns all available themes.
func AllThemes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}

// AllOrientations returns all available orientations.
func AllOrientations() []Orientation {
	return []Orientation{OrientationHorizontal, OrientationVertical}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidget_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		widget Widget
		want   bool
	}{
		{"none", WidgetNone, true},
		{"music", WidgetMusic, true},
		{"weather", WidgetWeather, true},
		{"brokerage", WidgetBrokerage, true},
		{"clock", WidgetClock, true},
		{"empty", Widget(""), false},
		{"unknown", Widget("calendar"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.widget.IsValid())
		})
	}
}

func TestTheme_IsValid(t *testing.T) {
	assert.True(t, ThemeLight.IsValid())
	assert.True(t, ThemeDark.IsValid())
	assert.False(t, Theme("sepia").IsValid())
}

func TestOrientation_IsValid(t *testing.T) {
	assert.True(t, OrientationHorizontal.IsValid())
	assert.True(t, OrientationVertical.IsValid())
	assert.False(t, Orientation("diagonal").IsValid())
}

func TestClampCharactersPerSecond(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below minimum", 0, 1},
		{"negative", -5, 1},
		{"minimum", 1, 1},
		{"in range", 5, 5},
		{"maximum", 10, 10},
		{"above maximum", 11, 10},
		{"far above maximum", 1000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampCharactersPerSecond(tt.in))
		})
	}
}

func TestDefaultDisplayConfig(t *testing.T) {
	cfg := DefaultDisplayConfig()

	assert.Equal(t, WidgetNone, cfg.LeftWidget)
	assert.Equal(t, WidgetNone, cfg.CenterWidget)
	assert.Equal(t, WidgetNone, cfg.RightWidget)
	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, OrientationHorizontal, cfg.Orientation)
	assert.Equal(t, 2, cfg.CharactersPerSecond)
}

func TestDisplayConfig_Normalise(t *testing.T) {
	cfg := DisplayConfig{
		LeftWidget:          Widget("bogus"),
		CenterWidget:        WidgetMusic,
		RightWidget:         Widget(""),
		Theme:               Theme("sepia"),
		Orientation:         Orientation(""),
		CharactersPerSecond: 42,
	}

	cfg.Normalise()

	assert.Equal(t, WidgetNone, cfg.LeftWidget)
	assert.Equal(t, WidgetMusic, cfg.CenterWidget)
	assert.Equal(t, WidgetNone, cfg.RightWidget)
	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, OrientationHorizontal, cfg.Orientation)
	assert.Equal(t, 10, cfg.CharactersPerSecond)
	assert.NotEmpty(t, cfg.AccentColor)
}

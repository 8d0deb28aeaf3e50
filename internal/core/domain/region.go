package domain

// Region identifies one of the three screen regions.
type Region string

// Available regions.
const (
	RegionLeft   Region = "left"
	RegionCenter Region = "center"
	RegionRight  Region = "right"
)

// IsValid returns true if the region is recognised.
func (r Region) IsValid() bool {
	switch r {
	case RegionLeft, RegionCenter, RegionRight:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Region) String() string {
	return string(r)
}

// AllRegions returns the regions in screen order.
func AllRegions() []Region {
	return []Region{RegionLeft, RegionCenter, RegionRight}
}

// Widget returns the widget assigned to the region.
func (c DisplayConfig) Widget(r Region) Widget {
	switch r {
	case RegionLeft:
		return c.LeftWidget
	case RegionCenter:
		return c.CenterWidget
	case RegionRight:
		return c.RightWidget
	default:
		return WidgetNone
	}
}

// SetWidget assigns a widget to the region.
func (c *DisplayConfig) SetWidget(r Region, w Widget) {
	switch r {
	case RegionLeft:
		c.LeftWidget = w
	case RegionCenter:
		c.CenterWidget = w
	case RegionRight:
		c.RightWidget = w
	}
}

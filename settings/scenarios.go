package settings

import "image/color"

const (
	Model = "model"

	// The surface the model backend renders into by default.
	DefaultSurface = "networth-canvas"
)

// Scenario styles one dataset of the comparison chart. Label is what the
// legend and tooltip show.
type Scenario struct {
	Name   string
	Label  string
	Stroke color.RGBA
}

var Scenarios = []Scenario{
	{
		Name:   "buy",
		Label:  "Buy (Net Worth)",
		Stroke: Green,
	},
	{
		Name:   "rent",
		Label:  "Rent (Net Worth)",
		Stroke: Red,
	},
}

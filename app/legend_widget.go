package app

import (
	"rentvsbuy/settings"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// LegendWidget is the shared legend row under the plot: one colored
// swatch plus label per dataset, centered.
type LegendWidget struct {
	*widget.Container

	chart *LineChartWidget
}

func NewLegend(chart *LineChartWidget) *LegendWidget {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(settings.ChartLegendHeight)),
		),
	)
	return &LegendWidget{
		Container: container,
		chart:     chart,
	}
}

func (l *LegendWidget) Render(screen *ebiten.Image) {
	l.Container.Render(screen)

	rect := l.GetWidget().Rect
	font := settings.FontSM
	swatch := float64(10 * settings.Scale)
	gap := float64(settings.PanelPadding)

	total := 0.0
	for _, set := range l.chart.sets {
		w, _ := textMeasure(set.scenario.Label, font)
		total += swatch + 6 + w + gap
	}
	total -= gap

	x := float64(rect.Min.X) + float64(rect.Dx())/2 - total/2
	midY := float64(rect.Min.Y) + float64(rect.Dy())/2

	for _, set := range l.chart.sets {
		vector.DrawFilledRect(screen,
			float32(x), float32(midY-swatch/2),
			float32(swatch), float32(swatch),
			set.scenario.Stroke, false)
		x += swatch + 6

		w, h := textMeasure(set.scenario.Label, font)
		DrawText(screen, set.scenario.Label, font, x, midY-h/2, colornames.White)
		x += w + gap
	}
}

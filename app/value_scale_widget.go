package app

import (
	"math"

	"rentvsbuy/settings"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/exp/shiny/materialdesign/colornames"
)

type ValueScaleWidget struct {
	*widget.Container

	chart *LineChartWidget
}

func NewValueScale(chart *LineChartWidget) *ValueScaleWidget {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(settings.ChartValueScaleWidth), 0),
		),
	)
	return &ValueScaleWidget{
		Container: container,
		chart:     chart,
	}
}

func (v *ValueScaleWidget) Render(screen *ebiten.Image) {
	v.Container.Render(screen)

	rect := v.Container.GetWidget().Rect
	font := settings.FontSM

	DrawText(screen, settings.ValueAxisTitle, font,
		float64(rect.Min.X)+float64(settings.ChartValueScaleMargin),
		float64(rect.Min.Y)+float64(settings.PanelPadding),
		colornames.White)

	if len(v.chart.labels) == 0 {
		return
	}

	step := niceValueStep(v.chart.maxValue - v.chart.minValue)
	start := math.Ceil(v.chart.minValue/step) * step
	for value := start; value <= v.chart.maxValue; value += step {
		y := v.chart.getValueY(value)
		if y > float32(rect.Min.Y) && y < float32(rect.Min.Y+rect.Dy()) {
			label := FormatCurrencyTick(value)
			op := text.DrawOptions{}
			fh := font.Metrics().CapHeight
			op.GeoM.Translate(float64(rect.Min.X)+float64(settings.ChartValueScaleMargin), float64(y)-fh)
			text.Draw(screen, label, font, &op)
		}
	}
}

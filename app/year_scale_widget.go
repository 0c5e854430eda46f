package app

import (
	"rentvsbuy/settings"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

type YearScaleWidget struct {
	*widget.Container

	chart *LineChartWidget
}

func NewYearScale(chart *LineChartWidget) *YearScaleWidget {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(settings.ChartYearScaleHeight)),
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				HorizontalPosition: widget.GridLayoutPositionStart,
			}),
		),
	)
	return &YearScaleWidget{
		Container: container,
		chart:     chart,
	}
}

func (ys *YearScaleWidget) Render(screen *ebiten.Image) {
	ys.Container.Render(screen)

	rect := ys.GetWidget().Rect
	font := settings.FontSM

	titleW, titleH := textMeasure(settings.YearAxisTitle, font)
	DrawText(screen, settings.YearAxisTitle, font,
		float64(rect.Min.X)+float64(rect.Dx())/2-titleW/2,
		float64(rect.Max.Y)-titleH,
		colornames.White)

	n := len(ys.chart.labels)
	if n == 0 {
		return
	}

	// Subsample so category labels never overlap.
	maxW := 0.0
	for _, label := range ys.chart.labels {
		w, _ := textMeasure(label, font)
		if w > maxW {
			maxW = w
		}
	}
	stride := 1
	if maxW > 0 {
		if fit := int(float64(rect.Dx()) / (maxW + 8)); fit > 0 && n > fit {
			stride = (n + fit - 1) / fit
		}
	}

	for i := 0; i < n; i += stride {
		label := ys.chart.labels[i]
		x := float64(ys.chart.getIndexX(i))
		w, _ := textMeasure(label, font)
		drawY := float64(rect.Min.Y) + float64(font.Metrics().CapHeight)
		DrawText(screen, label, font, x-w/2, drawY, colornames.White)
	}
}

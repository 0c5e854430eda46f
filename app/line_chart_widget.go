package app

import (
	"math"

	"rentvsbuy/settings"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

type dataset struct {
	scenario settings.Scenario
	values   []float64
	// snapshot the last render was showing, the redraw animation lerps
	// from here to values.
	prev []float64
}

type LineChartWidget struct {
	*widget.Container

	labels []string
	sets   [2]dataset

	minValue float64
	maxValue float64

	screen     *widget.Container
	valueScale *ValueScaleWidget
	yearScale  *YearScaleWidget
	legend     *LegendWidget

	whitePixel *ebiten.Image

	isMouseInBounds bool
	hoverIndex      int

	// 0..1, advanced every Update until the redraw is fully shown.
	animProgress float64
}

func NewLineChartWidget() *LineChartWidget {
	whitePixel := ebiten.NewImage(1, 1)
	whitePixel.Fill(colornames.White)

	chart := LineChartWidget{
		whitePixel:   whitePixel,
		hoverIndex:   -1,
		animProgress: 1,
	}
	for i, scenario := range settings.Scenarios {
		chart.sets[i].scenario = scenario
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true, true}),
			widget.GridLayoutOpts.Spacing(1, 0),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
		),
	)
	leftContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{true, false, false}),
			widget.GridLayoutOpts.Spacing(0, 1),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				HorizontalPosition: widget.GridLayoutPositionStart,
				VerticalPosition:   widget.GridLayoutPositionStart,
			}),
		),
	)
	screenContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.CursorEnterHandler(chart.onContainerEnter),
			widget.WidgetOpts.CursorExitHandler(chart.onContainerLeave),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	chart.screen = screenContainer
	chart.yearScale = NewYearScale(&chart)
	chart.legend = NewLegend(&chart)
	leftContainer.AddChild(screenContainer, chart.yearScale, chart.legend)
	chart.valueScale = NewValueScale(&chart)
	rootContainer.AddChild(leftContainer, chart.valueScale)
	chart.Container = rootContainer

	return &chart
}

func (chart *LineChartWidget) GetWidget() *widget.Widget {
	return chart.screen.GetWidget()
}

// SetData replaces the label axis and both series in place. Equal
// lengths are the caller's obligation.
func (chart *LineChartWidget) SetData(labels []string, buy, rent []float64) {
	chart.sets[0].prev = chart.renderedValues(0)
	chart.sets[1].prev = chart.renderedValues(1)
	chart.labels = labels
	chart.sets[0].values = buy
	chart.sets[1].values = rent
}

// Redraw repaints with the new data. RedrawInstant shows it on the next
// frame, RedrawAnimated sweeps over a few frames (first render only).
func (chart *LineChartWidget) Redraw(mode RedrawMode) {
	if mode == RedrawAnimated {
		chart.animProgress = 0
	} else {
		chart.animProgress = 1
	}
}

func (chart *LineChartWidget) Update() {
	chart.Container.Update()

	if chart.animProgress < 1 {
		chart.animProgress += 1 / float64(settings.RedrawAnimFrames)
		if chart.animProgress > 1 {
			chart.animProgress = 1
		}
	}

	chart.computeRange()
	chart.updateHover()
}

// renderedValues is what the current frame shows for one dataset,
// mid-animation included.
func (chart *LineChartWidget) renderedValues(si int) []float64 {
	set := chart.sets[si]
	if set.values == nil {
		return nil
	}
	if chart.animProgress >= 1 {
		return set.values
	}
	out := make([]float64, len(set.values))
	for i, v := range set.values {
		from := 0.0
		if i < len(set.prev) {
			from = set.prev[i]
		}
		out[i] = from + (v-from)*chart.animProgress
	}
	return out
}

func (chart *LineChartWidget) computeRange() {
	first := true
	min, max := 0.0, 0.0
	for _, set := range chart.sets {
		for _, v := range set.values {
			if first {
				min, max = v, v
				first = false
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if first {
		return
	}
	if min == max {
		min, max = min-1, max+1
	}
	pad := (max - min) * float64(settings.ValueRangePadding)
	chart.minValue = min - pad
	chart.maxValue = max + pad
}

func (chart *LineChartWidget) updateHover() {
	chart.hoverIndex = -1
	if !chart.isMouseInBounds || len(chart.labels) == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	rect := chart.GetWidget().Rect
	if my < rect.Min.Y || my > rect.Max.Y {
		return
	}
	chart.hoverIndex = chart.indexAtX(mx)
}

func (chart *LineChartWidget) onContainerEnter(_ *widget.WidgetCursorEnterEventArgs) {
	chart.isMouseInBounds = true
}

func (chart *LineChartWidget) onContainerLeave(_ *widget.WidgetCursorExitEventArgs) {
	chart.isMouseInBounds = false
}

func (chart *LineChartWidget) getValueY(v float64) float32 {
	rect := chart.GetWidget().Rect
	valueRange := chart.maxValue - chart.minValue
	if valueRange <= 0 {
		return float32(rect.Min.Y + rect.Dy()/2)
	}
	pixelsPerUnit := float32(rect.Dy()) / float32(valueRange)
	offset := float32(v-chart.minValue) * pixelsPerUnit
	return float32(rect.Min.Y+rect.Dy()) - offset
}

func (chart *LineChartWidget) getIndexX(i int) float32 {
	rect := chart.GetWidget().Rect
	n := len(chart.labels)
	if n <= 1 {
		return float32(rect.Min.X)
	}
	stepX := float64(rect.Dx()) / float64(n-1)
	return float32(rect.Min.X) + float32(float64(i)*stepX)
}

func (chart *LineChartWidget) indexAtX(x int) int {
	rect := chart.GetWidget().Rect
	n := len(chart.labels)
	if n <= 1 || rect.Dx() == 0 {
		return 0
	}
	stepX := float64(rect.Dx()) / float64(n-1)
	i := int(math.Round(float64(x-rect.Min.X) / stepX))
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return i
}

func (chart *LineChartWidget) Render(screen *ebiten.Image) {
	chart.Container.Render(screen)

	if len(chart.labels) == 0 {
		return
	}

	chart.renderGrid(screen)
	chart.renderZeroLine(screen)
	for si := range chart.sets {
		chart.renderFill(screen, si)
	}
	for si := range chart.sets {
		chart.renderCurve(screen, si)
		chart.renderMarkers(screen, si)
	}
	chart.renderTooltip(screen)
}

// Horizontal guides only, the category axis stays gridless.
func (chart *LineChartWidget) renderGrid(screen *ebiten.Image) {
	rect := chart.GetWidget().Rect
	step := niceValueStep(chart.maxValue - chart.minValue)
	start := math.Ceil(chart.minValue/step) * step
	for v := start; v <= chart.maxValue; v += step {
		y := chart.getValueY(v)
		if y <= float32(rect.Min.Y) || y >= float32(rect.Max.Y) {
			continue
		}
		vector.StrokeLine(screen,
			float32(rect.Min.X), y,
			float32(rect.Max.X), y,
			1, settings.ChartGridColor, false)
	}
}

func (chart *LineChartWidget) renderZeroLine(screen *ebiten.Image) {
	if chart.minValue >= 0 || chart.maxValue <= 0 {
		return
	}
	rect := chart.GetWidget().Rect
	y := chart.getValueY(0)
	DrawDashedLine(screen,
		float32(rect.Min.X), y,
		float32(rect.Max.X), y,
		1, 5, 5, settings.ChartZeroLineColor, false)
}

// curvePoints samples the Catmull-Rom smoothed polyline for one dataset
// in screen space.
func (chart *LineChartWidget) curvePoints(si int) ([]float32, []float32) {
	values := chart.renderedValues(si)
	n := len(values)
	if n == 0 {
		return nil, nil
	}
	steps := settings.CurveSegmentSteps
	xs := make([]float32, 0, (n-1)*steps+1)
	ys := make([]float32, 0, (n-1)*steps+1)
	xs = append(xs, chart.getIndexX(0))
	ys = append(ys, chart.getValueY(values[0]))
	at := func(i int) float64 {
		if i < 0 {
			i = 0
		}
		if i > n-1 {
			i = n - 1
		}
		return values[i]
	}
	for i := 0; i < n-1; i++ {
		x1 := float64(chart.getIndexX(i))
		x2 := float64(chart.getIndexX(i + 1))
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			v := catmullRom(at(i-1), at(i), at(i+1), at(i+2), t)
			xs = append(xs, float32(x1+(x2-x1)*t))
			ys = append(ys, chart.getValueY(v))
		}
	}
	return xs, ys
}

func (chart *LineChartWidget) renderCurve(screen *ebiten.Image, si int) {
	rect := chart.GetWidget().Rect
	minY := float32(rect.Min.Y)
	maxY := float32(rect.Max.Y)
	xs, ys := chart.curvePoints(si)

	clip := func(val float32) float32 {
		if val < minY {
			val = minY
		} else if val > maxY {
			val = maxY
		}
		return val
	}

	for i := 0; i < len(xs)-1; i++ {
		vector.StrokeLine(screen,
			xs[i], clip(ys[i]),
			xs[i+1], clip(ys[i+1]),
			float32(settings.LineStrokeWidth), chart.sets[si].scenario.Stroke, true)
	}
}

// renderFill shades the area between the curve and the zero baseline
// with a translucent version of the stroke color.
func (chart *LineChartWidget) renderFill(screen *ebiten.Image, si int) {
	rect := chart.GetWidget().Rect
	xs, ys := chart.curvePoints(si)
	if len(xs) < 2 {
		return
	}

	baseY := chart.getValueY(0)
	if baseY < float32(rect.Min.Y) {
		baseY = float32(rect.Min.Y)
	} else if baseY > float32(rect.Max.Y) {
		baseY = float32(rect.Max.Y)
	}

	stroke := chart.sets[si].scenario.Stroke
	alphaF := float32(settings.LineFillAlpha) / 255
	colR := float32(stroke.R) / 255 * alphaF
	colG := float32(stroke.G) / 255 * alphaF
	colB := float32(stroke.B) / 255 * alphaF

	var vertices []ebiten.Vertex
	var indices []uint16
	idxCount := uint16(0)

	for i := 0; i < len(xs)-1; i++ {
		vertices = append(vertices,
			ebiten.Vertex{
				DstX: xs[i], DstY: ys[i],
				SrcX: 0, SrcY: 0,
				ColorR: colR, ColorG: colG, ColorB: colB, ColorA: alphaF,
			},
			ebiten.Vertex{
				DstX: xs[i+1], DstY: ys[i+1],
				SrcX: 1, SrcY: 0,
				ColorR: colR, ColorG: colG, ColorB: colB, ColorA: alphaF,
			},
			ebiten.Vertex{
				DstX: xs[i], DstY: baseY,
				SrcX: 0, SrcY: 1,
				ColorR: colR, ColorG: colG, ColorB: colB, ColorA: alphaF,
			},
			ebiten.Vertex{
				DstX: xs[i+1], DstY: baseY,
				SrcX: 1, SrcY: 1,
				ColorR: colR, ColorG: colG, ColorB: colB, ColorA: alphaF,
			},
		)
		indices = append(indices,
			idxCount, idxCount+1, idxCount+2,
			idxCount+1, idxCount+3, idxCount+2,
		)
		idxCount += 4
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.Blend = ebiten.BlendSourceOver
	screen.DrawTriangles(vertices, indices, chart.whitePixel, op)
}

func (chart *LineChartWidget) renderMarkers(screen *ebiten.Image, si int) {
	values := chart.renderedValues(si)
	for i := range values {
		radius := float32(settings.MarkerRadius)
		if i == chart.hoverIndex {
			radius = float32(settings.MarkerHoverRadius)
		}
		vector.DrawFilledCircle(screen,
			chart.getIndexX(i), chart.getValueY(values[i]),
			radius, chart.sets[si].scenario.Stroke, true)
	}
}

func (chart *LineChartWidget) renderTooltip(screen *ebiten.Image) {
	if !chart.isMouseInBounds || chart.hoverIndex < 0 {
		return
	}
	i := chart.hoverIndex
	font := settings.FontSM

	lines := make([]string, 0, len(chart.sets)+1)
	lines = append(lines, chart.labels[i])
	for _, set := range chart.sets {
		if i >= len(set.values) {
			continue
		}
		lines = append(lines, TooltipLine(set.scenario.Label, set.values[i]))
	}

	var boxW, lineH float64
	for _, line := range lines {
		w, h := textMeasure(line, font)
		if w > boxW {
			boxW = w
		}
		lineH = h
	}
	pad := float64(settings.PanelPadding) / 2
	boxW += pad * 2
	boxH := lineH*float64(len(lines)) + pad*2

	mx, my := ebiten.CursorPosition()
	rect := chart.GetWidget().Rect
	x := float64(mx) + 16
	if x+boxW > float64(rect.Max.X) {
		x = float64(mx) - 16 - boxW
	}
	y := float64(my) + 16
	if y+boxH > float64(rect.Max.Y) {
		y = float64(my) - 16 - boxH
	}

	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(boxW), float32(boxH),
		settings.ChartTooltipBgColor, false)
	vector.StrokeRect(screen,
		float32(x), float32(y), float32(boxW), float32(boxH),
		1, settings.ChartTooltipBorder, false)

	for li, line := range lines {
		col := colornames.White
		if li > 0 {
			col = chart.sets[li-1].scenario.Stroke
		}
		DrawText(screen, line, font, x+pad, y+pad+float64(li)*lineH, col)
	}
}

func (chart *LineChartWidget) Close(_ *widget.WindowClosedEventArgs) {
}

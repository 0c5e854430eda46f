package settings

import (
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/exp/shiny/materialdesign/colornames"
)

var (
	Scale = float32(ebiten.Monitor().DeviceScaleFactor())

	// Colors
	Black = color.RGBA{12, 14, 17, 255}
	Red   = color.RGBA{246, 71, 93, 255}
	Green = color.RGBA{45, 189, 133, 255}

	// APP
	BackgroundColor  = Black
	BackgroundColor2 = color.RGBA{23, 26, 32, 255}

	// App header
	AppHeaderHeight          = 40 * Scale
	AppHeaderBackGroundColor = BackgroundColor2

	// App footer
	AppFooterHeight          = 24 * Scale
	AppFooterBackGroundColor = BackgroundColor2

	PanelBackgroundColor = BackgroundColor2
	PanelDividerColor    = color.RGBA{52, 59, 71, 255}
	PanelHeaderHeight    = 40 * Scale
	PanelPadding         = 12 * Scale

	ButtonIdleColor    = color.RGBA{42, 49, 57, 1}
	ButtonHoverColor   = color.RGBA{42, 49, 57, 100}
	ButtonPressedColor = color.RGBA{42, 49, 57, 200}

	// Chart
	ChartValueScaleWidth  = 80 * Scale
	ChartYearScaleHeight  = 30 * Scale
	ChartLegendHeight     = 30 * Scale
	ChartValueScaleMargin = 12 * Scale
	ChartValueLabelWidth  = ChartValueScaleWidth
	ChartValueLabelHeight = 20 * Scale
	ChartGridColor        = color.RGBA{52, 59, 71, 255}
	ChartZeroLineColor    = colornames.BlueGrey400
	ChartTooltipBgColor   = color.RGBA{35, 40, 49, 240}
	ChartTooltipBorder    = color.RGBA{52, 59, 71, 255}

	LineStrokeWidth        = 2 * Scale
	LineFillAlpha    uint8 = 48
	MarkerRadius           = 3 * Scale
	MarkerHoverRadius      = 5 * Scale
	// Samples drawn per segment for the smoothed curve.
	CurveSegmentSteps = 12
	// How much headroom the value range gets above/below the data.
	ValueRangePadding = 0.08

	// Frames the create animation sweeps over. Updates never animate.
	RedrawAnimFrames = 20

	FontSM   text.Face
	FontBase text.Face

	MenuButtonHoverBg         = colornames.Orange300
	MenuButtonClickBg         = colornames.Orange600
	MenuButtonTextColorIdle   = colornames.White
	MenuButtonTextColorActive = colornames.Orange600

	// Theming for now.
	ColorPrimary        = colornames.Orange300
	ColorPrimaryLighter = colornames.Orange100
	ColorPrimaryDarker  = colornames.Orange600
)

const (
	// Axis titles.
	YearAxisTitle  = "Years"
	ValueAxisTitle = "Net Worth ($)"
)

func init() {
	FontSM, _ = LoadFont(12)
	FontBase, _ = LoadFont(13)
}

func LoadFont(size float64) (text.Face, error) {
	b, err := os.Open("assets/jetbrains.ttf")
	if err != nil {
		return nil, err
	}
	s, err := text.NewGoTextFaceSource(b)
	if err != nil {
		log.Fatal(err)
		return nil, err
	}

	return &text.GoTextFace{
		Source: s,
		Size:   size * ebiten.Monitor().DeviceScaleFactor(),
	}, nil
}

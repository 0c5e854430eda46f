package app

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func DrawText(screen *ebiten.Image, str string, font text.Face, x, y float64, color color.Color) {
	ops := text.DrawOptions{}
	ops.GeoM.Translate(x, y)
	ops.ColorScale.ScaleWithColor(color)
	text.Draw(screen, str, font, &ops)
}

func textMeasure(str string, font text.Face) (float64, float64) {
	return text.Measure(str, font, font.Metrics().VLineGap)
}

// DrawDashedLine draws a dashed line from (x0,y0) to (x1,y1) on the given dst image.
func DrawDashedLine(
	dst *ebiten.Image,
	x0, y0, x1, y1 float32,
	thickness float32,
	dashLen, gapLen float32,
	clr color.Color,
	additive bool,
) {
	totalLen := float64(math.Hypot(float64(x1-x0), float64(y1-y0)))
	if totalLen == 0 {
		return
	}

	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	dirX := dx / totalLen
	dirY := dy / totalLen

	currX := float64(x0)
	currY := float64(y0)

	distanceDrawn := 0.0

	for distanceDrawn < totalLen {
		dashEnd := distanceDrawn + float64(dashLen)
		if dashEnd > totalLen {
			dashEnd = totalLen
		}

		endX := float32(currX + dirX*(dashEnd-distanceDrawn))
		endY := float32(currY + dirY*(dashEnd-distanceDrawn))

		vector.StrokeLine(
			dst,
			float32(currX), float32(currY),
			endX, endY,
			thickness,
			clr,
			additive,
		)

		distanceDrawn = dashEnd

		distanceDrawn += float64(gapLen)
		if distanceDrawn > totalLen {
			break
		}

		currX = float64(x0) + dirX*distanceDrawn
		currY = float64(y0) + dirY*distanceDrawn
	}
}

func SplitRect(rect image.Rectangle, orientation string, ratio float64, spacing int) (pane1, pane2 image.Rectangle) {
	switch orientation {
	case "horizontal":
		totalW := rect.Dx()
		paneW := int(ratio * float64(totalW))

		pane1 = image.Rect(
			rect.Min.X,
			rect.Min.Y,
			rect.Min.X+paneW,
			rect.Max.Y,
		)

		pane2 = image.Rect(
			rect.Min.X+paneW+spacing,
			rect.Min.Y,
			rect.Max.X,
			rect.Max.Y,
		)

	case "vertical":
		totalH := rect.Dy()
		paneH := int(ratio * float64(totalH))

		pane1 = image.Rect(
			rect.Min.X,
			rect.Min.Y,
			rect.Max.X,
			rect.Min.Y+paneH,
		)

		pane2 = image.Rect(
			rect.Min.X,
			rect.Min.Y+paneH+spacing,
			rect.Max.X,
			rect.Max.Y,
		)

	default:
		pane1 = rect
		pane2 = image.Rectangle{}
	}

	return
}

package app

import (
	"image/color"
	"rentvsbuy/settings"

	img "image"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/exp/shiny/materialdesign/colornames"
)

func NewWindow(widg widgetCloser, title string, rect img.Rectangle) *widget.Window {
	content := CreateContainer(rect.Dx(), rect.Dy())
	content.AddChild(widg)

	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{
				Top:    int(2 * settings.Scale),
				Bottom: int(2 * settings.Scale),
				Right:  int(2 * settings.Scale),
				Left:   int(2 * settings.Scale),
			}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(settings.AppHeaderHeight)),
		),
	)

	innerContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Spacing(int(12*settings.Scale)),
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.Insets{Left: int(settings.PanelPadding)}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal:  true,
				StretchVertical:    true,
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	innerContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(title, settings.FontSM, color.NRGBA{254, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	toolbar, ok := widg.(Toolbar)
	if ok {
		innerContainer.AddChild(toolbar.Toolbar())
	}
	container.AddChild(innerContainer)

	window := widget.NewWindow(
		widget.WindowOpts.Contents(content),
		widget.WindowOpts.TitleBar(container, int(settings.PanelHeaderHeight)),
		widget.WindowOpts.ClosedHandler(widg.Close),
		widget.WindowOpts.Draggable(),
		widget.WindowOpts.Resizeable(),
		widget.WindowOpts.MinSize(content.GetWidget().MinWidth, content.GetWidget().MinHeight),
	)

	container.AddChild(windowCloseButton(window.Close))

	window.SetLocation(rect)

	return window
}

func windowCloseButton(onClose func()) *widget.Button {
	img := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(settings.ButtonIdleColor),
		Hover:   image.NewNineSliceColor(settings.ButtonHoverColor),
		Pressed: image.NewNineSliceColor(settings.ButtonPressedColor),
	}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				Padding:            widget.Insets{Right: int(8 * settings.Scale)},
			}),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text("x", settings.FontSM, &widget.ButtonTextColor{
			Idle:    colornames.White,
			Hover:   colornames.White,
			Pressed: colornames.White,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:  int(4 * settings.Scale),
			Right: int(4 * settings.Scale),
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClose()
		}),
	)
}

func CreateContainer(w, h int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{
				Right:  int(2 * settings.Scale),
				Left:   int(2 * settings.Scale),
				Bottom: int(2 * settings.Scale),
			}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
		),
	)
}

package app

import (
	"image/color"

	"rentvsbuy/settings"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/colornames"
)

type MenuBarWidget struct {
	*widget.Container
}

func NewMenuBarWidget() *MenuBarWidget {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{Left: int(settings.PanelPadding)}),
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
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal:  true,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Re-applies the latest series through the presenter, forcing an
	// instant repaint.
	refreshButton := newToolbarButton("Refresh")
	refreshButton.ClickedEvent.AddHandler(func(_ any) {
		if update, ok := app.presenter.LastUpdate(); ok {
			app.presenter.CreateOrUpdate(update.Feed.Surface, update.Labels, update.Buy, update.Rent)
		}
	})
	innerContainer.AddChild(refreshButton)

	container.AddChild(innerContainer)

	return &MenuBarWidget{
		Container: container,
	}
}

func (w *MenuBarWidget) PreferredSize() (int, int) {
	return 0, int(settings.AppHeaderHeight)
}

func newToolbarButton(label string) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.Transparent),
			Hover:   image.NewNineSliceColor(settings.MenuButtonHoverBg),
			Pressed: image.NewNineSliceColor(settings.MenuButtonClickBg),
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Text(label, settings.FontSM, &widget.ButtonTextColor{
			Idle:     color.White,
			Disabled: colornames.Gray,
			Hover:    color.Black,
			Pressed:  color.Black,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Top:    4,
			Left:   12,
			Right:  12,
			Bottom: 4,
		}),
	)
}

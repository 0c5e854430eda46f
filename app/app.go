package app

import (
	"math"
	"rentvsbuy/actor/session"
	"rentvsbuy/event"
	"rentvsbuy/settings"

	"github.com/anthdm/hollywood/actor"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

var app *App

type App struct {
	ui *ebitenui.UI

	contentContainer *widget.Container
	engine           *actor.Engine

	surfaces  *SurfaceRegistry
	presenter *Presenter
	eventCh   chan any
}

func New(e *actor.Engine) *App {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Spacing(0, 0),
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch(
				[]bool{true, true, true},
				[]bool{false, true, false}),
		)),
	)
	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	app = &App{
		ui: &ebitenui.UI{
			Container: root,
		},
		contentContainer: content,
		engine:           e,
		surfaces:         NewSurfaceRegistry(),
	}
	app.presenter = NewPresenter(app.surfaces)

	root.AddChild(NewMenuBarWidget(), content, NewStatusBarWidget())

	return app
}

func (app *App) Draw(screen *ebiten.Image) {
	app.ui.Draw(screen)
}

var (
	timer   float64
	elapsed bool
)

func (app *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	app.ui.Update()

	if !elapsed {
		timer += 1.0 / 60.0
		if timer > 1 {
			app.loadInitialLayout()
			elapsed = true
		}
	}

	// Presenter calls stay on the game loop goroutine, the session
	// channel only ferries updates over.
	for {
		select {
		case msg, ok := <-app.eventCh:
			if !ok {
				app.eventCh = nil
				return nil
			}
			if update, ok := msg.(event.SeriesUpdate); ok {
				app.presenter.CreateOrUpdate(update.Feed.Surface, update.Labels, update.Buy, update.Rent)
			}
		default:
			return nil
		}
	}
}

func (app *App) loadInitialLayout() {
	rect := app.contentContainer.GetWidget().Rect

	// The inputs panel of the calculator lives on the left in the
	// hosted layout, the chart surface takes the rest.
	_, chartRect := SplitRect(rect, "horizontal", 0.28, 0)
	app.surfaces.Add(settings.DefaultSurface, chartRect)

	app.eventCh = make(chan any)
	feed := event.NewFeed(settings.Model, settings.DefaultSurface)
	streams := []session.Stream{{Stream: event.StreamSeries}}
	app.engine.Spawn(session.New(app.eventCh, feed, streams), "session")

	// Seed the chart once with a sample run so the window is not empty
	// before the backend pushes real series.
	app.presenter.CreateOrUpdate(settings.DefaultSurface, seedLabels, seedBuy, seedRent)
}

func newChartWindow(s *Surface) chartInstance {
	chart := NewLineChartWidget()
	app.ui.AddWindow(NewWindow(chart, "Net Worth - Buy vs Rent", s.Rect))
	return chart
}

var (
	seedLabels = []string{
		"Year 0", "Year 1", "Year 2", "Year 3", "Year 4", "Year 5",
		"Year 6", "Year 7", "Year 8", "Year 9", "Year 10",
	}
	seedBuy = []float64{
		-104000, -88000, -69500, -48200, -23900, 3600,
		34500, 69200, 107800, 150700, 198300,
	}
	seedRent = []float64{
		-12000, 3200, 19800, 37900, 57600, 79100,
		102500, 128000, 155800, 186100, 219200,
	}
)

func (app *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	panic("rent vs buy running with an unsupported Ebiten Engine version")
}

func (app *App) LayoutF(logicWidth, logicHeight float64) (float64, float64) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	canvasWidth := math.Ceil(logicWidth * scale)
	canvasHeight := math.Ceil(logicHeight * scale)
	return canvasWidth, canvasHeight
}

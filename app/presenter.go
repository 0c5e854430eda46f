package app

import (
	"time"

	"rentvsbuy/event"
	"rentvsbuy/pkg/ring"
	"rentvsbuy/settings"
)

// RedrawMode mirrors the charting contract: instant repaints jump
// straight to the new data, animated ones sweep in over a few frames.
type RedrawMode int

const (
	RedrawInstant RedrawMode = iota
	RedrawAnimated
)

// chartInstance is everything the presenter needs from the chart
// widget: in-place data replacement plus a redraw trigger.
type chartInstance interface {
	SetData(labels []string, buy, rent []float64)
	Redraw(mode RedrawMode)
}

// Presenter owns at most one live chart instance per surface. The
// original kept this as a page-wide global; here the app injects the
// presenter and tests swap the chart constructor.
type Presenter struct {
	surfaces *SurfaceRegistry
	charts   map[string]chartInstance
	newChart func(*Surface) chartInstance
	history  *ring.Buffer[event.SeriesUpdate]
}

func NewPresenter(surfaces *SurfaceRegistry) *Presenter {
	return &Presenter{
		surfaces: surfaces,
		charts:   make(map[string]chartInstance),
		newChart: newChartWindow,
		history:  ring.NewBuffer[event.SeriesUpdate](16),
	}
}

// CreateOrUpdate builds the chart on the first call for a surface and
// mutates its labels/series in place on every call after that. The
// first render animates in, updates repaint instantly. An id that does
// not resolve is a silent no-op.
func (p *Presenter) CreateOrUpdate(surfaceID string, labels []string, buy, rent []float64) {
	surface, ok := p.surfaces.Resolve(surfaceID)
	if !ok {
		return
	}
	chart, ok := p.charts[surfaceID]
	if !ok {
		chart = p.newChart(surface)
		p.charts[surfaceID] = chart
		chart.SetData(labels, buy, rent)
		chart.Redraw(RedrawAnimated)
	} else {
		chart.SetData(labels, buy, rent)
		chart.Redraw(RedrawInstant)
	}
	p.history.Push(event.SeriesUpdate{
		Feed:   event.NewFeed(settings.Model, surfaceID),
		Labels: labels,
		Buy:    buy,
		Rent:   rent,
		Unix:   time.Now().Unix(),
	})
}

// LastUpdate reports the most recent successful CreateOrUpdate.
func (p *Presenter) LastUpdate() (event.SeriesUpdate, bool) {
	return p.history.Last()
}

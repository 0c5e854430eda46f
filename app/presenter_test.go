package app

import (
	img "image"
	"testing"

	"github.com/go-test/deep"
)

type fakeChart struct {
	labels  []string
	buy     []float64
	rent    []float64
	redraws []RedrawMode
}

func (f *fakeChart) SetData(labels []string, buy, rent []float64) {
	f.labels = labels
	f.buy = buy
	f.rent = rent
}

func (f *fakeChart) Redraw(mode RedrawMode) {
	f.redraws = append(f.redraws, mode)
}

func newTestPresenter() (*Presenter, *fakeChart, *int) {
	surfaces := NewSurfaceRegistry()
	surfaces.Add("networth-canvas", img.Rect(0, 0, 800, 600))

	p := NewPresenter(surfaces)
	chart := &fakeChart{}
	created := new(int)
	p.newChart = func(*Surface) chartInstance {
		*created++
		return chart
	}
	return p, chart, created
}

func TestCreateOrUpdateConstructsOnce(t *testing.T) {
	p, chart, created := newTestPresenter()

	p.CreateOrUpdate("networth-canvas",
		[]string{"Year 0", "Year 1"},
		[]float64{-104000, -88000},
		[]float64{-12000, 3200})

	if *created != 1 {
		t.Fatalf("expected 1 chart constructed, got %d", *created)
	}
	if len(chart.redraws) != 1 || chart.redraws[0] != RedrawAnimated {
		t.Fatalf("expected first redraw animated, got %v", chart.redraws)
	}

	p.CreateOrUpdate("networth-canvas",
		[]string{"Year 0", "Year 1", "Year 2"},
		[]float64{1, 2, 3},
		[]float64{4, 5, 6})

	if *created != 1 {
		t.Fatalf("expected chart to be reused, got %d constructions", *created)
	}
	if diff := deep.Equal(chart.labels, []string{"Year 0", "Year 1", "Year 2"}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(chart.buy, []float64{1, 2, 3}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(chart.rent, []float64{4, 5, 6}); diff != nil {
		t.Error(diff)
	}
	if last := chart.redraws[len(chart.redraws)-1]; last != RedrawInstant {
		t.Errorf("expected update redraw instant, got %v", last)
	}
}

func TestCreateOrUpdateUnknownSurfaceIsNoop(t *testing.T) {
	p, _, created := newTestPresenter()

	p.CreateOrUpdate("nope", []string{"Year 0"}, []float64{1}, []float64{2})

	if *created != 0 {
		t.Fatalf("expected no chart for unknown surface, got %d", *created)
	}
	if _, ok := p.LastUpdate(); ok {
		t.Fatal("expected no update recorded for unknown surface")
	}
}

func TestCreateOrUpdateIdempotent(t *testing.T) {
	p, chart, created := newTestPresenter()

	labels := []string{"Year 0", "Year 1"}
	buy := []float64{10, 20}
	rent := []float64{30, 40}

	p.CreateOrUpdate("networth-canvas", labels, buy, rent)
	p.CreateOrUpdate("networth-canvas", labels, buy, rent)

	if *created != 1 {
		t.Fatalf("expected 1 construction, got %d", *created)
	}
	if diff := deep.Equal(chart.buy, buy); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(chart.rent, rent); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(chart.labels, labels); diff != nil {
		t.Error(diff)
	}
}

func TestSurfaceRegistryResolve(t *testing.T) {
	surfaces := NewSurfaceRegistry()
	rect := img.Rect(10, 20, 400, 300)
	surfaces.Add("networth-canvas", rect)

	s, ok := surfaces.Resolve("networth-canvas")
	if !ok {
		t.Fatal("expected surface to resolve")
	}
	if s.Rect != rect {
		t.Errorf("rect = %v, want %v", s.Rect, rect)
	}

	if _, ok := surfaces.Resolve("other"); ok {
		t.Fatal("expected unknown id to miss")
	}
}

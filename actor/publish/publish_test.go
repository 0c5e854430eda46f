package publish

import (
	"testing"

	"rentvsbuy/event"
)

func TestCreateRouteKey(t *testing.T) {
	feed := event.NewFeed("model", "networth-canvas")

	a := CreateRouteKey(feed, event.StreamSeries, 0)
	b := CreateRouteKey(feed, event.StreamSeries, 0)
	if a != b {
		t.Fatalf("route key not stable: %d != %d", a, b)
	}

	other := CreateRouteKey(event.NewFeed("model", "sensitivity-canvas"), event.StreamSeries, 0)
	if a == other {
		t.Fatal("different surfaces must route differently")
	}

	otherSource := CreateRouteKey(event.NewFeed("replay", "networth-canvas"), event.StreamSeries, 0)
	if a == otherSource {
		t.Fatal("different sources must route differently")
	}
}

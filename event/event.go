package event

import "fmt"

// Feed identifies one upstream source / drawing surface combination.
// The model backend pushes recomputed series per surface; widgets
// subscribe per feed.
type Feed struct {
	Source  string
	Surface string
}

func (f Feed) String() string {
	return fmt.Sprintf("%s %s", f.Source, f.Surface)
}

func NewFeed(source, surface string) Feed {
	return Feed{
		Source:  source,
		Surface: surface,
	}
}

// SeriesUpdate is a full replacement of the chart data: the label axis
// plus both scenario series. Equal lengths are the producer's
// obligation, nothing downstream validates them.
type SeriesUpdate struct {
	Feed   Feed
	Labels []string
	Buy    []float64
	Rent   []float64
	Unix   int64
}

func (u SeriesUpdate) GetTimeframe() int64 { return 0 }

type Stream int64

const (
	StreamSeries Stream = iota
)

type PubSub struct {
	Streams []uint32
}

type PubUnsub struct {
	Streams []uint32
}

type TimeFramer interface {
	GetTimeframe() int64
}

package session

import (
	act "rentvsbuy/actor"
	"rentvsbuy/actor/publish"
	"rentvsbuy/event"

	"github.com/anthdm/hollywood/actor"
)

type Stream struct {
	Stream    event.Stream
	Timeframe int64
}

type Session struct {
	feed       event.Feed
	eventCh    chan any
	streams    []Stream
	publishPID *actor.PID
}

func New(eventCh chan any, feed event.Feed, streams []Stream) actor.Producer {
	return func() actor.Receiver {
		return &Session{
			feed:       feed,
			eventCh:    eventCh,
			streams:    streams,
			publishPID: act.GetPublishPID(feed),
		}
	}
}

func (s *Session) Receive(c *actor.Context) {
	switch msg := c.Message().(type) {
	case actor.Started:
		keys := make([]uint32, len(s.streams))
		for i := 0; i < len(s.streams); i++ {
			stream := s.streams[i]
			keys[i] = publish.CreateRouteKey(s.feed, stream.Stream, stream.Timeframe)
		}
		c.Send(s.publishPID, event.PubSub{Streams: keys})
	case actor.Stopped:
		keys := make([]uint32, len(s.streams))
		for i := 0; i < len(s.streams); i++ {
			stream := s.streams[i]
			keys[i] = publish.CreateRouteKey(s.feed, stream.Stream, stream.Timeframe)
		}
		c.Send(s.publishPID, event.PubUnsub{Streams: keys})
		close(s.eventCh)
	case event.SeriesUpdate:
		s.eventCh <- msg
	}
}

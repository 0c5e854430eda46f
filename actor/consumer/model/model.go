package model

import (
	"errors"
	"fmt"
	"net"
	"rentvsbuy/actor/publish"
	"rentvsbuy/event"
	"rentvsbuy/settings"

	"github.com/anthdm/hollywood/actor"
	"github.com/gorilla/websocket"
	"github.com/valyala/fastjson"
)

// The calculator backend recomputes both scenarios on every input change
// and pushes the full series over a local websocket.
const wsEndpoint = "ws://127.0.0.1:7744/stream"

type Model struct {
	ws       *websocket.Conn
	surfaces map[string]*actor.PID
	c        *actor.Context
}

func New() actor.Producer {
	return func() actor.Receiver {
		return &Model{
			surfaces: make(map[string]*actor.PID),
		}
	}
}

func (m *Model) Receive(c *actor.Context) {
	switch c.Message().(type) {
	case actor.Started:
		m.c = c
		m.start(c)
	}
}

func (m *Model) start(c *actor.Context) {
	ws, _, err := websocket.DefaultDialer.Dial(wsEndpoint, nil)
	if err != nil {
		fmt.Println("model backend not reachable, chart stays on seeded data:", err)
		return
	}
	m.ws = ws
	go m.wsLoop()
}

func (m *Model) wsLoop() {
	for {
		_, msg, err := m.ws.ReadMessage()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			fmt.Println("error reading from ws connection", err)
			continue
		}

		parser := fastjson.Parser{}
		v, err := parser.ParseBytes(msg)
		if err != nil {
			fmt.Println("failed to parse msg", err)
			continue
		}

		m.handleSeries(v)
	}
}

func (m *Model) handleSeries(v *fastjson.Value) {
	var (
		surface = string(v.GetStringBytes("surface"))
		labels  = v.GetArray("labels")
		buy     = v.GetArray("buy")
		rent    = v.GetArray("rent")
		update  = event.SeriesUpdate{
			Feed:   event.NewFeed(settings.Model, surface),
			Unix:   v.GetInt64("ts"),
			Labels: make([]string, 0, len(labels)),
			Buy:    make([]float64, 0, len(buy)),
			Rent:   make([]float64, 0, len(rent)),
		}
	)
	for _, item := range labels {
		label, _ := item.StringBytes()
		update.Labels = append(update.Labels, string(label))
	}
	for _, item := range buy {
		update.Buy = append(update.Buy, item.GetFloat64())
	}
	for _, item := range rent {
		update.Rent = append(update.Rent, item.GetFloat64())
	}

	m.c.Send(m.publishPID(update.Feed), update)
}

// publishPID lazily spawns one publish child per surface.
func (m *Model) publishPID(feed event.Feed) *actor.PID {
	pid, ok := m.surfaces[feed.Surface]
	if !ok {
		pid = m.c.SpawnChild(publish.New(feed), "publish", actor.WithID(feed.Surface))
		m.surfaces[feed.Surface] = pid
	}
	return pid
}

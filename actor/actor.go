package act

import (
	"fmt"
	"rentvsbuy/event"

	"github.com/anthdm/hollywood/actor"
)

func GetPublishPID(feed event.Feed) *actor.PID {
	return actor.NewPID("local", fmt.Sprintf("%s/1/publish/%s", feed.Source, feed.Surface))
}

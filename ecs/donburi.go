package ecs

import (
	"github.com/phanxgames/scrollpane"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ScrollEventType is the Donburi event type for scroll pane events.
var ScrollEventType = events.NewEventType[scrollpane.ScrollEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Scroll events are published to ScrollEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) scrollpane.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event scrollpane.ScrollEvent) {
	ScrollEventType.Publish(s.world, event)
}

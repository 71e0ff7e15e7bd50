package ecs

import (
	"github.com/phanxgames/glyphboard"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditorEventType is the Donburi event type for glyphboard editor events.
var EditorEventType = events.NewEventType[glyphboard.EditorEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to EditorEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) glyphboard.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event glyphboard.EditorEvent) {
	EditorEventType.Publish(s.world, event)
}

package glyphboard

// EventSink is the interface for optional event integration (for example
// the ECS bridge in the ecs package). When set on an Editor, every committed
// change to the document or the view is forwarded to it.
type EventSink interface {
	EmitEvent(event EditorEvent)
}

// EventType identifies a kind of editor event.
type EventType uint8

const (
	EventItemAdded         EventType = iota // an item was dropped onto the canvas
	EventItemRemoved                        // an item was deleted (long press or RemoveItem)
	EventSelectionChanged                   // selection toggled or cleared
	EventPanCommitted                       // a canvas pan ended
	EventDragCommitted                      // a selection drag ended
	EventZoomCommitted                      // a pinch ended
	EventZoomedToFit                        // zoom-to-fit reset the background view
	EventBackgroundChanged                  // the document background was replaced
	EventBackgroundStatus                   // the background fetch status changed
)

var eventTypeNames = [...]string{
	EventItemAdded:         "item-added",
	EventItemRemoved:       "item-removed",
	EventSelectionChanged:  "selection-changed",
	EventPanCommitted:      "pan-committed",
	EventDragCommitted:     "drag-committed",
	EventZoomCommitted:     "zoom-committed",
	EventZoomedToFit:       "zoomed-to-fit",
	EventBackgroundChanged: "background-changed",
	EventBackgroundStatus:  "background-status",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// EditorEvent carries one committed change.
type EditorEvent struct {
	Type EventType
	// Item fields (valid for EventItemAdded, EventItemRemoved)
	Item   ItemID
	Symbol string
	// Selected is the selection size after the event.
	Selected int
	// Delta is the committed translation in document units (pan and drag).
	Delta Vec2
	// Factor is the committed zoom factor (zoom and zoom-to-fit).
	Factor float64
	// Status is the background fetch status (EventBackgroundStatus).
	Status FetchStatus
}

func (e *Editor) emit(ev EditorEvent) {
	if e.sink == nil {
		return
	}
	ev.Selected = e.sel.Len()
	e.sink.EmitEvent(ev)
}

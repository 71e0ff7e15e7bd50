package glyphboard

// syntheticPointerEvent represents a single injected pointer event in view
// coordinates.
type syntheticPointerEvent struct {
	pointer int
	pos     Vec2
	pressed bool
}

// Injected pointer ids. The mouse uses pointer 0; two-finger gestures use
// the first two touch slots.
const (
	injectPointer = 0
	injectFinger0 = 1
	injectFinger1 = 2
)

func (e *Editor) injectFrame(events ...syntheticPointerEvent) {
	e.injectQueue = append(e.injectQueue, events)
}

// InjectPress queues a pointer press at the given view coordinates. Each
// queued event is consumed by one call to Update.
func (e *Editor) InjectPress(x, y float64) {
	e.injectFrame(syntheticPointerEvent{pointer: injectPointer, pos: Vec2{x, y}, pressed: true})
}

// InjectMove queues a pointer move with the button held. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (e *Editor) InjectMove(x, y float64) {
	e.injectFrame(syntheticPointerEvent{pointer: injectPointer, pos: Vec2{x, y}, pressed: true})
}

// InjectRelease queues a pointer release at the given view coordinates.
func (e *Editor) InjectRelease(x, y float64) {
	e.injectFrame(syntheticPointerEvent{pointer: injectPointer, pos: Vec2{x, y}})
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames.
func (e *Editor) InjectTap(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectHold queues a press, frames-2 stationary frames, and a release.
// With a long enough frame time this produces a long press.
func (e *Editor) InjectHold(x, y float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(x, y)
	for i := 0; i < frames-2; i++ {
		e.InjectMove(x, y)
	}
	e.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). Minimum frames is 2 (press + release).
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(toX, toY)
}

// InjectPinch queues a two-finger pinch centered on (cx, cy). The fingers
// start fromDist apart horizontally and end toDist apart; the final factor
// is toDist/fromDist. frames counts the press and release frames.
func (e *Editor) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	fingers := func(dist float64, pressed bool) []syntheticPointerEvent {
		return []syntheticPointerEvent{
			{pointer: injectFinger0, pos: Vec2{cx - dist/2, cy}, pressed: pressed},
			{pointer: injectFinger1, pos: Vec2{cx + dist/2, cy}, pressed: pressed},
		}
	}
	e.injectFrame(fingers(fromDist, true)...)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.injectFrame(fingers(fromDist+(toDist-fromDist)*t, true)...)
	}
	e.injectFrame(fingers(toDist, false)...)
}

// processInjectedInput pops one frame from the inject queue and feeds it
// through processPointer. Returns true if a frame was consumed (real input
// is skipped for that frame).
func (e *Editor) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	frame := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue[len(e.injectQueue)-1] = nil
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	for _, evt := range frame {
		e.processPointer(evt.pointer, evt.pos, evt.pressed)
	}
	return true
}

// Pending reports whether injected input is still queued.
func (e *Editor) Pending() bool {
	return len(e.injectQueue) > 0
}

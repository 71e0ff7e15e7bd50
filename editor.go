package glyphboard

import (
	"log/slog"
	"time"
)

// dragKind names the gesture occupying the drag slot.
type dragKind uint8

const (
	dragNone      dragKind = iota
	dragCanvas             // pan of background and canvas-routed items
	dragSelection          // drag of the selected items only
)

// liveState is the transient state of in-flight gestures. It is overwritten
// every input frame and folded into committed state exactly once on end.
type liveState struct {
	drag dragKind
	// pan is the canvas pan delta in document units.
	pan Vec2

	zooming bool
	// zoom is the pinch factor; 1 when no pinch is active.
	zoom float64
}

// Editor is the interactive core: it owns the document, the selection, the
// per-item overlays, the background camera and the live gesture state. All
// methods must be called from one goroutine (the UI thread).
type Editor struct {
	cfg Config

	doc      *Document
	sel      Selection
	overlays overlayTable
	cam      Camera
	live     liveState
	bg       *BackgroundLoader
	sink     EventSink

	viewport Viewport
	now      time.Duration

	// Input state
	pointers    [maxPointers]pointerState
	pinch       pinchState
	lastTap     tapRecord
	hostInput   bool
	touchMap    [maxPointers]touchID
	touchUsed   [maxPointers]bool
	injectQueue [][]syntheticPointerEvent
	testRunner  *GestureRunner
	screenshots []string
}

// NewEditor creates an editor over doc (a new empty document when nil),
// resolving backgrounds with loader (an HTTP-backed loader when nil).
func NewEditor(doc *Document, loader *BackgroundLoader, cfg Config) *Editor {
	if doc == nil {
		doc = NewDocument()
	}
	if loader == nil {
		loader = NewBackgroundLoader(nil)
	}
	e := &Editor{
		cfg:  cfg.withDefaults(),
		doc:  doc,
		cam:  newCamera(),
		live: liveState{zoom: 1},
		bg:   loader,
	}
	if doc.Background.Kind != BackgroundBlank {
		loader.Load(doc.Background)
	}
	return e
}

// Document returns the edited document. Mutate items through the editor so
// overlay and selection state stay consistent.
func (e *Editor) Document() *Document { return e.doc }

// Selection returns a read-only view of the selection. Change it with
// ApplyTap so only ids in the document can be selected.
func (e *Editor) Selection() SelectionView { return SelectionView{&e.sel} }

// Camera returns the background steady state.
func (e *Editor) Camera() Camera { return e.cam }

// Background returns the background loader.
func (e *Editor) Background() *BackgroundLoader { return e.bg }

// Config returns the effective configuration.
func (e *Editor) Config() Config { return e.cfg }

// SetEventSink sets the optional event bridge.
func (e *Editor) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetViewport records the canvas geometry for the current layout pass.
func (e *Editor) SetViewport(vp Viewport) {
	e.viewport = vp
}

// Viewport returns the last viewport passed to SetViewport.
func (e *Editor) Viewport() Viewport { return e.viewport }

// ItemOffset returns the committed overlay offset (document units) and
// scale of id. Items without an overlay report (0,0) and 1.
func (e *Editor) ItemOffset(id ItemID) (Vec2, float64) {
	o := e.overlays.get(id)
	return o.offset, o.scale
}

// HasOverlay reports whether id carries an explicit overlay entry.
func (e *Editor) HasOverlay(id ItemID) bool {
	return e.overlays.has(id)
}

// SetBackground replaces the document background and starts resolving it.
// Any fetch in progress is abandoned. Item state is untouched.
func (e *Editor) SetBackground(bg Background) {
	e.doc.SetBackground(bg)
	e.bg.Load(bg)
	e.emit(EditorEvent{Type: EventBackgroundChanged, Status: e.bg.Status()})
}

// AddItem places a glyph at a document point with an identity overlay.
func (e *Editor) AddItem(symbol string, at Point, size float64) Item {
	it := e.doc.AddItem(symbol, at, size)
	e.emit(EditorEvent{Type: EventItemAdded, Item: it.ID, Symbol: it.Symbol})
	return it
}

// RemoveItem deletes id from the document, the selection and the overlay
// table together. Removing an absent id is a no-op.
func (e *Editor) RemoveItem(id ItemID) bool {
	it, ok := e.doc.Item(id)
	if !ok {
		return false
	}
	e.doc.RemoveItem(id)
	e.sel.remove(id)
	e.overlays.remove(id)
	for i := range e.pointers {
		if e.pointers[i].hitOK && e.pointers[i].hit == id {
			e.pointers[i].hitOK = false
		}
	}
	Logger().Debug("item removed", slog.Int("id", int(id)))
	e.emit(EditorEvent{Type: EventItemRemoved, Item: id, Symbol: it.Symbol})
	return true
}

// Update advances the editor by dt seconds: it feeds queued input through
// the gesture state machine, fires long presses, applies finished background
// fetches and steps the zoom-to-fit animation.
func (e *Editor) Update(dt float64) {
	e.now += time.Duration(dt * float64(time.Second))

	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	if !e.processInjectedInput() && e.hostInput {
		e.pollInput()
	}
	e.detectPinch()
	e.detectLongPress()
	e.resolvePendingTap()

	if e.bg.Poll() {
		e.emit(EditorEvent{Type: EventBackgroundStatus, Status: e.bg.Status()})
	}
	e.cam.update(float32(dt))
}

// Close releases the background loader.
func (e *Editor) Close() {
	e.bg.Close()
}

package glyphboard

import (
	"log/slog"
	"math"
)

// --- Drag: canvas pan and selection drag ---

// BeginCanvasPan starts a pan of the background and every canvas-routed item.
// It reports false when another drag already occupies the drag slot.
func (e *Editor) BeginCanvasPan() bool {
	if e.live.drag != dragNone {
		Logger().Debug("canvas pan refused: drag in progress")
		return false
	}
	e.live.drag = dragCanvas
	e.live.pan = Vec2{}
	return true
}

// BeginSelectionDrag starts a drag of the selected items only. It reports
// false when the selection is empty or another drag is in progress.
func (e *Editor) BeginSelectionDrag() bool {
	if e.live.drag != dragNone || e.sel.Len() == 0 {
		Logger().Debug("selection drag refused", slog.Int("selected", e.sel.Len()))
		return false
	}
	e.live.drag = dragSelection
	e.overlays.clearDrag()
	return true
}

// Dragging reports whether a drag gesture is active.
func (e *Editor) Dragging() bool { return e.live.drag != dragNone }

// UpdateDrag overwrites the live delta of the active drag with the total
// screen-space translation since the drag began.
func (e *Editor) UpdateDrag(translation Vec2) {
	switch e.live.drag {
	case dragCanvas:
		e.live.pan = translation.Div(e.backgroundScale())
	case dragSelection:
		for _, id := range e.sel.IDs() {
			if !e.doc.Has(id) {
				continue
			}
			o := e.overlays.at(id)
			o.drag = translation.Div(o.scale)
		}
	}
}

// EndDrag commits the final translation of the active drag and returns the
// drag slot to idle. Without an active drag it does nothing.
func (e *Editor) EndDrag(translation Vec2) {
	switch e.live.drag {
	case dragCanvas:
		d := translation.Div(e.backgroundScale())
		e.cam.panBy(d)
		for _, it := range e.doc.items {
			if e.route(it.ID).pan != panCanvas {
				continue
			}
			o := e.overlays.at(it.ID)
			o.offset = o.offset.Add(d)
		}
		Logger().Debug("pan committed", slog.Float64("dx", d.X), slog.Float64("dy", d.Y))
		e.emit(EditorEvent{Type: EventPanCommitted, Delta: d})
	case dragSelection:
		for _, id := range e.sel.IDs() {
			if !e.doc.Has(id) {
				continue
			}
			o := e.overlays.at(id)
			o.offset = o.offset.Add(translation.Div(o.scale))
		}
		Logger().Debug("selection drag committed",
			slog.Float64("tx", translation.X), slog.Float64("ty", translation.Y))
		e.emit(EditorEvent{Type: EventDragCommitted, Delta: translation})
	default:
		return
	}
	e.clearDrag()
}

// CancelDrag discards the live drag delta without committing.
func (e *Editor) CancelDrag() {
	e.clearDrag()
}

func (e *Editor) clearDrag() {
	e.live.drag = dragNone
	e.live.pan = Vec2{}
	e.overlays.clearDrag()
}

// --- Pinch zoom ---

// BeginZoom starts a pinch. It reports false when a pinch is already active.
func (e *Editor) BeginZoom() bool {
	if e.live.zooming {
		return false
	}
	e.live.zooming = true
	e.live.zoom = 1
	return true
}

// Zooming reports whether a pinch is active.
func (e *Editor) Zooming() bool { return e.live.zooming }

// UpdateZoom overwrites the live pinch factor. Non-positive or non-finite
// factors are ignored.
func (e *Editor) UpdateZoom(factor float64) {
	if !e.live.zooming {
		return
	}
	if !validScale(factor) {
		Logger().Debug("zoom update ignored", slog.Float64("factor", factor))
		return
	}
	e.live.zoom = factor
}

// EndZoom commits the final pinch factor. With an empty selection the
// background and every item scale together; otherwise only the selected
// items do. A malformed factor ends the pinch without committing.
func (e *Editor) EndZoom(factor float64) {
	if !e.live.zooming {
		return
	}
	e.live.zooming = false
	e.live.zoom = 1
	if !validScale(factor) {
		Logger().Debug("zoom commit ignored", slog.Float64("factor", factor))
		return
	}
	if backgroundZooms(e.sel.Len()) {
		e.cam.zoomBy(factor)
	}
	for _, it := range e.doc.items {
		if !e.route(it.ID).zoom {
			continue
		}
		o := e.overlays.at(it.ID)
		o.scale *= factor
	}
	Logger().Debug("zoom committed", slog.Float64("factor", factor), slog.Int("selected", e.sel.Len()))
	e.emit(EditorEvent{Type: EventZoomCommitted, Factor: factor})
}

// CancelZoom discards the live pinch factor without committing.
func (e *Editor) CancelZoom() {
	e.live.zooming = false
	e.live.zoom = 1
}

// ZoomBy applies a complete pinch of the given factor in one step, as a
// mouse wheel notch does.
func (e *Editor) ZoomBy(factor float64) {
	if e.BeginZoom() {
		e.EndZoom(factor)
	}
}

// --- Zoom to fit ---

// ZoomToFit resets the background pan to zero and sets its scale so the
// background image fits vp. It is a no-op, reporting false, unless the
// image is ready and both image and viewport have positive dimensions.
// Item overlays are left untouched.
func (e *Editor) ZoomToFit(vp Viewport) bool {
	img, ok := e.bg.Size()
	if !ok || !img.positive() || !vp.Size().positive() {
		Logger().Debug("zoom to fit ignored",
			slog.Bool("image", ok), slog.Float64("vw", vp.Width), slog.Float64("vh", vp.Height))
		return false
	}
	scale := math.Min(vp.Width/img.Width, vp.Height/img.Height)
	e.cam.reset(scale, e.cfg.ZoomToFitDuration)
	e.emit(EditorEvent{Type: EventZoomedToFit, Factor: scale})
	return true
}

// --- Tap, double tap, long press ---

// TapKind is the single outcome of one tap.
type TapKind uint8

const (
	TapToggleItem  TapKind = iota // the tap landed on an item: toggle it
	TapDeselectAll                // the tap landed on empty canvas: clear selection
	TapZoomToFit                  // a double tap landed on empty canvas
)

func (k TapKind) String() string {
	switch k {
	case TapToggleItem:
		return "toggle-item"
	case TapDeselectAll:
		return "deselect-all"
	case TapZoomToFit:
		return "zoom-to-fit"
	default:
		return "unknown"
	}
}

// TapDecision is computed from hit testing before any state changes, so a
// tap is consumed by exactly one outcome.
type TapDecision struct {
	Kind TapKind
	Item ItemID // valid for TapToggleItem
}

// DecideTap maps a hit-test result and tap count to a decision. Taps on an
// item always toggle it; a double tap on empty canvas zooms to fit.
func DecideTap(hit ItemID, onItem bool, count int) TapDecision {
	switch {
	case onItem:
		return TapDecision{Kind: TapToggleItem, Item: hit}
	case count >= 2:
		return TapDecision{Kind: TapZoomToFit}
	default:
		return TapDecision{Kind: TapDeselectAll}
	}
}

// ApplyTap executes a decision.
func (e *Editor) ApplyTap(d TapDecision) {
	switch d.Kind {
	case TapToggleItem:
		if !e.doc.Has(d.Item) {
			return
		}
		e.sel.Toggle(d.Item)
		e.emit(EditorEvent{Type: EventSelectionChanged, Item: d.Item})
	case TapDeselectAll:
		if e.sel.Len() == 0 {
			return
		}
		e.sel.Clear()
		e.emit(EditorEvent{Type: EventSelectionChanged})
	case TapZoomToFit:
		e.ZoomToFit(e.viewport)
	}
}

// Tap hit-tests a view-space point against the current frame and applies
// the resulting decision.
func (e *Editor) Tap(at Vec2, count int) TapDecision {
	id, ok := e.HitTest(at)
	d := DecideTap(id, ok, count)
	e.ApplyTap(d)
	return d
}

// LongPress deletes the pressed item along with its selection and overlay
// state. Unknown ids are ignored.
func (e *Editor) LongPress(id ItemID) bool {
	return e.RemoveItem(id)
}

// backgroundScale is the effective background scale: the steady scale,
// multiplied by the live pinch when the pinch reaches the background.
func (e *Editor) backgroundScale() float64 {
	s := e.cam.Scale
	if e.live.zooming && backgroundZooms(e.sel.Len()) {
		s *= e.live.zoom
	}
	return s
}

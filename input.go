package glyphboard

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers   = 10  // pointer 0 = mouse, 1-9 = touch
	wheelZoomStep = 1.1 // zoom factor per wheel notch
)

type touchID = ebiten.TouchID

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	start     Vec2
	last      Vec2
	pressedAt time.Duration
	hit       ItemID // item under the pointer at press time
	hitOK     bool
	dragging  bool   // moved beyond the dead zone
	ownsDrag  bool   // this pointer drives the editor's drag slot
	pinched   bool   // took part in a pinch: never taps or drags
	held      bool   // long press already fired
	palette   string // glyph picked up from the palette strip
}

// --- Pinch state ---

type pinchState struct {
	active      bool
	pointer0    int
	pointer1    int
	initialDist float64
	factor      float64
}

// tapRecord remembers the previous tap for double-tap detection. A single
// tap on empty canvas is held in deselect until the double-tap window
// closes, so the first tap of a double tap never clears the selection.
type tapRecord struct {
	valid    bool
	at       Vec2
	when     time.Duration
	count    int
	deselect bool
}

// --- Input processing ---

// pollInput reads mouse, touch and wheel state from ebiten. Called from
// Update when the editor is hosted by Run.
func (e *Editor) pollInput() {
	e.processMousePointer()
	e.processTouchPointers()

	if _, wy := ebiten.Wheel(); wy != 0 {
		e.flushDeselect()
		e.ZoomBy(math.Pow(wheelZoomStep, wy))
	}
}

// processMousePointer handles the left mouse button as pointer 0.
func (e *Editor) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	e.processPointer(0, Vec2{float64(mx), float64(my)}, pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (e *Editor) processTouchPointers() {
	ids := ebiten.AppendTouchIDs(nil)

	var activeSlots [maxPointers]bool
	for _, tid := range ids {
		slot := e.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		e.processPointer(slot, Vec2{float64(tx), float64(ty)}, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if e.touchUsed[i] && !activeSlots[i] {
			ps := &e.pointers[i]
			if ps.down {
				e.processPointer(i, ps.last, false)
			}
			e.touchUsed[i] = false
			e.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (e *Editor) touchSlot(tid touchID) int {
	for i := 1; i < maxPointers; i++ {
		if e.touchUsed[i] && e.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !e.touchUsed[i] {
			e.touchUsed[i] = true
			e.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer:
// press, move beyond the dead zone (drag), release (drag end or tap).
func (e *Editor) processPointer(pointerID int, pos Vec2, pressed bool) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &e.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		*ps = pointerState{down: true, start: pos, last: pos, pressedAt: e.now}
		if glyph, ok := e.paletteGlyphAt(pos); ok {
			ps.palette = glyph
			return
		}
		ps.hit, ps.hitOK = e.HitTest(pos)

	case pressed && ps.down:
		if pos == ps.last {
			return
		}
		ps.last = pos
		if ps.palette != "" || ps.pinched || ps.held {
			return
		}
		if !ps.dragging && pos.Sub(ps.start).Len() > e.cfg.DragDeadZone {
			ps.dragging = true
			e.flushDeselect()
			if ps.hitOK && e.sel.Contains(ps.hit) {
				ps.ownsDrag = e.BeginSelectionDrag()
			} else {
				ps.ownsDrag = e.BeginCanvasPan()
			}
		}
		if ps.ownsDrag {
			e.UpdateDrag(pos.Sub(ps.start))
		}

	case !pressed && ps.down:
		switch {
		case ps.palette != "":
			if e.onCanvas(pos) {
				e.Drop(DropPayload{Kind: DropText, Text: ps.palette}, pos)
			}
		case ps.ownsDrag:
			e.EndDrag(pos.Sub(ps.start))
		case !ps.dragging && !ps.pinched && !ps.held:
			e.tapAt(pos)
		}
		*ps = pointerState{}
	}
}

// tapAt counts consecutive taps and dispatches exactly one decision.
func (e *Editor) tapAt(pos Vec2) {
	count := 1
	if e.lastTap.valid &&
		e.now-e.lastTap.when <= e.cfg.DoubleTapWindow &&
		pos.Sub(e.lastTap.at).Len() <= e.cfg.DoubleTapSlop {
		count = e.lastTap.count + 1
	}
	id, ok := e.HitTest(pos)
	d := DecideTap(id, ok, count)
	switch d.Kind {
	case TapZoomToFit:
		e.lastTap = tapRecord{}
		e.ApplyTap(d)
		return
	case TapDeselectAll:
		e.flushDeselect()
		e.lastTap = tapRecord{valid: true, at: pos, when: e.now, count: count, deselect: true}
		return
	}
	// Taps on items toggle and never start a double tap.
	e.flushDeselect()
	e.lastTap = tapRecord{}
	e.ApplyTap(d)
}

// resolvePendingTap applies a held deselect once no second tap can arrive.
func (e *Editor) resolvePendingTap() {
	if e.lastTap.deselect && e.now-e.lastTap.when > e.cfg.DoubleTapWindow {
		e.flushDeselect()
	}
}

// flushDeselect applies a held deselect now. Called before any gesture
// whose routing depends on the selection.
func (e *Editor) flushDeselect() {
	if !e.lastTap.deselect {
		return
	}
	e.lastTap.deselect = false
	e.ApplyTap(TapDecision{Kind: TapDeselectAll})
}

// onCanvas reports whether pos lies inside the canvas viewport.
func (e *Editor) onCanvas(pos Vec2) bool {
	return Rect{Width: e.viewport.Width, Height: e.viewport.Height}.Contains(pos.X, pos.Y)
}

// --- Long press ---

// detectLongPress deletes the item under any pointer that has rested on it
// for LongPressDuration without dragging.
func (e *Editor) detectLongPress() {
	for i := range e.pointers {
		ps := &e.pointers[i]
		if !ps.down || !ps.hitOK || ps.dragging || ps.pinched || ps.held || ps.palette != "" {
			continue
		}
		if e.now-ps.pressedAt >= e.cfg.LongPressDuration {
			ps.held = true
			e.flushDeselect()
			e.LongPress(ps.hit)
		}
	}
}

// --- Pinch detection ---

// detectPinch turns two simultaneous pointers into a pinch zoom. A drag in
// flight when the second pointer lands is committed first.
func (e *Editor) detectPinch() {
	var p [2]int
	count := 0
	for i := range e.pointers {
		if e.pointers[i].down && e.pointers[i].palette == "" {
			if count < 2 {
				p[count] = i
			}
			count++
		}
	}

	if count == 2 {
		ps0 := &e.pointers[p[0]]
		ps1 := &e.pointers[p[1]]
		dist := ps1.last.Sub(ps0.last).Len()

		if !e.pinch.active {
			for _, ps := range []*pointerState{ps0, ps1} {
				if ps.ownsDrag {
					e.EndDrag(ps.last.Sub(ps.start))
					ps.ownsDrag = false
				}
			}
			e.flushDeselect()
			if !e.BeginZoom() {
				return
			}
			e.pinch = pinchState{
				active:      true,
				pointer0:    p[0],
				pointer1:    p[1],
				initialDist: dist,
				factor:      1,
			}
			ps0.pinched = true
			ps1.pinched = true
			return
		}
		if e.pinch.initialDist > 0 && dist > 0 {
			e.pinch.factor = dist / e.pinch.initialDist
			e.UpdateZoom(e.pinch.factor)
		}
	} else if e.pinch.active {
		e.pinch.active = false
		e.EndZoom(e.pinch.factor)
	}
}

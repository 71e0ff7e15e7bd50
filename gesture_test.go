package glyphboard

import (
	"context"
	"image"
	"math"
	"testing"
)

// --- Drag ---

func TestCanvasPanEmptySelection(t *testing.T) {
	e := newTestEditor(t)
	a := e.AddItem("🍎", Point{}, 40)
	b := e.AddItem("🚀", Point{50, 20}, 40)

	if !e.BeginCanvasPan() {
		t.Fatal("BeginCanvasPan = false")
	}
	e.UpdateDrag(Vec2{10, 0})
	e.UpdateDrag(Vec2{30, 10}) // overwrites, does not accumulate

	// Live: everything follows the pan, nothing committed yet.
	if got := placement(t, e, a.ID).Position; !vecApprox(got, Vec2{230, 210}, epsilon) {
		t.Errorf("live a = %v, want (230,210)", got)
	}
	if e.Camera().Offset != (Vec2{}) {
		t.Errorf("camera committed during drag: %v", e.Camera().Offset)
	}

	e.EndDrag(Vec2{30, 10})
	if e.Dragging() {
		t.Error("drag slot not released")
	}
	if e.Camera().Offset != (Vec2{30, 10}) {
		t.Errorf("camera offset = %v, want (30,10)", e.Camera().Offset)
	}
	for _, tc := range []struct {
		id   ItemID
		want Vec2
	}{
		{a.ID, Vec2{230, 210}},
		{b.ID, Vec2{280, 230}},
	} {
		if got := placement(t, e, tc.id).Position; !vecApprox(got, tc.want, epsilon) {
			t.Errorf("item %d at %v, want %v", tc.id, got, tc.want)
		}
		if off, _ := e.ItemOffset(tc.id); off != (Vec2{30, 10}) {
			t.Errorf("item %d offset = %v, want (30,10)", tc.id, off)
		}
	}
}

func TestCanvasPanDividesByBackgroundScale(t *testing.T) {
	e := newTestEditor(t)
	e.ZoomBy(2)
	a := e.AddItem("🍎", Point{}, 20)

	e.BeginCanvasPan()
	e.EndDrag(Vec2{40, 0})
	if e.Camera().Offset != (Vec2{20, 0}) {
		t.Errorf("camera offset = %v, want (20,0) document units", e.Camera().Offset)
	}
	if off, _ := e.ItemOffset(a.ID); off != (Vec2{20, 0}) {
		t.Errorf("item offset = %v, want (20,0)", off)
	}
}

func TestCanvasPanWithSelectionSkipsSelected(t *testing.T) {
	e := newTestEditor(t)
	a := e.AddItem("🍎", Point{}, 40)
	b := e.AddItem("🚀", Point{60, 0}, 40)
	e.ApplyTap(TapDecision{Kind: TapToggleItem, Item: a.ID})

	e.BeginCanvasPan()
	e.EndDrag(Vec2{10, 10})

	if off, _ := e.ItemOffset(a.ID); off != (Vec2{}) {
		t.Errorf("selected item moved with the canvas: %v", off)
	}
	if off, _ := e.ItemOffset(b.ID); off != (Vec2{10, 10}) {
		t.Errorf("unselected offset = %v, want (10,10)", off)
	}
	if e.Camera().Offset != (Vec2{10, 10}) {
		t.Errorf("camera offset = %v", e.Camera().Offset)
	}
}

func TestSelectionDragUsesOwnScale(t *testing.T) {
	e := newTestEditor(t)
	a := e.AddItem("🍎", Point{}, 40)
	b := e.AddItem("🚀", Point{60, 0}, 40)
	e.ApplyTap(TapDecision{Kind: TapToggleItem, Item: a.ID})
	e.ZoomBy(2) // scales only a

	if _, s := e.ItemOffset(a.ID); s != 2 {
		t.Fatalf("scale(a) = %v, want 2", s)
	}
	if e.Camera().Scale != 1 {
		t.Fatalf("background scaled with non-empty selection: %v", e.Camera().Scale)
	}

	if !e.BeginSelectionDrag() {
		t.Fatal("BeginSelectionDrag = false")
	}
	e.UpdateDrag(Vec2{40, 20})
	if got := placement(t, e, a.ID).Position; !vecApprox(got, Vec2{240, 220}, epsilon) {
		t.Errorf("live a = %v, want (240,220)", got)
	}
	e.EndDrag(Vec2{40, 20})

	if off, _ := e.ItemOffset(a.ID); off != (Vec2{20, 10}) {
		t.Errorf("offset(a) = %v, want D/scale = (20,10)", off)
	}
	if e.HasOverlay(b.ID) {
		t.Error("unselected item gained an overlay from a selection drag")
	}
	if got := placement(t, e, b.ID).Position; !vecApprox(got, Vec2{260, 200}, epsilon) {
		t.Errorf("b = %v, want unchanged (260,200)", got)
	}
	if e.Camera().Offset != (Vec2{}) {
		t.Errorf("camera moved by selection drag: %v", e.Camera().Offset)
	}
}

func TestBeginSelectionDragRequiresSelection(t *testing.T) {
	e := newTestEditor(t)
	e.AddItem("🍎", Point{}, 40)
	if e.BeginSelectionDrag() {
		t.Error("BeginSelectionDrag with empty selection = true")
	}
}

func TestSecondDragRefused(t *testing.T) {
	e := newTestEditor(t)
	a := e.AddItem("🍎", Point{}, 40)
	e.ApplyTap(TapDecision{Kind: TapToggleItem, Item: a.ID})

	if !e.BeginCanvasPan() {
		t.Fatal("BeginCanvasPan = false")
	}
	if e.BeginSelectionDrag() {
		t.Error("selection drag started while a pan is active")
	}
	if e.BeginCanvasPan() {
		t.Error("second pan started")
	}
	e.UpdateDrag(Vec2{5, 5})
	e.EndDrag(Vec2{5, 5})
	if e.Camera().Offset != (Vec2{5, 5}) {
		t.Errorf("camera offset = %v; the first pan should commit once", e.Camera().Offset)
	}
}

func TestEndWithoutBeginIsNoop(t *testing.T) {
	e := newTestEditor(t)
	sink := &recordingSink{}
	e.SetEventSink(sink)
	a := e.AddItem("🍎", Point{}, 40)
	sink.events = nil

	e.EndDrag(Vec2{100, 100})
	e.EndZoom(3)
	e.UpdateDrag(Vec2{1, 1})
	e.UpdateZoom(2)

	if e.Camera().Offset != (Vec2{}) || e.Camera().Scale != 1 {
		t.Errorf("camera = %+v, want identity", e.Camera())
	}
	if e.HasOverlay(a.ID) {
		t.Error("overlay created without a gesture")
	}
	if len(sink.events) != 0 {
		t.Errorf("events = %v, want none", sink.types())
	}
}

func TestCancelDragDiscards(t *testing.T) {
	e := newTestEditor(t)
	a := e.AddItem("🍎", Point{}, 40)
	e.BeginCanvasPan()
	e.UpdateDrag(Vec2{50, 50})
	e.CancelDrag()
	if e.Dragging() {
		t.Error("still dragging after cancel")
	}
	if got := placement(t, e, a.ID).Position; !vecApprox(got, Vec2{200, 200}, epsilon) {
		t.Errorf("a = %v after cancel, want (200,200)", got)
	}
}

// --- Zoom ---

func TestZoomEmptySelectionScalesEverything(t *testing.T) {
	e := newTestEditor(t)
	a := e.AddItem("🍎", Point{10, 0}, 40)

	if !e.BeginZoom() {
		t.Fatal("BeginZoom = false")
	}
	if e.BeginZoom() {
		t.Error("second BeginZoom = true")
	}
	e.UpdateZoom(1.5)
	p := placement(t, e, a.ID)
	if !approxEqual(p.Scale, 1.5, epsilon) || !vecApprox(p.Position, Vec2{215, 200}, epsilon) {
		t.Errorf("live placement = %+v", p)
	}
	if f := e.Compose(e.Viewport()); !approxEqual(f.Background.Scale, 1.5, epsilon) {
		t.Errorf("live background scale = %v", f.Background.Scale)
	}

	e.EndZoom(2)
	if e.Zooming() {
		t.Error("still zooming")
	}
	if e.Camera().Scale != 2 {
		t.Errorf("camera scale = %v, want 2", e.Camera().Scale)
	}
	if _, s := e.ItemOffset(a.ID); s != 2 {
		t.Errorf("item scale = %v, want 2", s)
	}
	p = placement(t, e, a.ID)
	if !vecApprox(p.Position, Vec2{220, 200}, epsilon) || p.FontSize != 80 {
		t.Errorf("committed placement = %+v", p)
	}
}

func TestZoomWithSelectionScalesSelectedOnly(t *testing.T) {
	e := newTestEditor(t)
	a := e.AddItem("🍎", Point{}, 40)
	b := e.AddItem("🚀", Point{60, 0}, 40)
	e.ApplyTap(TapDecision{Kind: TapToggleItem, Item: a.ID})

	e.BeginZoom()
	e.UpdateZoom(3)
	if s := placement(t, e, b.ID).Scale; s != 1 {
		t.Errorf("live scale(b) = %v, want 1", s)
	}
	if s := placement(t, e, a.ID).Scale; s != 3 {
		t.Errorf("live scale(a) = %v, want 3", s)
	}
	e.EndZoom(3)

	if e.Camera().Scale != 1 {
		t.Errorf("camera scale = %v, want 1", e.Camera().Scale)
	}
	if _, s := e.ItemOffset(a.ID); s != 3 {
		t.Errorf("scale(a) = %v, want 3", s)
	}
	if _, s := e.ItemOffset(b.ID); s != 1 {
		t.Errorf("scale(b) = %v, want 1", s)
	}
}

func TestZoomMalformedFactor(t *testing.T) {
	for _, f := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		e := newTestEditor(t)
		e.BeginZoom()
		e.UpdateZoom(f)
		if got := e.Compose(e.Viewport()).Background.Scale; got != 1 {
			t.Errorf("UpdateZoom(%v): live scale = %v", f, got)
		}
		e.EndZoom(f)
		if e.Zooming() || e.Camera().Scale != 1 {
			t.Errorf("EndZoom(%v): zooming=%v scale=%v", f, e.Zooming(), e.Camera().Scale)
		}
	}
}

func TestCancelZoom(t *testing.T) {
	e := newTestEditor(t)
	e.BeginZoom()
	e.UpdateZoom(4)
	e.CancelZoom()
	if e.Zooming() || e.Camera().Scale != 1 {
		t.Error("cancelled zoom committed")
	}
}

func TestDragAndZoomSlotsIndependent(t *testing.T) {
	e := newTestEditor(t)
	if !e.BeginCanvasPan() || !e.BeginZoom() {
		t.Fatal("pan and zoom should run together")
	}
	e.UpdateDrag(Vec2{20, 0})
	e.UpdateZoom(2)
	// The pan divides by the live background scale.
	e.EndDrag(Vec2{20, 0})
	e.EndZoom(2)
	if e.Camera().Offset != (Vec2{10, 0}) || e.Camera().Scale != 2 {
		t.Errorf("camera = %+v, want offset (10,0) scale 2", e.Camera())
	}
}

// --- Zoom to fit ---

func TestZoomToFit(t *testing.T) {
	e := newTestEditor(t)
	sink := &recordingSink{}
	e.SetEventSink(sink)
	e.SetBackground(DataBackground(encodePNG(t, 200, 100)))
	e.BeginCanvasPan()
	e.EndDrag(Vec2{33, -12})
	e.ZoomBy(0.5)

	if !e.ZoomToFit(Viewport{Width: 400, Height: 400}) {
		t.Fatal("ZoomToFit = false")
	}
	if c := e.Camera(); c.Scale != 2 || c.Offset != (Vec2{}) {
		t.Errorf("camera = %+v, want scale 2 offset 0", c)
	}
	last := sink.events[len(sink.events)-1]
	if last.Type != EventZoomedToFit || last.Factor != 2 {
		t.Errorf("last event = %+v", last)
	}
}

func TestZoomToFitNoop(t *testing.T) {
	zeroWide := FetcherFunc(func(ctx context.Context, url string) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 0, 100)), nil
	})

	tests := []struct {
		name  string
		setup func(t *testing.T, e *Editor)
		vp    Viewport
	}{
		{"blank background", func(t *testing.T, e *Editor) {}, Viewport{400, 400}},
		{"zero viewport", func(t *testing.T, e *Editor) {
			e.SetBackground(DataBackground(encodePNG(t, 200, 100)))
		}, Viewport{0, 400}},
		{"zero width image", func(t *testing.T, e *Editor) {
			e.bg = NewBackgroundLoader(zeroWide)
			e.SetBackground(URLBackground("http://example.com/empty.png"))
			waitFor(t, e.bg.Poll)
		}, Viewport{400, 400}},
		{"still fetching", func(t *testing.T, e *Editor) {
			e.bg = NewBackgroundLoader(FetcherFunc(func(ctx context.Context, url string) (image.Image, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}))
			e.SetBackground(URLBackground("http://example.com/slow.png"))
		}, Viewport{400, 400}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t)
			tt.setup(t, e)
			e.BeginCanvasPan()
			e.EndDrag(Vec2{7, 7})
			if e.ZoomToFit(tt.vp) {
				t.Error("ZoomToFit = true")
			}
			if c := e.Camera(); c.Scale != 1 || c.Offset != (Vec2{7, 7}) {
				t.Errorf("camera changed: %+v", c)
			}
			e.Close()
		})
	}
}

func TestZoomToFitLeavesOverlays(t *testing.T) {
	e := newTestEditor(t)
	e.SetBackground(DataBackground(encodePNG(t, 100, 100)))
	a := e.AddItem("🍎", Point{}, 40)
	e.BeginCanvasPan()
	e.EndDrag(Vec2{5, 0})
	e.ZoomToFit(e.Viewport())
	if off, s := e.ItemOffset(a.ID); off != (Vec2{5, 0}) || s != 1 {
		t.Errorf("overlay = %v, %v; want untouched", off, s)
	}
}

// --- Taps ---

func TestDecideTap(t *testing.T) {
	tests := []struct {
		name   string
		hit    ItemID
		onItem bool
		count  int
		want   TapDecision
	}{
		{"single on item", 3, true, 1, TapDecision{Kind: TapToggleItem, Item: 3}},
		{"double on item", 3, true, 2, TapDecision{Kind: TapToggleItem, Item: 3}},
		{"single on canvas", 0, false, 1, TapDecision{Kind: TapDeselectAll}},
		{"double on canvas", 0, false, 2, TapDecision{Kind: TapZoomToFit}},
		{"triple on canvas", 0, false, 3, TapDecision{Kind: TapZoomToFit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecideTap(tt.hit, tt.onItem, tt.count); got != tt.want {
				t.Errorf("DecideTap = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTapKindString(t *testing.T) {
	if TapToggleItem.String() != "toggle-item" || TapZoomToFit.String() != "zoom-to-fit" ||
		TapDeselectAll.String() != "deselect-all" || TapKind(9).String() != "unknown" {
		t.Error("unexpected TapKind names")
	}
}

func TestTapOnItemTogglesOnlyThatItem(t *testing.T) {
	e := newTestEditor(t)
	a := e.AddItem("🍎", Point{}, 40)
	b := e.AddItem("🚀", Point{100, 0}, 40)

	if d := e.Tap(Vec2{200, 200}, 1); d.Kind != TapToggleItem || d.Item != a.ID {
		t.Fatalf("Tap = %+v", d)
	}
	e.Tap(Vec2{300, 200}, 1)
	if !e.Selection().Contains(a.ID) || !e.Selection().Contains(b.ID) {
		t.Fatal("tapping b cleared a")
	}
	e.Tap(Vec2{200, 200}, 1)
	if e.Selection().Contains(a.ID) || !e.Selection().Contains(b.ID) {
		t.Error("second tap on a should deselect only a")
	}
}

func TestTapOnCanvasClearsSelection(t *testing.T) {
	e := newTestEditor(t)
	sink := &recordingSink{}
	e.SetEventSink(sink)
	a := e.AddItem("🍎", Point{}, 40)
	e.Tap(Vec2{200, 200}, 1)
	if d := e.Tap(Vec2{20, 20}, 1); d.Kind != TapDeselectAll {
		t.Fatalf("Tap = %+v", d)
	}
	if e.Selection().Contains(a.ID) {
		t.Error("selection not cleared")
	}
	n := len(sink.events)
	e.Tap(Vec2{20, 20}, 1)
	if len(sink.events) != n {
		t.Error("clearing an empty selection emitted an event")
	}
}

func TestTapToggleUnknownItem(t *testing.T) {
	e := newTestEditor(t)
	e.ApplyTap(TapDecision{Kind: TapToggleItem, Item: 42})
	if e.Selection().Len() != 0 {
		t.Error("unknown item selected")
	}
}

func TestDoubleTapZoomsToFit(t *testing.T) {
	e := newTestEditor(t)
	e.SetBackground(DataBackground(encodePNG(t, 100, 50)))
	if d := e.Tap(Vec2{10, 10}, 2); d.Kind != TapZoomToFit {
		t.Fatalf("Tap = %+v", d)
	}
	if e.Camera().Scale != 4 {
		t.Errorf("scale = %v, want 4", e.Camera().Scale)
	}
}

// --- Long press ---

func TestLongPressDeletes(t *testing.T) {
	e := newTestEditor(t)
	a := e.AddItem("🍎", Point{}, 40)
	b := e.AddItem("🚀", Point{100, 0}, 40)
	e.ApplyTap(TapDecision{Kind: TapToggleItem, Item: a.ID})
	e.ApplyTap(TapDecision{Kind: TapToggleItem, Item: b.ID})
	e.BeginSelectionDrag()
	e.EndDrag(Vec2{10, 0})

	if !e.LongPress(a.ID) {
		t.Fatal("LongPress = false")
	}
	if e.Document().Has(a.ID) || e.Selection().Contains(a.ID) || e.HasOverlay(a.ID) {
		t.Error("long press left state behind")
	}
	if !e.Selection().Contains(b.ID) {
		t.Error("long press on a deselected b")
	}
	if e.LongPress(a.ID) {
		t.Error("LongPress of deleted item = true")
	}
}

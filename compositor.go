package glyphboard

import "image"

// hitPadding widens each item's hit box, matching the 1pt padding the glyph
// is drawn with.
const hitPadding = 1.0

// BackgroundPlacement is where the background image goes this frame.
type BackgroundPlacement struct {
	Image  image.Image // nil unless the loader is ready
	Center Vec2        // view-space position of the image center
	Scale  float64
	Status FetchStatus
}

// Placement is one item's final screen transform for a frame.
type Placement struct {
	Item     Item
	Position Vec2    // view-space glyph center
	Scale    float64 // overlay scale including any live pinch
	FontSize float64 // Item.Size * Scale
	Selected bool
}

// Bounds returns the square hit box around the glyph.
func (p Placement) Bounds() Rect {
	half := p.FontSize/2 + hitPadding
	return Rect{X: p.Position.X - half, Y: p.Position.Y - half, Width: 2 * half, Height: 2 * half}
}

// Frame is everything the renderer needs for one pass.
type Frame struct {
	Viewport   Viewport
	Background BackgroundPlacement
	// Items is in paint order; the last item is topmost. Items are hidden
	// while the background is fetching.
	Items []Placement
}

// Fetching reports whether the frame should show a progress indicator.
func (f Frame) Fetching() bool {
	return f.Background.Status == FetchFetching
}

// Compose computes the frame for vp from committed and live state.
func (e *Editor) Compose(vp Viewport) Frame {
	center := vp.Center()
	f := Frame{Viewport: vp}

	ox, oy, bgScale := e.cam.display()
	if e.live.zooming && backgroundZooms(e.sel.Len()) {
		bgScale *= e.live.zoom
	}
	bgOffset := Vec2{ox, oy}.Add(e.live.pan).Scale(bgScale)
	f.Background = BackgroundPlacement{
		Image:  e.bg.Image(),
		Center: ToView(Point{}, bgOffset, bgScale, center),
		Scale:  bgScale,
		Status: e.bg.Status(),
	}
	if f.Fetching() {
		return f
	}

	f.Items = make([]Placement, 0, len(e.doc.items))
	for _, it := range e.doc.items {
		f.Items = append(f.Items, e.place(it, center))
	}
	return f
}

// place resolves one item's screen transform.
func (e *Editor) place(it Item, center Vec2) Placement {
	o := e.overlays.get(it.ID)
	r := e.route(it.ID)

	scale := o.scale
	if r.zoom && e.live.zooming {
		scale *= e.live.zoom
	}
	live := e.live.pan
	if r.pan == panSelection {
		live = o.drag
	}
	offset := o.offset.Add(live).Scale(scale)
	return Placement{
		Item:     it,
		Position: ToView(it.Pos(), offset, scale, center),
		Scale:    scale,
		FontSize: it.Size * scale,
		Selected: r.pan == panSelection,
	}
}

// HitTest returns the topmost item under a view-space point in the current
// viewport.
func (e *Editor) HitTest(at Vec2) (ItemID, bool) {
	return e.Compose(e.viewport).HitTest(at)
}

// HitTest returns the topmost item whose hit box contains at.
func (f Frame) HitTest(at Vec2) (ItemID, bool) {
	for i := len(f.Items) - 1; i >= 0; i-- {
		if f.Items[i].Bounds().Contains(at.X, at.Y) {
			return f.Items[i].Item.ID, true
		}
	}
	return 0, false
}

package glyphboard

// The palette strip sits directly below the canvas viewport. Each glyph
// occupies a square cell as wide as the strip is tall. Dragging a glyph
// from the strip onto the canvas drops it as a text payload.

// PaletteRect returns the strip's area in window coordinates. It is empty
// when no palette is configured.
func (e *Editor) PaletteRect() Rect {
	if len(e.cfg.Palette) == 0 {
		return Rect{}
	}
	return Rect{
		Y:      e.viewport.Height,
		Width:  e.viewport.Width,
		Height: e.cfg.PaletteHeight,
	}
}

// PaletteCell returns the cell of the i-th palette glyph.
func (e *Editor) PaletteCell(i int) Rect {
	h := e.cfg.PaletteHeight
	return Rect{X: float64(i) * h, Y: e.viewport.Height, Width: h, Height: h}
}

// paletteGlyphAt returns the glyph under pos, if pos is on the strip.
func (e *Editor) paletteGlyphAt(pos Vec2) (string, bool) {
	strip := e.PaletteRect()
	if strip.Height == 0 || pos.Y < strip.Y || !strip.Contains(pos.X, pos.Y) {
		return "", false
	}
	i := int(pos.X / e.cfg.PaletteHeight)
	if i < 0 || i >= len(e.cfg.Palette) {
		return "", false
	}
	return e.cfg.Palette[i], true
}

package glyphboard

import "time"

// Default tuning values. Config fields left at zero fall back to these.
const (
	DefaultGlyphSize         = 40.0
	DefaultLongPressDuration = time.Second
	DefaultDoubleTapWindow   = 300 * time.Millisecond
	DefaultDoubleTapSlop     = 24.0 // pixels
	DefaultDragDeadZone      = 4.0  // pixels
	DefaultZoomToFitDuration = 0.35 // seconds
	DefaultPaletteHeight     = 56.0 // pixels
)

// DefaultPalette is the glyph strip offered when none is configured.
const DefaultPalette = "😀😷🦠💉👻👀🐶🌲🌎🌞🔥🍎⚽🚗🚓🚲🛩🚁🚀🛸🏠⌚️🎁🗝🔐❤⛔❌❓✅⚠🎶➕➖🏳"

// Config tunes an Editor.
type Config struct {
	// DefaultGlyphSize is the on-screen font size of a freshly dropped glyph.
	DefaultGlyphSize float64
	// LongPressDuration is how long a pointer must rest on an item before
	// the item is deleted.
	LongPressDuration time.Duration
	// DoubleTapWindow is the longest gap between two taps that still counts
	// as a double tap.
	DoubleTapWindow time.Duration
	// DoubleTapSlop is the largest distance in pixels between two taps of a
	// double tap.
	DoubleTapSlop float64
	// DragDeadZone is the movement in pixels before a press becomes a drag.
	DragDeadZone float64
	// ZoomToFitDuration is the length in seconds of the zoom-to-fit
	// animation. Negative disables the animation.
	ZoomToFitDuration float32
	// Palette lists the glyphs shown in the palette strip. Empty hides it.
	Palette []string
	// PaletteHeight is the height in pixels of the palette strip.
	PaletteHeight float64
}

// DefaultConfig returns the default tuning. The palette is left empty; use
// PaletteGlyphs(DefaultPalette) to show the standard strip.
func DefaultConfig() Config {
	return Config{
		DefaultGlyphSize:  DefaultGlyphSize,
		LongPressDuration: DefaultLongPressDuration,
		DoubleTapWindow:   DefaultDoubleTapWindow,
		DoubleTapSlop:     DefaultDoubleTapSlop,
		DragDeadZone:      DefaultDragDeadZone,
		ZoomToFitDuration: DefaultZoomToFitDuration,
		PaletteHeight:     DefaultPaletteHeight,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DefaultGlyphSize <= 0 {
		c.DefaultGlyphSize = d.DefaultGlyphSize
	}
	if c.LongPressDuration <= 0 {
		c.LongPressDuration = d.LongPressDuration
	}
	if c.DoubleTapWindow <= 0 {
		c.DoubleTapWindow = d.DoubleTapWindow
	}
	if c.DoubleTapSlop <= 0 {
		c.DoubleTapSlop = d.DoubleTapSlop
	}
	if c.DragDeadZone <= 0 {
		c.DragDeadZone = d.DragDeadZone
	}
	if c.ZoomToFitDuration == 0 {
		c.ZoomToFitDuration = d.ZoomToFitDuration
	}
	if c.PaletteHeight <= 0 {
		c.PaletteHeight = d.PaletteHeight
	}
	return c
}

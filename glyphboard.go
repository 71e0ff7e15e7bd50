package glyphboard

import (
	"image/color"
	"math"
)

// Vec2 is a view-space vector: pixel positions, pan offsets and drag
// translations.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Div returns v / s. The caller guarantees s != 0.
func (v Vec2) Div(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Point is a document-space coordinate: integer units measured from the
// canvas center, independent of pan and zoom.
type Point struct {
	X, Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// positive reports whether both dimensions are strictly positive and finite.
func (s Size) positive() bool {
	return validScale(s.Width) && validScale(s.Height)
}

// Viewport is the geometry of the hosting view for one layout pass.
// The hosting layer supplies it every frame.
type Viewport struct {
	Width, Height float64
}

// Center returns the viewport center in view space.
func (vp Viewport) Center() Vec2 {
	return Vec2{vp.Width / 2, vp.Height / 2}
}

// Size returns the viewport dimensions.
func (vp Viewport) Size() Size {
	return Size{vp.Width, vp.Height}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the canvas color behind the background image.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorSelection strokes the ring drawn around selected items.
	ColorSelection = Color{1, 0, 0, 1}
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// validScale reports whether s can be used as a zoom factor or a divisor.
func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

package glyphboard

import (
	"errors"
	"fmt"
)

// ErrInvalidScale is returned when a conversion is asked to divide by a
// zero, negative or non-finite scale.
var ErrInvalidScale = errors.New("glyphboard: scale must be positive")

// ToView converts a document point into view space:
//
//	center + p*scale + offset
//
// offset is already in view pixels (committed plus live delta, multiplied by
// scale by the caller).
func ToView(p Point, offset Vec2, scale float64, center Vec2) Vec2 {
	return Vec2{
		X: center.X + float64(p.X)*scale + offset.X,
		Y: center.Y + float64(p.Y)*scale + offset.Y,
	}
}

// ToDoc converts a view-space point back into document space, truncating
// toward zero. It is the inverse of ToView up to one unit per axis.
func ToDoc(v Vec2, offset Vec2, scale float64, center Vec2) (Point, error) {
	if !validScale(scale) {
		return Point{}, fmt.Errorf("to doc (scale %v): %w", scale, ErrInvalidScale)
	}
	return Point{
		X: int((v.X - center.X - offset.X) / scale),
		Y: int((v.Y - center.Y - offset.Y) / scale),
	}, nil
}

package glyphboard

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fitAnim eases the displayed background view toward a zoom-to-fit target.
type fitAnim struct {
	tweenX     *gween.Tween
	tweenY     *gween.Tween
	tweenScale *gween.Tween
	x, y, s    float64
	done       bool
}

// Camera holds the background's steady-state view: the committed pan offset
// (document units) and zoom scale. It is shared by the background and never
// selected individually.
type Camera struct {
	// Offset is the committed background pan in document units.
	Offset Vec2
	// Scale is the committed background zoom (1.0 = no zoom).
	Scale float64

	fit *fitAnim
}

func newCamera() Camera {
	return Camera{Scale: 1}
}

// panBy folds a committed pan into the steady state.
func (c *Camera) panBy(d Vec2) {
	c.fit = nil
	c.Offset = c.Offset.Add(d)
}

// zoomBy folds a committed pinch factor into the steady state.
func (c *Camera) zoomBy(f float64) {
	c.fit = nil
	c.Scale *= f
}

// reset replaces the steady state outright. The displayed view eases toward
// the new values over duration seconds; a non-positive duration snaps.
func (c *Camera) reset(scale float64, duration float32) {
	fromX, fromY, fromS := c.display()
	c.Offset = Vec2{}
	c.Scale = scale
	if duration <= 0 {
		c.fit = nil
		return
	}
	c.fit = &fitAnim{
		tweenX:     gween.New(float32(fromX), 0, duration, ease.OutCubic),
		tweenY:     gween.New(float32(fromY), 0, duration, ease.OutCubic),
		tweenScale: gween.New(float32(fromS), float32(scale), duration, ease.OutCubic),
		x:          fromX,
		y:          fromY,
		s:          fromS,
	}
}

// update advances the zoom-to-fit animation. Called from Editor.Update.
func (c *Camera) update(dt float32) {
	if c.fit == nil {
		return
	}
	x, doneX := c.fit.tweenX.Update(dt)
	y, doneY := c.fit.tweenY.Update(dt)
	s, doneS := c.fit.tweenScale.Update(dt)
	c.fit.x, c.fit.y, c.fit.s = float64(x), float64(y), float64(s)
	if doneX && doneY && doneS {
		c.fit = nil
	}
}

// animating reports whether a zoom-to-fit animation is in progress.
func (c *Camera) animating() bool {
	return c.fit != nil
}

// display returns the offset and scale to draw with: the animated values
// while a zoom-to-fit is easing, the steady state otherwise.
func (c *Camera) display() (x, y, scale float64) {
	if c.fit != nil && validScale(c.fit.s) {
		return c.fit.x, c.fit.y, c.fit.s
	}
	return c.Offset.X, c.Offset.Y, c.Scale
}

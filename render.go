package glyphboard

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorPalette = Color{0.94, 0.94, 0.94, 1}
	colorLabel   = Color{0.2, 0.2, 0.2, 1}
)

const loadingLabelSize = 32

// Renderer draws editor frames onto ebiten images. It caches the GPU copy
// of the background image between frames.
type Renderer struct {
	glyphs    *text.GoTextFaceSource
	labels    *text.GoTextFaceSource
	glyphTint Color

	bgSource image.Image
	bgImage  *ebiten.Image
}

// NewRenderer creates a renderer. glyphFont is TTF/OTF data for the glyph
// face (an emoji-capable font in practice); nil falls back to Go Regular.
func NewRenderer(glyphFont []byte) (*Renderer, error) {
	labels, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	glyphs, tint := labels, colorLabel
	if len(glyphFont) > 0 {
		tint = ColorWhite
		glyphs, err = text.NewGoTextFaceSource(bytes.NewReader(glyphFont))
		if err != nil {
			return nil, fmt.Errorf("load glyph font: %w", err)
		}
	}
	return &Renderer{glyphs: glyphs, labels: labels, glyphTint: tint}, nil
}

// Draw renders the editor's current frame: canvas, background, items,
// selection rings, and the palette strip below the canvas.
func (r *Renderer) Draw(screen *ebiten.Image, e *Editor) {
	vp := e.Viewport()
	f := e.Compose(vp)

	canvas := screen.SubImage(image.Rect(0, 0, int(vp.Width), int(vp.Height))).(*ebiten.Image)
	canvas.Fill(ColorWhite.RGBA())

	r.drawBackground(canvas, f.Background)
	if f.Fetching() {
		c := vp.Center()
		r.drawText(canvas, "Loading…", r.labels, loadingLabelSize, 1, c, colorLabel)
	}
	for _, p := range f.Items {
		r.drawText(canvas, p.Item.Symbol, r.glyphs, p.Item.Size, p.Scale, p.Position, r.glyphTint)
		if p.Selected {
			b := p.Bounds()
			vector.StrokeCircle(canvas, float32(p.Position.X), float32(p.Position.Y),
				float32(b.Width/2), 1, ColorSelection.RGBA(), true)
		}
	}

	r.drawPalette(screen, e)
}

func (r *Renderer) drawBackground(dst *ebiten.Image, bg BackgroundPlacement) {
	if bg.Image == nil {
		if r.bgImage != nil {
			r.bgImage.Deallocate()
		}
		r.bgSource, r.bgImage = nil, nil
		return
	}
	if bg.Image != r.bgSource {
		if r.bgImage != nil {
			r.bgImage.Deallocate()
		}
		r.bgSource = bg.Image
		r.bgImage = ebiten.NewImageFromImage(bg.Image)
	}
	b := r.bgImage.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(bg.Scale, bg.Scale)
	op.GeoM.Translate(bg.Center.X, bg.Center.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(r.bgImage, op)
}

// drawText draws s centered on at. The face is laid out at size and the
// result scaled by k, the way a scale effect would.
func (r *Renderer) drawText(dst *ebiten.Image, s string, src *text.GoTextFaceSource, size, k float64, at Vec2, tint Color) {
	if size <= 0 || !validScale(k) {
		return
	}
	face := &text.GoTextFace{Source: src, Size: size}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(at.X, at.Y)
	if tint != ColorWhite {
		op.ColorScale.ScaleWithColor(tint.RGBA())
	}
	text.Draw(dst, s, face, op)
}

func (r *Renderer) drawPalette(screen *ebiten.Image, e *Editor) {
	strip := e.PaletteRect()
	if strip.Height == 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(strip.X), float32(strip.Y),
		float32(strip.Width), float32(strip.Height), colorPalette.RGBA(), false)
	size := e.Config().DefaultGlyphSize
	for i, g := range e.Config().Palette {
		cell := e.PaletteCell(i)
		if cell.X > strip.Width {
			break
		}
		center := Vec2{cell.X + cell.Width/2, cell.Y + cell.Height/2}
		r.drawText(screen, g, r.glyphs, size, 1, center, r.glyphTint)
	}
}

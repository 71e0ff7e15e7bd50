package glyphboard

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultScreenshotDir is where captures go when RunConfig leaves the
// directory empty.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the next drawn frame. Captures are
// written by the window host as timestamped PNG files.
func (e *Editor) Screenshot(label string) {
	e.screenshots = append(e.screenshots, label)
}

// flushScreenshots writes every queued capture of screen into dir.
func (e *Editor) flushScreenshots(screen *ebiten.Image, dir string) {
	if len(e.screenshots) == 0 {
		return
	}
	defer func() { e.screenshots = e.screenshots[:0] }()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		Logger().Warn("screenshot dir", slog.String("dir", dir), slog.Any("err", err))
		return
	}
	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range e.screenshots {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, screenshotName(label)))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("screenshot", slog.Any("err", err))
			continue
		}
		Logger().Debug("screenshot written", slog.String("path", path))
	}
}

// unpremultiply converts premultiplied RGBA pixels read back from the GPU
// into straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// screenshotName keeps ASCII letters, digits, '-' and '.' and replaces
// everything else with '_'.
func screenshotName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}

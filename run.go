package glyphboard

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS prints FPS/TPS in the top-left corner.
	ShowFPS bool
	// Debug installs a debug-level text logger on stderr.
	Debug bool
	// GlyphFont is TTF/OTF data used to draw glyphs. Nil uses Go Regular.
	GlyphFont []byte
	// Editor tunes gestures and the palette.
	Editor Config
	// Document is edited in place. Nil starts an empty document.
	Document *Document
	// Fetcher resolves background URLs. Nil uses an HTTPFetcher.
	Fetcher Fetcher
	// Script replays a gesture script once the window is up.
	Script *GestureRunner
	// ScreenshotDir receives captures queued with Editor.Screenshot.
	// Empty uses DefaultScreenshotDir.
	ScreenshotDir string
}

// Run opens a window and edits cfg.Document until the window is closed.
func Run(cfg RunConfig) error {
	if cfg.Debug {
		SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = DefaultScreenshotDir
	}

	r, err := NewRenderer(cfg.GlyphFont)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	e := NewEditor(cfg.Document, NewBackgroundLoader(cfg.Fetcher), cfg.Editor)
	defer e.Close()
	e.hostInput = true
	if cfg.Script != nil {
		e.SetGestureRunner(cfg.Script)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{editor: e, renderer: r, showFPS: cfg.ShowFPS, screenshotDir: cfg.ScreenshotDir}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// game adapts an Editor to ebiten.Game.
type game struct {
	editor        *Editor
	renderer      *Renderer
	showFPS       bool
	screenshotDir string
}

func (g *game) Update() error {
	g.importDroppedFiles()
	g.pasteFromClipboard()
	g.editor.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.editor)
	g.editor.flushScreenshots(screen, g.screenshotDir)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(w, h int) (int, int) {
	canvasH := float64(h)
	if len(g.editor.cfg.Palette) > 0 {
		canvasH -= g.editor.cfg.PaletteHeight
	}
	g.editor.SetViewport(Viewport{Width: float64(w), Height: max(canvasH, 0)})
	return w, h
}

// importDroppedFiles turns files dropped on the window into drop payloads
// at the cursor position.
func (g *game) importDroppedFiles() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	at := Vec2{float64(mx), float64(my)}

	_ = fs.WalkDir(files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(files, path)
		if err != nil {
			Logger().Warn("dropped file unreadable", slog.String("path", path), slog.Any("err", err))
			return nil
		}
		if p, ok := classifyDrop(data); ok {
			g.editor.Drop(p, at)
		}
		return nil
	})
}

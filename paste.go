package glyphboard

import (
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Paste resolves clipboard text the way a dropped file is resolved: an
// image URL replaces the background, a glyph is placed at the viewport
// center. It reports whether the text was accepted.
func (e *Editor) Paste(text string) bool {
	p, ok := classifyDrop([]byte(text))
	if !ok || p.Kind == DropImage {
		return false
	}
	return e.Drop(p, e.viewport.Center())
}

// pasteShortcut reports whether Ctrl+V (Cmd+V on macOS) was pressed this
// tick.
func pasteShortcut() bool {
	if !inpututil.IsKeyJustPressed(ebiten.KeyV) {
		return false
	}
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// pasteFromClipboard reads the system clipboard on the paste shortcut.
func (g *game) pasteFromClipboard() {
	if !pasteShortcut() {
		return
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		Logger().Warn("clipboard unavailable", slog.Any("err", err))
		return
	}
	if !g.editor.Paste(text) {
		Logger().Debug("paste ignored", slog.Int("len", len(text)))
	}
}

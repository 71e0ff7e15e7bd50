package glyphboard

import (
	"bytes"
	"image"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// DropKind distinguishes the payloads an import can carry.
type DropKind uint8

const (
	DropURL   DropKind = iota // a link to a background image
	DropImage                 // encoded image bytes
	DropText                  // text; its first glyph becomes an item
)

// DropPayload is a resolved drag-and-drop or paste payload.
type DropPayload struct {
	Kind DropKind
	URL  string
	Data []byte
	Text string
}

// Drop resolves a payload dropped at a view-space point: URLs and image
// bytes replace the background, text adds its first glyph as an item. It
// reports whether the payload was accepted.
func (e *Editor) Drop(p DropPayload, at Vec2) bool {
	switch p.Kind {
	case DropURL:
		if p.URL == "" {
			return false
		}
		e.SetBackground(URLBackground(ImageURL(p.URL)))
		return true
	case DropImage:
		if len(p.Data) == 0 {
			return false
		}
		e.SetBackground(DataBackground(p.Data))
		return true
	case DropText:
		glyph, ok := FirstGlyph(p.Text)
		if !ok {
			Logger().Debug("drop ignored: not a glyph", slog.String("text", p.Text))
			return false
		}
		return e.placeGlyph(glyph, at)
	default:
		return false
	}
}

// placeGlyph adds glyph under the pointer so that it appears at the default
// size regardless of the current background zoom.
func (e *Editor) placeGlyph(glyph string, at Vec2) bool {
	scale := e.cam.Scale
	pos, err := ToDoc(at, Vec2{}, scale, e.viewport.Center())
	if err != nil {
		Logger().Debug("drop ignored", slog.Any("err", err))
		return false
	}
	it := e.AddItem(glyph, pos, e.cfg.DefaultGlyphSize/scale)
	e.overlays.at(it.ID).scale = scale
	return true
}

// FirstGlyph returns the first user-perceived character of text when it is
// an emoji-like symbol.
func FirstGlyph(text string) (string, bool) {
	text = norm.NFC.String(text)
	if text == "" {
		return "", false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	return cluster, isGlyph(cluster)
}

// isGlyph accepts clusters starting with a symbol that is either beyond the
// basic technical symbols block or followed by modifiers or a presentation
// selector.
func isGlyph(cluster string) bool {
	r, n := utf8.DecodeRuneInString(cluster)
	if r == utf8.RuneError || !unicode.Is(unicode.So, r) {
		return false
	}
	return r > 0x238C || n < len(cluster)
}

// PaletteGlyphs splits a palette string into its glyphs.
func PaletteGlyphs(s string) []string {
	var out []string
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if isGlyph(cluster) {
			out = append(out, cluster)
		}
	}
	return out
}

// classifyDrop decides what a dropped file carries: an image, a link to an
// image, or text whose first glyph becomes an item.
func classifyDrop(data []byte) (DropPayload, bool) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		return DropPayload{Kind: DropImage, Data: data}, true
	}
	if !utf8.Valid(data) {
		return DropPayload{}, false
	}
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return DropPayload{Kind: DropURL, URL: s}, true
	}
	return DropPayload{Kind: DropText, Text: s}, s != ""
}

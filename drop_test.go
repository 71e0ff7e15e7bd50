package glyphboard

import (
	"slices"
	"testing"
)

func TestFirstGlyph(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"single emoji", "🍎", "🍎", true},
		{"emoji then text", "🍎 apple", "🍎", true},
		{"skin tone modifier", "👍🏽!", "👍🏽", true},
		{"flag", "🇯🇵", "🇯🇵", true},
		{"presentation selector", "⌚️", "⌚️", true},
		{"bare watch", "⌚", "⌚", false},
		{"copyright sign", "©", "©", false},
		{"letters", "abc", "a", false},
		{"combining accent", "é", "é", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstGlyph(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FirstGlyph(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPaletteGlyphs(t *testing.T) {
	if got := PaletteGlyphs("🍎a🚀 ⌚️"); !slices.Equal(got, []string{"🍎", "🚀", "⌚️"}) {
		t.Errorf("PaletteGlyphs = %q", got)
	}
	if got := PaletteGlyphs(""); len(got) != 0 {
		t.Errorf("PaletteGlyphs(\"\") = %q", got)
	}

	def := PaletteGlyphs(DefaultPalette)
	if len(def) < 30 {
		t.Errorf("default palette has %d glyphs", len(def))
	}
	if def[0] != "😀" || !slices.Contains(def, "⌚️") || !slices.Contains(def, "🍎") {
		t.Errorf("default palette = %q", def)
	}
}

func TestClassifyDrop(t *testing.T) {
	png := encodePNG(t, 4, 4)
	tests := []struct {
		name   string
		data   []byte
		want   DropPayload
		wantOK bool
	}{
		{"image", png, DropPayload{Kind: DropImage, Data: png}, true},
		{"url", []byte(" https://example.com/cat.jpg\n"), DropPayload{Kind: DropURL, URL: "https://example.com/cat.jpg"}, true},
		{"text", []byte("🍎"), DropPayload{Kind: DropText, Text: "🍎"}, true},
		{"blank text", []byte("  \n"), DropPayload{Kind: DropText}, false},
		{"binary", []byte{0xff, 0xfe, 0x00}, DropPayload{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifyDrop(tt.data)
			if ok != tt.wantOK || got.Kind != tt.want.Kind || got.URL != tt.want.URL ||
				got.Text != tt.want.Text || len(got.Data) != len(tt.want.Data) {
				t.Errorf("classifyDrop = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDropText(t *testing.T) {
	e := newTestEditor(t)
	if !e.Drop(DropPayload{Kind: DropText, Text: "🍎"}, Vec2{300, 150}) {
		t.Fatal("Drop = false")
	}
	items := e.Document().Items()
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	it := items[0]
	if it.Symbol != "🍎" || it.Pos() != (Point{100, -50}) || it.Size != DefaultGlyphSize {
		t.Errorf("item = %+v", it)
	}
	p := placement(t, e, it.ID)
	if !vecApprox(p.Position, Vec2{300, 150}, epsilon) {
		t.Errorf("dropped glyph drawn at %v, want under the pointer", p.Position)
	}

	if e.Drop(DropPayload{Kind: DropText, Text: "hello"}, Vec2{}) {
		t.Error("Drop of plain text = true")
	}
}

func TestDropTextScaledBackground(t *testing.T) {
	e := newTestEditor(t)
	e.ZoomBy(2)
	e.Drop(DropPayload{Kind: DropText, Text: "🚀"}, Vec2{300, 200})

	it := e.Document().Items()[0]
	if it.Pos() != (Point{50, 0}) || it.Size != DefaultGlyphSize/2 {
		t.Errorf("item = %+v, want pos (50,0) size %v", it, DefaultGlyphSize/2)
	}
	if _, s := e.ItemOffset(it.ID); s != 2 {
		t.Errorf("overlay scale = %v, want the background scale 2", s)
	}
	p := placement(t, e, it.ID)
	if !vecApprox(p.Position, Vec2{300, 200}, epsilon) || !approxEqual(p.FontSize, DefaultGlyphSize, epsilon) {
		t.Errorf("placement = %+v, want default size under the pointer", p)
	}
}

func TestDropBackgrounds(t *testing.T) {
	e := newTestEditor(t)

	if e.Drop(DropPayload{Kind: DropURL}, Vec2{}) {
		t.Error("empty URL accepted")
	}
	if e.Drop(DropPayload{Kind: DropImage}, Vec2{}) {
		t.Error("empty image accepted")
	}
	if e.Drop(DropPayload{Kind: DropKind(9)}, Vec2{}) {
		t.Error("unknown kind accepted")
	}

	if !e.Drop(DropPayload{Kind: DropURL, URL: "https://www.google.com/imgres?imgurl=https://example.com/a.png"}, Vec2{}) {
		t.Fatal("URL drop rejected")
	}
	if got := e.Document().Background.URL; got != "https://example.com/a.png" {
		t.Errorf("background URL = %q, want unwrapped imgurl", got)
	}

	if !e.Drop(DropPayload{Kind: DropImage, Data: encodePNG(t, 3, 3)}, Vec2{}) {
		t.Fatal("image drop rejected")
	}
	if e.Document().Background.Kind != BackgroundData || e.Background().Status() != FetchReady {
		t.Errorf("background = %v, status %v", e.Document().Background.Kind, e.Background().Status())
	}
}

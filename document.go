package glyphboard

// ItemID identifies an item within one document. IDs are assigned from a
// monotonic counter and never reused, even after deletion.
type ItemID int

// Item is a placed glyph. X and Y are document units from the canvas center;
// Size is the font size the glyph was placed with.
type Item struct {
	ID     ItemID
	Symbol string
	X, Y   int
	Size   float64
}

// Pos returns the item's document position.
func (it Item) Pos() Point { return Point{it.X, it.Y} }

// BackgroundKind distinguishes the variants of Background.
type BackgroundKind uint8

const (
	BackgroundBlank BackgroundKind = iota // no image
	BackgroundURL                         // image fetched from URL
	BackgroundData                        // image decoded from Data
)

// Background is the document's single background image reference.
type Background struct {
	Kind BackgroundKind
	URL  string
	Data []byte
}

// BlankBackground returns the empty background.
func BlankBackground() Background { return Background{} }

// URLBackground returns a background fetched from url.
func URLBackground(url string) Background {
	return Background{Kind: BackgroundURL, URL: url}
}

// DataBackground returns a background decoded from encoded image bytes.
func DataBackground(data []byte) Background {
	return Background{Kind: BackgroundData, Data: data}
}

// Document is the persistent model: a background and an ordered list of
// items. All mutations are synchronous and total.
type Document struct {
	Background Background

	items  []Item
	lastID ItemID
}

// NewDocument returns an empty document with a blank background.
func NewDocument() *Document {
	return &Document{}
}

// AddItem appends a new item and returns it. The item receives the next id.
func (d *Document) AddItem(symbol string, at Point, size float64) Item {
	d.lastID++
	it := Item{ID: d.lastID, Symbol: symbol, X: at.X, Y: at.Y, Size: size}
	d.items = append(d.items, it)
	return it
}

// RemoveItem deletes the item with the given id. Removing an absent id is a
// no-op. It reports whether an item was removed.
func (d *Document) RemoveItem(id ItemID) bool {
	i := d.index(id)
	if i < 0 {
		return false
	}
	copy(d.items[i:], d.items[i+1:])
	d.items[len(d.items)-1] = Item{}
	d.items = d.items[:len(d.items)-1]
	return true
}

// MoveItem translates an item by the given document-space delta.
func (d *Document) MoveItem(id ItemID, by Point) bool {
	i := d.index(id)
	if i < 0 {
		return false
	}
	d.items[i].X += by.X
	d.items[i].Y += by.Y
	return true
}

// ResizeItem multiplies an item's size by factor. Non-positive factors are
// ignored.
func (d *Document) ResizeItem(id ItemID, factor float64) bool {
	i := d.index(id)
	if i < 0 || !validScale(factor) {
		return false
	}
	d.items[i].Size *= factor
	return true
}

// SetBackground replaces the background.
func (d *Document) SetBackground(bg Background) {
	d.Background = bg
}

// Item returns the item with the given id.
func (d *Document) Item(id ItemID) (Item, bool) {
	i := d.index(id)
	if i < 0 {
		return Item{}, false
	}
	return d.items[i], true
}

// Has reports whether the document contains id.
func (d *Document) Has(id ItemID) bool {
	return d.index(id) >= 0
}

// Items returns a copy of the items in insertion order.
func (d *Document) Items() []Item {
	out := make([]Item, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of items.
func (d *Document) Len() int { return len(d.items) }

func (d *Document) index(id ItemID) int {
	for i := range d.items {
		if d.items[i].ID == id {
			return i
		}
	}
	return -1
}

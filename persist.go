package glyphboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrBadDocument is returned when a saved document fails validation.
var ErrBadDocument = errors.New("glyphboard: malformed document")

type backgroundJSON struct {
	URL  string `json:"url,omitempty"`
	Data []byte `json:"data,omitempty"`
}

type itemJSON struct {
	ID     ItemID  `json:"id"`
	Symbol string  `json:"symbol"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Size   float64 `json:"size"`
}

type documentJSON struct {
	Background *backgroundJSON `json:"background,omitempty"`
	Items      []itemJSON      `json:"items"`
	LastID     ItemID          `json:"lastId"`
}

// MarshalJSON encodes the background, the items in order and the id
// counter, so ids stay unique across save and load.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := documentJSON{Items: make([]itemJSON, len(d.items)), LastID: d.lastID}
	switch d.Background.Kind {
	case BackgroundURL:
		out.Background = &backgroundJSON{URL: d.Background.URL}
	case BackgroundData:
		out.Background = &backgroundJSON{Data: d.Background.Data}
	}
	for i, it := range d.items {
		out.Items[i] = itemJSON{ID: it.ID, Symbol: it.Symbol, X: it.X, Y: it.Y, Size: it.Size}
	}
	return json.Marshal(out)
}

// UnmarshalJSON replaces d with a decoded document. Ids must be positive and
// unique and lastId must not be negative; the id counter is raised past the
// largest id if needed.
func (d *Document) UnmarshalJSON(data []byte) error {
	var in documentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.LastID < 0 {
		return fmt.Errorf("%w: lastId %d", ErrBadDocument, in.LastID)
	}
	doc := Document{lastID: in.LastID}
	if bg := in.Background; bg != nil {
		switch {
		case bg.URL != "" && len(bg.Data) > 0:
			return fmt.Errorf("%w: background has both url and data", ErrBadDocument)
		case bg.URL != "":
			doc.Background = URLBackground(bg.URL)
		case len(bg.Data) > 0:
			doc.Background = DataBackground(bg.Data)
		}
	}
	seen := make(map[ItemID]bool, len(in.Items))
	for _, it := range in.Items {
		if it.ID <= 0 || seen[it.ID] {
			return fmt.Errorf("%w: item id %d", ErrBadDocument, it.ID)
		}
		seen[it.ID] = true
		doc.lastID = max(doc.lastID, it.ID)
		doc.items = append(doc.items, Item{ID: it.ID, Symbol: it.Symbol, X: it.X, Y: it.Y, Size: it.Size})
	}
	*d = doc
	return nil
}

// SaveDocument writes d as indented JSON.
func SaveDocument(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// LoadDocument reads a document written by SaveDocument.
func LoadDocument(r io.Reader) (*Document, error) {
	d := NewDocument()
	if err := json.NewDecoder(r).Decode(d); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return d, nil
}

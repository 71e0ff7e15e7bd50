package glyphboard

// overlay is the per-item view state layered on top of the document.
// offset is in document units; the compositor multiplies it by the item's
// effective scale. drag is the live (uncommitted) selection-drag delta.
type overlay struct {
	id     ItemID
	offset Vec2
	scale  float64
	drag   Vec2
}

var identityOverlay = overlay{scale: 1}

// overlayTable stores overlays in a dense arena indexed by item id. Entries
// are created lazily and removed with their item.
type overlayTable struct {
	entries []overlay
	index   map[ItemID]int
}

// get returns the overlay for id, or the identity overlay if none exists.
func (t *overlayTable) get(id ItemID) overlay {
	if i, ok := t.index[id]; ok {
		return t.entries[i]
	}
	o := identityOverlay
	o.id = id
	return o
}

// at returns a pointer to id's entry, creating it if needed. The pointer is
// invalidated by the next insertion or removal.
func (t *overlayTable) at(id ItemID) *overlay {
	if i, ok := t.index[id]; ok {
		return &t.entries[i]
	}
	if t.index == nil {
		t.index = make(map[ItemID]int)
	}
	o := identityOverlay
	o.id = id
	t.entries = append(t.entries, o)
	t.index[id] = len(t.entries) - 1
	return &t.entries[len(t.entries)-1]
}

// has reports whether id has an explicit entry.
func (t *overlayTable) has(id ItemID) bool {
	_, ok := t.index[id]
	return ok
}

// remove deletes id's entry by swapping the last entry into its slot.
func (t *overlayTable) remove(id ItemID) {
	i, ok := t.index[id]
	if !ok {
		return
	}
	last := len(t.entries) - 1
	if i != last {
		t.entries[i] = t.entries[last]
		t.index[t.entries[i].id] = i
	}
	t.entries[last] = overlay{}
	t.entries = t.entries[:last]
	delete(t.index, id)
}

// clearDrag zeroes every live drag delta.
func (t *overlayTable) clearDrag() {
	for i := range t.entries {
		t.entries[i].drag = Vec2{}
	}
}

func (t *overlayTable) len() int { return len(t.entries) }

package glyphboard

import "slices"

// Selection is the set of currently selected items. Order is irrelevant.
// The zero value is an empty selection.
type Selection struct {
	ids map[ItemID]struct{}
}

// Toggle flips id's membership and reports whether it is now selected.
func (s *Selection) Toggle(id ItemID) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	if s.ids == nil {
		s.ids = make(map[ItemID]struct{})
	}
	s.ids[id] = struct{}{}
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	clear(s.ids)
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id ItemID) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected items.
func (s *Selection) Len() int { return len(s.ids) }

// IDs returns the selected ids in ascending order.
func (s *Selection) IDs() []ItemID {
	out := make([]ItemID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s *Selection) remove(id ItemID) {
	delete(s.ids, id)
}

// SelectionView reads a Selection without exposing its mutators.
type SelectionView struct {
	s *Selection
}

// Contains reports whether id is selected.
func (v SelectionView) Contains(id ItemID) bool { return v.s.Contains(id) }

// Len returns the number of selected items.
func (v SelectionView) Len() int { return v.s.Len() }

// IDs returns the selected ids in ascending order.
func (v SelectionView) IDs() []ItemID { return v.s.IDs() }

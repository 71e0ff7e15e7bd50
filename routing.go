package glyphboard

// panSource names the live pan delta an item follows.
type panSource uint8

const (
	panCanvas    panSource = iota // background pan delta
	panSelection                  // the item's own selection-drag delta
)

// itemRoute says which live deltas reach an item and, on commit, which
// committed values a gesture folds into.
type itemRoute struct {
	pan  panSource
	zoom bool // receives the pinch factor
}

// routeFor is the single place where selection decides how gestures reach
// an item. Pan commit, zoom commit and the compositor all consult it.
//
// With an empty selection everything follows the canvas. Otherwise selected
// items follow their own drag and the pinch, unselected items follow only
// the canvas pan.
func routeFor(selected bool, selectionLen int) itemRoute {
	if selected {
		return itemRoute{pan: panSelection, zoom: true}
	}
	return itemRoute{pan: panCanvas, zoom: selectionLen == 0}
}

// backgroundZooms reports whether the pinch factor reaches the background.
func backgroundZooms(selectionLen int) bool {
	return selectionLen == 0
}

func (e *Editor) route(id ItemID) itemRoute {
	return routeFor(e.sel.Contains(id), e.sel.Len())
}

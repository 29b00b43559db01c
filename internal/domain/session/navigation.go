package session

import "github.com/bnema/browse/internal/domain/entity"

// DefaultBackForwardItems is how many entries the back and forward menus show.
const DefaultBackForwardItems = 15

// MenuItem is an entry of the back or forward menu with its history position.
type MenuItem struct {
	Index int
	Entry entity.HistoryEntry
}

// BackForward returns the entries around the current one, nearest first, at
// most maxItems on each side.
func BackForward(s entity.SessionSnapshot, maxItems int) (back, forward []MenuItem) {
	if !s.HasCurrent() {
		return nil, nil
	}
	if maxItems <= 0 {
		maxItems = DefaultBackForwardItems
	}

	current := s.CurrentIndex
	bottom := max(current-maxItems, 0)
	top := min(current+maxItems+1, len(s.Entries))

	for i := current - 1; i >= bottom; i-- {
		back = append(back, MenuItem{Index: i, Entry: s.Entries[i]})
	}
	for i := current + 1; i < top; i++ {
		forward = append(forward, MenuItem{Index: i, Entry: s.Entries[i]})
	}
	return back, forward
}

// Package headless provides in-memory browsing surfaces for running session
// persistence without a rendering engine.
package headless

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/domain/entity"
)

// ErrNoHistory is returned by Back and Forward at the ends of the list.
var ErrNoHistory = errors.New("no history in that direction")

// Surface is an in-memory navigation surface.
type Surface struct {
	mu      sync.RWMutex
	entries []entity.HistoryEntry
	current int
}

var _ port.NavigationSurface = (*Surface)(nil)

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) GetHistoryEntries() []entity.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

func (s *Surface) GetCurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// ReplaceHistory installs entries atomically; invalid input leaves the
// surface untouched.
func (s *Surface) ReplaceHistory(_ context.Context, entries []entity.HistoryEntry, currentIndex int) error {
	snap, err := entity.NewSessionSnapshot(slices.Clone(entries), currentIndex)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = snap.Entries
	s.current = snap.CurrentIndex
	return nil
}

// Navigate drops the forward list and appends url as the current entry.
func (s *Surface) Navigate(_ context.Context, url string) error {
	entry, err := entity.NewHistoryEntry(url, "")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) > 0 {
		s.entries = s.entries[:s.current+1]
	}
	s.entries = append(s.entries, entry)
	s.current = len(s.entries) - 1
	return nil
}

// SetTitle names the current entry, as a page load would.
func (s *Surface) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) > 0 {
		s.entries[s.current].Title = title
	}
}

// Back moves one entry towards the oldest.
func (s *Surface) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == 0 {
		return ErrNoHistory
	}
	s.current--
	return nil
}

// Forward moves one entry towards the newest.
func (s *Surface) Forward() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current+1 >= len(s.entries) {
		return ErrNoHistory
	}
	s.current++
	return nil
}

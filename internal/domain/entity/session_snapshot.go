package entity

import (
	"errors"
	"fmt"
)

// ErrCurrentIndexOutOfRange is returned when a snapshot's current index does not
// point at one of its entries.
var ErrCurrentIndexOutOfRange = errors.New("current index out of range")

// SessionSnapshot captures one tab's navigation history, oldest entry first.
// CurrentIndex is only meaningful when Entries is non-empty.
type SessionSnapshot struct {
	Entries      []HistoryEntry
	CurrentIndex int
}

// NewSessionSnapshot builds a snapshot and checks its invariants.
func NewSessionSnapshot(entries []HistoryEntry, currentIndex int) (SessionSnapshot, error) {
	s := SessionSnapshot{Entries: entries, CurrentIndex: currentIndex}
	if len(entries) == 0 {
		s.CurrentIndex = 0
	}
	if err := s.Validate(); err != nil {
		return SessionSnapshot{}, err
	}
	return s, nil
}

// IsEmpty reports whether the tab had no history.
func (s SessionSnapshot) IsEmpty() bool {
	return len(s.Entries) == 0
}

// HasCurrent reports whether CurrentIndex designates an entry.
func (s SessionSnapshot) HasCurrent() bool {
	return len(s.Entries) > 0
}

// Current returns the entry the tab was showing.
func (s SessionSnapshot) Current() (HistoryEntry, bool) {
	if !s.HasCurrent() || s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Entries) {
		return HistoryEntry{}, false
	}
	return s.Entries[s.CurrentIndex], true
}

// EntryError reports an invalid entry at a given position.
type EntryError struct {
	Index int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Validate checks that every entry has a URL and that the current index is in range.
func (s SessionSnapshot) Validate() error {
	for i, entry := range s.Entries {
		if entry.URL == "" {
			return &EntryError{Index: i, Err: ErrEmptyURL}
		}
	}
	if len(s.Entries) > 0 && (s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Entries)) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrCurrentIndexOutOfRange, s.CurrentIndex, len(s.Entries))
	}
	return nil
}

// Clone returns a snapshot that shares no memory with s.
func (s SessionSnapshot) Clone() SessionSnapshot {
	entries := make([]HistoryEntry, len(s.Entries))
	copy(entries, s.Entries)
	return SessionSnapshot{Entries: entries, CurrentIndex: s.CurrentIndex}
}

// WindowSession is the ordered list of tab snapshots of one browser window.
type WindowSession struct {
	Tabs []SessionSnapshot
}

// CountEntries returns the total number of history entries across all tabs.
func (w WindowSession) CountEntries() int {
	count := 0
	for _, tab := range w.Tabs {
		count += len(tab.Entries)
	}
	return count
}

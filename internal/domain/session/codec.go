// Package session converts live navigation history to and from the persisted
// session format.
//
// Three generations of that format exist on disk. Only the current one is ever
// written:
//
//	[ {"entries": [{"url": "...", "title": "..."}, ...], "current_index": 0}, ... ]
//
// Older data is accepted by DecodeTab and DecodeWindow and converted to the
// canonical entity types at this boundary; legacy shapes never leave the package.
package session

import (
	"encoding/json"

	"github.com/bnema/browse/internal/domain/entity"
)

// History is the read side of a live navigation history.
type History interface {
	GetHistoryEntries() []entity.HistoryEntry
	GetCurrentIndex() int
}

// Encode captures a live history into a snapshot without mutating it.
// An out-of-range live index is clamped into the entry list.
func Encode(h History) entity.SessionSnapshot {
	if h == nil {
		return entity.SessionSnapshot{}
	}

	live := h.GetHistoryEntries()
	if len(live) == 0 {
		return entity.SessionSnapshot{Entries: []entity.HistoryEntry{}}
	}

	entries := make([]entity.HistoryEntry, len(live))
	copy(entries, live)

	current := h.GetCurrentIndex()
	switch {
	case current < 0:
		current = 0
	case current >= len(entries):
		current = len(entries) - 1
	}

	return entity.SessionSnapshot{Entries: entries, CurrentIndex: current}
}

// EncodeWindow captures every tab in order. Empty tabs are kept.
func EncodeWindow[H History](tabs []H) entity.WindowSession {
	ws := entity.WindowSession{Tabs: make([]entity.SessionSnapshot, 0, len(tabs))}
	for _, tab := range tabs {
		ws.Tabs = append(ws.Tabs, Encode(tab))
	}
	return ws
}

// EntryDocument is the persisted form of one history entry.
type EntryDocument struct {
	URL   string `json:"url" jsonschema:"required,minLength=1,description=Location of the entry; stored verbatim"`
	Title string `json:"title" jsonschema:"description=Page title at the time of the visit"`
}

// TabDocument is the persisted form of one tab.
type TabDocument struct {
	Entries      []EntryDocument `json:"entries" jsonschema:"required,description=Back/forward list, oldest first"`
	CurrentIndex *int            `json:"current_index,omitempty" jsonschema:"minimum=0,description=Index of the displayed entry; absent for an empty tab"`
}

// WindowDocument is the persisted form of a window: one element per tab, left to right.
type WindowDocument []TabDocument

// ToDocument converts a snapshot to its current-generation document.
func ToDocument(s entity.SessionSnapshot) TabDocument {
	doc := TabDocument{Entries: make([]EntryDocument, 0, len(s.Entries))}
	for _, e := range s.Entries {
		doc.Entries = append(doc.Entries, EntryDocument{URL: e.URL, Title: e.Title})
	}
	if s.HasCurrent() {
		idx := s.CurrentIndex
		doc.CurrentIndex = &idx
	}
	return doc
}

// MarshalTab serializes a snapshot in the current shape.
func MarshalTab(s entity.SessionSnapshot) ([]byte, error) {
	return json.Marshal(ToDocument(s))
}

// MarshalWindow serializes a window session in the current shape.
func MarshalWindow(ws entity.WindowSession) ([]byte, error) {
	doc := make(WindowDocument, 0, len(ws.Tabs))
	for _, tab := range ws.Tabs {
		doc = append(doc, ToDocument(tab))
	}
	return json.Marshal(doc)
}

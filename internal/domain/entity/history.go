package entity

import "errors"

// ErrEmptyURL is returned when a navigation entry has no URL.
var ErrEmptyURL = errors.New("history entry url is empty")

// HistoryEntry is one item of a tab's back/forward list.
// The URL is kept verbatim: schemes the engine does not know are still stored.
type HistoryEntry struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// NewHistoryEntry creates a navigation entry, rejecting an empty URL.
func NewHistoryEntry(url, title string) (HistoryEntry, error) {
	if url == "" {
		return HistoryEntry{}, ErrEmptyURL
	}
	return HistoryEntry{URL: url, Title: title}, nil
}

package session

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bnema/browse/internal/domain/entity"
)

// shape is the structural kind of a persisted value.
type shape int

const (
	shapeEmpty shape = iota // missing, null or ""
	shapeObject
	shapeArray
	shapeOther
)

func detectShape(raw []byte) shape {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return shapeEmpty
	}
	switch trimmed[0] {
	case '{':
		return shapeObject
	case '[':
		return shapeArray
	case 'n':
		if bytes.Equal(trimmed, []byte("null")) {
			return shapeEmpty
		}
	case '"':
		// The oldest writer stored '' for a tab without history.
		if bytes.Equal(trimmed, []byte(`""`)) {
			return shapeEmpty
		}
	}
	return shapeOther
}

// DecodeTab decodes one tab's persisted history in any known generation:
//
//   - {"entries": [...], "current_index": n}  current; missing index means last entry
//   - [{"url": ..., "title": ...}, ...]       bare list; current is the last entry
//   - {"url": ..., "title": ...}              single entry
//   - null or ""                              empty history
func DecodeTab(raw json.RawMessage) (entity.SessionSnapshot, error) {
	switch detectShape(raw) {
	case shapeEmpty:
		return entity.SessionSnapshot{Entries: []entity.HistoryEntry{}}, nil
	case shapeArray:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return entity.SessionSnapshot{}, &DecodeError{Entry: -1, Err: err}
		}
		return decodeEntries(items, nil)
	case shapeObject:
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return entity.SessionSnapshot{}, &DecodeError{Entry: -1, Err: err}
		}
		if entries, ok := fields["entries"]; ok {
			return decodeCurrent(entries, fields["current_index"])
		}
		entry, err := decodeEntry(0, fields)
		if err != nil {
			return entity.SessionSnapshot{}, err
		}
		return entity.SessionSnapshot{Entries: []entity.HistoryEntry{entry}}, nil
	default:
		return entity.SessionSnapshot{}, &DecodeError{Entry: -1, Err: ErrUnrecognizedShape}
	}
}

func decodeCurrent(rawEntries, rawIndex json.RawMessage) (entity.SessionSnapshot, error) {
	var items []json.RawMessage
	if detectShape(rawEntries) != shapeEmpty {
		if detectShape(rawEntries) != shapeArray {
			return entity.SessionSnapshot{}, &DecodeError{Entry: -1, Err: fmt.Errorf("%w: entries is not a list", ErrUnrecognizedShape)}
		}
		if err := json.Unmarshal(rawEntries, &items); err != nil {
			return entity.SessionSnapshot{}, &DecodeError{Entry: -1, Err: err}
		}
	}

	var index *int
	if detectShape(rawIndex) != shapeEmpty {
		var n int
		if err := json.Unmarshal(rawIndex, &n); err != nil {
			return entity.SessionSnapshot{}, &DecodeError{Entry: -1, Err: fmt.Errorf("current_index: %w", err)}
		}
		index = &n
	}

	return decodeEntries(items, index)
}

func decodeEntries(items []json.RawMessage, index *int) (entity.SessionSnapshot, error) {
	entries := make([]entity.HistoryEntry, 0, len(items))
	for i, item := range items {
		if detectShape(item) != shapeObject {
			return entity.SessionSnapshot{}, &DecodeError{Entry: i, Err: fmt.Errorf("%w: entry is not an object", ErrMissingURL)}
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return entity.SessionSnapshot{}, &DecodeError{Entry: i, Err: err}
		}
		entry, err := decodeEntry(i, fields)
		if err != nil {
			return entity.SessionSnapshot{}, err
		}
		entries = append(entries, entry)
	}

	snap := entity.SessionSnapshot{Entries: entries}
	if len(entries) == 0 {
		return snap, nil
	}

	snap.CurrentIndex = len(entries) - 1
	if index != nil {
		snap.CurrentIndex = *index
	}
	if err := snap.Validate(); err != nil {
		return entity.SessionSnapshot{}, &DecodeError{Entry: -1, Err: err}
	}
	return snap, nil
}

func decodeEntry(pos int, fields map[string]json.RawMessage) (entity.HistoryEntry, error) {
	rawURL, ok := fields["url"]
	if !ok {
		return entity.HistoryEntry{}, &DecodeError{Entry: pos, Err: ErrMissingURL}
	}
	var url string
	if err := json.Unmarshal(rawURL, &url); err != nil || url == "" {
		return entity.HistoryEntry{}, &DecodeError{Entry: pos, Err: ErrMissingURL}
	}

	// Titles were never validated by any writer; anything but a string reads as untitled.
	var title string
	if rawTitle, ok := fields["title"]; ok {
		if err := json.Unmarshal(rawTitle, &title); err != nil {
			title = ""
		}
	}

	return entity.HistoryEntry{URL: url, Title: title}, nil
}

// DecodedTab is one tab of a decoded window. Err is set when that tab's data
// was malformed; Snapshot is then empty.
type DecodedTab struct {
	Snapshot entity.SessionSnapshot
	Err      error
}

// DecodeWindow decodes a persisted window session.
//
// The window-level shape is resolved once, here: a single object is one tab; a
// list whose first element carries a "url" key is one tab stored without a tab
// wrapper; any other list holds one element per tab. Tabs are decoded
// independently so that one malformed tab does not affect the others. Only data
// that is not JSON at all, or is a scalar, returns an error.
func DecodeWindow(data []byte) ([]DecodedTab, error) {
	switch detectShape(data) {
	case shapeEmpty:
		return []DecodedTab{}, nil
	case shapeObject:
		if !json.Valid(data) {
			return nil, &DecodeError{Entry: -1, Err: fmt.Errorf("%w: invalid json", ErrUnrecognizedShape)}
		}
		return []DecodedTab{decodeTabResult(data)}, nil
	case shapeArray:
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, &DecodeError{Entry: -1, Err: err}
		}
		if len(items) == 0 {
			return []DecodedTab{}, nil
		}
		if isFlatEntry(items[0]) {
			return []DecodedTab{decodeTabResult(data)}, nil
		}
		tabs := make([]DecodedTab, 0, len(items))
		for _, item := range items {
			tabs = append(tabs, decodeTabResult(item))
		}
		return tabs, nil
	default:
		return nil, &DecodeError{Entry: -1, Err: ErrUnrecognizedShape}
	}
}

func decodeTabResult(raw json.RawMessage) DecodedTab {
	snap, err := DecodeTab(raw)
	return DecodedTab{Snapshot: snap, Err: err}
}

// isFlatEntry reports whether raw is a history entry rather than a tab.
func isFlatEntry(raw json.RawMessage) bool {
	if detectShape(raw) != shapeObject {
		return false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	_, hasURL := fields["url"]
	_, hasEntries := fields["entries"]
	return hasURL && !hasEntries
}

// Window collects the successfully decoded tabs of a window. Malformed tabs
// are returned as empty snapshots so the tab count is preserved.
func Window(tabs []DecodedTab) entity.WindowSession {
	ws := entity.WindowSession{Tabs: make([]entity.SessionSnapshot, 0, len(tabs))}
	for _, tab := range tabs {
		if tab.Err != nil {
			ws.Tabs = append(ws.Tabs, entity.SessionSnapshot{Entries: []entity.HistoryEntry{}})
			continue
		}
		ws.Tabs = append(ws.Tabs, tab.Snapshot)
	}
	return ws
}

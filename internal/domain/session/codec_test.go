package session_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/session"
)

type fakeHistory struct {
	entries []entity.HistoryEntry
	current int
}

func (f *fakeHistory) GetHistoryEntries() []entity.HistoryEntry { return f.entries }
func (f *fakeHistory) GetCurrentIndex() int                      { return f.current }

func entries(urls ...string) []entity.HistoryEntry {
	out := make([]entity.HistoryEntry, 0, len(urls))
	for _, u := range urls {
		out = append(out, entity.HistoryEntry{URL: u, Title: "title of " + u})
	}
	return out
}

func TestEncode_CopiesHistory(t *testing.T) {
	h := &fakeHistory{entries: entries("https://a", "https://b", "https://c"), current: 1}

	snap := session.Encode(h)

	assert.Equal(t, h.entries, snap.Entries)
	assert.Equal(t, 1, snap.CurrentIndex)

	snap.Entries[0].URL = "mutated"
	assert.Equal(t, "https://a", h.entries[0].URL, "encode must not alias the live history")
}

func TestEncode_EmptyHistory(t *testing.T) {
	snap := session.Encode(&fakeHistory{})

	assert.True(t, snap.IsEmpty())
	assert.False(t, snap.HasCurrent())
}

func TestEncode_ClampsLiveIndex(t *testing.T) {
	snap := session.Encode(&fakeHistory{entries: entries("https://a", "https://b"), current: 7})
	assert.Equal(t, 1, snap.CurrentIndex)
}

func TestMarshalTab_CurrentShape(t *testing.T) {
	snap := entity.SessionSnapshot{
		Entries:      []entity.HistoryEntry{{URL: "https://a", Title: "A"}, {URL: "https://b", Title: "B"}},
		CurrentIndex: 0,
	}

	data, err := session.MarshalTab(snap)
	require.NoError(t, err)

	assert.JSONEq(t, `{"entries":[{"url":"https://a","title":"A"},{"url":"https://b","title":"B"}],"current_index":0}`, string(data))
}

func TestMarshalTab_EmptyTab(t *testing.T) {
	data, err := session.MarshalTab(entity.SessionSnapshot{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[]}`, string(data))
}

func TestRoundTrip_Tab(t *testing.T) {
	cases := []entity.SessionSnapshot{
		{Entries: []entity.HistoryEntry{}},
		{Entries: entries("https://a"), CurrentIndex: 0},
		{Entries: entries("https://a", "https://b", "https://c"), CurrentIndex: 0},
		{Entries: entries("https://a", "https://b", "https://c"), CurrentIndex: 2},
		{Entries: []entity.HistoryEntry{{URL: "gopher://x", Title: ""}, {URL: "about:blank", Title: "ünïcødé"}}, CurrentIndex: 1},
	}

	for _, want := range cases {
		data, err := session.MarshalTab(want)
		require.NoError(t, err)

		got, err := session.DecodeTab(data)
		require.NoError(t, err)
		assert.Equal(t, want.Entries, got.Entries)
		if want.HasCurrent() {
			assert.Equal(t, want.CurrentIndex, got.CurrentIndex)
		}
	}
}

func TestRoundTrip_Window(t *testing.T) {
	want := entity.WindowSession{Tabs: []entity.SessionSnapshot{
		{Entries: entries("https://a", "https://b"), CurrentIndex: 1},
		{Entries: []entity.HistoryEntry{}},
		{Entries: entries("https://c"), CurrentIndex: 0},
	}}

	data, err := session.MarshalWindow(want)
	require.NoError(t, err)

	tabs, err := session.DecodeWindow(data)
	require.NoError(t, err)
	require.Len(t, tabs, 3)
	for i, tab := range tabs {
		require.NoError(t, tab.Err)
		assert.Equal(t, want.Tabs[i].Entries, tab.Snapshot.Entries)
	}
	assert.Equal(t, 1, tabs[0].Snapshot.CurrentIndex)
	assert.Equal(t, want, session.Window(tabs))
}

func TestMarshalWindow_EmptyWindow(t *testing.T) {
	data, err := session.MarshalWindow(entity.WindowSession{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestSchema_DescribesCurrentShape(t *testing.T) {
	s := session.Schema()
	require.NotNil(t, s)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entries"`)
	assert.Contains(t, string(data), `"current_index"`)
	assert.Contains(t, string(data), `"array"`)
}

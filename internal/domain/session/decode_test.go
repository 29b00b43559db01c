package session_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/session"
)

func TestDecodeTab_Generations(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantURLs    []string
		wantCurrent int
	}{
		{
			name:        "current shape",
			raw:         `{"entries":[{"url":"a","title":"A"},{"url":"b","title":"B"}],"current_index":0}`,
			wantURLs:    []string{"a", "b"},
			wantCurrent: 0,
		},
		{
			name:        "current shape without index selects last",
			raw:         `{"entries":[{"url":"a","title":"A"},{"url":"b","title":"B"}]}`,
			wantURLs:    []string{"a", "b"},
			wantCurrent: 1,
		},
		{
			name:        "bare list selects last",
			raw:         `[{"url":"a","title":"A"},{"url":"b","title":"B"},{"url":"c","title":"C"}]`,
			wantURLs:    []string{"a", "b", "c"},
			wantCurrent: 2,
		},
		{
			name:        "single entry",
			raw:         `{"url":"a","title":"A"}`,
			wantURLs:    []string{"a"},
			wantCurrent: 0,
		},
		{
			name:     "empty string",
			raw:      `""`,
			wantURLs: []string{},
		},
		{
			name:     "null",
			raw:      `null`,
			wantURLs: []string{},
		},
		{
			name:     "empty current shape",
			raw:      `{"entries":[]}`,
			wantURLs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := session.DecodeTab([]byte(tt.raw))
			require.NoError(t, err)

			urls := make([]string, 0, len(snap.Entries))
			for _, e := range snap.Entries {
				urls = append(urls, e.URL)
			}
			assert.Equal(t, tt.wantURLs, urls)
			if len(tt.wantURLs) > 0 {
				assert.Equal(t, tt.wantCurrent, snap.CurrentIndex)
			} else {
				assert.False(t, snap.HasCurrent())
			}
		})
	}
}

func TestDecodeTab_MissingTitleIsEmpty(t *testing.T) {
	snap, err := session.DecodeTab([]byte(`[{"url":"a"},{"url":"b","title":null}]`))
	require.NoError(t, err)
	assert.Equal(t, []entity.HistoryEntry{{URL: "a"}, {URL: "b"}}, snap.Entries)
}

func TestDecodeTab_NonStringTitleIsEmpty(t *testing.T) {
	snap, err := session.DecodeTab([]byte(`{"entries":[{"url":"a","title":42},{"url":"b","title":["x"]},{"url":"c","title":"C"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []entity.HistoryEntry{{URL: "a"}, {URL: "b"}, {URL: "c", Title: "C"}}, snap.Entries)
	assert.Equal(t, 2, snap.CurrentIndex)
}

func TestDecodeTab_MissingURLNamesEntry(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantEntry int
	}{
		{"current shape", `{"entries":[{"url":"a"},{"title":"no url"}],"current_index":0}`, 1},
		{"bare list", `[{"url":"a"},{"url":"b"},{"title":"x"}]`, 2},
		{"single entry", `{"title":"x"}`, 0},
		{"empty url", `[{"url":""}]`, 0},
		{"non-string url", `[{"url":"a"},{"url":12}]`, 1},
		{"scalar entry", `[{"url":"a"},"b"]`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := session.DecodeTab([]byte(tt.raw))
			require.Error(t, err)

			var decodeErr *session.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tt.wantEntry, decodeErr.Entry)
			assert.ErrorIs(t, err, session.ErrMissingURL)
		})
	}
}

func TestDecodeTab_CurrentIndexOutOfRange(t *testing.T) {
	for _, raw := range []string{
		`{"entries":[{"url":"a"}],"current_index":1}`,
		`{"entries":[{"url":"a"}],"current_index":-1}`,
	} {
		_, err := session.DecodeTab([]byte(raw))
		require.Error(t, err)

		var decodeErr *session.DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, -1, decodeErr.Entry)
		assert.ErrorIs(t, err, entity.ErrCurrentIndexOutOfRange)
	}
}

func TestDecodeTab_UnrecognizedShape(t *testing.T) {
	for _, raw := range []string{`42`, `"https://a"`, `true`, `{"entries":"a"}`} {
		_, err := session.DecodeTab([]byte(raw))
		assert.ErrorIs(t, err, session.ErrUnrecognizedShape, raw)
	}
}

func TestDecodeWindow_TopLevelShapes(t *testing.T) {
	t.Run("list of tabs", func(t *testing.T) {
		tabs, err := session.DecodeWindow([]byte(`[{"entries":[{"url":"a"}],"current_index":0},[{"url":"b"}],""]`))
		require.NoError(t, err)
		require.Len(t, tabs, 3)
		assert.Equal(t, "a", tabs[0].Snapshot.Entries[0].URL)
		assert.Equal(t, "b", tabs[1].Snapshot.Entries[0].URL)
		assert.True(t, tabs[2].Snapshot.IsEmpty())
	})

	t.Run("flat entry list is one tab", func(t *testing.T) {
		tabs, err := session.DecodeWindow([]byte(`[{"url":"a","title":"A"},{"url":"b","title":"B"}]`))
		require.NoError(t, err)
		require.Len(t, tabs, 1)
		require.NoError(t, tabs[0].Err)
		assert.Len(t, tabs[0].Snapshot.Entries, 2)
		assert.Equal(t, 1, tabs[0].Snapshot.CurrentIndex)
	})

	t.Run("single object is one tab", func(t *testing.T) {
		tabs, err := session.DecodeWindow([]byte(`{"entries":[{"url":"a"},{"url":"b"}],"current_index":0}`))
		require.NoError(t, err)
		require.Len(t, tabs, 1)
		assert.Equal(t, 0, tabs[0].Snapshot.CurrentIndex)
	})

	t.Run("empty inputs yield no tabs", func(t *testing.T) {
		for _, raw := range []string{``, `null`, `[]`, `""`} {
			tabs, err := session.DecodeWindow([]byte(raw))
			require.NoError(t, err, raw)
			assert.Empty(t, tabs, raw)
		}
	})

	t.Run("invalid data", func(t *testing.T) {
		_, err := session.DecodeWindow([]byte(`[{"entries":`))
		require.Error(t, err)

		_, err = session.DecodeWindow([]byte(`7`))
		assert.ErrorIs(t, err, session.ErrUnrecognizedShape)
	})
}

func TestDecodeWindow_MalformedTabIsIsolated(t *testing.T) {
	tabs, err := session.DecodeWindow([]byte(`[
		{"entries":[{"url":"a"}]},
		{"entries":[{"title":"broken"}]},
		{"entries":[{"url":"c"}]}
	]`))
	require.NoError(t, err)
	require.Len(t, tabs, 3)

	assert.NoError(t, tabs[0].Err)
	assert.Error(t, tabs[1].Err)
	assert.NoError(t, tabs[2].Err)

	ws := session.Window(tabs)
	require.Len(t, ws.Tabs, 3)
	assert.True(t, ws.Tabs[1].IsEmpty())
	assert.Equal(t, "c", ws.Tabs[2].Entries[0].URL)
}

func TestDecodeError_Message(t *testing.T) {
	err := &session.DecodeError{Entry: 3, Err: session.ErrMissingURL}
	assert.Equal(t, "decode session: entry 3: missing url", err.Error())

	err = &session.DecodeError{Entry: -1, Err: session.ErrUnrecognizedShape}
	assert.Equal(t, "decode session: unrecognized session shape", err.Error())
}

package styles

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/application/usecase"
	"github.com/bnema/browse/internal/domain/entity"
)

// A bytes.Buffer is not a terminal, so output carries no escape codes.
func plainTheme() *Theme {
	return NewTheme(&bytes.Buffer{})
}

func TestSessionLine(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	info := entity.SessionInfo{
		SessionID:  "20260501_110000_abcd",
		TabCount:   1,
		EntryCount: 5,
		Titles:     []string{"a", "b", "c", "d", "e"},
		SavedAt:    now.Add(-2 * time.Hour),
		Readable:   true,
	}

	out := plainTheme().SessionLine(info, now)

	assert.Contains(t, out, "20260501_110000_abcd")
	assert.Contains(t, out, "1 tab")
	assert.Contains(t, out, "5 entries")
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "unreadable")
}

func TestSessionDetailMarksCurrent(t *testing.T) {
	ws := entity.WindowSession{Tabs: []entity.SessionSnapshot{
		{Entries: []entity.HistoryEntry{{URL: "https://a.example", Title: "A"}, {URL: "https://b.example"}}, CurrentIndex: 1},
		{},
	}}

	out := plainTheme().SessionDetail(ws)

	assert.Contains(t, out, "Tab 1")
	assert.Contains(t, out, "  A (https://a.example)")
	assert.Contains(t, out, "> https://b.example")
	assert.Contains(t, out, "(empty)")
}

func TestTabFallbacks(t *testing.T) {
	out := plainTheme().TabFallbacks([]usecase.TabFallback{{Tab: 1, Err: errors.New("bad entry")}}, "opened the home page")
	assert.Equal(t, "tab 2 opened the home page: bad entry", out)
}

func TestNoticeAndStatus(t *testing.T) {
	th := plainTheme()

	out := th.Notice(port.Notice{
		Title:   "Download complete",
		Message: "report.pdf",
		Type:    port.NotificationSuccess,
		Actions: []port.NoticeAction{{ID: port.ActionShow, Label: "Show in Journal"}},
	})
	assert.Contains(t, out, "Download complete")
	assert.Contains(t, out, "Show in Journal")

	assert.Contains(t, th.DownloadStatus(entity.DownloadRecord{Status: entity.DownloadStarted, ProgressPercent: 42}), "42%")
	assert.Contains(t, th.DownloadStatus(entity.DownloadRecord{Status: entity.DownloadCancelled}), "cancelled")
}

func TestJournalLineShowsSize(t *testing.T) {
	obj := entity.NewJournalObject("obj-1")
	obj.Metadata[entity.MetaTitle] = "report.pdf"
	obj.Metadata[entity.MetaMimeType] = "application/pdf"
	obj.Metadata[entity.MetaSize] = "2048"

	out := plainTheme().JournalLine(obj)
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "2048 bytes")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 entry", plural(1, "entry"))
	assert.Equal(t, "0 entries", plural(0, "entry"))
	assert.Equal(t, "3 tabs", plural(3, "tab"))
}

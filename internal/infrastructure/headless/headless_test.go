package headless_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/infrastructure/headless"
)

func TestSurface_NavigateTruncatesForwardList(t *testing.T) {
	ctx := context.Background()
	s := headless.NewSurface()

	require.NoError(t, s.Navigate(ctx, "https://a.example"))
	require.NoError(t, s.Navigate(ctx, "https://b.example"))
	require.NoError(t, s.Navigate(ctx, "https://c.example"))
	require.NoError(t, s.Back())
	require.NoError(t, s.Back())
	require.ErrorIs(t, s.Back(), headless.ErrNoHistory)

	require.NoError(t, s.Navigate(ctx, "https://d.example"))
	entries := s.GetHistoryEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "https://d.example", entries[1].URL)
	assert.Equal(t, 1, s.GetCurrentIndex())
	assert.ErrorIs(t, s.Forward(), headless.ErrNoHistory)

	assert.ErrorIs(t, s.Navigate(ctx, ""), entity.ErrEmptyURL)
}

func TestSurface_ReplaceHistoryIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := headless.NewSurface()
	require.NoError(t, s.Navigate(ctx, "https://keep.example"))

	err := s.ReplaceHistory(ctx, []entity.HistoryEntry{{URL: "https://x.example"}, {URL: ""}}, 0)
	require.Error(t, err)
	assert.Equal(t, "https://keep.example", s.GetHistoryEntries()[0].URL)

	err = s.ReplaceHistory(ctx, []entity.HistoryEntry{{URL: "https://x.example"}}, 3)
	require.ErrorIs(t, err, entity.ErrCurrentIndexOutOfRange)

	entries := []entity.HistoryEntry{{URL: "https://x.example", Title: "X"}, {URL: "https://y.example"}}
	require.NoError(t, s.ReplaceHistory(ctx, entries, 0))
	entries[0].URL = "mutated"
	assert.Equal(t, "https://x.example", s.GetHistoryEntries()[0].URL)
	assert.Equal(t, 0, s.GetCurrentIndex())
}

func TestWindow_TabsLifecycle(t *testing.T) {
	ctx := context.Background()
	w := headless.NewWindow()

	a, err := w.NewTab(ctx)
	require.NoError(t, err)
	b, err := w.NewTab(ctx)
	require.NoError(t, err)
	assert.Len(t, w.Tabs(), 2)

	require.NoError(t, w.CloseTab(ctx, a))
	tabs := w.Tabs()
	require.Len(t, tabs, 1)
	assert.Same(t, b, tabs[0])

	assert.ErrorIs(t, w.CloseTab(ctx, a), headless.ErrUnknownTab)
}

package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/browse/internal/infrastructure/persistence/sqlite"
)

func TestPlaceRepository_RecordVisitCountsAndKeepsTitle(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPlaceRepository(openTestDB(t))

	p, err := repo.RecordVisit(ctx, "https://go.dev", "The Go Programming Language")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.EqualValues(t, 1, p.VisitCount)
	assert.False(t, p.LastVisited.IsZero())

	p, err = repo.RecordVisit(ctx, "https://go.dev", "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, p.VisitCount)
	assert.Equal(t, "The Go Programming Language", p.Title)
}

func TestPlaceRepository_SearchMatchesAllTermsBookmarksFirst(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPlaceRepository(openTestDB(t))

	for range 3 {
		_, err := repo.RecordVisit(ctx, "https://go.dev/blog", "Go Blog")
		require.NoError(t, err)
	}
	_, err := repo.RecordVisit(ctx, "https://go.dev/doc", "Go documentation")
	require.NoError(t, err)
	_, err = repo.RecordVisit(ctx, "https://example.com", "Example")
	require.NoError(t, err)
	_, err = repo.SetBookmarked(ctx, "https://go.dev/doc", "", true)
	require.NoError(t, err)

	results, err := repo.Search(ctx, "GO dev", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "https://go.dev/doc", results[0].URL)
	assert.True(t, results[0].Bookmarked)
	assert.Equal(t, "https://go.dev/blog", results[1].URL)

	results, err = repo.Search(ctx, "blog documentation", 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = repo.Search(ctx, "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPlaceRepository_SearchEscapesWildcards(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPlaceRepository(openTestDB(t))

	_, err := repo.RecordVisit(ctx, "https://example.com/a", "plain")
	require.NoError(t, err)
	_, err = repo.RecordVisit(ctx, "https://example.com/100%", "percent")
	require.NoError(t, err)

	results, err := repo.Search(ctx, "%", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "percent", results[0].Title)
}

func TestPlaceRepository_BookmarksAndRecent(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPlaceRepository(openTestDB(t))

	// Bookmarking an unvisited URL creates it without counting a visit.
	p, err := repo.SetBookmarked(ctx, "https://b.example", "B", true)
	require.NoError(t, err)
	assert.True(t, p.Bookmarked)
	assert.Zero(t, p.VisitCount)

	_, err = repo.RecordVisit(ctx, "https://a.example", "A")
	require.NoError(t, err)

	recent, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "https://a.example", recent[0].URL)

	bookmarks, err := repo.GetBookmarks(ctx)
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "B", bookmarks[0].Title)

	_, err = repo.SetBookmarked(ctx, "https://b.example", "", false)
	require.NoError(t, err)
	bookmarks, err = repo.GetBookmarks(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

func TestPlaceRepository_Delete(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPlaceRepository(openTestDB(t))

	p, err := repo.RecordVisit(ctx, "https://gone.example", "")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, p.ID))

	got, err := repo.FindByURL(ctx, "https://gone.example")
	require.NoError(t, err)
	assert.Nil(t, got)
}

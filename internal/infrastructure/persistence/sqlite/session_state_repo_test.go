package sqlite_test

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/infrastructure/persistence/sqlite"
)

func TestSessionStateRepository_SaveAndGet(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSessionStateRepository(openTestDB(t))

	saved := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	state := &entity.SessionState{
		SessionID: "20260301_100000_abcd",
		Data:      json.RawMessage(`[{"history":[{"url":"https://a.example","title":"A"}],"current_index":0}]`),
		TabCount:  1,
		SavedAt:   saved,
	}
	require.NoError(t, repo.SaveSnapshot(ctx, state))

	got, err := repo.GetSnapshot(ctx, state.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state.SessionID, got.SessionID)
	assert.JSONEq(t, string(state.Data), string(got.Data))
	assert.Equal(t, 1, got.TabCount)
	assert.True(t, saved.Equal(got.SavedAt))
}

func TestSessionStateRepository_SaveReplaces(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSessionStateRepository(openTestDB(t))

	id := entity.SessionID("s1")
	require.NoError(t, repo.SaveSnapshot(ctx, &entity.SessionState{SessionID: id, Data: json.RawMessage(`[]`), SavedAt: time.Now()}))
	require.NoError(t, repo.SaveSnapshot(ctx, &entity.SessionState{SessionID: id, Data: json.RawMessage(`[{}]`), TabCount: 1, SavedAt: time.Now()}))

	all, err := repo.GetAllSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 1, all[0].TabCount)
	assert.JSONEq(t, `[{}]`, string(all[0].Data))
}

func TestSessionStateRepository_GetMissingReturnsNil(t *testing.T) {
	repo := sqlite.NewSessionStateRepository(openTestDB(t))

	got, err := repo.GetSnapshot(testCtx(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStateRepository_KeepsUnreadableBlobs(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSessionStateRepository(openTestDB(t))

	require.NoError(t, repo.SaveSnapshot(ctx, &entity.SessionState{
		SessionID: "garbled",
		Data:      json.RawMessage(`{not json`),
		SavedAt:   time.Now(),
	}))

	got, err := repo.GetSnapshot(ctx, "garbled")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{not json`, string(got.Data))
}

func TestSessionStateRepository_GetAllNewestFirstAndDelete(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSessionStateRepository(openTestDB(t))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []entity.SessionID{"old", "new", "mid"} {
		offsets := []time.Duration{0, 2 * time.Hour, time.Hour}
		require.NoError(t, repo.SaveSnapshot(ctx, &entity.SessionState{
			SessionID: id,
			Data:      json.RawMessage(`[]`),
			SavedAt:   base.Add(offsets[i]),
		}))
	}

	all, err := repo.GetAllSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, entity.SessionID("new"), all[0].SessionID)
	assert.Equal(t, entity.SessionID("mid"), all[1].SessionID)
	assert.Equal(t, entity.SessionID("old"), all[2].SessionID)

	require.NoError(t, repo.DeleteSnapshot(ctx, "mid"))
	all, err = repo.GetAllSnapshots(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestNewConnection_ReopenKeepsData(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "nested", "browse.db")

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewSessionStateRepository(db).SaveSnapshot(ctx, &entity.SessionState{
		SessionID: "persisted", Data: json.RawMessage(`[]`), SavedAt: time.Now(),
	}))
	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Positive(t, version)
	require.NoError(t, db.Close())

	db, err = sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := sqlite.NewSessionStateRepository(db).GetSnapshot(ctx, "persisted")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

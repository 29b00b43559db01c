package sqlite_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/infrastructure/persistence/sqlite"
)

func newTestJournal(t *testing.T) *sqlite.JournalStore {
	t.Helper()
	store, err := sqlite.NewJournalStore(openTestDB(t), filepath.Join(t.TempDir(), "blobs"))
	require.NoError(t, err)
	return store
}

func TestJournalStore_CreateWriteGet(t *testing.T) {
	ctx := testCtx()
	store := newTestJournal(t)

	obj, err := store.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, obj.ID)

	obj.Metadata[entity.MetaTitle] = "Downloading a.txt from example.com"
	obj.Metadata[entity.MetaProgress] = "0"
	require.NoError(t, store.Write(ctx, obj, port.WriteOptions{}))

	got, err := store.Get(ctx, obj.ID)
	require.NoError(t, err)
	assert.Equal(t, obj.Metadata, got.Metadata)
	assert.Empty(t, got.FilePath)
}

func TestJournalStore_TransferOwnershipMovesPayload(t *testing.T) {
	ctx := testCtx()
	store := newTestJournal(t)

	src := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4"), 0o600))

	obj, err := store.Create(ctx)
	require.NoError(t, err)
	obj.FilePath = src
	require.NoError(t, store.Write(ctx, obj, port.WriteOptions{TransferOwnership: true}))

	assert.NoFileExists(t, src)
	assert.FileExists(t, obj.FilePath)
	assert.Equal(t, ".pdf", filepath.Ext(obj.FilePath))

	// Metadata-only writes keep the stored payload.
	obj.Metadata[entity.MetaKeep] = "0"
	require.NoError(t, store.Write(ctx, obj, port.WriteOptions{TransferOwnership: true}))
	got, err := store.Get(ctx, obj.ID)
	require.NoError(t, err)
	assert.Equal(t, obj.FilePath, got.FilePath)

	stored := obj.FilePath
	require.NoError(t, store.Delete(ctx, obj.ID))
	assert.NoFileExists(t, stored)
}

func TestJournalStore_WriteAfterDeleteFails(t *testing.T) {
	ctx := testCtx()
	store := newTestJournal(t)

	src := filepath.Join(t.TempDir(), "a.bin")
	require.NoError(t, os.WriteFile(src, []byte{1, 2, 3}, 0o600))

	obj, err := store.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, obj.ID))

	obj.FilePath = src
	err = store.Write(ctx, obj, port.WriteOptions{TransferOwnership: true})
	require.ErrorIs(t, err, sqlite.ErrObjectNotFound)
	assert.FileExists(t, src)

	require.ErrorIs(t, store.Delete(ctx, obj.ID), sqlite.ErrObjectNotFound)
}

func TestJournalStore_DeleteNotifiesSubscribers(t *testing.T) {
	ctx := testCtx()
	store := newTestJournal(t)

	obj, err := store.Create(ctx)
	require.NoError(t, err)

	fired := make(chan string, 1)
	store.SubscribeDeleted(obj.ID, func(id string) { fired <- id })

	silent := make(chan string, 1)
	unsubscribe := store.SubscribeDeleted(obj.ID, func(id string) { silent <- id })
	unsubscribe()
	unsubscribe()

	require.NoError(t, store.Delete(ctx, obj.ID))

	select {
	case id := <-fired:
		assert.Equal(t, obj.ID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("delete subscriber was not called")
	}
	select {
	case <-silent:
		t.Fatal("unsubscribed callback was called")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestJournalStore_ListNewestFirst(t *testing.T) {
	ctx := testCtx()
	store := newTestJournal(t)

	first, err := store.Create(ctx)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	second, err := store.Create(ctx)
	require.NoError(t, err)

	objects, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, second.ID, objects[0].ID)
	assert.Equal(t, first.ID, objects[1].ID)
}

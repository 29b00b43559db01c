package port

import (
	"context"

	"github.com/bnema/browse/internal/domain/entity"
)

// WriteOptions control how a journal object is persisted.
type WriteOptions struct {
	// TransferOwnership hands the object's payload file to the store, which
	// moves it into its own storage. The caller must not touch FilePath afterwards.
	TransferOwnership bool
}

// ObjectStore is the persistent journal of downloaded files and their metadata.
type ObjectStore interface {
	// Create allocates a new, empty object.
	Create(ctx context.Context) (*entity.JournalObject, error)

	// Write persists the object's metadata and, with TransferOwnership, its payload.
	Write(ctx context.Context, obj *entity.JournalObject, opts WriteOptions) error

	// Get returns a copy of the stored object.
	Get(ctx context.Context, id string) (*entity.JournalObject, error)

	// Delete removes an object and its payload.
	Delete(ctx context.Context, id string) error

	// SubscribeDeleted calls fn after the object with the given id is deleted by
	// anyone. fn runs on its own goroutine. The returned function unsubscribes.
	SubscribeDeleted(id string, fn func(id string)) (unsubscribe func())
}

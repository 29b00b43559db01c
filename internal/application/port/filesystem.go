package port

import "context"

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	GetSize(ctx context.Context, path string) (int64, error)
	MkdirAll(ctx context.Context, path string) error
	// CreateExclusive creates an empty file and fails with fs.ErrExist when
	// path is already taken.
	CreateExclusive(ctx context.Context, path string) error
	// Remove deletes a single file; a missing file is not an error.
	Remove(ctx context.Context, path string) error
}

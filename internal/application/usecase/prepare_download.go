package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/domain/download"
	"github.com/bnema/browse/internal/logging"
)

// PrepareDownloadInput contains the inputs for choosing a download destination.
type PrepareDownloadInput struct {
	// SuggestedFilename is the name proposed by the transfer engine. It may be
	// empty or contain path components.
	SuggestedFilename string
	SourceURI         string
	// MimeType, when known, supplies an extension for names without one.
	MimeType string
	// Dir is the private instance directory. It is created when missing.
	Dir string
}

// PrepareDownloadOutput contains the resolved download destination.
type PrepareDownloadOutput struct {
	Filename        string
	DestinationPath string
}

// maxReserveAttempts bounds retries when another download takes the chosen
// name between the existence check and the reservation.
const maxReserveAttempts = 10

// PrepareDownloadUseCase picks a safe, unused file name inside the instance
// directory and reserves it.
type PrepareDownloadUseCase struct {
	fs port.FileSystem
}

// NewPrepareDownloadUseCase creates a new PrepareDownloadUseCase.
func NewPrepareDownloadUseCase(fsys port.FileSystem) *PrepareDownloadUseCase {
	return &PrepareDownloadUseCase{fs: fsys}
}

// Execute resolves the file name, creates the directory and reserves the
// destination as an empty file.
func (u *PrepareDownloadUseCase) Execute(ctx context.Context, input PrepareDownloadInput) (*PrepareDownloadOutput, error) {
	if input.Dir == "" {
		return nil, fmt.Errorf("download directory required")
	}
	if err := u.fs.MkdirAll(ctx, input.Dir); err != nil {
		return nil, fmt.Errorf("create download directory: %w", err)
	}

	resolved := input.SuggestedFilename
	if resolved == "" {
		resolved = download.NameFromURI(input.SourceURI)
	}
	name := download.CleanNameForType(resolved, input.MimeType)
	for attempt := 0; attempt < maxReserveAttempts; attempt++ {
		unique := download.UniqueName(input.Dir, name, func(path string) bool {
			exists, err := u.fs.Exists(ctx, path)
			return err == nil && exists
		})
		dest := filepath.Join(input.Dir, unique)

		err := u.fs.CreateExclusive(ctx, dest)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reserve download destination: %w", err)
		}

		logging.FromContext(ctx).Debug().
			Str("suggested", input.SuggestedFilename).
			Str("resolved", unique).
			Str("dest_path", dest).
			Msg("prepared download destination")

		return &PrepareDownloadOutput{Filename: unique, DestinationPath: dest}, nil
	}
	return nil, fmt.Errorf("no free file name for %q in %s", name, input.Dir)
}

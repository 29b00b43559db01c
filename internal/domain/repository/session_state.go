package repository

import (
	"context"

	"github.com/bnema/browse/internal/domain/entity"
)

// SessionStateRepository persists window session blobs.
type SessionStateRepository interface {
	// SaveSnapshot saves or replaces the blob stored for a session.
	SaveSnapshot(ctx context.Context, state *entity.SessionState) error

	// GetSnapshot returns the blob for a session, or nil when none is stored.
	GetSnapshot(ctx context.Context, sessionID entity.SessionID) (*entity.SessionState, error)

	// DeleteSnapshot removes a session's blob.
	DeleteSnapshot(ctx context.Context, sessionID entity.SessionID) error

	// GetAllSnapshots returns every stored blob, most recently saved first.
	GetAllSnapshots(ctx context.Context) ([]*entity.SessionState, error)
}

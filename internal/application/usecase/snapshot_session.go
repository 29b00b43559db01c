package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/repository"
	"github.com/bnema/browse/internal/domain/session"
	"github.com/bnema/browse/internal/logging"
)

// ErrSessionIDRequired is returned when an operation needs a session ID.
var ErrSessionIDRequired = errors.New("session id required")

// SnapshotSessionUseCase persists the tabs of a window.
type SnapshotSessionUseCase struct {
	stateRepo repository.SessionStateRepository
	store     *TabSessionStore
	now       func() time.Time
}

// NewSnapshotSessionUseCase creates a new SnapshotSessionUseCase.
func NewSnapshotSessionUseCase(stateRepo repository.SessionStateRepository, store *TabSessionStore) *SnapshotSessionUseCase {
	return &SnapshotSessionUseCase{stateRepo: stateRepo, store: store, now: time.Now}
}

// SnapshotInput contains the parameters for creating a session snapshot.
type SnapshotInput struct {
	SessionID entity.SessionID
	Window    port.BrowserWindow
}

// Execute captures the window and saves it under the session ID.
func (uc *SnapshotSessionUseCase) Execute(ctx context.Context, input SnapshotInput) (*entity.SessionState, error) {
	log := logging.FromContext(ctx)

	if input.SessionID == "" {
		return nil, ErrSessionIDRequired
	}
	if input.Window == nil {
		return nil, fmt.Errorf("window required")
	}

	ws := uc.store.SaveWindow(ctx, input.Window)
	data, err := session.MarshalWindow(ws)
	if err != nil {
		return nil, fmt.Errorf("encode window session: %w", err)
	}

	state := &entity.SessionState{
		SessionID: input.SessionID,
		Data:      data,
		TabCount:  len(ws.Tabs),
		SavedAt:   uc.now(),
	}

	log.Debug().
		Str("session_id", string(input.SessionID)).
		Int("tab_count", state.TabCount).
		Int("entry_count", ws.CountEntries()).
		Msg("creating session snapshot")

	if err := uc.stateRepo.SaveSnapshot(ctx, state); err != nil {
		return nil, fmt.Errorf("save session snapshot: %w", err)
	}

	return state, nil
}

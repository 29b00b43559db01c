package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/repository"
	"github.com/bnema/browse/internal/logging"
)

// ErrSessionNotFound is returned when a session state cannot be found.
var ErrSessionNotFound = errors.New("session not found")

// RestoreSessionUseCase rebuilds a window from a stored snapshot.
type RestoreSessionUseCase struct {
	stateRepo repository.SessionStateRepository
	store     *TabSessionStore
}

// NewRestoreSessionUseCase creates a new RestoreSessionUseCase.
func NewRestoreSessionUseCase(stateRepo repository.SessionStateRepository, store *TabSessionStore) *RestoreSessionUseCase {
	return &RestoreSessionUseCase{stateRepo: stateRepo, store: store}
}

// RestoreInput contains the parameters for restoring a session.
// An empty SessionID restores the most recently saved session.
type RestoreInput struct {
	SessionID entity.SessionID
	Window    port.BrowserWindow
}

// RestoreOutput describes what was restored.
type RestoreOutput struct {
	State  *entity.SessionState
	Report *RestoreReport
}

// Execute loads the snapshot and applies it to the window.
func (uc *RestoreSessionUseCase) Execute(ctx context.Context, input RestoreInput) (*RestoreOutput, error) {
	log := logging.FromContext(ctx)

	if input.Window == nil {
		return nil, fmt.Errorf("window required")
	}

	state, err := uc.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("session_id", string(state.SessionID)).
		Int("tab_count", state.TabCount).
		Msg("restoring session state")

	report, err := uc.store.RestoreRaw(ctx, input.Window, state.Data)
	if err != nil {
		return nil, fmt.Errorf("restore window: %w", err)
	}

	return &RestoreOutput{State: state, Report: report}, nil
}

func (uc *RestoreSessionUseCase) load(ctx context.Context, id entity.SessionID) (*entity.SessionState, error) {
	if id != "" {
		state, err := uc.stateRepo.GetSnapshot(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get session snapshot: %w", err)
		}
		if state == nil {
			return nil, ErrSessionNotFound
		}
		return state, nil
	}

	states, err := uc.stateRepo.GetAllSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session snapshots: %w", err)
	}
	if len(states) == 0 {
		return nil, ErrSessionNotFound
	}
	return states[0], nil
}

// DeleteSnapshot removes a session's snapshot.
func (uc *RestoreSessionUseCase) DeleteSnapshot(ctx context.Context, sessionID entity.SessionID) error {
	if sessionID == "" {
		return ErrSessionIDRequired
	}
	state, err := uc.stateRepo.GetSnapshot(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session snapshot: %w", err)
	}
	if state == nil {
		return ErrSessionNotFound
	}
	return uc.stateRepo.DeleteSnapshot(ctx, sessionID)
}

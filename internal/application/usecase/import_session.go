package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/repository"
	"github.com/bnema/browse/internal/domain/session"
	"github.com/bnema/browse/internal/logging"
)

// NormalizeSession decodes window data of any generation. Malformed tabs are
// kept as empty tabs and reported.
func NormalizeSession(data []byte) (entity.WindowSession, []TabFallback, error) {
	tabs, err := session.DecodeWindow(data)
	if err != nil {
		return entity.WindowSession{}, nil, err
	}

	var malformed []TabFallback
	for i, tab := range tabs {
		if tab.Err != nil {
			malformed = append(malformed, TabFallback{Tab: i, Err: tab.Err})
		}
	}
	return session.Window(tabs), malformed, nil
}

// ImportSessionUseCase stores window data from an external file in the
// current format.
type ImportSessionUseCase struct {
	stateRepo repository.SessionStateRepository
	now       func() time.Time
}

// NewImportSessionUseCase creates a new ImportSessionUseCase.
func NewImportSessionUseCase(stateRepo repository.SessionStateRepository) *ImportSessionUseCase {
	return &ImportSessionUseCase{stateRepo: stateRepo, now: time.Now}
}

// ImportInput contains the data to import. An empty SessionID gets a fresh one.
type ImportInput struct {
	SessionID entity.SessionID
	Data      []byte
}

// ImportOutput describes the stored session.
type ImportOutput struct {
	State     *entity.SessionState
	Entries   int
	Malformed []TabFallback
}

// Execute normalizes and stores the data.
func (uc *ImportSessionUseCase) Execute(ctx context.Context, input ImportInput) (*ImportOutput, error) {
	log := logging.FromContext(ctx)

	ws, malformed, err := NormalizeSession(input.Data)
	if err != nil {
		return nil, fmt.Errorf("decode imported session: %w", err)
	}

	data, err := session.MarshalWindow(ws)
	if err != nil {
		return nil, fmt.Errorf("encode window session: %w", err)
	}

	now := uc.now()
	id := input.SessionID
	if id == "" {
		id = entity.NewSessionID(now)
	}

	state := &entity.SessionState{
		SessionID: id,
		Data:      data,
		TabCount:  len(ws.Tabs),
		SavedAt:   now,
	}
	if err := uc.stateRepo.SaveSnapshot(ctx, state); err != nil {
		return nil, fmt.Errorf("save session snapshot: %w", err)
	}

	for _, m := range malformed {
		log.Warn().Err(m.Err).Int("tab", m.Tab).Msg("imported tab was malformed and is stored empty")
	}
	log.Info().
		Str("session_id", string(id)).
		Int("tab_count", state.TabCount).
		Msg("session imported")

	return &ImportOutput{State: state, Entries: ws.CountEntries(), Malformed: malformed}, nil
}

// ExportSession returns a stored session in the current format, whatever
// generation it was saved in.
func ExportSession(ctx context.Context, stateRepo repository.SessionStateRepository, id entity.SessionID) ([]byte, error) {
	if id == "" {
		return nil, ErrSessionIDRequired
	}
	state, err := stateRepo.GetSnapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session snapshot: %w", err)
	}
	if state == nil {
		return nil, ErrSessionNotFound
	}

	ws, malformed, err := NormalizeSession(state.Data)
	if err != nil {
		return nil, fmt.Errorf("decode stored session: %w", err)
	}
	for _, m := range malformed {
		logging.FromContext(ctx).Warn().Err(m.Err).Int("tab", m.Tab).Msg("exporting malformed tab as empty")
	}
	return session.MarshalWindow(ws)
}

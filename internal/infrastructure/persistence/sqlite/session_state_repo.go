package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/repository"
	"github.com/bnema/browse/internal/logging"
)

type sessionStateRepo struct {
	db *sql.DB
}

// NewSessionStateRepository creates a new session state repository.
func NewSessionStateRepository(db *sql.DB) repository.SessionStateRepository {
	return &sessionStateRepo{db: db}
}

const upsertSessionState = `
INSERT INTO session_states (session_id, data, tab_count, saved_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(session_id) DO UPDATE SET
    data = excluded.data,
    tab_count = excluded.tab_count,
    saved_at = excluded.saved_at`

// SaveSnapshot saves or replaces the blob stored for a session.
func (r *sessionStateRepo) SaveSnapshot(ctx context.Context, state *entity.SessionState) error {
	log := logging.FromContext(ctx)
	if state == nil {
		return errors.New("session state cannot be nil")
	}
	if state.SessionID == "" {
		return errors.New("session state has no session id")
	}

	data := state.Data
	if len(data) == 0 {
		data = json.RawMessage("[]")
	}

	log.Debug().
		Str("session_id", string(state.SessionID)).
		Int("tab_count", state.TabCount).
		Int("bytes", len(data)).
		Msg("saving session state snapshot")

	if _, err := r.db.ExecContext(ctx, upsertSessionState,
		string(state.SessionID), string(data), state.TabCount, state.SavedAt.UnixNano(),
	); err != nil {
		return fmt.Errorf("upsert session state: %w", err)
	}
	return nil
}

// GetSnapshot returns the blob for a session, or nil when none is stored.
func (r *sessionStateRepo) GetSnapshot(ctx context.Context, sessionID entity.SessionID) (*entity.SessionState, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT session_id, data, tab_count, saved_at FROM session_states WHERE session_id = ?`,
		string(sessionID))

	state, err := scanSessionState(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session state: %w", err)
	}
	return state, nil
}

// DeleteSnapshot removes a session's blob.
func (r *sessionStateRepo) DeleteSnapshot(ctx context.Context, sessionID entity.SessionID) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("session_id", string(sessionID)).Msg("deleting session state snapshot")

	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_states WHERE session_id = ?`, string(sessionID)); err != nil {
		return fmt.Errorf("delete session state: %w", err)
	}
	return nil
}

// GetAllSnapshots returns every stored blob, most recently saved first.
func (r *sessionStateRepo) GetAllSnapshots(ctx context.Context) ([]*entity.SessionState, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, data, tab_count, saved_at FROM session_states ORDER BY saved_at DESC, session_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list session states: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var states []*entity.SessionState
	for rows.Next() {
		state, err := scanSessionState(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session state: %w", err)
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list session states: %w", err)
	}
	return states, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSessionState(row rowScanner) (*entity.SessionState, error) {
	var (
		id       string
		data     string
		tabCount int
		savedAt  int64
	)
	if err := row.Scan(&id, &data, &tabCount, &savedAt); err != nil {
		return nil, err
	}
	return &entity.SessionState{
		SessionID: entity.SessionID(id),
		Data:      json.RawMessage(data),
		TabCount:  tabCount,
		SavedAt:   time.Unix(0, savedAt),
	}, nil
}

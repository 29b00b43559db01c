package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/repository"
	"github.com/bnema/browse/internal/domain/session"
	"github.com/bnema/browse/internal/logging"
)

// ListSessionsUseCase summarizes stored sessions.
type ListSessionsUseCase struct {
	stateRepo repository.SessionStateRepository
}

// NewListSessionsUseCase creates a new ListSessionsUseCase.
func NewListSessionsUseCase(stateRepo repository.SessionStateRepository) *ListSessionsUseCase {
	return &ListSessionsUseCase{stateRepo: stateRepo}
}

// ListSessionsOutput contains the list of sessions with their info.
type ListSessionsOutput struct {
	Sessions []entity.SessionInfo
}

// Execute returns at most limit sessions, most recently saved first.
func (uc *ListSessionsUseCase) Execute(ctx context.Context, limit int) (*ListSessionsOutput, error) {
	if limit <= 0 {
		limit = 50
	}

	states, err := uc.stateRepo.GetAllSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session snapshots: %w", err)
	}

	sort.SliceStable(states, func(i, j int) bool {
		return states[i].SavedAt.After(states[j].SavedAt)
	})
	if len(states) > limit {
		states = states[:limit]
	}

	result := make([]entity.SessionInfo, 0, len(states))
	for _, state := range states {
		result = append(result, summarize(ctx, state))
	}
	return &ListSessionsOutput{Sessions: result}, nil
}

// GetSessionInfo returns the summary of one session, or nil when unknown.
func (uc *ListSessionsUseCase) GetSessionInfo(ctx context.Context, id entity.SessionID) (*entity.SessionInfo, error) {
	state, err := uc.stateRepo.GetSnapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session snapshot: %w", err)
	}
	if state == nil {
		return nil, nil
	}
	info := summarize(ctx, state)
	return &info, nil
}

func summarize(ctx context.Context, state *entity.SessionState) entity.SessionInfo {
	info := entity.SessionInfo{
		SessionID: state.SessionID,
		TabCount:  state.TabCount,
		SavedAt:   state.SavedAt,
	}

	tabs, err := session.DecodeWindow(state.Data)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("session_id", string(state.SessionID)).Msg("unreadable session snapshot")
		return info
	}

	info.Readable = true
	info.TabCount = len(tabs)
	for _, tab := range tabs {
		info.EntryCount += len(tab.Snapshot.Entries)
		if current, ok := tab.Snapshot.Current(); ok {
			title := current.Title
			if title == "" {
				title = current.URL
			}
			info.Titles = append(info.Titles, title)
		}
	}
	return info
}

const (
	hoursPerDay = 24
	daysPerWeek = 7
)

// GetRelativeTime returns a human-readable relative time string.
func GetRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < hoursPerDay*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < daysPerWeek*hoursPerDay*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/hoursPerDay))
	default:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/hoursPerDay/daysPerWeek))
	}
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/browse/internal/domain/repository"
	"github.com/bnema/browse/internal/logging"
)

// CleanupSessionsUseCase prunes old saved sessions.
type CleanupSessionsUseCase struct {
	stateRepo repository.SessionStateRepository
	now       func() time.Time
}

// NewCleanupSessionsUseCase creates a new CleanupSessionsUseCase.
func NewCleanupSessionsUseCase(stateRepo repository.SessionStateRepository) *CleanupSessionsUseCase {
	return &CleanupSessionsUseCase{stateRepo: stateRepo, now: time.Now}
}

// CleanupSessionsInput contains the cleanup limits.
type CleanupSessionsInput struct {
	// MaxSessions keeps only the newest sessions. 0 disables the limit.
	MaxSessions int
	// MaxAge deletes sessions saved longer ago than this. 0 disables it.
	MaxAge time.Duration
}

// CleanupSessionsOutput contains the cleanup results.
type CleanupSessionsOutput struct {
	DeletedByAge   int
	DeletedByCount int
}

// TotalDeleted is the number of sessions removed.
func (o CleanupSessionsOutput) TotalDeleted() int {
	return o.DeletedByAge + o.DeletedByCount
}

// Execute deletes sessions past MaxAge first, then the oldest ones beyond
// MaxSessions. Individual delete failures are logged and skipped.
func (uc *CleanupSessionsUseCase) Execute(ctx context.Context, input CleanupSessionsInput) (CleanupSessionsOutput, error) {
	log := logging.FromContext(ctx)
	var output CleanupSessionsOutput

	states, err := uc.stateRepo.GetAllSnapshots(ctx)
	if err != nil {
		return output, fmt.Errorf("list session snapshots: %w", err)
	}
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].SavedAt.After(states[j].SavedAt)
	})

	var cutoff time.Time
	if input.MaxAge > 0 {
		cutoff = uc.now().Add(-input.MaxAge)
	}

	kept := 0
	for _, state := range states {
		byAge := !cutoff.IsZero() && state.SavedAt.Before(cutoff)
		byCount := !byAge && input.MaxSessions > 0 && kept >= input.MaxSessions
		if !byAge && !byCount {
			kept++
			continue
		}

		if err := uc.stateRepo.DeleteSnapshot(ctx, state.SessionID); err != nil {
			log.Warn().Err(err).Str("session_id", string(state.SessionID)).Msg("failed to delete old session")
			kept++
			continue
		}
		if byAge {
			output.DeletedByAge++
		} else {
			output.DeletedByCount++
		}
	}

	if output.TotalDeleted() > 0 {
		log.Info().
			Int("total_deleted", output.TotalDeleted()).
			Int("by_age", output.DeletedByAge).
			Int("by_count", output.DeletedByCount).
			Msg("session cleanup completed")
	}

	return output, nil
}

package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/browse/internal/application/usecase"
	"github.com/bnema/browse/internal/domain/entity"
	repomocks "github.com/bnema/browse/internal/domain/repository/mocks"
)

func savedStates(ages ...time.Duration) []*entity.SessionState {
	now := time.Now()
	out := make([]*entity.SessionState, len(ages))
	for i, age := range ages {
		out[i] = &entity.SessionState{
			SessionID: entity.SessionID("s" + string(rune('a'+i))),
			SavedAt:   now.Add(-age),
		}
	}
	return out
}

func TestCleanupSessionsUseCase_AgeThenCount(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionStateRepository(t)

	// sa newest ... sd oldest; sd is past the age limit.
	repo.EXPECT().GetAllSnapshots(ctx).Return(savedStates(time.Hour, 2*time.Hour, 3*time.Hour, 30*24*time.Hour), nil)
	repo.EXPECT().DeleteSnapshot(ctx, entity.SessionID("sc")).Return(nil)
	repo.EXPECT().DeleteSnapshot(ctx, entity.SessionID("sd")).Return(nil)

	uc := usecase.NewCleanupSessionsUseCase(repo)
	out, err := uc.Execute(ctx, usecase.CleanupSessionsInput{MaxSessions: 2, MaxAge: 7 * 24 * time.Hour})

	require.NoError(t, err)
	assert.Equal(t, 1, out.DeletedByAge)
	assert.Equal(t, 1, out.DeletedByCount)
	assert.Equal(t, 2, out.TotalDeleted())
}

func TestCleanupSessionsUseCase_DisabledLimitsDeleteNothing(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionStateRepository(t)
	repo.EXPECT().GetAllSnapshots(ctx).Return(savedStates(time.Hour, 1000*time.Hour), nil)

	out, err := usecase.NewCleanupSessionsUseCase(repo).Execute(ctx, usecase.CleanupSessionsInput{})

	require.NoError(t, err)
	assert.Zero(t, out.TotalDeleted())
}

func TestCleanupSessionsUseCase_DeleteFailureKeepsGoing(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionStateRepository(t)
	repo.EXPECT().GetAllSnapshots(ctx).Return(savedStates(time.Hour, 2*time.Hour, 3*time.Hour), nil)
	repo.EXPECT().DeleteSnapshot(ctx, entity.SessionID("sb")).Return(errors.New("locked"))
	repo.EXPECT().DeleteSnapshot(ctx, entity.SessionID("sc")).Return(nil)

	out, err := usecase.NewCleanupSessionsUseCase(repo).Execute(ctx, usecase.CleanupSessionsInput{MaxSessions: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, out.DeletedByCount)
}

func TestCleanupSessionsUseCase_ListError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionStateRepository(t)
	repo.EXPECT().GetAllSnapshots(ctx).Return(nil, errors.New("db closed"))

	_, err := usecase.NewCleanupSessionsUseCase(repo).Execute(ctx, usecase.CleanupSessionsInput{MaxSessions: 1})
	require.Error(t, err)
}

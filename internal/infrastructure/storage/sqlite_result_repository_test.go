package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bottle-counter/internal/domain/entity"
)

func TestSQLiteResultRepository_SaveFrame(t *testing.T) {
	repo, err := NewSQLiteResultRepository(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	runID, err := repo.BeginRun(ctx, "crate.mp4")
	require.NoError(t, err)

	result := &entity.FrameResult{
		Method: entity.MethodHough,
		Circles: []entity.Circle{
			{X: 100, Y: 120, Radius: 22},
			{X: 200, Y: 130, Radius: 23.5},
		},
	}
	require.NoError(t, repo.SaveFrame(ctx, runID, 1, result))
	require.NoError(t, repo.SaveFrame(ctx, runID, 2, result))

	count, err := repo.CountByRun(ctx, runID)
	require.NoError(t, err)
	require.Equal(t, 4, count)
}

func TestSQLiteResultRepository_EmptyFrameWritesNothing(t *testing.T) {
	repo, err := NewSQLiteResultRepository(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	runID, err := repo.BeginRun(ctx, "crate.mp4")
	require.NoError(t, err)

	require.NoError(t, repo.SaveFrame(ctx, runID, 1, entity.EmptyResult(entity.MethodHough)))

	count, err := repo.CountByRun(ctx, runID)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestSQLiteResultRepository_SeparateRuns(t *testing.T) {
	repo, err := NewSQLiteResultRepository(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	first, err := repo.BeginRun(ctx, "a.mp4")
	require.NoError(t, err)
	second, err := repo.BeginRun(ctx, "b.mp4")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	result := &entity.FrameResult{
		Method:  entity.MethodContour,
		Circles: []entity.Circle{{X: 50, Y: 60, Radius: 18}},
	}
	require.NoError(t, repo.SaveFrame(ctx, first, 1, result))

	count, err := repo.CountByRun(ctx, second)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

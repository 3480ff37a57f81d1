package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"bottle-counter/internal/domain/entity"
	"bottle-counter/internal/infrastructure/storage"
)

func TestUserService_BeginCount(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.BeginCount(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, user.State)
}

func TestUserService_Cancel(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.BeginCount(ctx, 1, 10)
	require.NoError(t, err)

	user, err := svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestUserService_SwitchMethod(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SwitchMethod(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.MethodHough, user.Method)

	user, err = svc.SwitchMethod(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.MethodContour, user.Method)
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u := NewUser(1, 10)
	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, MethodBoth, u.Method)
}

func TestUserNextMethodCycles(t *testing.T) {
	u := NewUser(1, 10)

	require.Equal(t, MethodHough, u.NextMethod())
	require.Equal(t, MethodContour, u.NextMethod())
	require.Equal(t, MethodBoth, u.NextMethod())
	require.Equal(t, MethodHough, u.NextMethod())
}

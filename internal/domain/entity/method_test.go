package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("hough")
	require.NoError(t, err)
	require.Equal(t, MethodHough, m)

	m, err = ParseMethod("contour")
	require.NoError(t, err)
	require.Equal(t, MethodContour, m)

	m, err = ParseMethod("both")
	require.NoError(t, err)
	require.Equal(t, MethodBoth, m)

	_, err = ParseMethod("sobel")
	require.Error(t, err)
}

func TestMethodIndexRoundTrip(t *testing.T) {
	for _, m := range []Method{MethodHough, MethodContour, MethodBoth} {
		require.Equal(t, m, MethodFromIndex(m.Index()))
	}
}

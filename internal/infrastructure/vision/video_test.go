//go:build gocv
// +build gocv

package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"bottle-counter/internal/domain/entity"
)

func TestCountOnMatBothEqualsMaxOfMethods(t *testing.T) {
	centers := []image.Point{{X: 120, Y: 120}, {X: 320, Y: 160}, {X: 500, Y: 320}}
	mat := syntheticCrate(centers, 30)
	defer mat.Close()

	detector := NewGoCVDetector()
	processor := NewVideoProcessor(detector, nil)
	params := entity.DefaultParams()

	hough := detector.houghOnMat(mat, params)
	contour := detector.contourOnMat(mat, params)

	result := processor.CountOnMat(mat, params)

	expected := len(hough)
	if len(contour) > expected {
		expected = len(contour)
	}
	require.Equal(t, expected, result.Count())

	if len(hough) == len(contour) {
		require.Equal(t, entity.MethodHough, result.Method)
	}
}

func TestCountOnMatRespectsMethod(t *testing.T) {
	mat := syntheticCrate([]image.Point{{X: 320, Y: 240}}, 30)
	defer mat.Close()

	processor := NewVideoProcessor(NewGoCVDetector(), nil)

	params := entity.DefaultParams()
	params.Method = entity.MethodContour
	result := processor.CountOnMat(mat, params)
	require.Equal(t, entity.MethodContour, result.Method)

	params.Method = entity.MethodHough
	result = processor.CountOnMat(mat, params)
	require.Equal(t, entity.MethodHough, result.Method)
}

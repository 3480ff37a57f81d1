//go:build gocv
// +build gocv

package vision

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"bottle-counter/internal/domain/entity"
)

// syntheticCrate рисует тёмные залитые круги на белом фоне
func syntheticCrate(centers []image.Point, radius int) gocv.Mat {
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 480, 640, gocv.MatTypeCV8UC3)
	dark := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	for _, c := range centers {
		gocv.Circle(&mat, c, radius, dark, -1)
	}
	return mat
}

func encodePNG(t *testing.T, mat gocv.Mat) []byte {
	t.Helper()
	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	require.NoError(t, err)
	defer buf.Close()
	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data
}

func TestHoughCountsSyntheticCircles(t *testing.T) {
	centers := []image.Point{{X: 120, Y: 120}, {X: 320, Y: 160}, {X: 500, Y: 320}}
	mat := syntheticCrate(centers, 30)
	defer mat.Close()

	detector := NewGoCVDetector()
	circles, err := detector.DetectHough(context.Background(), encodePNG(t, mat), entity.DefaultParams())

	require.NoError(t, err)
	require.Len(t, circles, len(centers))
}

func TestContourCountsSyntheticCircles(t *testing.T) {
	centers := []image.Point{{X: 120, Y: 120}, {X: 320, Y: 160}, {X: 500, Y: 320}}
	mat := syntheticCrate(centers, 30)
	defer mat.Close()

	detector := NewGoCVDetector()
	circles, err := detector.DetectContour(context.Background(), encodePNG(t, mat), entity.DefaultParams())

	require.NoError(t, err)
	require.Len(t, circles, len(centers))
}

func TestContourRejectsOutOfRangeRadius(t *testing.T) {
	// Радиус 100 за пределами [15, 60] — круг отбрасывается
	mat := syntheticCrate([]image.Point{{X: 320, Y: 240}}, 100)
	defer mat.Close()

	detector := NewGoCVDetector()
	circles, err := detector.DetectContour(context.Background(), encodePNG(t, mat), entity.DefaultParams())

	require.NoError(t, err)
	require.Empty(t, circles)
}

func TestBlankFrameYieldsZero(t *testing.T) {
	mat := syntheticCrate(nil, 0)
	defer mat.Close()

	detector := NewGoCVDetector()
	data := encodePNG(t, mat)

	hough, err := detector.DetectHough(context.Background(), data, entity.DefaultParams())
	require.NoError(t, err)
	require.Empty(t, hough)

	contour, err := detector.DetectContour(context.Background(), data, entity.DefaultParams())
	require.NoError(t, err)
	require.Empty(t, contour)
}

func TestUndecodableImageReturnsError(t *testing.T) {
	detector := NewGoCVDetector()

	_, err := detector.DetectHough(context.Background(), []byte("not an image"), entity.DefaultParams())
	require.Error(t, err)

	_, err = detector.DetectContour(context.Background(), []byte{}, entity.DefaultParams())
	require.Error(t, err)
}

func TestAnnotateProducesJPEG(t *testing.T) {
	mat := syntheticCrate([]image.Point{{X: 120, Y: 120}}, 30)
	defer mat.Close()

	detector := NewGoCVDetector()
	result := &entity.FrameResult{
		Method:  entity.MethodHough,
		Circles: []entity.Circle{{X: 120, Y: 120, Radius: 30}},
	}

	annotated, err := detector.Annotate(encodePNG(t, mat), result)
	require.NoError(t, err)
	require.NotEmpty(t, annotated)
	// JPEG начинается с маркера SOI
	require.Equal(t, []byte{0xFF, 0xD8}, annotated[:2])
}

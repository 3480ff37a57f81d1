package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"bottle-counter/internal/domain/entity"
)

// fakeDetector детектор-заглушка с заранее заданными ответами
type fakeDetector struct {
	hough      []entity.Circle
	contour    []entity.Circle
	houghErr   error
	contourErr error
	annotated  []byte
}

func (f *fakeDetector) DetectHough(ctx context.Context, imageData []byte, params entity.Params) ([]entity.Circle, error) {
	return f.hough, f.houghErr
}

func (f *fakeDetector) DetectContour(ctx context.Context, imageData []byte, params entity.Params) ([]entity.Circle, error) {
	return f.contour, f.contourErr
}

func (f *fakeDetector) Annotate(imageData []byte, result *entity.FrameResult) ([]byte, error) {
	return f.annotated, nil
}

func circles(n int) []entity.Circle {
	cs := make([]entity.Circle, n)
	for i := range cs {
		cs[i] = entity.Circle{X: i * 100, Y: i * 100, Radius: 20}
	}
	return cs
}

func TestCountFrameBothPicksLargerCount(t *testing.T) {
	det := &fakeDetector{hough: circles(2), contour: circles(5)}
	svc := NewCountService(nil, det)

	params := entity.DefaultParams()
	result := svc.CountFrame(context.Background(), []byte("frame"), params)

	require.Equal(t, entity.MethodContour, result.Method)
	require.Equal(t, 5, result.Count())
}

func TestCountFrameBothTieGoesToHough(t *testing.T) {
	det := &fakeDetector{hough: circles(3), contour: circles(3)}
	svc := NewCountService(nil, det)

	params := entity.DefaultParams()
	result := svc.CountFrame(context.Background(), []byte("frame"), params)

	require.Equal(t, entity.MethodHough, result.Method)
	require.Equal(t, 3, result.Count())
}

func TestCountFrameRespectsMethod(t *testing.T) {
	det := &fakeDetector{hough: circles(1), contour: circles(4)}
	svc := NewCountService(nil, det)

	params := entity.DefaultParams()
	params.Method = entity.MethodHough
	result := svc.CountFrame(context.Background(), []byte("frame"), params)
	require.Equal(t, entity.MethodHough, result.Method)
	require.Equal(t, 1, result.Count())

	params.Method = entity.MethodContour
	result = svc.CountFrame(context.Background(), []byte("frame"), params)
	require.Equal(t, entity.MethodContour, result.Method)
	require.Equal(t, 4, result.Count())
}

func TestCountFrameDetectorErrorYieldsZero(t *testing.T) {
	det := &fakeDetector{
		houghErr:   errors.New("failed to decode image"),
		contourErr: errors.New("failed to decode image"),
	}
	svc := NewCountService(nil, det)

	params := entity.DefaultParams()
	result := svc.CountFrame(context.Background(), []byte("not an image"), params)

	require.Equal(t, 0, result.Count())
	require.NotNil(t, result.Circles)
	require.Empty(t, result.Circles)
}

func TestCountFrameSingleMethodErrorYieldsZero(t *testing.T) {
	det := &fakeDetector{houghErr: errors.New("boom"), contour: circles(2)}
	svc := NewCountService(nil, det)

	params := entity.DefaultParams()
	params.Method = entity.MethodHough
	result := svc.CountFrame(context.Background(), []byte("frame"), params)

	require.Equal(t, 0, result.Count())
	require.Empty(t, result.Circles)
}

func TestProcessReturnsAnnotatedFrame(t *testing.T) {
	det := &fakeDetector{hough: circles(2), annotated: []byte("jpeg")}
	svc := NewCountService(nil, det)

	params := entity.DefaultParams()
	params.Method = entity.MethodHough
	out, err := svc.Process(context.Background(), []byte("frame"), params)

	require.NoError(t, err)
	require.Equal(t, 2, out.Result.Count())
	require.Equal(t, []byte("jpeg"), out.Annotated)
}

func TestProcessWithoutDetector(t *testing.T) {
	svc := NewCountService(nil, nil)

	_, err := svc.Process(context.Background(), []byte("frame"), entity.DefaultParams())
	require.Error(t, err)
}

//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"bottle-counter/internal/domain/entity"
	"bottle-counter/internal/domain/port"
)

var errNoGoCV = errors.New("gocv build tag is not enabled")

type GoCVDetector struct {
	BlurKernel     int
	BlurSigma      float64
	MinContourArea float64
	MinCircularity float64
	ThresholdValue float32
}

// NewGoCVDetector создаёт детектор-заглушку (без OpenCV).
func NewGoCVDetector() *GoCVDetector {
	return &GoCVDetector{
		BlurKernel:     9,
		BlurSigma:      2,
		MinContourArea: 500,
		MinCircularity: 0.5,
		ThresholdValue: 50,
	}
}

// DetectHough возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDetector) DetectHough(ctx context.Context, imageData []byte, params entity.Params) ([]entity.Circle, error) {
	return nil, errNoGoCV
}

// DetectContour возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDetector) DetectContour(ctx context.Context, imageData []byte, params entity.Params) ([]entity.Circle, error) {
	return nil, errNoGoCV
}

// Annotate возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDetector) Annotate(imageData []byte, result *entity.FrameResult) ([]byte, error) {
	return nil, errNoGoCV
}

type VideoProcessor struct {
	detector *GoCVDetector
	results  port.ResultRepository
}

// NewVideoProcessor создаёт обработчик-заглушку (без OpenCV).
func NewVideoProcessor(detector *GoCVDetector, results port.ResultRepository) *VideoProcessor {
	return &VideoProcessor{detector: detector, results: results}
}

// Process возвращает ошибку, если сборка без тега gocv.
func (p *VideoProcessor) Process(ctx context.Context, source interface{}, params entity.Params) error {
	return errNoGoCV
}

// SaveResults возвращает ошибку, если сборка без тега gocv.
func (p *VideoProcessor) SaveResults(ctx context.Context, inPath, outPath string, params entity.Params) (int, error) {
	return 0, errNoGoCV
}

// Analyze возвращает ошибку, если сборка без тега gocv.
func (p *VideoProcessor) Analyze(imagePath, outPath string, params entity.Params, show bool) error {
	return errNoGoCV
}

// Tune возвращает ошибку, если сборка без тега gocv.
func (p *VideoProcessor) Tune(imagePath string, initial entity.Params, save func(entity.Params) error) error {
	return errNoGoCV
}

// ExtractFrame возвращает ошибку, если сборка без тега gocv.
func ExtractFrame(videoPath, outPath string, frameNumber int) error {
	return errNoGoCV
}

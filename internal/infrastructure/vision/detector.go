//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	"gocv.io/x/gocv"

	"bottle-counter/internal/domain/entity"
	"bottle-counter/internal/domain/port"
)

type GoCVDetector struct {
	BlurKernel     int     // сторона ядра гауссова размытия
	BlurSigma      float64 // сигма гауссова размытия
	MinContourArea float64 // минимальная площадь контура в пикселях
	MinCircularity float64 // порог круглости контура
	ThresholdValue float32 // порог бинаризации (уточняется методом Оцу)
}

// NewGoCVDetector создаёт детектор бутылок на основе OpenCV.
func NewGoCVDetector() *GoCVDetector {
	return &GoCVDetector{
		BlurKernel:     9,
		BlurSigma:      2,
		MinContourArea: 500,
		MinCircularity: 0.5,
		ThresholdValue: 50,
	}
}

// DetectHough ищет окружности преобразованием Хафа.
func (d *GoCVDetector) DetectHough(ctx context.Context, imageData []byte, params entity.Params) ([]entity.Circle, error) {
	_ = ctx
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	return d.houghOnMat(mat, params), nil
}

// DetectContour ищет окружности анализом контуров.
func (d *GoCVDetector) DetectContour(ctx context.Context, imageData []byte, params entity.Params) ([]entity.Circle, error) {
	_ = ctx
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	return d.contourOnMat(mat, params), nil
}

// houghOnMat запускает преобразование Хафа над кадром в формате Mat.
func (d *GoCVDetector) houghOnMat(mat gocv.Mat, params entity.Params) []entity.Circle {
	blurred := d.prepare(mat)
	defer blurred.Close()

	found := gocv.NewMat()
	defer found.Close()

	gocv.HoughCirclesWithParams(
		blurred,
		&found,
		gocv.HoughGradient,
		1, // dp
		params.MinDistance,
		params.Param1,
		params.Param2,
		params.MinRadius,
		params.MaxRadius,
	)

	circles := []entity.Circle{}
	for i := 0; i < found.Cols(); i++ {
		v := found.GetVecfAt(0, i)
		if len(v) < 3 {
			continue
		}
		circles = append(circles, entity.Circle{
			X:      int(math.Round(float64(v[0]))),
			Y:      int(math.Round(float64(v[1]))),
			Radius: float64(v[2]),
		})
	}

	return circles
}

// contourOnMat ищет замкнутые контуры и отбирает достаточно круглые.
func (d *GoCVDetector) contourOnMat(mat gocv.Mat, params entity.Params) []entity.Circle {
	blurred := d.prepare(mat)
	defer blurred.Close()

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(blurred, &thresh, d.ThresholdValue, 255, gocv.ThresholdBinaryInv|gocv.ThresholdOtsu)

	contours := gocv.FindContours(thresh, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	circles := []entity.Circle{}
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)

		area := gocv.ContourArea(c)
		if area < d.MinContourArea {
			continue
		}

		perimeter := gocv.ArcLength(c, true)
		if perimeter <= 0 {
			continue
		}
		circularity := 4 * math.Pi * area / (perimeter * perimeter)
		if circularity < d.MinCircularity {
			continue
		}

		x, y, radius := gocv.MinEnclosingCircle(c)
		if float64(radius) < float64(params.MinRadius) || float64(radius) > float64(params.MaxRadius) {
			continue
		}

		circles = append(circles, entity.Circle{
			X:      int(x),
			Y:      int(y),
			Radius: float64(radius),
		})
	}

	return circles
}

// prepare переводит кадр в оттенки серого и подавляет шум размытием.
func (d *GoCVDetector) prepare(mat gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()
	if mat.Channels() > 1 {
		gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)
	} else {
		mat.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	k := image.Pt(d.BlurKernel, d.BlurKernel)
	gocv.GaussianBlur(gray, &blurred, k, d.BlurSigma, d.BlurSigma, gocv.BorderDefault)
	return blurred
}

// Annotate обводит найденные бутылки и подписывает счётчик.
func (d *GoCVDetector) Annotate(imageData []byte, result *entity.FrameResult) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	annotateMat(&mat, result)

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// annotateMat рисует окружности и счётчик прямо на кадре.
func annotateMat(mat *gocv.Mat, result *entity.FrameResult) {
	green := color.RGBA{G: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}

	for _, c := range result.Circles {
		gocv.Circle(mat, image.Pt(c.X, c.Y), int(c.Radius), green, 2)
		gocv.Circle(mat, image.Pt(c.X, c.Y), 2, red, 3)
	}

	text := fmt.Sprintf("Bottles (%s): %d", result.Method, result.Count())
	gocv.PutText(mat, text, image.Pt(20, 40), gocv.FontHersheySimplex, 0.7, green, 2)
}

// Проверка реализации интерфейса
var _ port.BottleDetector = (*GoCVDetector)(nil)

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

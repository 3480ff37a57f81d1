//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"gocv.io/x/gocv"

	"bottle-counter/internal/domain/entity"
)

// Tune открывает окно с ползунками для ручного подбора параметров.
// Клавиша s сохраняет параметры через save, q завершает подбор.
func (p *VideoProcessor) Tune(imagePath string, initial entity.Params, save func(entity.Params) error) error {
	frame := gocv.IMRead(imagePath, gocv.IMReadColor)
	if frame.Empty() {
		return fmt.Errorf("read image %s", imagePath)
	}
	defer frame.Close()

	window := gocv.NewWindow("Parameter Tuning")
	defer window.Close()

	minRadius := window.CreateTrackbar("Min Radius", 100)
	minRadius.SetPos(initial.MinRadius)
	maxRadius := window.CreateTrackbar("Max Radius", 150)
	maxRadius.SetPos(initial.MaxRadius)
	minDistance := window.CreateTrackbar("Min Distance", 100)
	minDistance.SetPos(int(initial.MinDistance))
	param1 := window.CreateTrackbar("Param1", 300)
	param1.SetPos(int(initial.Param1))
	param2 := window.CreateTrackbar("Param2", 100)
	param2.SetPos(int(initial.Param2))
	method := window.CreateTrackbar("Method", 2)
	method.SetPos(initial.Method.Index())

	log.Println("Press 'q' to quit, 's' to save parameters")

	green := color.RGBA{G: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	result := gocv.NewMat()
	defer result.Close()

	for {
		params := entity.Params{
			MinRadius:   minRadius.GetPos(),
			MaxRadius:   maxRadius.GetPos(),
			MinDistance: float64(minDistance.GetPos()),
			Param1:      float64(param1.GetPos()),
			Param2:      float64(param2.GetPos()),
			Method:      entity.MethodFromIndex(method.GetPos()),
		}

		frame.CopyTo(&result)

		var hough, contour []entity.Circle
		if params.Method != entity.MethodContour {
			hough = p.detector.houghOnMat(frame, params)
			drawCircles(&result, hough, green)
		}
		if params.Method != entity.MethodHough {
			contour = p.detector.contourOnMat(frame, params)
			drawCircles(&result, contour, blue)
		}

		switch params.Method {
		case entity.MethodHough:
			gocv.PutText(&result, fmt.Sprintf("Bottles (Hough): %d", len(hough)),
				image.Pt(20, 40), gocv.FontHersheySimplex, 0.7, green, 2)
		case entity.MethodContour:
			gocv.PutText(&result, fmt.Sprintf("Bottles (Contour): %d", len(contour)),
				image.Pt(20, 40), gocv.FontHersheySimplex, 0.7, blue, 2)
		default:
			gocv.PutText(&result, fmt.Sprintf("Bottles (Hough): %d", len(hough)),
				image.Pt(20, 40), gocv.FontHersheySimplex, 0.7, green, 2)
			gocv.PutText(&result, fmt.Sprintf("Bottles (Contour): %d", len(contour)),
				image.Pt(20, 80), gocv.FontHersheySimplex, 0.7, blue, 2)
		}

		info := fmt.Sprintf("Min Radius: %d, Max Radius: %d, Min Distance: %.0f",
			params.MinRadius, params.MaxRadius, params.MinDistance)
		gocv.PutText(&result, info, image.Pt(20, result.Rows()-60), gocv.FontHersheySimplex, 0.7, white, 2)
		info = fmt.Sprintf("Param1: %.0f, Param2: %.0f", params.Param1, params.Param2)
		gocv.PutText(&result, info, image.Pt(20, result.Rows()-20), gocv.FontHersheySimplex, 0.7, white, 2)

		window.IMShow(result)

		switch window.WaitKey(100) {
		case 'q':
			return nil
		case 's':
			if err := save(params); err != nil {
				log.Printf("Failed to save parameters: %v", err)
				continue
			}
			log.Println("Parameters saved")
		}
	}
}

// drawCircles обводит список окружностей одним цветом.
func drawCircles(mat *gocv.Mat, circles []entity.Circle, clr color.RGBA) {
	red := color.RGBA{R: 255, A: 255}
	for _, c := range circles {
		gocv.Circle(mat, image.Pt(c.X, c.Y), int(c.Radius), clr, 2)
		gocv.Circle(mat, image.Pt(c.X, c.Y), 2, red, 3)
	}
}

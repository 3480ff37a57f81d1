//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"gocv.io/x/gocv"

	"bottle-counter/internal/domain/entity"
	"bottle-counter/internal/domain/port"
)

// VideoProcessor обрабатывает видеопоток кадр за кадром.
// Кадры независимы: никакого трекинга между ними нет.
type VideoProcessor struct {
	detector *GoCVDetector
	results  port.ResultRepository // опционально, может быть nil
}

// NewVideoProcessor создаёт обработчик видео.
func NewVideoProcessor(detector *GoCVDetector, results port.ResultRepository) *VideoProcessor {
	return &VideoProcessor{detector: detector, results: results}
}

// CountOnMat считает бутылки на кадре выбранным методом.
func (p *VideoProcessor) CountOnMat(mat gocv.Mat, params entity.Params) *entity.FrameResult {
	switch params.Method {
	case entity.MethodHough:
		return &entity.FrameResult{Method: entity.MethodHough, Circles: p.detector.houghOnMat(mat, params)}
	case entity.MethodContour:
		return &entity.FrameResult{Method: entity.MethodContour, Circles: p.detector.contourOnMat(mat, params)}
	}
	return entity.Reconcile(p.detector.houghOnMat(mat, params), p.detector.contourOnMat(mat, params))
}

// Process показывает видео с камеры или из файла с подсчётом бутылок.
// Клавиша q завершает просмотр, s сохраняет текущий кадр.
func (p *VideoProcessor) Process(ctx context.Context, source interface{}, params entity.Params) error {
	cap, err := gocv.OpenVideoCapture(source)
	if err != nil {
		return fmt.Errorf("open video source %v: %w", source, err)
	}
	defer cap.Close()

	window := gocv.NewWindow("Bottle Counter")
	defer window.Close()

	log.Println("Press 'q' to quit, 's' to save the current frame")

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if ok := cap.Read(&frame); !ok {
			log.Println("Video stream ended")
			return nil
		}
		if frame.Empty() {
			continue
		}

		result := p.CountOnMat(frame, params)
		annotateMat(&frame, result)

		window.IMShow(frame)

		switch window.WaitKey(1) {
		case 'q':
			return nil
		case 's':
			name := fmt.Sprintf("bottle_count_%s.jpg", time.Now().Format("20060102_150405"))
			gocv.IMWrite(name, frame)
			log.Printf("Saved frame as %s", name)
		}
	}
}

// SaveResults обрабатывает видео и записывает аннотированный результат.
// Возвращает максимальное количество бутылок, замеченное на одном кадре.
func (p *VideoProcessor) SaveResults(ctx context.Context, inPath, outPath string, params entity.Params) (int, error) {
	cap, err := gocv.OpenVideoCapture(inPath)
	if err != nil {
		return 0, fmt.Errorf("open video %s: %w", inPath, err)
	}
	defer cap.Close()

	width := int(cap.Get(gocv.VideoCaptureFrameWidth))
	height := int(cap.Get(gocv.VideoCaptureFrameHeight))
	fps := cap.Get(gocv.VideoCaptureFPS)
	totalFrames := int(cap.Get(gocv.VideoCaptureFrameCount))

	log.Printf("Video properties: %dx%d, %.2f fps, %d frames", width, height, fps, totalFrames)

	writer, err := gocv.VideoWriterFile(outPath, "mp4v", fps, width, height, true)
	if err != nil {
		return 0, fmt.Errorf("create video writer %s: %w", outPath, err)
	}
	defer writer.Close()

	var runID int64
	if p.results != nil {
		runID, err = p.results.BeginRun(ctx, inPath)
		if err != nil {
			return 0, fmt.Errorf("begin run: %w", err)
		}
	}

	frame := gocv.NewMat()
	defer frame.Close()

	frameCount := 0
	maxBottles := 0

	for {
		if err := ctx.Err(); err != nil {
			return maxBottles, err
		}

		if ok := cap.Read(&frame); !ok {
			break
		}
		if frame.Empty() {
			continue
		}

		result := p.CountOnMat(frame, params)
		if result.Count() > maxBottles {
			maxBottles = result.Count()
		}

		frameCount++
		if p.results != nil {
			if err := p.results.SaveFrame(ctx, runID, frameCount, result); err != nil {
				log.Printf("Failed to record frame %d: %v", frameCount, err)
			}
		}

		annotateMat(&frame, result)
		counter := fmt.Sprintf("Frame: %d/%d", frameCount, totalFrames)
		gocv.PutText(&frame, counter, image.Pt(20, height-20), gocv.FontHersheySimplex, 0.7, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 2)

		if err := writer.Write(frame); err != nil {
			return maxBottles, fmt.Errorf("write frame %d: %w", frameCount, err)
		}

		if frameCount%10 == 0 && totalFrames > 0 {
			log.Printf("Processing: %d/%d frames (%.1f%%)", frameCount, totalFrames, float64(frameCount)/float64(totalFrames)*100)
		}
	}

	log.Printf("Processing complete. Maximum bottles detected: %d", maxBottles)
	return maxBottles, nil
}

// ExtractFrame сохраняет один кадр видео в файл изображения.
// Номер кадра за пределами видео заменяется серединой.
func ExtractFrame(videoPath, outPath string, frameNumber int) error {
	cap, err := gocv.OpenVideoCapture(videoPath)
	if err != nil {
		return fmt.Errorf("open video %s: %w", videoPath, err)
	}
	defer cap.Close()

	totalFrames := int(cap.Get(gocv.VideoCaptureFrameCount))
	log.Printf("Total frames in video: %d", totalFrames)

	if frameNumber < 0 || frameNumber >= totalFrames {
		frameNumber = totalFrames / 2
		log.Printf("Frame number out of range, using middle frame: %d", frameNumber)
	}

	cap.Set(gocv.VideoCapturePosFrames, float64(frameNumber))

	frame := gocv.NewMat()
	defer frame.Close()

	if ok := cap.Read(&frame); !ok || frame.Empty() {
		return fmt.Errorf("read frame %d from %s", frameNumber, videoPath)
	}

	if ok := gocv.IMWrite(outPath, frame); !ok {
		return fmt.Errorf("write frame to %s", outPath)
	}

	log.Printf("Frame saved to %s", outPath)
	return nil
}

// Analyze строит мозаику 2x2 для сравнения методов на одном изображении:
// оригинал, Хаф, контуры и объединённый результат.
func (p *VideoProcessor) Analyze(imagePath, outPath string, params entity.Params, show bool) error {
	frame := gocv.IMRead(imagePath, gocv.IMReadColor)
	if frame.Empty() {
		return fmt.Errorf("read image %s", imagePath)
	}
	defer frame.Close()

	hough := &entity.FrameResult{Method: entity.MethodHough, Circles: p.detector.houghOnMat(frame, params)}
	contour := &entity.FrameResult{Method: entity.MethodContour, Circles: p.detector.contourOnMat(frame, params)}
	combined := entity.Reconcile(hough.Circles, contour.Circles)

	houghMat := frame.Clone()
	defer houghMat.Close()
	annotateMat(&houghMat, hough)

	contourMat := frame.Clone()
	defer contourMat.Close()
	annotateMat(&contourMat, contour)

	combinedMat := frame.Clone()
	defer combinedMat.Close()
	annotateMat(&combinedMat, combined)

	w := frame.Cols()
	h := frame.Rows()

	mosaic := gocv.NewMatWithSize(h*2, w*2, gocv.MatTypeCV8UC3)
	defer mosaic.Close()

	copyInto(&mosaic, frame, image.Rect(0, 0, w, h))
	copyInto(&mosaic, houghMat, image.Rect(w, 0, w*2, h))
	copyInto(&mosaic, contourMat, image.Rect(0, h, w, h*2))
	copyInto(&mosaic, combinedMat, image.Rect(w, h, w*2, h*2))

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gocv.PutText(&mosaic, "Original", image.Pt(20, 30), gocv.FontHersheySimplex, 0.7, white, 2)

	if show {
		window := gocv.NewWindow("Bottle Analysis")
		defer window.Close()
		window.IMShow(mosaic)
		log.Println("Press any key to exit")
		window.WaitKey(0)
	}

	if outPath != "" {
		if ok := gocv.IMWrite(outPath, mosaic); !ok {
			return fmt.Errorf("write analysis to %s", outPath)
		}
		log.Printf("Analysis saved to %s", outPath)
	}

	log.Printf("Hough: %d, Contour: %d, Combined (%s): %d",
		hough.Count(), contour.Count(), combined.Method, combined.Count())
	return nil
}

// copyInto копирует кадр в область мозаики.
func copyInto(dst *gocv.Mat, src gocv.Mat, rect image.Rectangle) {
	region := dst.Region(rect)
	defer region.Close()
	src.CopyTo(&region)
}

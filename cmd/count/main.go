package main

import (
	"context"
	"flag"
	"log"
	"os"

	app "bottle-counter/internal/application"
	"bottle-counter/internal/infrastructure/storage"
	"bottle-counter/internal/infrastructure/vision"
)

var (
	imagePath  string
	videoPath  string
	cameraID   int
	paramsPath string
	outPath    string
)

func init() {
	flag.StringVar(&imagePath, "i", "", "Path to input image file")
	flag.StringVar(&videoPath, "v", "", "Path to input video file")
	flag.IntVar(&cameraID, "c", 0, "Camera device index")
	flag.StringVar(&paramsPath, "p", "bottle_counter_params.txt", "Path to parameters file")
	flag.StringVar(&outPath, "o", "result.jpg", "Path to annotated output image (image mode only)")
}

func main() {
	flag.Parse()

	params := storage.LoadParams(paramsPath)
	detector := vision.NewGoCVDetector()
	ctx := context.Background()

	if imagePath != "" {
		imageData, err := os.ReadFile(imagePath)
		if err != nil {
			log.Fatalf("Could not read image %s: %v", imagePath, err)
		}

		counter := app.NewCountService(nil, detector)
		out, err := counter.Process(ctx, imageData, params)
		if err != nil {
			log.Fatalf("Could not process image %s: %v", imagePath, err)
		}

		if err := os.WriteFile(outPath, out.Annotated, 0o644); err != nil {
			log.Fatalf("Could not write result to %s: %v", outPath, err)
		}
		log.Printf("Detected %d bottles (%s), result saved to %s", out.Result.Count(), out.Result.Method, outPath)
		return
	}

	processor := vision.NewVideoProcessor(detector, nil)

	var source interface{} = cameraID
	if videoPath != "" {
		source = videoPath
	}

	if err := processor.Process(ctx, source, params); err != nil {
		log.Fatalf("Could not process video source %v: %v", source, err)
	}
}

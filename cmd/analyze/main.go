package main

import (
	"flag"
	"log"

	"bottle-counter/internal/infrastructure/storage"
	"bottle-counter/internal/infrastructure/vision"
)

var (
	imagePath  string
	paramsPath string
	outPath    string
	show       bool
)

func init() {
	flag.StringVar(&imagePath, "i", "", "Path to input image file")
	flag.StringVar(&paramsPath, "p", "bottle_counter_params.txt", "Path to parameters file")
	flag.StringVar(&outPath, "o", "analysis.jpg", "Path to output comparison image")
	flag.BoolVar(&show, "show", false, "Display the comparison in a window")
}

func main() {
	flag.Parse()

	if imagePath == "" {
		log.Fatal("Input image is required (-i)")
	}

	params := storage.LoadParams(paramsPath)
	processor := vision.NewVideoProcessor(vision.NewGoCVDetector(), nil)

	if err := processor.Analyze(imagePath, outPath, params, show); err != nil {
		log.Fatalf("Could not analyze image %s: %v", imagePath, err)
	}
}

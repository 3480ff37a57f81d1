package main

import (
	"flag"
	"log"

	"bottle-counter/internal/domain/entity"
	"bottle-counter/internal/infrastructure/storage"
	"bottle-counter/internal/infrastructure/vision"
)

var (
	imagePath  string
	paramsPath string
)

func init() {
	flag.StringVar(&imagePath, "i", "", "Path to input image file")
	flag.StringVar(&paramsPath, "p", "bottle_counter_params.txt", "Path to parameters file")
}

func main() {
	flag.Parse()

	if imagePath == "" {
		log.Fatal("Input image is required (-i)")
	}

	initial := storage.LoadParams(paramsPath)
	processor := vision.NewVideoProcessor(vision.NewGoCVDetector(), nil)

	save := func(params entity.Params) error {
		return storage.SaveParams(paramsPath, params)
	}

	if err := processor.Tune(imagePath, initial, save); err != nil {
		log.Fatalf("Could not tune parameters on %s: %v", imagePath, err)
	}
}

package main

import (
	"context"
	"flag"
	"log"

	"bottle-counter/config"
	"bottle-counter/internal/domain/port"
	"bottle-counter/internal/infrastructure/storage"
	"bottle-counter/internal/infrastructure/vision"
)

var (
	inPath     string
	outPath    string
	paramsPath string
)

func init() {
	flag.StringVar(&inPath, "i", "", "Path to input video file")
	flag.StringVar(&outPath, "o", "result.mp4", "Path to output video file")
	flag.StringVar(&paramsPath, "p", "bottle_counter_params.txt", "Path to parameters file")
}

func main() {
	flag.Parse()

	if inPath == "" {
		log.Fatal("Input video is required (-i)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	params := storage.LoadParams(paramsPath)

	// Запись результатов в SQLite включается переменной RESULTS_DB
	var results port.ResultRepository
	if cfg.ResultsDB != "" {
		repo, err := storage.NewSQLiteResultRepository(cfg.ResultsDB)
		if err != nil {
			log.Fatalf("Failed to open results database: %v", err)
		}
		defer repo.Close()
		results = repo
	}

	processor := vision.NewVideoProcessor(vision.NewGoCVDetector(), results)

	maxBottles, err := processor.SaveResults(context.Background(), inPath, outPath, params)
	if err != nil {
		log.Fatalf("Could not process video %s: %v", inPath, err)
	}

	log.Printf("Result saved to %s (max bottles: %d)", outPath, maxBottles)
}

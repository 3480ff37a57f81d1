package main

import (
	"flag"
	"log"

	"bottle-counter/internal/infrastructure/vision"
)

var (
	videoPath   string
	outPath     string
	frameNumber int
)

func init() {
	flag.StringVar(&videoPath, "v", "", "Path to input video file")
	flag.StringVar(&outPath, "o", "frame.jpg", "Path to output image file")
	flag.IntVar(&frameNumber, "f", 0, "Frame number to extract")
}

func main() {
	flag.Parse()

	if videoPath == "" {
		log.Fatal("Input video is required (-v)")
	}

	if err := vision.ExtractFrame(videoPath, outPath, frameNumber); err != nil {
		log.Fatalf("Could not extract frame from %s: %v", videoPath, err)
	}
}

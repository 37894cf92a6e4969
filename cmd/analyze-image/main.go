package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/maaidasong-coder/geointel/internal/database"
	"github.com/maaidasong-coder/geointel/internal/inference"
	"github.com/maaidasong-coder/geointel/internal/intel"
	"github.com/maaidasong-coder/geointel/internal/search"
)

// One-shot pipeline run against a local image, without the HTTP server or a
// durable store. Useful for checking endpoint configuration.
func main() {
	var (
		imagePath = flag.String("file", "", "Path to image file to analyze")
		notes     = flag.String("notes", "", "Optional notes to attach")
	)
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("Please provide an image with the -file flag")
	}

	godotenv.Load()

	image, err := os.ReadFile(*imagePath)
	if err != nil {
		log.Fatal("Failed to read image:", err)
	}

	inferenceClient := inference.NewClient(inference.Config{
		Token:        os.Getenv("HF_TOKEN"),
		EmbeddingURL: os.Getenv("EMBEDDING_MODEL_URL"),
		SceneURL:     os.Getenv("SCENE_MODEL_URL"),
		OCRURL:       os.Getenv("OCR_MODEL_URL"),
		FaceURL:      os.Getenv("FACE_MODEL_URL"),
	})

	provider := search.NewProvider(search.Config{
		SerpAPIKey:   os.Getenv("SERPAPI_KEY"),
		BingAPIKey:   os.Getenv("BING_API_KEY"),
		BingEndpoint: os.Getenv("BING_ENDPOINT"),
	})

	service := intel.NewService(
		inferenceClient,
		search.NewAggregator(provider),
		database.NewMemoryStore(),
		nil,
		intel.Config{},
	)

	fmt.Printf("Analyzing image: %s\n", *imagePath)

	c := service.AnalyzeImage(context.Background(), image, "", *notes)

	output, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		log.Fatal("Failed to render case:", err)
	}

	fmt.Println(string(output))
	fmt.Println("Analysis complete!")
}

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Grendlee/fit-check/internal/config"
	"github.com/Grendlee/fit-check/internal/llm"
	"github.com/Grendlee/fit-check/internal/service"
)

// cli_rate evalua una foto local contra un estilo objetivo sin levantar el
// servidor: util para probar prompts y rubrics desde la terminal.
func main() {
	ctx := context.Background()

	imagePath := flag.String("image", "", "ruta a la foto del outfit (jpeg)")
	styleID := flag.String("style", "", "style id objetivo, ej tech-bro")
	flag.Parse()

	if *imagePath == "" || *styleID == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	imageBytes, err := os.ReadFile(*imagePath)
	if err != nil {
		log.Fatalf("read image: %v", err)
	}
	imageBase64 := base64.StdEncoding.EncodeToString(imageBytes)

	geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}
	defer geminiClient.Close()

	ratingSvc := service.NewRatingService(geminiClient, nil, logger)

	rating, err := ratingSvc.Rate(ctx, "", *styleID, imageBase64)
	if err != nil {
		log.Fatalf("rate: %v", err)
	}

	out, err := json.MarshalIndent(rating, "", "  ")
	if err != nil {
		log.Fatalf("marshal rating: %v", err)
	}
	fmt.Println(string(out))
}

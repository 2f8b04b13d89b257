package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Grendlee/fit-check/internal/config"
	"github.com/Grendlee/fit-check/internal/db"
	apihttp "github.com/Grendlee/fit-check/internal/http"
	"github.com/Grendlee/fit-check/internal/llm"
	"github.com/Grendlee/fit-check/internal/repository"
	"github.com/Grendlee/fit-check/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("gemini client init", zap.Error(err))
	}
	defer geminiClient.Close()

	// Rating de sesion: redis si esta configurado y responde; memoria si no.
	ratingStore := service.NewMemoryRatingStore()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rating store", zap.Error(err))
		} else {
			ratingStore = service.NewRedisRatingStore(redisClient)
		}
		cancel()
	}

	closetRepo := repository.NewPgClosetRepository(pool)
	ratingSvc := service.NewRatingService(geminiClient, ratingStore, logger)
	suggestionSvc := service.NewSuggestionService(closetRepo, logger)
	tryOnSvc := service.NewTryOnService(geminiClient, logger)

	styleHandler := apihttp.NewStyleHandler(logger)
	ratingHandler := apihttp.NewRatingHandler(logger, ratingSvc)
	suggestionHandler := apihttp.NewSuggestionHandler(logger, suggestionSvc, ratingStore)
	tryOnHandler := apihttp.NewTryOnHandler(logger, tryOnSvc, geminiClient)

	router := apihttp.NewRouter(logger, styleHandler, ratingHandler, suggestionHandler, tryOnHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("fit-check api listening", zap.String("port", cfg.HTTPPort))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

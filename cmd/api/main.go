package main

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/artisan-assistant/backend/internal/config"
	"github.com/artisan-assistant/backend/internal/logging"
	"github.com/artisan-assistant/backend/internal/server"
)

var (
	gitSHA    = "dev"
	buildTime = "unknown"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	storageClient, err := storage.NewClient(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("storage client init failed")
	}
	defer storageClient.Close()

	srv := server.New(cfg, storageClient, gitSHA, buildTime)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting server")
	if err := srv.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/handler"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/metrics"
	"github.com/MKhiriev/go-video-notes/internal/server"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("video-notes-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	repos, err := store.NewRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing repositories")
		}
	}()

	// without an API key the gateway answers 503 on every AI request
	var generator adapter.TextGenerator
	if cfg.AI.APIKey != "" {
		generator, err = adapter.NewChatCompletionsGenerator(cfg.AI, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating AI generator")
		}
	} else {
		log.Warn().Msg("AI API key is not set, AI features are disabled")
	}

	m := metrics.NewMetrics("server")

	services, err := service.NewServices(repos, generator, m, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

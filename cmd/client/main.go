package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/client"
	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/tui"
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

	log := logger.NewClientLogger("video-notes-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if closeErr := localStorage.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(localStorage, serverAdapter, cfg)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

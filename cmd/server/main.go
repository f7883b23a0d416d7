package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/events"
	"github.com/MKhiriev/vitrine/internal/handler"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/server"
	"github.com/MKhiriev/vitrine/internal/service"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/internal/workers"
	"github.com/MKhiriev/vitrine/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// changeBufferSize is how many changes a slow event subscriber may lag
// behind before it starts missing some.
const changeBufferSize = 16

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("vitrine-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.New("vitrine-server", logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("data_dir", cfg.Storage.Files.DataDir).Msg("received configs")

	ctx := context.Background()
	broker := events.NewBroker(changeBufferSize, log)
	defer broker.Close()

	storages, err := store.NewStorages(ctx, cfg, broker, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(ctx, storages, broker, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, broker, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

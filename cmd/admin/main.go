package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/internal/client"
	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/tui"
	"github.com/MKhiriev/vitrine/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	cfg, err := config.GetAdminConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("admin", logger.Options{
		Level:      "info",
		File:       cfg.LogFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 14,
		Quiet:      true,
	})

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui := tui.New(serverAdapter, build, log)

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init admin client error")
	}

	if err = app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

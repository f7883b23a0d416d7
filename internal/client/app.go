package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/vitrine/internal/logger"
)

// UI is the interactive front of the admin client.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, fmt.Errorf("admin client needs a user interface")
	}
	return &App{ui: ui, logger: log}, nil
}

// Run starts the UI and returns when it exits or the process is signalled.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("admin client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("admin client: %w", err)
	}
	return nil
}

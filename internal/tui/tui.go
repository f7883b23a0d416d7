package tui

import (
	"context"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal admin console. All content operations go through the
// [adapter.ServerAdapter]; the console keeps no local copy of the site.
type TUI struct {
	api    adapter.ServerAdapter
	build  models.AppBuildInfo
	logger *logger.Logger
}

func New(api adapter.ServerAdapter, build models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{api: api, build: build, logger: log}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newAppModel(ctx, t.api, t.build), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		t.logger.Err(err).Msg("admin console stopped with error")
		return err
	}
	t.logger.Info().Msg("admin console closed")
	return nil
}

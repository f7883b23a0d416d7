package http

import (
	"time"

	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/service"
	"github.com/MKhiriev/vitrine/models"
)

// ChangeSubscriber hands out change notification streams to the events
// endpoint.
type ChangeSubscriber interface {
	Subscribe() (<-chan models.ContentChange, func())
}

type Handler struct {
	services *service.Services
	changes  ChangeSubscriber

	publicDir      string
	requestTimeout time.Duration
	maxUploadSize  int64
	heartbeat      time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, changes ChangeSubscriber, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		changes:        changes,
		publicDir:      cfg.Storage.Files.PublicDir,
		requestTimeout: cfg.Server.RequestTimeout,
		maxUploadSize:  cfg.Server.MaxUploadSize,
		heartbeat:      heartbeatInterval,
		logger:         logger,
	}
}

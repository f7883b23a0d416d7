package handler

import (
	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/handler/grpc"
	"github.com/MKhiriev/vitrine/internal/handler/http"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, changes http.ChangeSubscriber, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, changes, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

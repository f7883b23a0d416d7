// Package grpc exposes the standard gRPC health service of the vitrine
// server, so orchestrators can probe it without speaking HTTP.
package grpc

import (
	"github.com/MKhiriev/vitrine/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ContentService is the health service name reported for the content API.
const ContentService = "vitrine.content"

// Handler is the root gRPC transport handler.
//
// It owns a [health.Server] reporting SERVING for [ContentService] and for
// the overall server ("") while the process is up.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with every service marked SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ContentService, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every service to NOT_SERVING. Watchers are notified before
// the server stops accepting calls.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}

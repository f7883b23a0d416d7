package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/events"
	"github.com/MKhiriev/vitrine/internal/handler"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/mock"
	"github.com/MKhiriev/vitrine/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// stubWorkers records that it ran and returns with its context.
type stubWorkers struct {
	started chan struct{}
	stopped chan struct{}
}

func (s *stubWorkers) Run(ctx context.Context) {
	close(s.started)
	<-ctx.Done()
	close(s.stopped)
}

func newTestConfig(httpAddress, grpcAddress string) *config.StructuredConfig {
	return &config.StructuredConfig{
		Server: config.Server{
			HTTPAddress:    httpAddress,
			GRPCAddress:    grpcAddress,
			RequestTimeout: time.Second,
			MaxUploadSize:  1 << 10,
		},
	}
}

func newTestHandlers(t *testing.T, services *service.Services, cfg *config.StructuredConfig) *handler.Handlers {
	t.Helper()
	broker := events.NewBroker(1, logger.Nop())
	t.Cleanup(broker.Close)

	handlers, err := handler.NewHandlers(services, broker, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressInUse(t *testing.T) {
	cfg := newTestConfig("127.0.0.1:0", "")
	handlers := newTestHandlers(t, &service.Services{}, cfg)

	first, err := NewServer(handlers, nil, cfg.Server, logger.Nop())
	require.NoError(t, err)
	defer first.Shutdown()

	taken := first.(*server).httpServer.Addr().String()
	_, err = NewServer(handlers, nil, config.Server{HTTPAddress: taken}, logger.Nop())

	assert.Error(t, err)
}

func TestServer_RunAndShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("3.1.0")

	cfg := newTestConfig("127.0.0.1:0", "127.0.0.1:0")
	handlers := newTestHandlers(t, &service.Services{AppInfoService: appInfo}, cfg)
	workers := &stubWorkers{started: make(chan struct{}), stopped: make(chan struct{})}

	srv, err := NewServer(handlers, workers, cfg.Server, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	<-workers.started

	// HTTP
	resp, err := http.Get("http://" + s.httpServer.Addr().String() + "/api/version/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", string(body))

	// gRPC health
	conn, err := grpc.NewClient(s.gRPCServer.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	health, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: "vitrine.content"})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())
	require.NoError(t, conn.Close())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	<-workers.stopped
}

// Package grpc exposes the gRPC surface of the server: the standard health
// service, reporting the notes API as serving while the process accepts
// requests.
package grpc

import (
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NotesServiceName is the health-check name of the notes API.
const NotesServiceName = "videonotes.Notes"

// Handler owns the health state reported over gRPC.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(NotesServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown reports NOT_SERVING to every watcher; later status changes are
// ignored.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}

// Health returns the health server, for in-process checks.
func (h *Handler) Health() healthpb.HealthServer {
	return h.health
}

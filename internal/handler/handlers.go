package handler

import (
	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/handler/grpc"
	"github.com/MKhiriev/go-video-notes/internal/handler/http"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/metrics"
	"github.com/MKhiriev/go-video-notes/internal/service"
)

// Handlers carries the notes REST API and the gRPC health surface. Either
// may be nil when its address is left empty.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers mounts the REST API when SERVER_ADDRESS is set and the health
// service when SERVER_GRPC_ADDRESS is set. m may be nil, which disables
// request metrics and the /metrics endpoint.
func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	var h Handlers
	if cfg.HTTPAddress != "" {
		h.HTTP = http.NewHandler(services, m, logger)
	}
	if cfg.GRPCAddress != "" {
		h.GRPC = grpc.NewHandler(services, logger)
	}

	transports := h.Transports()
	if len(transports) == 0 {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Strs("transports", transports).
		Bool("metrics", m != nil).
		Msg("handlers ready")
	return &h, nil
}

// Transports names the mounted surfaces, REST first.
func (h *Handlers) Transports() []string {
	var out []string
	if h.HTTP != nil {
		out = append(out, "http")
	}
	if h.GRPC != nil {
		out = append(out, "grpc")
	}
	return out
}

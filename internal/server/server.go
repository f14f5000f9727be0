package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/handler"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/metrics"
)

// listener is one transport run by [server].
type listener interface {
	name() string
	serve() error
	shutdown()
}

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer creates a listener for every handler that was built. m feeds
// the gRPC interceptor and may be nil.
func NewServer(handlers *handler.Handlers, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, m, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.gRPCServer = grpcSrv
	}

	if len(s.listeners()) == 0 {
		return nil, errNoServersAreCreated
	}
	return s, nil
}

func (s *server) listeners() []listener {
	var ls []listener
	if s.httpServer != nil {
		ls = append(ls, s.httpServer)
	}
	if s.gRPCServer != nil {
		ls = append(ls, s.gRPCServer)
	}
	return ls
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
	}
}

func (s *server) Shutdown() {
	for _, l := range s.listeners() {
		l.shutdown()
		s.logger.Info().Str("transport", l.name()).Msg("listener stopped")
	}
}

// run serves until ctx is done or a listener fails, then shuts every
// listener down. The first listener failure is returned.
func (s *server) run(ctx context.Context) error {
	ls := s.listeners()
	if len(ls) == 0 {
		return errNothingToRun
	}

	failed := make(chan error, len(ls))
	for _, l := range ls {
		go func() {
			if err := l.serve(); err != nil {
				failed <- err
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-failed:
	}

	s.Shutdown()
	s.logger.Info().Msg("server shut down")
	return err
}

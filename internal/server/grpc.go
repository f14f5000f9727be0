package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-video-notes/internal/config"
	myGRPC "github.com/MKhiriev/go-video-notes/internal/handler/grpc"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/metrics"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

// newGRPCServer binds the listener eagerly so a busy port fails at startup.
func newGRPCServer(handler *myGRPC.Handler, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.GRPCAddress, err)
	}

	var opts []grpc.ServerOption
	if m != nil {
		opts = append(opts, grpc.ChainUnaryInterceptor(metrics.UnaryServerInterceptor(m)))
	}

	server := grpc.NewServer(opts...)
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

// Addr is the bound listener address.
func (g *grpcServer) Addr() net.Addr {
	return g.gRPCNetListener.Addr()
}

func (g *grpcServer) name() string { return "grpc" }

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("grpc serve on %s: %w", g.Addr(), err)
	}
	return nil
}

// shutdown flips health to NOT_SERVING before draining, so probes see the
// server leave before its connections close.
func (g *grpcServer) shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
}

package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/bibbank/eligibility-service/pkg/tlsutil"
)

// ServerConfig controls the optional parts of the gRPC server.
type ServerConfig struct {
	// HealthService is the name reported by the gRPC health service.
	HealthService string
	TLSCertFile   string
	TLSKeyFile    string
	Reflection    bool
}

// Server wraps a gRPC server with the eligibility handler registered.
type Server struct {
	gs     *grpc.Server
	health *health.Server
	logger *slog.Logger
}

// NewServer creates and configures the gRPC server.
func NewServer(handler EligibilityServiceServer, logger *slog.Logger, cfg ServerConfig) (*Server, error) {
	serverOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(loggingInterceptor(logger)),
	}

	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		creds, err := tlsutil.ServerTLSConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("grpc server credentials: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
		logger.Info("gRPC TLS enabled", "cert", cfg.TLSCertFile)
	} else {
		logger.Info("gRPC TLS not configured, running without TLS")
	}

	gs := grpc.NewServer(serverOpts...)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(gs, healthSrv)
	healthSrv.SetServingStatus(cfg.HealthService, healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	if cfg.Reflection {
		reflection.Register(gs)
	}

	RegisterEligibilityServiceServer(gs, handler)

	return &Server{
		gs:     gs,
		health: healthSrv,
		logger: logger,
	}, nil
}

// Serve starts the gRPC server on the specified address.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.ServeListener(lis)
}

// ServeListener serves on an existing listener until the server stops.
func (s *Server) ServeListener(lis net.Listener) error {
	s.logger.Info("gRPC server listening", "addr", lis.Addr().String())
	return s.gs.Serve(lis)
}

// GracefulStop marks the server as not serving and drains in-flight calls.
func (s *Server) GracefulStop() {
	s.logger.Info("gRPC server shutting down")
	s.health.Shutdown()
	s.gs.GracefulStop()
}

func loggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "gRPC call",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)
		return resp, err
	}
}

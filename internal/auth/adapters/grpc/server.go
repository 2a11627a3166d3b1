// Package grpc предоставляет реализацию gRPC сервера аутентификационного сервиса.
package grpc

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthv1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"newshub/internal/auth/config"
	"newshub/pkg/logger"

	"go.uber.org/zap"
)

// Константы для логирования.
const (
	LogServerStarting = "starting gRPC server"
	LogServerStarted  = "gRPC server started"
	LogServerStopping = "stopping gRPC server"
	LogServerStopped  = "gRPC server stopped"
	ErrServerStart    = "failed to start gRPC server"
)

// Server представляет gRPC сервер.
type Server struct {
	cfg    *config.GRPCConfig
	server *grpc.Server
	health *health.Server
}

// New создает новый экземпляр gRPC сервера с указанными перехватчиками.
func New(cfg *config.GRPCConfig, interceptors ...grpc.UnaryServerInterceptor) *Server {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))

	healthServer := health.NewServer()
	healthv1.RegisterHealthServer(server, healthServer)

	return &Server{
		cfg:    cfg,
		server: server,
		health: healthServer,
	}
}

// Start запускает gRPC сервер.
func (s *Server) Start(ctx context.Context) error {
	log := logger.Log(ctx)
	address := s.cfg.GetAddress()

	log.Info(ctx, LogServerStarting, zap.String("address", address))

	listener, err := net.Listen("tcp", address)
	if err != nil {
		log.Error(ctx, ErrServerStart, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrServerStart, err)
	}

	reflection.Register(s.server)
	s.health.SetServingStatus("", healthv1.HealthCheckResponse_SERVING)

	go func() {
		if err := s.server.Serve(listener); err != nil {
			log.Error(ctx, ErrServerStart, zap.Error(err))
		}
	}()

	log.Info(ctx, LogServerStarted, zap.String("address", address))
	return nil
}

// Stop останавливает gRPC сервер.
func (s *Server) Stop(ctx context.Context) {
	log := logger.Log(ctx)

	log.Info(ctx, LogServerStopping)
	s.health.SetServingStatus("", healthv1.HealthCheckResponse_NOT_SERVING)
	s.server.GracefulStop()
	log.Info(ctx, LogServerStopped)
}

// RegisterService регистрирует gRPC сервис в сервере.
func (s *Server) RegisterService(registerFn func(server *grpc.Server)) {
	registerFn(s.server)
}

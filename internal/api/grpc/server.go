package grpc

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Kunalk/spring-kafka-pubsub/internal/api/grpc/interceptors"
)

// Config — настройки gRPC-сервера. Переменные: <APP>_GRPC_HOST, <APP>_GRPC_PORT.
type Config struct {
	Host string `split_words:"true" default:"0.0.0.0"`
	Port string `split_words:"true" default:"9090"`
}

// Addr возвращает адрес "host:port".
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Server — gRPC-сервер: стандартный grpc.health.v1.Health и reflection.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	addr   string
	lis    net.Listener
}

// NewServer создаёт gRPC-сервер и регистрирует Health. Логирующий интерцептор пишет метод, latency_ms и grpc_code.
// Пока не вызван SetServing(true), статус — NOT_SERVING.
func NewServer(addr string, log *slog.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)))
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)
	return &Server{grpc: s, health: hs, addr: addr}
}

// SetServing переключает общий статус сервиса ("" в Health).
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
}

// Listen занимает порт. Отдельно от Serve, чтобы ошибка порта была видна до старта остального.
func (s *Server) Listen() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.lis = lis
	return nil
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	if s.lis == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	return s.grpc.Serve(s.lis)
}

// Addr возвращает фактический адрес (после Listen), иначе — из конфига.
func (s *Server) Addr() string {
	if s.lis != nil {
		return s.lis.Addr().String()
	}
	return s.addr
}

// Stop останавливает сервер (graceful): сначала NOT_SERVING, затем GracefulStop.
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}

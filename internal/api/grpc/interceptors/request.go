package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDKey — ключ metadata с id запроса (как X-Request-ID в HTTP).
const RequestIDKey = "x-request-id"

const healthCheckMethod = "/grpc.health.v1.Health/Check"

// requestID берёт id из входящих metadata или генерирует новый и отдаёт его клиенту в заголовке ответа.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDKey); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}
	id := uuid.NewString()
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDKey, id))
	return id
}

// LoggingUnaryInterceptor пишет по строке на каждый unary RPC: метод, request_id, latency_ms, grpc_code.
// Health-пробы идут на уровне Debug.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		id := requestID(ctx)
		resp, err := handler(ctx, req)

		st := status.Convert(err)
		attrs := []any{
			"method", info.FullMethod,
			"request_id", id,
			"latency_ms", time.Since(start).Milliseconds(),
			"grpc_code", st.Code().String(),
		}
		switch {
		case err != nil:
			log.Warn("grpc request", append(attrs, "error", st.Message())...)
		case info.FullMethod == healthCheckMethod:
			log.Debug("grpc request", attrs...)
		default:
			log.Info("grpc request", attrs...)
		}
		return resp, err
	}
}

package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/acervo-dev/acervo/internal/common"
)

// RequestIDInterceptor tags every call with a request ID so downstream logs
// of one invocation can be correlated.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Error("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err)
			return resp, err
		}
		logger.Debug("rpc completed",
			"method", info.FullMethod,
			"request_id", requestID,
			"elapsed_ms", time.Since(start).Milliseconds())
		return resp, nil
	}
}

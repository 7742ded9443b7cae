package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/simaogato/investments-backend/internal/logger"
)

// RequestIDHeader is the metadata key carrying a caller-supplied request ID
const RequestIDHeader = "x-request-id"

// LoggingInterceptor returns a gRPC unary server interceptor that attaches a
// request-scoped logger to the context and logs each call with its status code.
// The request ID is taken from metadata when present, otherwise generated.
func LoggingInterceptor(log *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(RequestIDHeader); len(ids) > 0 {
				requestID = ids[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}

		entry := log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     info.FullMethod,
		})

		resp, err := handler(logger.WithLogger(ctx, entry), req)

		entry = entry.WithFields(logrus.Fields{
			"code":     status.Code(err).String(),
			"duration": time.Since(start).String(),
		})
		if err != nil {
			entry.WithError(err).Warn("rpc failed")
		} else {
			entry.Info("rpc completed")
		}

		return resp, err
	}
}

// RecoveryInterceptor returns a gRPC unary server interceptor that turns a
// handler panic into codes.Internal instead of crashing the process.
func RecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(ctx).WithField("panic", r).Error("recovered from panic in " + info.FullMethod)
				resp = nil
				err = status.Error(codes.Internal, "internal error")
			}
		}()

		return handler(ctx, req)
	}
}

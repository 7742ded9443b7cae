package grpc

import (
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	portfoliov1 "github.com/simaogato/investments-backend/internal/adapter/grpc/portfolio/v1"
	"github.com/simaogato/investments-backend/internal/usecase/portfolio"
)

// NewGRPCServer builds a grpc.Server with the interceptor chain, the portfolio
// service and the standard health service registered.
// The returned health server starts SERVING for the portfolio service.
// Reflection is not registered: the portfolio messages have no proto descriptors
// and only the json codec can carry them.
func NewGRPCServer(portfolioService *portfolio.PortfolioService, log *logrus.Logger) (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(log),
			RecoveryInterceptor(),
		),
	)

	portfoliov1.RegisterPortfolioServiceServer(grpcServer, NewServer(portfolioService))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(portfoliov1.PortfolioService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return grpcServer, healthServer
}

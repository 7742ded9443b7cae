package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"

	grpcadapter "github.com/simaogato/investments-backend/internal/adapter/grpc"
	"github.com/simaogato/investments-backend/internal/adapter/repository/memory"
	"github.com/simaogato/investments-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/investments-backend/internal/adapter/rest"
	"github.com/simaogato/investments-backend/internal/config"
	"github.com/simaogato/investments-backend/internal/domain"
	"github.com/simaogato/investments-backend/internal/logger"
	"github.com/simaogato/investments-backend/internal/usecase/portfolio"
	"github.com/simaogato/investments-backend/internal/usecase/seeder"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default ./config.yaml if present)")
	flag.Parse()

	// A missing .env is normal outside local development
	_ = godotenv.Load()

	// 1. Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	if err != nil {
		logrus.Fatalf("Failed to build logger: %v", err)
	}

	// 2. Initialize storage
	ctx := context.Background()
	holdingRepo, closeStore, err := openStore(ctx, cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	// 3. Initialize the service (use case)
	portfolioService := portfolio.NewPortfolioService(holdingRepo)

	if cfg.Database.SeedDemo {
		created, err := seeder.NewDemoSeeder(portfolioService).Seed(ctx)
		if err != nil {
			closeStore()
			log.Fatalf("Failed to seed demo holdings: %v", err)
		}
		log.Infof("Seeded %d demo holdings", created)
	}

	// 4. Start gRPC server
	grpcServer, healthServer := grpcadapter.NewGRPCServer(portfolioService, log)

	grpcAddr := fmt.Sprintf(":%d", cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		closeStore()
		log.Fatalf("Failed to listen on %s: %v", grpcAddr, err)
	}

	// Serve errors end the process through waitForShutdown so the store is still closed
	serveErr := make(chan error, 2)

	go func() {
		log.Infof("gRPC server listening on %s", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			serveErr <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	// 5. Start HTTP server
	httpServer := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: rest.NewRouter(portfolioService, log, rest.RouterConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
		}),
		ReadHeaderTimeout: cfg.Server.RequestTimeout,
	}

	go func() {
		log.Infof("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	// Graceful shutdown
	if err := waitForShutdown(log, cfg.Server, serveErr, grpcServer, healthServer, httpServer); err != nil {
		log.WithError(err).Error("Server failed")
		closeStore()
		os.Exit(1)
	}
}

// openStore returns the configured holding repository and a close func.
// Postgres connections are retried with a constant backoff, then migrated.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log *logrus.Logger) (domain.HoldingRepository, func(), error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn("Using in-memory storage, data will not survive a restart")
		return memory.NewHoldingRepository(), func() {}, nil
	}

	var db *postgres.DB
	backoff := retry.WithMaxRetries(cfg.ConnectRetries, retry.NewConstant(cfg.ConnectBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		db, err = postgres.NewDB(cfg.DSN())
		if err != nil {
			log.WithError(err).Warn("Database not ready, retrying")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	n, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	log.Infof("Applied %d migrations", n)

	closeFn := func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("Failed to close database")
		}
	}

	return postgres.NewHoldingRepository(db), closeFn, nil
}

// waitForShutdown waits for SIGTERM, SIGINT or a serve error and gracefully shuts down both servers.
// It returns the serve error, if that is what ended the wait.
func waitForShutdown(log *logrus.Logger, cfg config.ServerConfig, serveErr <-chan error, grpcServer *grpclib.Server, healthServer *health.Server, httpServer *http.Server) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	var failure error
	select {
	case sig := <-sigChan:
		log.Infof("Received signal: %v. Shutting down gracefully...", sig)
	case failure = <-serveErr:
		log.WithError(failure).Error("Server stopped serving. Shutting down...")
	}

	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Error("HTTP server shutdown failed")
	}
	log.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")

	return failure
}

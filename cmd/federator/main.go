package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	pb "github.com/National-Digital-Twin/federator-sub004/api/federation/v1"
	"github.com/National-Digital-Twin/federator-sub004/internal/accessfilter"
	"github.com/National-Digital-Twin/federator-sub004/internal/auth"
	"github.com/National-Digital-Twin/federator-sub004/internal/config"
	"github.com/National-Digital-Twin/federator-sub004/internal/consumer"
	grpcHandler "github.com/National-Digital-Twin/federator-sub004/internal/delivery/grpc"
	"github.com/National-Digital-Twin/federator-sub004/internal/observability"
	"github.com/National-Digital-Twin/federator-sub004/internal/repository"
	kafkaRepo "github.com/National-Digital-Twin/federator-sub004/internal/repository/kafka"
	localfsRepo "github.com/National-Digital-Twin/federator-sub004/internal/repository/localfs"
	minioRepo "github.com/National-Digital-Twin/federator-sub004/internal/repository/minio"
	s3Repo "github.com/National-Digital-Twin/federator-sub004/internal/repository/s3"
	tarantoolRepo "github.com/National-Digital-Twin/federator-sub004/internal/repository/tarantool"
	"github.com/National-Digital-Twin/federator-sub004/internal/streamer"
	"github.com/National-Digital-Twin/federator-sub004/internal/transfer"
	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

var (
	configPath = flag.String("config", "", "Path to configuration file (optional)")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Federator gRPC Server",
		logger.String("version", "1.0.0"),
		logger.Int("grpc_port", cfg.Server.Port),
	)

	// Initialize Vault client if enabled
	ctx := context.Background()
	vaultClient, err := config.NewVaultClient(&cfg.Vault)
	if err != nil {
		appLogger.Fatal("Failed to create Vault client", logger.Error(err))
	}

	// Apply Vault secrets to configuration
	if vaultClient != nil {
		appLogger.Info("Loading secrets from Vault")
		if err := config.ApplyVaultSecrets(ctx, cfg, vaultClient); err != nil {
			appLogger.Fatal("Failed to apply Vault secrets", logger.Error(err))
		}
		appLogger.Info("Secrets loaded from Vault successfully")
	}

	// Initialize offset store
	appLogger.Info("Connecting to Tarantool", logger.String("address", cfg.Tarantool.Address))
	offsetStore, err := tarantoolRepo.NewStore(&tarantoolRepo.Config{
		Address:  cfg.Tarantool.Address,
		User:     cfg.Tarantool.User,
		Password: cfg.Tarantool.Password,
		Timeout:  cfg.Tarantool.Timeout,
	}, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to Tarantool", logger.Error(err))
	}
	defer offsetStore.Close()

	// Test Tarantool connection
	if err := offsetStore.Ping(); err != nil {
		appLogger.Fatal("Failed to ping Tarantool", logger.Error(err))
	}
	appLogger.Info("✓ Connected to Tarantool")

	// Initialize record source
	sourceOpener, err := kafkaRepo.NewOpener(&kafkaRepo.Config{
		Brokers: cfg.Kafka.Brokers,
		GroupID: cfg.Kafka.GroupID,
	}, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create Kafka opener", logger.Error(err))
	}
	appLogger.Info("✓ Kafka source configured", logger.String("brokers", cfg.Kafka.Brokers))

	// Initialize object stores
	stores, err := buildObjectStores(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize object stores", logger.Error(err))
	}

	// Initialize transfer session
	chunked, err := streamer.New(cfg.Transfer.ChunkSize, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create streamer", logger.Error(err))
	}

	metrics := observability.New()
	registry := accessfilter.NewRegistry(cfg.GrantAttributes())

	session, err := transfer.New(
		consumer.New(sourceOpener, appLogger),
		offsetStore,
		stores,
		chunked,
		transfer.Config{
			PollInterval: cfg.Transfer.PollInterval,
			IdleTimeout:  cfg.Transfer.IdleTimeout,
		},
		metrics,
		appLogger,
	)
	if err != nil {
		appLogger.Fatal("Failed to create transfer session", logger.Error(err))
	}

	// Initialize gRPC handler
	federatorHandler := grpcHandler.NewFederatorHandler(session, registry, appLogger)

	// Create gRPC server with authentication
	var serverOpts []grpc.ServerOption
	if cfg.Auth.Enabled {
		jwtManager, err := auth.NewJWTManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.JWTIssuer)
		if err != nil {
			appLogger.Fatal("Failed to create JWT manager", logger.Error(err))
		}
		serverOpts = append(serverOpts,
			grpc.UnaryInterceptor(auth.UnaryServerInterceptor(jwtManager)),
			grpc.StreamInterceptor(auth.StreamServerInterceptor(jwtManager)),
		)
		appLogger.Info("✓ JWT authentication enabled", logger.String("issuer", cfg.Auth.JWTIssuer))
	} else {
		appLogger.Warn("Authentication is disabled")
	}

	grpcServer := grpc.NewServer(serverOpts...)
	pb.RegisterFederatorServiceServer(grpcServer, federatorHandler)

	// Register reflection for grpcurl
	reflection.Register(grpcServer)

	// Expose Prometheus metrics
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metrics.Handler(),
	}
	go func() {
		appLogger.Info("✓ Metrics server listening", logger.Int("port", cfg.Server.MetricsPort))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Metrics server failed", logger.Error(err))
		}
	}()

	// Start listening
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		appLogger.Fatal("Failed to listen", logger.Error(err), logger.Int("port", cfg.Server.Port))
	}

	appLogger.Info("✓ gRPC server listening", logger.Int("port", cfg.Server.Port))
	appLogger.Info("Ready to accept requests...")

	// Handle graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		appLogger.Info("Received shutdown signal, shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			appLogger.Warn("Metrics server shutdown failed", logger.Error(err))
		}
		grpcServer.GracefulStop()
	}()

	// Start serving
	if err := grpcServer.Serve(listener); err != nil {
		appLogger.Fatal("Failed to serve", logger.Error(err))
	}
}

// buildObjectStores wires the configured file backends into the kind
// selector. Unconfigured backends stay nil and fail per request.
func buildObjectStores(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) (repository.ObjectStores, error) {
	var stores repository.ObjectStores

	if cfg.Local.BaseDir != "" {
		local, err := localfsRepo.NewStore(cfg.Local.BaseDir, appLogger)
		if err != nil {
			return stores, fmt.Errorf("local store: %w", err)
		}
		stores.Local = local
		appLogger.Info("✓ Local file store configured", logger.String("base_dir", cfg.Local.BaseDir))
	}

	if cfg.ObjectStoreA.Enabled {
		storeA, err := minioRepo.NewStore(&minioRepo.Config{
			Endpoint:        cfg.ObjectStoreA.Endpoint,
			AccessKeyID:     cfg.ObjectStoreA.AccessKeyID,
			SecretAccessKey: cfg.ObjectStoreA.SecretAccessKey,
			UseSSL:          cfg.ObjectStoreA.UseSSL,
		}, appLogger)
		if err != nil {
			return stores, fmt.Errorf("object store a: %w", err)
		}
		stores.ObjectStoreA = storeA
		appLogger.Info("✓ Object store A configured", logger.String("endpoint", cfg.ObjectStoreA.Endpoint))
	}

	if cfg.ObjectStoreB.Enabled {
		storeB, err := s3Repo.NewStore(ctx, &s3Repo.Config{
			Region:          cfg.ObjectStoreB.Region,
			AccessKeyID:     cfg.ObjectStoreB.AccessKeyID,
			SecretAccessKey: cfg.ObjectStoreB.SecretAccessKey,
			Endpoint:        cfg.ObjectStoreB.Endpoint,
			UsePathStyle:    cfg.ObjectStoreB.UsePathStyle,
		}, appLogger)
		if err != nil {
			return stores, fmt.Errorf("object store b: %w", err)
		}
		stores.ObjectStoreB = storeB
		appLogger.Info("✓ Object store B configured", logger.String("region", cfg.ObjectStoreB.Region))
	}

	return stores, nil
}

// fedjob runs one synchronous topic transfer session from the command
// line, ending when the source goes idle.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/National-Digital-Twin/federator-sub004/internal/accessfilter"
	"github.com/National-Digital-Twin/federator-sub004/internal/config"
	"github.com/National-Digital-Twin/federator-sub004/internal/consumer"
	"github.com/National-Digital-Twin/federator-sub004/internal/repository"
	kafkaRepo "github.com/National-Digital-Twin/federator-sub004/internal/repository/kafka"
	tarantoolRepo "github.com/National-Digital-Twin/federator-sub004/internal/repository/tarantool"
	"github.com/National-Digital-Twin/federator-sub004/internal/streamer"
	"github.com/National-Digital-Twin/federator-sub004/internal/transfer"
	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

var (
	configPath  = flag.String("config", "", "Path to configuration file (optional)")
	clientID    = flag.String("client", "", "Client ID whose grant and cursor to use (required)")
	topic       = flag.String("topic", "", "Topic to transfer (required)")
	startOffset = flag.Int64("start-offset", -1, "Offset to start from (-1 resumes from the stored cursor)")
	destination = flag.String("destination", "", "Destination file path (omit to advance the cursor only)")
)

func main() {
	flag.Parse()

	if *clientID == "" || *topic == "" {
		flag.Usage()
		log.Fatal("\nClient ID and topic are required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	registry := accessfilter.NewRegistry(cfg.GrantAttributes())
	grant, ok := registry.Lookup(*clientID, *topic)
	if !ok {
		appLogger.Fatal("Client has no grant for topic",
			logger.String("client", *clientID),
			logger.String("topic", *topic),
		)
	}

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

	sourceOpener, err := kafkaRepo.NewOpener(&kafkaRepo.Config{
		Brokers: cfg.Kafka.Brokers,
		GroupID: cfg.Kafka.GroupID,
	}, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create Kafka opener", logger.Error(err))
	}

	chunked, err := streamer.New(cfg.Transfer.ChunkSize, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create streamer", logger.Error(err))
	}

	session, err := transfer.New(
		consumer.New(sourceOpener, appLogger),
		offsetStore,
		repository.ObjectStores{},
		chunked,
		transfer.Config{
			PollInterval: cfg.Transfer.PollInterval,
			IdleTimeout:  cfg.Transfer.IdleTimeout,
		},
		nil,
		appLogger,
	)
	if err != nil {
		appLogger.Fatal("Failed to create transfer session", logger.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var streamed int
	if *destination != "" {
		streamed, err = session.ProcessTopicToFile(ctx, *clientID, *topic, grant, *startOffset, *destination)
	} else {
		streamed, err = session.ProcessTopic(ctx, *clientID, *topic, grant, *startOffset)
	}
	if err != nil {
		appLogger.Fatal("Transfer session failed",
			logger.String("topic", *topic),
			logger.Int("records_streamed", streamed),
			logger.Error(err),
		)
	}

	fmt.Printf("Transfer complete: %d records streamed from %s\n", streamed, *topic)
	if *destination != "" {
		fmt.Printf("Destination: %s\n", *destination)
	}
}

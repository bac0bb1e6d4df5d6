// Package kafka implements the offset-addressable record source on Kafka.
// Exchange topics are single-partition by convention, so a topic offset is
// a scalar and the source assigns partition 0 at the requested offset.
// Offsets are never committed to the broker; the resumption cursor lives
// in the offset store, not in Kafka consumer-group state.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
	"github.com/National-Digital-Twin/federator-sub004/internal/domain/repository"
	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

// Config represents Kafka connection configuration
type Config struct {
	Brokers string
	GroupID string
}

// Opener creates positioned Kafka sources.
type Opener struct {
	cfg    *Config
	logger *logger.Logger
}

// NewOpener creates a source opener for the given Kafka cluster.
func NewOpener(cfg *Config, log *logger.Logger) (*Opener, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Brokers == "" {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	return &Opener{cfg: cfg, logger: log}, nil
}

// Open creates a consumer assigned to the topic's partition 0 at
// startOffset.
func (o *Opener) Open(ctx context.Context, topic string, startOffset int64) (repository.RecordSource, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  o.cfg.Brokers,
		"group.id":           o.cfg.GroupID,
		"enable.auto.commit": false,
		"auto.offset.reset":  "earliest",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	assignment := []kafka.TopicPartition{{
		Topic:     &topic,
		Partition: 0,
		Offset:    kafka.Offset(startOffset),
	}}
	if err := consumer.Assign(assignment); err != nil {
		_ = consumer.Close()
		return nil, fmt.Errorf("failed to assign topic %s at offset %d: %w", topic, startOffset, err)
	}

	o.logger.Info("Kafka source opened",
		logger.String("topic", topic),
		logger.Int64("start_offset", startOffset),
	)

	return &Source{
		consumer: consumer,
		topic:    topic,
		logger:   o.logger,
	}, nil
}

// Source is one positioned consumer over a topic.
type Source struct {
	consumer *kafka.Consumer
	topic    string
	logger   *logger.Logger

	mu     sync.Mutex
	closed bool
}

// Poll blocks up to timeout for the next record. Returns (nil, nil) when
// nothing arrived in time.
func (s *Source) Poll(timeout time.Duration) (*entity.Record, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, fmt.Errorf("kafka source for topic %s is closed", s.topic)
	}
	s.mu.Unlock()

	msg, err := s.consumer.ReadMessage(timeout)
	if err != nil {
		var kafkaErr kafka.Error
		if errors.As(err, &kafkaErr) {
			if kafkaErr.Code() == kafka.ErrTimedOut {
				return nil, nil
			}
			if kafkaErr.IsFatal() {
				s.mu.Lock()
				s.closed = true
				s.mu.Unlock()
				return nil, fmt.Errorf("kafka source for topic %s failed fatally: %w", s.topic, err)
			}
		}
		return nil, fmt.Errorf("failed to read from topic %s: %w", s.topic, err)
	}

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}

	return &entity.Record{
		Topic:     s.topic,
		Offset:    int64(msg.TopicPartition.Offset),
		Key:       msg.Key,
		Payload:   msg.Value,
		Headers:   headers,
		Timestamp: msg.Timestamp,
	}, nil
}

// Closed reports whether the source is no longer usable.
func (s *Source) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the consumer. Idempotent.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.consumer.Close()
}

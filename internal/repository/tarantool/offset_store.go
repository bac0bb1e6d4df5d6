// Package tarantool implements the durable offset store on Tarantool.
// Offsets live in a space keyed by (client, topic) and are read and
// written through server-side functions, so get/set are atomic per key.
package tarantool

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tarantool/go-tarantool/v2"

	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

// Store implements repository.OffsetStore using Tarantool.
type Store struct {
	conn   *tarantool.Connection
	logger *logger.Logger
	mu     sync.RWMutex
	closed bool
}

// Config represents Tarantool connection configuration
type Config struct {
	Address  string
	User     string
	Password string
	Timeout  time.Duration
}

// NewStore connects to Tarantool and returns an offset store.
func NewStore(cfg *Config, log *logger.Logger) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	ctx := context.Background()

	dialer := tarantool.NetDialer{
		Address:  cfg.Address,
		User:     cfg.User,
		Password: cfg.Password,
	}

	opts := tarantool.Opts{
		Timeout: cfg.Timeout,
	}

	conn, err := tarantool.Connect(ctx, dialer, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Tarantool: %w", err)
	}

	return &Store{
		conn:   conn,
		logger: log,
	}, nil
}

// Close closes the Tarantool connection
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.conn.Close()
}

// Ping checks if the connection to Tarantool is alive
func (s *Store) Ping() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return fmt.Errorf("offset store is closed")
	}

	_, err := s.conn.Ping()
	return err
}

// call executes a Tarantool function
func (s *Store) call(functionName string, args []interface{}) ([]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("offset store is closed")
	}

	req := tarantool.NewCall17Request(functionName).Args(args)
	resp, err := s.conn.Do(req).Get()
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// GetOffset returns the last delivered offset for a client/topic pair.
// found is false when the pair has never been recorded.
func (s *Store) GetOffset(ctx context.Context, client, topic string) (int64, bool, error) {
	resp, err := s.call("get_offset", []interface{}{client, topic})
	if err != nil {
		return 0, false, fmt.Errorf("failed to get offset for %s/%s: %w", client, topic, err)
	}

	if len(resp) == 0 || resp[0] == nil {
		return 0, false, nil
	}

	return toInt64(resp[0]), true, nil
}

// SetOffset records the last delivered offset for a client/topic pair.
func (s *Store) SetOffset(ctx context.Context, client, topic string, offset int64) error {
	_, err := s.call("set_offset", []interface{}{client, topic, offset})
	if err != nil {
		return fmt.Errorf("failed to set offset for %s/%s: %w", client, topic, err)
	}

	s.logger.Debug("Offset persisted",
		logger.String("client", client),
		logger.String("topic", topic),
		logger.Int64("offset", offset),
	)
	return nil
}

// toInt64 converts a Tarantool numeric response value.
func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case uint64:
		return int64(n)
	case int:
		return int64(n)
	case uint:
		return int64(n)
	case int32:
		return int64(n)
	case uint32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// Package consumer owns the event-source consumption lifecycle: poll
// cadence, idle-timeout detection and resource release. The model is
// cooperative polling; callers check StillAvailable before every Poll and
// idle detection latency is bounded by the poll interval.
package consumer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
	"github.com/National-Digital-Twin/federator-sub004/internal/domain/repository"
	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

// State is the lifecycle state of a consumer session. No transition
// leaves StateClosed.
type State int

const (
	StateOpen State = iota
	StatePolling
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StatePolling:
		return "polling"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session wraps one positioned record source for the duration of a
// transfer. lastRecordTime is monotonically non-decreasing while open.
type Session struct {
	topic        string
	startOffset  int64
	pollInterval time.Duration
	idleTimeout  time.Duration

	source repository.RecordSource
	logger *logger.Logger

	mu             sync.Mutex
	state          State
	lastRecordTime time.Time
	now            func() time.Time // test seam
}

// Consumer opens sessions over an underlying record source.
type Consumer struct {
	opener repository.RecordSourceOpener
	logger *logger.Logger
}

// New creates a consumer over the given source opener.
func New(opener repository.RecordSourceOpener, log *logger.Logger) *Consumer {
	return &Consumer{opener: opener, logger: log}
}

// Open begins consumption of topic at startOffset, inclusive of the next
// undelivered record.
func (c *Consumer) Open(ctx context.Context, topic string, startOffset int64, pollInterval, idleTimeout time.Duration) (*Session, error) {
	if pollInterval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %v", pollInterval)
	}
	if idleTimeout <= 0 {
		return nil, fmt.Errorf("idle timeout must be positive, got %v", idleTimeout)
	}

	source, err := c.opener.Open(ctx, topic, startOffset)
	if err != nil {
		return nil, fmt.Errorf("failed to open source for topic %s: %w", topic, err)
	}

	c.logger.Info("Consumer session opened",
		logger.String("topic", topic),
		logger.Int64("start_offset", startOffset),
		logger.Duration("poll_interval", pollInterval),
		logger.Duration("idle_timeout", idleTimeout),
	)

	return &Session{
		topic:          topic,
		startOffset:    startOffset,
		pollInterval:   pollInterval,
		idleTimeout:    idleTimeout,
		source:         source,
		logger:         c.logger,
		state:          StateOpen,
		lastRecordTime: time.Now(),
		now:            time.Now,
	}, nil
}

// Topic returns the topic this session consumes.
func (s *Session) Topic() string {
	return s.topic
}

// StartOffset returns the offset the session was opened at.
func (s *Session) StartOffset() int64 {
	return s.startOffset
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Poll blocks up to the session's poll interval waiting for the next
// record. It returns (nil, nil) when none arrived. On a non-empty result
// lastRecordTime is reset to now. Poll errors are recoverable; the caller
// decides whether to continue or close.
func (s *Session) Poll(ctx context.Context) (*entity.Record, error) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return nil, fmt.Errorf("session for topic %s is closed", s.topic)
	}
	s.state = StatePolling
	s.mu.Unlock()

	rec, err := s.source.Poll(s.pollInterval)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateClosed {
		s.state = StateOpen
	}

	if err != nil {
		return nil, fmt.Errorf("failed to poll topic %s: %w", s.topic, err)
	}
	if rec == nil {
		return nil, nil
	}

	if now := s.now(); now.After(s.lastRecordTime) {
		s.lastRecordTime = now
	}
	return rec, nil
}

// StillAvailable reports whether the session can keep serving records. It
// is false once the underlying source reports closed, or once no record
// has arrived for at least the idle timeout. In the idle case the source
// is closed here as a side effect so resources are released even if the
// caller never calls Close. The check never blocks beyond a wall-clock
// comparison and must be evaluated before every Poll.
func (s *Session) StillAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return false
	}

	if s.source.Closed() {
		s.state = StateClosed
		return false
	}

	if s.now().Sub(s.lastRecordTime) >= s.idleTimeout {
		s.logger.Info("Consumer session idle timeout",
			logger.String("topic", s.topic),
			logger.Duration("idle_timeout", s.idleTimeout),
		)
		s.closeLocked()
		return false
	}

	return true
}

// Close releases the underlying source. Idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}
	s.closeLocked()
	return nil
}

// closeLocked transitions to StateClosed and releases the source. Close
// errors are logged and swallowed: the session is considered closed
// regardless.
func (s *Session) closeLocked() {
	s.state = StateClosed
	if err := s.source.Close(); err != nil {
		s.logger.Warn("Failed to close record source",
			logger.String("topic", s.topic),
			logger.Error(err),
		)
	}
}

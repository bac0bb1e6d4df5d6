package repository

import (
	"context"
	"time"

	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
)

// RecordSource is a partitioned, offset-addressable event source positioned
// at a specific topic offset. Implementations enforce their own
// per-partition single-consumer semantics; callers add no extra locking.
type RecordSource interface {
	// Poll blocks up to timeout waiting for the next record. It returns
	// (nil, nil) when no record arrived within the timeout.
	Poll(timeout time.Duration) (*entity.Record, error)

	// Closed reports whether the underlying source is no longer usable.
	Closed() bool

	// Close releases the source. Idempotent.
	Close() error
}

// RecordSourceOpener creates a RecordSource positioned at startOffset
// (inclusive of the next undelivered record) on a topic.
type RecordSourceOpener interface {
	Open(ctx context.Context, topic string, startOffset int64) (RecordSource, error)
}

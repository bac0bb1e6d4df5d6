package repository

import "context"

// OffsetStore is the durable mapping (client, topic) -> last-delivered
// offset. It must support atomic get/set per key and safe concurrent
// access from many transfer sessions.
type OffsetStore interface {
	// GetOffset returns the last delivered offset for a client/topic pair.
	// found is false when no offset has ever been recorded, allowing a
	// stored offset of 0 to be distinguished from absence.
	GetOffset(ctx context.Context, client, topic string) (offset int64, found bool, err error)

	// SetOffset records the offset of the last record delivered to client
	// on topic.
	SetOffset(ctx context.Context, client, topic string, offset int64) error

	// Ping checks that the store is reachable.
	Ping() error

	// Close releases the store connection.
	Close() error
}

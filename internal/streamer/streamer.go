package streamer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

// ChunkWriter receives the ordered chunks of one resource. The gRPC
// delivery layer and the local-file destination both satisfy it.
type ChunkWriter interface {
	Send(chunk *entity.TransferChunk) error
}

// ChunkedStreamer serialises a resource's bytes into an ordered run of
// wire chunks with a running SHA-256 digest finalised into a terminal
// checksum chunk. The resource is never materialised in memory; bytes are
// read chunkSize at a time.
type ChunkedStreamer struct {
	chunkSize int
	logger    *logger.Logger
}

// New creates a streamer with a fixed per-transfer chunk size.
func New(chunkSize int, log *logger.Logger) (*ChunkedStreamer, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	return &ChunkedStreamer{chunkSize: chunkSize, logger: log}, nil
}

// ChunkSize returns the configured chunk size in bytes.
func (s *ChunkedStreamer) ChunkSize() int {
	return s.chunkSize
}

// TotalChunks computes ceil(size / chunkSize). It is fixed before
// streaming begins and never recomputed mid-stream; a resource that
// changes size concurrently surfaces as a read error, not a re-count.
func (s *ChunkedStreamer) TotalChunks(size int64) int32 {
	chunkSize := int64(s.chunkSize)
	return int32((size + chunkSize - 1) / chunkSize)
}

// Stream reads size bytes from r and sends them to w as data chunks
// followed by one terminal checksum chunk. On any read or send error the
// stream is abandoned without a terminal chunk so the receiver discards
// the partial resource.
func (s *ChunkedStreamer) Stream(ctx context.Context, resourceName string, sequenceID int64, r io.Reader, size int64, w ChunkWriter) error {
	totalChunks := s.TotalChunks(size)
	digest := sha256.New()
	buf := make([]byte, s.chunkSize)

	var index int32
	var sent int64
	for sent < size {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("transfer cancelled: %w", err)
		}

		n, err := io.ReadFull(r, buf)
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			if sent+int64(n) != size {
				return fmt.Errorf("resource %s truncated: read %d of %d bytes", resourceName, sent+int64(n), size)
			}
			err = nil
		}
		if err != nil {
			return fmt.Errorf("failed to read resource %s: %w", resourceName, err)
		}

		digest.Write(buf[:n])

		payload := make([]byte, n)
		copy(payload, buf[:n])

		chunk := &entity.TransferChunk{
			ResourceName: resourceName,
			SequenceID:   sequenceID,
			ChunkIndex:   index,
			TotalChunks:  totalChunks,
			Payload:      payload,
			FileSize:     size,
			IsLastChunk:  false,
		}
		if err := w.Send(chunk); err != nil {
			return fmt.Errorf("failed to send chunk %d of %s: %w", index, resourceName, err)
		}

		sent += int64(n)
		index++
	}

	checksum := base64.StdEncoding.EncodeToString(digest.Sum(nil))
	terminal := &entity.TransferChunk{
		ResourceName: resourceName,
		SequenceID:   sequenceID,
		ChunkIndex:   index,
		TotalChunks:  totalChunks,
		FileSize:     size,
		IsLastChunk:  true,
		Checksum:     checksum,
	}
	if err := w.Send(terminal); err != nil {
		return fmt.Errorf("failed to send terminal chunk of %s: %w", resourceName, err)
	}

	s.logger.Debug("Resource streamed",
		logger.String("resource", resourceName),
		logger.Int64("sequence_id", sequenceID),
		logger.Int64("size", size),
		logger.Int32("chunks", totalChunks),
		logger.String("checksum", checksum),
	)

	return nil
}

// StreamBytes streams an in-memory payload, typically a topic record's
// body. The payload is already resident, so this is a convenience wrapper
// over Stream.
func (s *ChunkedStreamer) StreamBytes(ctx context.Context, resourceName string, sequenceID int64, payload []byte, w ChunkWriter) error {
	return s.Stream(ctx, resourceName, sequenceID, bytes.NewReader(payload), int64(len(payload)), w)
}

// Package transfer orchestrates a complete federation exchange: it
// pulls records from a positioned source, applies the recipient's
// access filter, streams the survivors as checksummed chunks and
// advances the recipient's delivered offset.
package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/National-Digital-Twin/federator-sub004/internal/accessfilter"
	"github.com/National-Digital-Twin/federator-sub004/internal/consumer"
	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
	domain "github.com/National-Digital-Twin/federator-sub004/internal/domain/repository"
	"github.com/National-Digital-Twin/federator-sub004/internal/repository"
	"github.com/National-Digital-Twin/federator-sub004/internal/streamer"
	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

// Recorder receives data-path measurements. Implemented by
// observability.Metrics; a nil Recorder disables recording.
type Recorder interface {
	RecordStreamed(topic string)
	RecordDenied(topic string)
	LabelParseFailure(topic string)
	ChunkSent(payloadBytes int)
	ObserveTransfer(kind string, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordStreamed(string)                 {}
func (nopRecorder) RecordDenied(string)                   {}
func (nopRecorder) LabelParseFailure(string)              {}
func (nopRecorder) ChunkSent(int)                         {}
func (nopRecorder) ObserveTransfer(string, time.Duration) {}

// Config carries the session tunables.
type Config struct {
	PollInterval time.Duration
	IdleTimeout  time.Duration
}

// Session wires the consumer, offset store, object stores and chunked
// streamer into the two federation operations. One Session serves many
// transfers; each transfer opens and closes its own consumer session.
type Session struct {
	consumer *consumer.Consumer
	offsets  domain.OffsetStore
	stores   repository.ObjectStores
	streamer *streamer.ChunkedStreamer
	cfg      Config
	metrics  Recorder
	logger   *logger.Logger
}

// New builds a transfer session. The offset store is required; object
// stores may be partially populated when no file-reference records are
// expected.
func New(c *consumer.Consumer, offsets domain.OffsetStore, stores repository.ObjectStores, s *streamer.ChunkedStreamer, cfg Config, metrics Recorder, log *logger.Logger) (*Session, error) {
	if c == nil {
		return nil, newError(KindConfiguration, "consumer is required", nil)
	}
	if offsets == nil {
		return nil, newError(KindConfiguration, "offset store is required", nil)
	}
	if s == nil {
		return nil, newError(KindConfiguration, "streamer is required", nil)
	}
	if cfg.PollInterval <= 0 || cfg.IdleTimeout <= 0 {
		return nil, newError(KindConfiguration, fmt.Sprintf("poll interval %v and idle timeout %v must be positive", cfg.PollInterval, cfg.IdleTimeout), nil)
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Session{
		consumer: c,
		offsets:  offsets,
		stores:   stores,
		streamer: s,
		cfg:      cfg,
		metrics:  metrics,
		logger:   log,
	}, nil
}

// ResolveStartOffset returns the offset the next transfer for client on
// topic should begin at: one past the last delivered offset, or zero
// when the client has never received from this topic.
func (t *Session) ResolveStartOffset(ctx context.Context, clientID, topic string) (int64, error) {
	stored, found, err := t.offsets.GetOffset(ctx, clientID, topic)
	if err != nil {
		return 0, newError(KindSourceUnavailable, fmt.Sprintf("resolve offset for client %s topic %s", clientID, topic), err)
	}
	if !found {
		return 0, nil
	}
	return stored + 1, nil
}

// DeliveredOffset returns the last offset delivered to client on topic,
// with found false when no delivery has been recorded.
func (t *Session) DeliveredOffset(ctx context.Context, clientID, topic string) (int64, bool, error) {
	offset, found, err := t.offsets.GetOffset(ctx, clientID, topic)
	if err != nil {
		return 0, false, newError(KindSourceUnavailable, fmt.Sprintf("read offset for client %s topic %s", clientID, topic), err)
	}
	return offset, found, nil
}

// RunTopicTransfer consumes topic for clientID starting at startOffset
// and streams every record the grant admits to w. A negative
// startOffset resumes from the stored position. The delivered offset
// advances for withheld records too: a denial is a completed delivery
// decision, not a failure. The transfer ends when the source goes idle
// or reports closed; a transport failure aborts it with the offset held
// at the last record fully streamed, and an offset write failure ends
// it as source unavailable. Returns the number of records streamed.
func (t *Session) RunTopicTransfer(ctx context.Context, clientID, topic string, grant accessfilter.Grant, startOffset int64, w streamer.ChunkWriter) (int, error) {
	began := time.Now()

	if startOffset < 0 {
		resolved, err := t.ResolveStartOffset(ctx, clientID, topic)
		if err != nil {
			return 0, err
		}
		startOffset = resolved
	}

	sess, err := t.consumer.Open(ctx, topic, startOffset, t.cfg.PollInterval, t.cfg.IdleTimeout)
	if err != nil {
		return 0, newError(KindSourceUnavailable, fmt.Sprintf("open topic %s at offset %d", topic, startOffset), err)
	}
	defer sess.Close()

	filter := accessfilter.New(grant)
	streamed := 0

	for sess.StillAvailable() {
		if err := ctx.Err(); err != nil {
			return streamed, newError(KindStreamTransport, "context cancelled", err)
		}

		rec, err := sess.Poll(ctx)
		if err != nil {
			t.logger.Warn("Poll failed, retrying",
				logger.String("topic", topic),
				logger.Error(err),
			)
			continue
		}
		if rec == nil {
			continue
		}

		withheld, ferr := filter.FilterOut(rec)
		switch {
		case ferr != nil:
			t.metrics.LabelParseFailure(topic)
			t.logger.Warn("Record withheld, unparseable security label",
				logger.String("topic", topic),
				logger.Int64("offset", rec.Offset),
				logger.Error(ferr),
			)
		case withheld:
			t.metrics.RecordDenied(topic)
		default:
			if err := t.streamRecord(ctx, rec, w); err != nil {
				return streamed, err
			}
			streamed++
			t.metrics.RecordStreamed(topic)
		}

		// The offset store is the resumption contract. If it cannot be
		// written the session must end, or a reconnecting client would
		// replay everything delivered since the write started failing.
		if err := t.offsets.SetOffset(ctx, clientID, topic, rec.Offset); err != nil {
			return streamed, newError(KindSourceUnavailable, fmt.Sprintf("persist offset %d for client %s topic %s", rec.Offset, clientID, topic), err)
		}
	}

	t.metrics.ObserveTransfer("topic", time.Since(began))
	t.logger.Info("Topic transfer complete",
		logger.String("client", clientID),
		logger.String("topic", topic),
		logger.Int("records_streamed", streamed),
	)
	return streamed, nil
}

// discardWriter drains chunks without keeping them. ProcessTopic uses
// it when a job caller wants the cursor advanced but no local copy.
type discardWriter struct{}

func (discardWriter) Send(*entity.TransferChunk) error { return nil }

// ProcessTopic runs one complete transfer session for clientID on topic
// and returns the number of records streamed. The streamed bytes are
// discarded; the call exists for job callers that drive the client's
// delivered cursor forward synchronously.
func (t *Session) ProcessTopic(ctx context.Context, clientID, topic string, grant accessfilter.Grant, startOffset int64) (int, error) {
	return t.RunTopicTransfer(ctx, clientID, topic, grant, startOffset, discardWriter{})
}

// ProcessTopicToFile runs one complete transfer session and appends
// every admitted record's verified chunk sequence to destinationPath.
// On failure the destination is removed rather than left truncated.
func (t *Session) ProcessTopicToFile(ctx context.Context, clientID, topic string, grant accessfilter.Grant, startOffset int64, destinationPath string) (int, error) {
	w, err := NewFileWriter(destinationPath)
	if err != nil {
		return 0, err
	}

	streamed, runErr := t.RunTopicTransfer(ctx, clientID, topic, grant, startOffset, w)
	if closeErr := w.Close(); closeErr != nil && runErr == nil {
		runErr = newError(KindFileIO, fmt.Sprintf("close %s", destinationPath), closeErr)
	}
	return streamed, runErr
}

// countingWriter records every chunk that reaches the recipient,
// terminal chunks included.
type countingWriter struct {
	w       streamer.ChunkWriter
	metrics Recorder
}

func (c countingWriter) Send(chunk *entity.TransferChunk) error {
	if err := c.w.Send(chunk); err != nil {
		return err
	}
	c.metrics.ChunkSent(len(chunk.Payload))
	return nil
}

// streamRecord delivers one admitted record: file-reference records are
// resolved against their object store and streamed from there, all
// others are streamed from their payload.
func (t *Session) streamRecord(ctx context.Context, rec *entity.Record, w streamer.ChunkWriter) error {
	req, isFile, err := entity.FileTransferFromRecord(rec)
	if err != nil {
		return newError(KindFileIO, fmt.Sprintf("file reference at offset %d", rec.Offset), err)
	}
	if isFile {
		return t.RunFileTransfer(ctx, req, rec.Offset, w)
	}
	if err := t.streamer.StreamBytes(ctx, rec.Topic, rec.Offset, rec.Payload, countingWriter{w, t.metrics}); err != nil {
		return newError(KindStreamTransport, fmt.Sprintf("stream record at offset %d", rec.Offset), err)
	}
	return nil
}

// RunFileTransfer streams one file from the requested object store to
// w as a checksummed chunk sequence.
func (t *Session) RunFileTransfer(ctx context.Context, req entity.FileTransferRequest, sequenceID int64, w streamer.ChunkWriter) error {
	began := time.Now()

	if err := req.Validate(); err != nil {
		return newError(KindConfiguration, "file transfer request", err)
	}

	store, err := t.stores.ForKind(req.SourceKind)
	if err != nil {
		return newError(KindConfiguration, fmt.Sprintf("source kind %s", req.SourceKind), err)
	}

	body, size, err := store.OpenObject(ctx, req.Container, req.Path)
	if err != nil {
		return newError(KindFileIO, fmt.Sprintf("open %s/%s", req.Container, req.Path), err)
	}
	defer body.Close()

	if err := t.streamer.Stream(ctx, req.Path, sequenceID, body, size, countingWriter{w, t.metrics}); err != nil {
		return newError(KindStreamTransport, fmt.Sprintf("stream %s/%s", req.Container, req.Path), err)
	}

	t.metrics.ObserveTransfer("file", time.Since(began))
	t.logger.Info("File transfer complete",
		logger.String("container", req.Container),
		logger.String("path", req.Path),
		logger.Int64("size", size),
	)
	return nil
}

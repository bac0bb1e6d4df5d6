package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
	"github.com/National-Digital-Twin/federator-sub004/internal/domain/repository"
	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

type fakeSource struct {
	records    []*entity.Record
	pollErr    error
	closed     bool
	closeCount int
	closeErr   error
}

func (f *fakeSource) Poll(timeout time.Duration) (*entity.Record, error) {
	if f.pollErr != nil {
		return nil, f.pollErr
	}
	if len(f.records) == 0 {
		return nil, nil
	}
	rec := f.records[0]
	f.records = f.records[1:]
	return rec, nil
}

func (f *fakeSource) Closed() bool {
	return f.closed
}

func (f *fakeSource) Close() error {
	f.closeCount++
	f.closed = true
	return f.closeErr
}

type fakeOpener struct {
	source  *fakeSource
	openErr error

	gotTopic  string
	gotOffset int64
}

func (f *fakeOpener) Open(ctx context.Context, topic string, startOffset int64) (repository.RecordSource, error) {
	f.gotTopic = topic
	f.gotOffset = startOffset
	if f.openErr != nil {
		return nil, f.openErr
	}
	return f.source, nil
}

func openSession(t *testing.T, source *fakeSource, pollInterval, idleTimeout time.Duration) *Session {
	t.Helper()
	c := New(&fakeOpener{source: source}, logger.Nop())
	session, err := c.Open(context.Background(), "knowledge", 0, pollInterval, idleTimeout)
	if err != nil {
		t.Fatalf("unexpected error opening session: %v", err)
	}
	return session
}

func TestOpen_PropagatesOffsetToSource(t *testing.T) {
	opener := &fakeOpener{source: &fakeSource{}}
	c := New(opener, logger.Nop())

	session, err := c.Open(context.Background(), "knowledge", 12, time.Second, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer session.Close()

	if opener.gotTopic != "knowledge" {
		t.Errorf("expected topic knowledge, got %s", opener.gotTopic)
	}
	if opener.gotOffset != 12 {
		t.Errorf("expected start offset 12, got %d", opener.gotOffset)
	}
	if session.State() != StateOpen {
		t.Errorf("expected state open, got %s", session.State())
	}
}

func TestOpen_InvalidTimings(t *testing.T) {
	c := New(&fakeOpener{source: &fakeSource{}}, logger.Nop())

	if _, err := c.Open(context.Background(), "t", 0, 0, time.Minute); err == nil {
		t.Error("expected error for zero poll interval")
	}
	if _, err := c.Open(context.Background(), "t", 0, time.Second, 0); err == nil {
		t.Error("expected error for zero idle timeout")
	}
}

func TestOpen_SourceFailure(t *testing.T) {
	c := New(&fakeOpener{openErr: errors.New("broker unreachable")}, logger.Nop())
	if _, err := c.Open(context.Background(), "t", 0, time.Second, time.Minute); err == nil {
		t.Fatal("expected open error to propagate")
	}
}

func TestPoll_ResetsLastRecordTime(t *testing.T) {
	source := &fakeSource{records: []*entity.Record{{Topic: "knowledge", Offset: 3}}}
	session := openSession(t, source, time.Millisecond, time.Hour)
	defer session.Close()

	base := time.Now()
	clock := base
	session.now = func() time.Time { return clock }
	session.lastRecordTime = base

	clock = base.Add(10 * time.Second)
	rec, err := session.Poll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil || rec.Offset != 3 {
		t.Fatalf("expected record at offset 3, got %+v", rec)
	}
	if !session.lastRecordTime.Equal(base.Add(10 * time.Second)) {
		t.Error("expected lastRecordTime to be reset on non-empty poll")
	}

	// Empty poll must not move lastRecordTime.
	clock = base.Add(20 * time.Second)
	rec, err = session.Poll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected empty poll, got %+v", rec)
	}
	if !session.lastRecordTime.Equal(base.Add(10 * time.Second)) {
		t.Error("expected lastRecordTime unchanged on empty poll")
	}
}

func TestPoll_ErrorIsRecoverable(t *testing.T) {
	source := &fakeSource{pollErr: errors.New("transient")}
	session := openSession(t, source, time.Millisecond, time.Hour)
	defer session.Close()

	if _, err := session.Poll(context.Background()); err == nil {
		t.Fatal("expected poll error to propagate")
	}
	// The session stays open; the caller decides what to do next.
	if session.State() != StateOpen {
		t.Errorf("expected state open after poll error, got %s", session.State())
	}
}

func TestStillAvailable_IdleTimeoutClosesSourceExactlyOnce(t *testing.T) {
	source := &fakeSource{}
	session := openSession(t, source, time.Millisecond, time.Minute)

	base := time.Now()
	session.now = func() time.Time { return base }
	session.lastRecordTime = base

	if !session.StillAvailable() {
		t.Fatal("expected session available before idle timeout")
	}

	// Exactly at the timeout boundary the session closes.
	session.now = func() time.Time { return base.Add(time.Minute) }
	if session.StillAvailable() {
		t.Fatal("expected session unavailable at idle timeout")
	}
	if source.closeCount != 1 {
		t.Errorf("expected source closed exactly once, closed %d times", source.closeCount)
	}
	if session.State() != StateClosed {
		t.Errorf("expected state closed, got %s", session.State())
	}

	// Further checks stay false without closing again.
	if session.StillAvailable() {
		t.Error("expected closed session to stay unavailable")
	}
	if err := session.Close(); err != nil {
		t.Errorf("unexpected error from Close: %v", err)
	}
	if source.closeCount != 1 {
		t.Errorf("expected no further closes, closed %d times", source.closeCount)
	}
}

func TestStillAvailable_SourceReportedClosure(t *testing.T) {
	source := &fakeSource{}
	session := openSession(t, source, time.Millisecond, time.Hour)

	source.closed = true
	if session.StillAvailable() {
		t.Fatal("expected session unavailable once source reports closed")
	}
	if session.State() != StateClosed {
		t.Errorf("expected state closed, got %s", session.State())
	}
}

func TestClose_IdempotentAndSwallowsSourceError(t *testing.T) {
	source := &fakeSource{closeErr: errors.New("flush failed")}
	session := openSession(t, source, time.Millisecond, time.Hour)

	if err := session.Close(); err != nil {
		t.Fatalf("close errors must be swallowed, got %v", err)
	}
	if err := session.Close(); err != nil {
		t.Fatalf("second close must be a no-op, got %v", err)
	}
	if source.closeCount != 1 {
		t.Errorf("expected source closed exactly once, closed %d times", source.closeCount)
	}
}

func TestPoll_AfterCloseFails(t *testing.T) {
	session := openSession(t, &fakeSource{}, time.Millisecond, time.Hour)
	_ = session.Close()

	if _, err := session.Poll(context.Background()); err == nil {
		t.Fatal("expected error polling a closed session")
	}
}

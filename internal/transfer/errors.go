package transfer

import (
	"errors"
	"fmt"
)

// Kind classifies a transfer failure. Per-resource kinds (LabelParse,
// StreamTransport, FileIO) are isolated to the failing unit; session
// kinds (SourceUnavailable, Configuration) terminate the session.
type Kind int

const (
	KindUnknown Kind = iota
	KindLabelParse
	KindSourceUnavailable
	KindStreamTransport
	KindFileIO
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindLabelParse:
		return "label_parse"
	case KindSourceUnavailable:
		return "source_unavailable"
	case KindStreamTransport:
		return "stream_transport"
	case KindFileIO:
		return "file_io"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Error carries a failure kind alongside the wrapped cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps cause with a kind and operation description.
func newError(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

// KindOf extracts the classification from err, or KindUnknown when err
// carries none.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}

package entity

import "fmt"

// SourceKind identifies where the bytes of a file transfer live.
type SourceKind string

const (
	SourceLocal        SourceKind = "LOCAL"
	SourceObjectStoreA SourceKind = "OBJECT_STORE_A"
	SourceObjectStoreB SourceKind = "OBJECT_STORE_B"
)

// Record headers that mark a record as a file-transfer reference. A record
// carrying FileKindHeader and FilePathHeader names a file to stream instead
// of the record payload.
const (
	FileKindHeader      = "x-file-kind"
	FileContainerHeader = "x-file-container"
	FilePathHeader      = "x-file-path"
)

// ParseSourceKind validates a raw source kind string.
func ParseSourceKind(raw string) (SourceKind, error) {
	switch SourceKind(raw) {
	case SourceLocal, SourceObjectStoreA, SourceObjectStoreB:
		return SourceKind(raw), nil
	default:
		return "", fmt.Errorf("unrecognised source kind: %q", raw)
	}
}

// FileTransferRequest describes a single file to be streamed. Transient,
// constructed per request, never persisted.
type FileTransferRequest struct {
	SourceKind SourceKind
	Container  string // empty for LOCAL
	Path       string
}

// Validate checks the request before any store is touched.
func (r FileTransferRequest) Validate() error {
	if _, err := ParseSourceKind(string(r.SourceKind)); err != nil {
		return err
	}
	if r.Path == "" {
		return fmt.Errorf("file transfer path cannot be blank")
	}
	return nil
}

// FileTransferFromRecord extracts a FileTransferRequest from a record's
// headers. The second return is false when the record does not reference
// a file.
func FileTransferFromRecord(rec *Record) (FileTransferRequest, bool, error) {
	rawKind, ok := rec.Headers[FileKindHeader]
	if !ok {
		return FileTransferRequest{}, false, nil
	}

	kind, err := ParseSourceKind(rawKind)
	if err != nil {
		return FileTransferRequest{}, true, err
	}

	req := FileTransferRequest{
		SourceKind: kind,
		Container:  rec.Headers[FileContainerHeader],
		Path:       rec.Headers[FilePathHeader],
	}
	if err := req.Validate(); err != nil {
		return FileTransferRequest{}, true, err
	}
	return req, true, nil
}

package transfer

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash"
	"os"
	"path/filepath"

	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
)

// FileWriter reassembles chunk sequences into a local file, verifying
// each resource's terminal checksum against the bytes actually written.
// It implements streamer.ChunkWriter on the receiving side and accepts
// several resources back to back, appending them in arrival order.
type FileWriter struct {
	file     *os.File
	path     string
	digest   hash.Hash
	written  int64 // bytes of the resource currently in flight
	pending  bool  // current resource has bytes but no terminal chunk yet
	complete int   // resources fully verified
}

// NewFileWriter creates the destination file, making parent directories
// as needed. An existing file at path is truncated.
func NewFileWriter(path string) (*FileWriter, error) {
	if path == "" {
		return nil, newError(KindConfiguration, "destination path is empty", nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, newError(KindFileIO, fmt.Sprintf("create parent directory for %s", path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, newError(KindFileIO, fmt.Sprintf("create %s", path), err)
	}
	return &FileWriter{file: f, path: path, digest: sha256.New()}, nil
}

// Send appends a data chunk to the file, or on a terminal chunk
// verifies the declared checksum and size against what was received
// and starts the next resource.
func (w *FileWriter) Send(c *entity.TransferChunk) error {
	if c.IsLastChunk {
		if c.FileSize != w.written {
			return newError(KindStreamTransport, fmt.Sprintf("size mismatch: declared %d, received %d", c.FileSize, w.written), nil)
		}
		got := base64.StdEncoding.EncodeToString(w.digest.Sum(nil))
		if got != c.Checksum {
			return newError(KindStreamTransport, fmt.Sprintf("checksum mismatch for %s", w.path), nil)
		}
		w.digest.Reset()
		w.written = 0
		w.pending = false
		w.complete++
		return nil
	}

	if _, err := w.file.Write(c.Payload); err != nil {
		return newError(KindFileIO, fmt.Sprintf("write %s", w.path), err)
	}
	w.digest.Write(c.Payload)
	w.written += int64(len(c.Payload))
	w.pending = true
	return nil
}

// Verified reports whether at least one resource arrived in full and no
// partial resource is outstanding.
func (w *FileWriter) Verified() bool {
	return w.complete > 0 && !w.pending
}

// Resources returns the number of fully verified resources received.
func (w *FileWriter) Resources() int {
	return w.complete
}

// Close closes the file. A file holding no verified resource, or ending
// in a truncated one, is removed so a failed transfer never leaves a
// plausible-looking artifact behind.
func (w *FileWriter) Close() error {
	err := w.file.Close()
	if !w.Verified() {
		if rmErr := os.Remove(w.path); rmErr != nil && err == nil {
			err = rmErr
		}
	}
	return err
}

// Package localfs implements the LOCAL file source. Paths are resolved
// under a configured base directory so a transfer request cannot escape
// the exported tree.
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

// Store implements repository.ObjectStore over a local directory.
type Store struct {
	baseDir string
	logger  *logger.Logger
}

// NewStore creates a local store rooted at baseDir.
func NewStore(baseDir string, log *logger.Logger) (*Store, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("base directory cannot be empty")
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	return &Store{baseDir: abs, logger: log}, nil
}

// OpenObject opens the file at path relative to the base directory. The
// container is ignored for local sources.
func (s *Store) OpenObject(ctx context.Context, container, path string) (io.ReadCloser, int64, error) {
	resolved := filepath.Join(s.baseDir, filepath.Clean("/"+path))
	if resolved != s.baseDir && !strings.HasPrefix(resolved, s.baseDir+string(os.PathSeparator)) {
		return nil, 0, fmt.Errorf("path %q escapes the export directory", path)
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, 0, fmt.Errorf("path %s is a directory", path)
	}

	s.logger.Debug("Opened local file",
		logger.String("path", resolved),
		logger.Int64("size", info.Size()),
	)

	return f, info.Size(), nil
}

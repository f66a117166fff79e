package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Backend names accepted by Open.
const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// Open builds a Store for the named backend rooted at dataDir.
func Open(backend, dataDir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch backend {
	case BackendFile, "":
		fb := NewFileBackend(dataDir)
		logger.Debug("Using file backend", "path", fb.Path())
		return New(fb, logger), nil
	case BackendBolt:
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
		path := filepath.Join(dataDir, Key+".db")
		bb, err := OpenBolt(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Using bolt backend", "path", path)
		return New(bb, logger), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %q", backend)
	}
}

// Package storage abstracts where the binary .glb assets live: a local
// directory in development, S3/MinIO in production.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"antique-models-store/internal/apperr"
)

// Store resolves a catalog fileUrl (e.g. "/models/madonna-and-child.glb")
// to the asset bytes.
type Store interface {
	Get(ctx context.Context, fileURL string) ([]byte, error)
}

type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{baseDir: baseDir}
}

func (s *LocalStore) Get(ctx context.Context, fileURL string) ([]byte, error) {
	rel := strings.TrimPrefix(fileURL, "/")
	path := filepath.Join(s.baseDir, filepath.FromSlash(rel))

	// the resolved path must stay inside the asset directory
	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve asset dir: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve asset path: %w", err)
	}
	if !strings.HasPrefix(abs, base+string(filepath.Separator)) {
		return nil, apperr.ErrNotFound
	}

	data, err := os.ReadFile(abs)
	if os.IsNotExist(err) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}

	return data, nil
}

package media

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store accepts a binary blob and returns a URL for it. Only the URL is
// persisted with a post; serving the blob is outside this service.
type Store interface {
	Save(filename string, data []byte) (url string, err error)
}

// LocalStore writes blobs under a directory and returns paths below a base
// URL. Stands in for the CDN-backed store in development.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) Save(filename string, data []byte) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

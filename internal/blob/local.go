package blob

import (
	"context"
	"os"
	"path/filepath"
)

// MediaURLPrefix is where the HTTP server exposes locally stored blobs.
const MediaURLPrefix = "/media/plants"

// LocalStore writes blobs to a directory on local disk. The server mounts
// the directory under MediaURLPrefix, so returned URLs resolve against the
// API host itself. Intended for development and single-node deployments.
type LocalStore struct {
	dir string
}

// NewLocalStore returns a Store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Dir returns the root directory blobs are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return MediaURLPrefix + "/" + key, nil
}

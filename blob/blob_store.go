// Package blob abstracts the opaque-key byte store attachments live in. The
// store is not transactional with the database; callers compensate on
// partial failure.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var ErrBlobNotFound = errors.New("blob not found")

type Store interface {
	Put(ctx context.Context, key string, data io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// DiskStore keeps blobs as flat files under one directory. The directory
// handle is created once, on first use, through an idempotent accessor; every
// caller shares the same handle.
type DiskStore struct {
	dir string

	once    sync.Once
	initErr error
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// bucket returns the shared directory handle, creating it on first call.
func (s *DiskStore) bucket() (string, error) {
	s.once.Do(func() {
		s.initErr = os.MkdirAll(s.dir, 0o755)
	})

	if s.initErr != nil {
		return "", fmt.Errorf("failed to open blob bucket %v: %w", s.dir, s.initErr)
	}

	return s.dir, nil
}

func (s *DiskStore) Put(ctx context.Context, key string, data io.Reader) error {
	dir, err := s.bucket()

	if err != nil {
		return err
	}

	path, err := keyPath(dir, key)

	if err != nil {
		return err
	}

	f, err := os.Create(path)

	if err != nil {
		return fmt.Errorf("failed to create blob %v: %w", key, err)
	}

	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write blob %v: %w", key, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close blob %v: %w", key, err)
	}

	return nil
}

func (s *DiskStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	dir, err := s.bucket()

	if err != nil {
		return nil, err
	}

	path, err := keyPath(dir, key)

	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)

	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrBlobNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open blob %v: %w", key, err)
	}

	return f, nil
}

func (s *DiskStore) Delete(ctx context.Context, key string) error {
	dir, err := s.bucket()

	if err != nil {
		return err
	}

	path, err := keyPath(dir, key)

	if err != nil {
		return err
	}

	err = os.Remove(path)

	if errors.Is(err, os.ErrNotExist) {
		return ErrBlobNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to delete blob %v: %w", key, err)
	}

	return nil
}

func keyPath(dir, key string) (string, error) {
	if key == "" || strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid blob key %q", key)
	}

	return filepath.Join(dir, key), nil
}

// Package file keeps a document in a file on local disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"shopapi/pkg/docstore"
)

var _ docstore.Backend = (*Backend)(nil)

// Backend persists a document to a single file.
type Backend struct {
	path string
}

// New returns a file backend for path. The file is not touched until the first Save.
func New(path string) *Backend {
	return &Backend{path: path}
}

// Load reads the whole file.
func (b *Backend) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, docstore.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", b.path, err)
	}
	return data, nil
}

// Save writes data to a temporary file next to the target and renames it into place.
func (b *Backend) Save(ctx context.Context, data []byte) error {
	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", b.path, err)
	}
	return nil
}

// Kind returns "file".
func (b *Backend) Kind() string { return "file" }

// Location returns the file path.
func (b *Backend) Location() string { return b.path }

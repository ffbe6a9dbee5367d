// Package memory implements a process-local document backend.
package memory

import (
	"context"
	"slices"
	"sync"

	"shopapi/pkg/docstore"
)

var _ docstore.Backend = (*Backend)(nil)

// Backend keeps the document in memory. Nothing survives a restart.
type Backend struct {
	mu  sync.RWMutex
	doc []byte
	ok  bool
}

// New creates an empty backend.
func New() *Backend {
	return &Backend{}
}

// NewWithDocument creates a backend already holding data.
func NewWithDocument(data []byte) *Backend {
	return &Backend{doc: slices.Clone(data), ok: true}
}

// Load returns a copy of the stored document.
func (b *Backend) Load(ctx context.Context) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.ok {
		return nil, docstore.ErrNotExist
	}
	return slices.Clone(b.doc), nil
}

// Save replaces the stored document.
func (b *Backend) Save(ctx context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc = slices.Clone(data)
	b.ok = true
	return nil
}

func (b *Backend) Kind() string     { return "memory" }
func (b *Backend) Location() string { return "memory" }

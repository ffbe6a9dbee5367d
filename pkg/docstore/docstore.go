// Package docstore loads and saves a single JSON document as a whole.
//
// Implementations replace the stored document in one step; a reader never sees half of a
// write.
package docstore

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Load when no document has been saved yet.
var ErrNotExist = errors.New("document does not exist")

// Backend stores one document.
type Backend interface {
	// Load returns the stored document or ErrNotExist.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored document.
	Save(ctx context.Context, data []byte) error
	// Kind names the backend type, e.g. "file".
	Kind() string
	// Location describes where the document lives, e.g. a file path.
	Location() string
}

package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"shopapi/pkg/docstore"
	"shopapi/pkg/logger"
)

var _ Repository = (*Table)(nil)

type document struct {
	Orders []Order `json:"orders"`
}

// Table caches the order document in memory and rewrites it through the
// backend on every insert.
type Table struct {
	mu       sync.Mutex
	database string
	backend  docstore.Backend
	log      *logger.Logger

	orders []Order
	seq    int64
}

// NewTable loads the order document from backend. A missing, unreadable or
// malformed document starts an empty table.
func NewTable(ctx context.Context, database string, backend docstore.Backend, log *logger.Logger) *Table {
	t := &Table{database: database, backend: backend, log: log}

	data, err := backend.Load(ctx)
	switch {
	case errors.Is(err, docstore.ErrNotExist):
		log.Info(ctx, "order document not found, starting empty", "location", backend.Location())
		return t
	case err != nil:
		log.Warn(ctx, "order document unreadable, starting empty", "location", backend.Location(), "error", err)
		return t
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn(ctx, "order document malformed, starting empty", "location", backend.Location(), "error", err)
		return t
	}

	t.orders = doc.Orders
	for _, o := range t.orders {
		t.seq = max(t.seq, o.ID)
	}
	log.Info(ctx, "order document loaded", "location", backend.Location(), "orders", len(t.orders))
	return t
}

// Create assigns the next id to o and persists the whole table.
func (t *Table) Create(ctx context.Context, o Order) (Order, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	o.ID = t.seq + 1
	next := append(slices.Clone(t.orders), o)

	data, err := json.MarshalIndent(document{Orders: next}, "", "  ")
	if err != nil {
		return Order{}, fmt.Errorf("encode orders: %w", err)
	}
	if err := t.backend.Save(ctx, data); err != nil {
		return Order{}, fmt.Errorf("save orders: %w", err)
	}

	t.orders = next
	t.seq = o.ID
	return o, nil
}

// List returns the cached orders in insertion order.
func (t *Table) List(ctx context.Context) ([]Order, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := slices.Clone(t.orders)
	if out == nil {
		out = []Order{}
	}
	return out, nil
}

// Info describes the table and where it is stored.
func (t *Table) Info(ctx context.Context) (Info, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Info{
		Database: t.database,
		DataFile: t.backend.Location(),
		Backend:  t.backend.Kind(),
		Tables: map[string]TableInfo{
			TableName: {Count: len(t.orders), Fields: slices.Clone(Schema)},
		},
	}, nil
}

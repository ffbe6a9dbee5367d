// Package postgres keeps a document as a row of the documents table in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"shopapi/pkg/docstore"
)

// Schema creates the table the backend writes to.
const Schema = `CREATE TABLE IF NOT EXISTS documents (name TEXT PRIMARY KEY, body TEXT NOT NULL, updated_at TIMESTAMPTZ NOT NULL DEFAULT now())`

var _ docstore.Backend = (*Backend)(nil)

// Backend persists one named document in PostgreSQL.
type Backend struct {
	db   *sql.DB
	name string
}

// Open connects with the lib/pq driver and ensures the documents table exists.
func Open(ctx context.Context, dsn, name string) (*Backend, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	b := New(db, name)
	if err := b.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

// New creates a backend on an existing connection. The caller must ensure the
// documents table exists, see Schema.
func New(db *sql.DB, name string) *Backend {
	return &Backend{db: db, name: name}
}

// Migrate creates the documents table if it is missing.
func (b *Backend) Migrate(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

// Load selects the document body.
func (b *Backend) Load(ctx context.Context) ([]byte, error) {
	var body string
	err := b.db.QueryRowContext(ctx, "SELECT body FROM documents WHERE name=$1", b.name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docstore.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("select document: %w", err)
	}
	return []byte(body), nil
}

// Save upserts the document body in a single statement.
func (b *Backend) Save(ctx context.Context, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		"INSERT INTO documents (name,body,updated_at) VALUES ($1,$2,now()) ON CONFLICT (name) DO UPDATE SET body=EXCLUDED.body, updated_at=EXCLUDED.updated_at",
		b.name, string(data))
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (b *Backend) Close() error { return b.db.Close() }

// Kind returns "postgres".
func (b *Backend) Kind() string { return "postgres" }

// Location returns "postgres:documents/<name>".
func (b *Backend) Location() string { return "postgres:documents/" + b.name }

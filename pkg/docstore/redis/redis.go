// Package redis keeps a document as a single Redis string value.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"shopapi/pkg/docstore"
)

// client is the subset of *goredis.Client the backend needs, so tests can fake it.
type client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Close() error
}

var _ docstore.Backend = (*Backend)(nil)

// Backend stores the document under one key; every Save overwrites the whole value.
type Backend struct {
	client client
	addr   string
	key    string
}

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, opts Options) (*Backend, error) {
	c := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		c.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewWithClient(c, opts.Addr, opts.Key), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(c client, addr, key string) *Backend {
	return &Backend{client: c, addr: addr, key: key}
}

// Load fetches the stored value.
func (b *Backend) Load(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, docstore.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

// Save overwrites the stored value without expiry.
func (b *Backend) Save(ctx context.Context, data []byte) error {
	if err := b.client.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (b *Backend) Close() error { return b.client.Close() }

// Kind returns "redis".
func (b *Backend) Kind() string { return "redis" }

// Location returns "redis://<addr>/<key>".
func (b *Backend) Location() string { return "redis://" + b.addr + "/" + b.key }

package main

import (
	"context"
	"fmt"

	"shopapi/pkg/config"
	"shopapi/pkg/docstore"
	"shopapi/pkg/docstore/file"
	"shopapi/pkg/docstore/memory"
	"shopapi/pkg/docstore/postgres"
	"shopapi/pkg/docstore/redis"
)

// openBackend selects the order document backend named by ORDERS_BACKEND.
func openBackend(ctx context.Context, cfg *config.Config) (docstore.Backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Orders.Backend {
	case "file", "":
		return file.New(cfg.Orders.Path()), noop, nil
	case "memory":
		return memory.New(), noop, nil
	case "redis":
		b, err := redis.New(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
		})
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	case "postgres":
		b, err := postgres.Open(ctx, cfg.Database.DSN, cfg.Orders.Database)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown orders backend %q", cfg.Orders.Backend)
	}
}

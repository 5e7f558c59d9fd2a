package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"better-food-logs/core/storage"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a flat key/value mapping holding serialized values.
type Store interface {
	// Get returns the value for key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// Open builds the store selected by cfg.Driver. The object driver needs a
// storage client, the memory and redis drivers ignore it.
func Open(ctx context.Context, cfg Config, client storage.Client, bucket string) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverObject:
		if client == nil {
			return nil, fmt.Errorf("kv: object driver requires a storage client")
		}
		if err := storage.EnsureBucket(ctx, client, bucket); err != nil {
			return nil, err
		}
		return NewObject(client, bucket, cfg.Prefix), nil
	case DriverRedis:
		rdb, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedis(rdb, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("kv: unsupported driver %q", cfg.Driver)
	}
}

// Key joins namespace and name the way every backend lays out keys.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*Object)(nil)
	_ Store = (*Redis)(nil)
)

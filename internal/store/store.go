// Package store provides the durable key-value stores behind the onboarding
// pipeline. Values are JSON encoded, so any JSON-serializable step payload can
// be stored and read back into a typed destination.
package store

import (
	"context"
	"fmt"

	"rewardstracker/internal/config"
)

// Store is a durable string-keyed store of JSON values.
type Store interface {
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error
	// Get decodes the value under key into dest. It reports false, and leaves
	// dest untouched, when the key is absent.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite, "":
		return OpenSQLite(cfg.Path)
	case config.StoreDriverRedis:
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisNamespace)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

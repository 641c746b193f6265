package cache

import (
	"context"
	"errors"
)

const (
	ProductsKey = "catalog:products"
	ServicesKey = "catalog:services"
)

var (
	ErrCacheMiss = errors.New("cache miss")
	// ErrStaleGeneration is returned by SetIfGeneration when the key was
	// invalidated after the caller read its generation.
	ErrStaleGeneration = errors.New("cache generation changed")
)

// CatalogCache stores JSON snapshots of the catalog listings.
//
// Readers that fill the cache after a miss read Generation before querying
// the source of truth and pass it to SetIfGeneration. Delete bumps the
// generation, so a snapshot taken before an invalidation is never stored.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Generation(ctx context.Context, key string) (int64, error)
	SetIfGeneration(ctx context.Context, key string, generation int64, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// NoopCache always misses. It is used when no Redis address is configured.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, interface{}) error { return ErrCacheMiss }

func (NoopCache) Generation(context.Context, string) (int64, error) { return 0, nil }

func (NoopCache) SetIfGeneration(context.Context, string, int64, interface{}) error { return nil }

func (NoopCache) Delete(context.Context, ...string) error { return nil }

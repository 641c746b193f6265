package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/cache"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// publishEvent does not fail the caller: the write it reports is already
// committed.
func publishEvent(ctx context.Context, publisher EventPublisher, eventType, key string, data interface{}) {
	if err := publisher.Publish(ctx, eventType, key, data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}

func invalidateCache(ctx context.Context, c cache.CatalogCache, keys ...string) {
	if err := c.Delete(ctx, keys...); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "invalidateCache").Strs("keys", keys).Msg("")
	}
}

// fillCache stores a listing read after a miss. A snapshot invalidated while
// it was being read is dropped.
func fillCache(ctx context.Context, c cache.CatalogCache, key string, generation int64, value interface{}) {
	err := c.SetIfGeneration(ctx, key, generation, value)
	if errors.Is(err, cache.ErrStaleGeneration) {
		log.Ctx(ctx).Debug().Str("component", "fillCache").Str("key", key).Msg("listing changed during read, not cached")
		return
	}
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "fillCache").Str("key", key).Msg("cache write failed")
	}
}

func parsePrice(field, value string) (float64, error) {
	price, err := decimal.NewFromString(value)
	if err != nil || price.IsNegative() {
		return 0, fmt.Errorf("%w: %s must be a non-negative number", errs.ErrClient, field)
	}

	return price.Round(2).InexactFloat64(), nil
}

// Package ratelimit builds the request limiters used by the HTTP layer.
package ratelimit

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/shop-ledger/backend/config"
)

const storePrefix = "shop_ledger_limiter"

// NewLoginLimiter creates the per-IP login limiter. It returns nil when rate
// limiting is disabled. A non-empty redisURL selects a shared redis store,
// otherwise counters live in process memory.
func NewLoginLimiter(cfg config.RateLimitConfig, redisURL string) (*limiter.Limiter, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", cfg.Rate, err)
	}

	store, err := newStore(redisURL)
	if err != nil {
		return nil, err
	}
	return limiter.New(store, rate), nil
}

func newStore(redisURL string) (limiter.Store, error) {
	if redisURL == "" {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: storePrefix}), nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(redis.NewClient(opts), limiter.StoreOptions{Prefix: storePrefix})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
	}
	return store, nil
}

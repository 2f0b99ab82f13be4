package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	marketSummaryKeyPrefix    = "market:summary:"
	marketGenerationKeyPrefix = "market:generation:"
	defaultMarketSummaryTTL   = 5 * time.Minute
)

// KEYS[1] generation, KEYS[2] summary; ARGV[1] expected generation,
// ARGV[2] payload, ARGV[3] ttl in milliseconds.
var setIfGenerationScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// MarketSummaryRedisCache stores MarketSummary values as JSON under
// market:summary:<product_id>. market:generation:<product_id> counts
// invalidations and guards fills.
type MarketSummaryRedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.IMarketSummaryCache = (*MarketSummaryRedisCache)(nil)

func NewMarketSummaryRedisCache(client redis.Cmdable, ttl time.Duration) *MarketSummaryRedisCache {
	if ttl <= 0 {
		ttl = defaultMarketSummaryTTL
	}
	return &MarketSummaryRedisCache{client: client, ttl: ttl}
}

func marketSummaryKey(productID string) string {
	return marketSummaryKeyPrefix + productID
}

func marketGenerationKey(productID string) string {
	return marketGenerationKeyPrefix + productID
}

func (c *MarketSummaryRedisCache) Get(ctx context.Context, productID string) (entities.MarketSummary, bool, error) {
	val, err := c.client.Get(ctx, marketSummaryKey(productID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.MarketSummary{}, false, nil
		}
		return entities.MarketSummary{}, false, fmt.Errorf("failed to get market summary from Redis: %w", err)
	}

	var summary entities.MarketSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return entities.MarketSummary{}, false, fmt.Errorf("failed to unmarshal market summary: %w", err)
	}
	return summary, true, nil
}

// Generation returns the invalidation counter of a product, 0 when never invalidated.
func (c *MarketSummaryRedisCache) Generation(ctx context.Context, productID string) (int64, error) {
	gen, err := c.client.Get(ctx, marketGenerationKey(productID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get market generation from Redis: %w", err)
	}
	return gen, nil
}

func (c *MarketSummaryRedisCache) SetIfGeneration(ctx context.Context, productID string, generation int64, summary entities.MarketSummary) (bool, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return false, fmt.Errorf("failed to marshal market summary: %w", err)
	}
	stored, err := setIfGenerationScript.Run(ctx, c.client,
		[]string{marketGenerationKey(productID), marketSummaryKey(productID)},
		strconv.FormatInt(generation, 10), string(data), c.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to store market summary in Redis: %w", err)
	}
	return stored == 1, nil
}

// Invalidate bumps the generation before dropping the entry, so an in-flight
// fill that read the old generation can no longer store.
func (c *MarketSummaryRedisCache) Invalidate(ctx context.Context, productID string) error {
	if err := c.client.Incr(ctx, marketGenerationKey(productID)).Err(); err != nil {
		return fmt.Errorf("failed to bump market generation: %w", err)
	}
	if err := c.client.Del(ctx, marketSummaryKey(productID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate market summary: %w", err)
	}
	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"campus-teamup/internal/model"

	"github.com/redis/go-redis/v9"
)

const publicCardsKey = "teamup:public_cards"

// PublicCardCache stores the full public card pool as one JSON blob with a
// TTL. The pool is small (tens to low hundreds of cards), so a single key is
// cheaper than per-card entries. Cache misses and errors are indistinguishable
// to callers; both mean "go to the repository".
type PublicCardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPublicCardCache creates a cache with the given TTL.
func NewPublicCardCache(client *redis.Client, ttl time.Duration) *PublicCardCache {
	return &PublicCardCache{client: client, ttl: ttl}
}

// Get returns the cached public pool, or (nil, false) on miss or error.
func (c *PublicCardCache) Get(ctx context.Context) ([]model.IntentCard, bool) {
	raw, err := c.client.Get(ctx, publicCardsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var cards []model.IntentCard
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, false
	}
	return cards, true
}

// Set stores the public pool. Serialization failures are returned; callers
// treat them as non-fatal.
func (c *PublicCardCache) Set(ctx context.Context, cards []model.IntentCard) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, publicCardsKey, raw, c.ttl).Err()
}

// Invalidate drops the cached pool, e.g. after a card mutation.
func (c *PublicCardCache) Invalidate(ctx context.Context) error {
	err := c.client.Del(ctx, publicCardsKey).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

package ridesharing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DefaultCacheExpiration = 2 * time.Minute

// CachedConnector remembers the offers a connector returned for a leg so repeated plans for the
// same leg do not hit the provider again. Failures are never cached.
type CachedConnector struct {
	Connector  Connector
	Cache      *cache.Cache[string]
	Expiration time.Duration
}

func NewCachedConnector(connector Connector, client *redis.Client, expiration time.Duration) *CachedConnector {
	if expiration <= 0 {
		expiration = DefaultCacheExpiration
	}

	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	return &CachedConnector{
		Connector:  connector,
		Cache:      cache.New[string](redisStore),
		Expiration: expiration,
	}
}

func (c *CachedConnector) Provider() ProviderConfig {
	return c.Connector.Provider()
}

func (c *CachedConnector) cacheKey(request Request) string {
	return fmt.Sprintf("ridesharing_offers:%s:%s", c.Connector.Provider().ID, request.Key())
}

func (c *CachedConnector) Fetch(ctx context.Context, request Request) ([]Offer, error) {
	providerID := c.Connector.Provider().ID
	key := c.cacheKey(request)

	cachedValue, err := c.Cache.Get(ctx, key)
	if err == nil && cachedValue != "" {
		var offers []Offer
		if err := json.Unmarshal([]byte(cachedValue), &offers); err == nil {
			cacheLookups.WithLabelValues(providerID, "hit").Inc()
			return offers, nil
		}

		log.Warn().Str("provider", providerID).Str("key", key).Msg("Discarding unreadable cached offers")
	}
	cacheLookups.WithLabelValues(providerID, "miss").Inc()

	offers, err := c.Connector.Fetch(ctx, request)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(offers)
	if err != nil {
		log.Error().Err(err).Str("provider", providerID).Msg("Failed to encode offers for cache")
		return offers, nil
	}

	if err := c.Cache.Set(ctx, key, string(encoded), store.WithExpiration(c.Expiration)); err != nil {
		log.Error().Err(err).Str("provider", providerID).Msg("Failed to store offers in cache")
	}

	return offers, nil
}

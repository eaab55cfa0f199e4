// concept.go provides a Valkey-backed cache of serialized concept JSON.
// Concept reads are frequent during client presentations while writes are
// rare, so a short TTL plus invalidate-on-mutation keeps reads off the
// store without staleness concerns.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"mindtoeye/internal/models"
)

const (
	// conceptKeyPrefix is the Valkey key prefix for cached concepts.
	conceptKeyPrefix = "concept:"

	// DefaultConceptTTL is how long a concept stays cached.
	DefaultConceptTTL = 5 * time.Minute
)

// ConceptCache caches serialized brand concepts in Valkey. A nil
// *ConceptCache is valid and behaves as a permanent miss, so callers never
// need to branch on whether caching is configured.
type ConceptCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewConceptCache creates a concept cache backed by the given Valkey client.
// Returns nil when client is nil.
func NewConceptCache(client *redis.Client, ttl time.Duration) *ConceptCache {
	if client == nil {
		return nil
	}
	if ttl == 0 {
		ttl = DefaultConceptTTL
	}
	return &ConceptCache{client: client, ttl: ttl}
}

// Get retrieves a cached concept by id. The second return is false on miss.
func (cc *ConceptCache) Get(ctx context.Context, id int) (models.BrandConcept, bool) {
	if cc == nil {
		return models.BrandConcept{}, false
	}

	val, err := cc.client.Get(ctx, conceptKey(id)).Bytes()
	if err == redis.Nil {
		return models.BrandConcept{}, false
	}
	if err != nil {
		slog.Warn("concept cache get error", "id", id, "error", err)
		return models.BrandConcept{}, false
	}

	var c models.BrandConcept
	if err := json.Unmarshal(val, &c); err != nil {
		slog.Warn("concept cache decode error", "id", id, "error", err)
		return models.BrandConcept{}, false
	}
	return c, true
}

// Set stores a concept with the configured TTL.
func (cc *ConceptCache) Set(ctx context.Context, c models.BrandConcept) {
	if cc == nil {
		return
	}

	payload, err := json.Marshal(c)
	if err != nil {
		slog.Warn("concept cache encode error", "id", c.ID, "error", err)
		return
	}
	if err := cc.client.Set(ctx, conceptKey(c.ID), payload, cc.ttl).Err(); err != nil {
		slog.Warn("concept cache set error", "id", c.ID, "error", err)
	}
}

// Invalidate removes a concept from the cache. Called on every concept
// mutation: facet merge, activation, delete.
func (cc *ConceptCache) Invalidate(ctx context.Context, id int) {
	if cc == nil {
		return
	}
	if err := cc.client.Del(ctx, conceptKey(id)).Err(); err != nil {
		slog.Warn("concept cache invalidate error", "id", id, "error", err)
	}
}

func conceptKey(id int) string {
	return conceptKeyPrefix + strconv.Itoa(id)
}

package predictions

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"career-predictor/internal/projection"
	"career-predictor/internal/resumeparse"
	"career-predictor/internal/shared/util"
)

// Cache stores computed predictions by cache key.
type Cache interface {
	Get(ctx context.Context, key string) (projection.Prediction, bool, error)
	Set(ctx context.Context, key string, p projection.Prediction) error
	Ping(ctx context.Context) error
}

// CacheKey identifies a projection by record fingerprint, role, horizon, clock
// year and enrichment. Texts sharing a parseId can still parse differently,
// so the parseId prefix is informational only. An empty key means the result
// must not be cached.
func CacheKey(rec resumeparse.Record, role projection.Role, t projection.Timeframe, year int, extra projection.Enrichment) string {
	record, err := json.Marshal(rec)
	if err != nil {
		return ""
	}
	enrichment := "none"
	if !extra.IsZero() {
		if raw, err := json.Marshal(extra); err == nil {
			enrichment = util.Fingerprint(string(raw))[:16]
		}
	}
	return fmt.Sprintf("%s|%s|%s|%d|%d|%s", rec.ParseID, util.Fingerprint(string(record))[:16], role, t.Days(), year, enrichment)
}

func encodePrediction(p projection.Prediction) ([]byte, error) {
	return json.Marshal(p)
}

func decodePrediction(data []byte) (projection.Prediction, error) {
	var p projection.Prediction
	if err := json.Unmarshal(data, &p); err != nil {
		return projection.Prediction{}, fmt.Errorf("decode cached prediction: %w", err)
	}
	return p, nil
}

// MemoryCache is an in-process Cache with TTL expiry and a size bound. It
// stores encoded predictions so callers cannot mutate cached values.
type MemoryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	entries    map[string]cacheEntry
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
	storedAt  time.Time
}

// NewMemoryCache builds a MemoryCache. A zero ttl disables expiry and a zero
// maxEntries disables the bound.
func NewMemoryCache(ttl time.Duration, maxEntries int, now func() time.Time) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
		entries:    make(map[string]cacheEntry),
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) (projection.Prediction, bool, error) {
	if err := ctx.Err(); err != nil {
		return projection.Prediction{}, false, err
	}
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && c.expired(entry) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return projection.Prediction{}, false, nil
	}
	p, err := decodePrediction(entry.data)
	if err != nil {
		return projection.Prediction{}, false, err
	}
	return p, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, p projection.Prediction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodePrediction(p)
	if err != nil {
		return err
	}
	now := c.now()
	entry := cacheEntry{data: data, storedAt: now}
	if c.ttl > 0 {
		entry.expiresAt = now.Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = entry
	return nil
}

func (c *MemoryCache) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Len reports the number of live entries.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if !c.expired(e) {
			n++
		}
	}
	return n
}

func (c *MemoryCache) expired(e cacheEntry) bool {
	return !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt)
}

// evictLocked drops expired entries, then the oldest one if still full.
func (c *MemoryCache) evictLocked() {
	for k, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) < c.maxEntries {
		return
	}
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.storedAt.Before(oldest) || (e.storedAt.Equal(oldest) && k < oldestKey) {
			oldestKey, oldest = k, e.storedAt
		}
	}
	delete(c.entries, oldestKey)
}

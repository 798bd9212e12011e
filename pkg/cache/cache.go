// Package cache is an expiring response cache on top of the shared durable
// store. Caching is best-effort: a failed write is logged and swallowed, a
// corrupt or expired entry reads as absent.
package cache

import (
	"encoding/json"
	"log"
	"time"

	"github.com/cinepick/cinepick/pkg/storage"
)

// DefaultTTL bounds how old a cached payload may be when read back.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "tmdb_cache_"

// entry is the stored envelope. Timestamp is epoch milliseconds at write
// time.
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Cache reads and writes TTL-bounded entries in a storage.KV.
type Cache struct {
	kv  storage.KV
	ttl time.Duration

	now func() time.Time
}

// New creates a Cache over kv. A non-positive ttl falls back to DefaultTTL.
func New(kv storage.KV, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{kv: kv, ttl: ttl, now: time.Now}
}

// Set stores v under key. Failures are logged, never returned: the caller's
// primary path must not depend on the cache.
func (c *Cache) Set(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache: marshal %q: %v", key, err)
		return
	}
	raw, err := json.Marshal(entry{
		Data:      data,
		Timestamp: c.now().UnixMilli(),
	})
	if err != nil {
		log.Printf("cache: marshal entry %q: %v", key, err)
		return
	}
	if err := c.kv.Set(keyPrefix+key, string(raw)); err != nil {
		log.Printf("cache: write %q: %v", key, err)
	}
}

// Get unmarshals the entry for key into dst and reports whether a fresh
// entry existed. Expired entries are deleted on read; expiry is never
// swept in the background.
func (c *Cache) Get(key string, dst any) bool {
	raw, ok, err := c.kv.Get(keyPrefix + key)
	if err != nil {
		log.Printf("cache: read %q: %v", key, err)
		return false
	}
	if !ok {
		return false
	}

	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return false
	}

	age := c.now().UnixMilli() - e.Timestamp
	if age > c.ttl.Milliseconds() {
		if err := c.kv.Remove(keyPrefix + key); err != nil {
			log.Printf("cache: remove expired %q: %v", key, err)
		}
		return false
	}

	return json.Unmarshal(e.Data, dst) == nil
}

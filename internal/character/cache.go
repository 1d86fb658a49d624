package character

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedEntry wraps a character with version metadata for cache invalidation
type cachedEntry struct {
	Version   string
	Character *domain.Character
	CachedAt  time.Time
}

// characterCache provides an in-memory LRU cache for character lookups keyed
// by Discord ID, with time-based expiration and version-based invalidation.
type characterCache struct {
	lru *expirable.LRU[string, *cachedEntry]
}

func newCharacterCache(size int, ttl time.Duration) *characterCache {
	return &characterCache{
		lru: expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

// Get retrieves a character from the cache. Entries with a stale schema
// version are dropped on read.
func (c *characterCache) Get(discordID string) (*domain.Character, bool) {
	entry, found := c.lru.Get(discordID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(discordID)
		return nil, false
	}

	return entry.Character, true
}

// Set stores a character in the cache with the current schema version.
func (c *characterCache) Set(discordID string, character *domain.Character) {
	c.lru.Add(discordID, &cachedEntry{
		Version:   CacheSchemaVersion,
		Character: character,
		CachedAt:  time.Now(),
	})
}

// Invalidate removes a character from the cache after a mutation.
func (c *characterCache) Invalidate(discordID string) {
	c.lru.Remove(discordID)
}

// Clear removes all entries from the cache.
func (c *characterCache) Clear() {
	c.lru.Purge()
}

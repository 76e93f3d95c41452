package leaderboard

import (
	"sync"
	"time"
)

// resultCache memoizes ranked boards for a short TTL. Entries are immutable
// once stored: a stale key is recomputed and replaced whole, never patched.
type resultCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]cacheItem
}

type cacheItem struct {
	board   *Board
	expires time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{ttl: ttl, items: make(map[string]cacheItem)}
}

func (c *resultCache) get(key string, now time.Time) (*Board, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok || now.After(item.expires) {
		delete(c.items, key)
		return nil, false
	}
	return item.board, true
}

func (c *resultCache) put(key string, board *Board, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{board: board, expires: now.Add(c.ttl)}
}

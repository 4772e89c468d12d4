package bot

import (
	"sync"

	"tractor/internal/domain"
)

// CacheKey identifies a unique decision point: the same trick state seen by
// the same seat always yields the same recommendation.
type CacheKey struct {
	Tricks   int
	TrickLen int
	Seat     int
}

func cacheKey(game *domain.Game, seat int) CacheKey {
	k := CacheKey{Tricks: len(game.CompletedTricks), Seat: seat}
	if game.CurrentTrick != nil {
		k.TrickLen = len(game.CurrentTrick.Plays)
	}
	return k
}

// DecisionCache memoizes decisions within a round. It is safe for concurrent
// use; one engine may serve several seats at once.
type DecisionCache struct {
	mu      sync.RWMutex
	entries map[CacheKey]Decision
}

func NewDecisionCache() *DecisionCache {
	return &DecisionCache{entries: make(map[CacheKey]Decision)}
}

func (c *DecisionCache) Get(key CacheKey) (Decision, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.entries[key]
	return d, ok
}

func (c *DecisionCache) Put(key CacheKey, d Decision) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = d
}

// Invalidate drops every cached decision. Call it between rounds, or any
// time the snapshot changes outside the trick counters the key tracks.
func (c *DecisionCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[CacheKey]Decision)
}

// Len reports the number of cached decisions.
func (c *DecisionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

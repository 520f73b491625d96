package cache

import (
	"sync"

	"power4/game"
)

// Shared is a cache safe for concurrent use. Copies of the *Shared handle
// all refer to the same table. Lookups run concurrently, Remember and Clear
// take exclusive access, and no lock is held once a method returns.
type Shared struct {
	mu      sync.RWMutex
	entries map[key]Entry
}

func NewShared() *Shared {
	return &Shared{entries: make(map[key]Entry)}
}

func (c *Shared) Lookup(position game.Position, player game.Player) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key{position, player}]
	return e, ok
}

func (c *Shared) Remember(position game.Position, player game.Player, column int, outcome game.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key{position, player}] = Entry{Column: column, Outcome: outcome}
}

func (c *Shared) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

func (c *Shared) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

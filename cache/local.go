package cache

import "power4/game"

// Local is a cache owned by a single goroutine. It is not safe for
// concurrent use: wrap evaluators that run on several goroutines around a
// Shared cache instead.
type Local struct {
	entries map[key]Entry
}

func NewLocal() *Local {
	return &Local{entries: make(map[key]Entry)}
}

func (c *Local) Lookup(position game.Position, player game.Player) (Entry, bool) {
	e, ok := c.entries[key{position, player}]
	return e, ok
}

func (c *Local) Remember(position game.Position, player game.Player, column int, outcome game.Outcome) {
	c.entries[key{position, player}] = Entry{Column: column, Outcome: outcome}
}

func (c *Local) Clear() {
	clear(c.entries)
}

func (c *Local) Len() int {
	return len(c.entries)
}

// Package cache memoizes exact search results by position and player to move.
package cache

import "power4/game"

// Entry is a remembered best column with the exact outcome it leads to
type Entry struct {
	Column  int
	Outcome game.Outcome
}

type key struct {
	position game.Position
	player   game.Player
}

// Cache stores exact outcomes only. Entries are never evicted, a later
// Remember for the same key overwrites the earlier one.
type Cache interface {
	// Lookup returns the remembered entry for the player to move in the position
	Lookup(position game.Position, player game.Player) (Entry, bool)
	// Remember stores the best column and its exact outcome
	Remember(position game.Position, player game.Player, column int, outcome game.Outcome)
	Clear()
	Len() int
}

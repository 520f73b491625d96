package searcher

import (
	"power4/game"
	"power4/pool"
)

// Blocking exposes a SyncEvaluator as an AsyncEvaluator by running each
// evaluation on a dedicated goroutine. Polling the result blocks until the
// evaluation ends, so the caller's loop stalls for the whole search.
type Blocking struct {
	inner SyncEvaluator
}

func NewBlocking(inner SyncEvaluator) *Blocking {
	return &Blocking{inner: inner}
}

func (b *Blocking) EvaluateAsync(position game.Position, player game.Player) pool.Awaitable[Result] {
	return pool.NewBlocking(func() Result {
		move, estimation := b.inner.Evaluate(position, player)
		return Result{Move: move, Estimation: estimation}
	})
}

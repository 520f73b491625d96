package searcher

import (
	"power4/game"
	"power4/pool"
)

// Pooled fans the legal moves of a position out to a worker pool, each move
// evaluated by the inner evaluator, and folds the results once all of them
// are in. The inner evaluator is shared by the workers and must be safe for
// concurrent use.
type Pooled struct {
	inner SyncEvaluator
	pool  *pool.Pool
}

// NewPooled wraps the inner evaluator. A nil pool selects the shared one.
func NewPooled(inner SyncEvaluator, p *pool.Pool) *Pooled {
	if p == nil {
		p = pool.Shared()
	}
	return &Pooled{inner: inner, pool: p}
}

func (e *Pooled) EvaluateAsync(position game.Position, player game.Player) pool.Awaitable[Result] {
	if outcome, over := position.End(); over {
		return pool.Ready(Result{Move: game.MustMove(center, player), Estimation: Exact(outcome)})
	}

	children := position.LegalMoves(player)
	parts := make([]pool.Awaitable[Scored[game.Move]], len(children))
	for i, child := range children {
		child := child
		move := game.MustMove(child.Column, player)
		if child.Over {
			parts[i] = pool.Ready(Scored[game.Move]{Choice: move, Estimation: Exact(child.Outcome)})
			continue
		}
		parts[i] = pool.Execute(e.pool, func() Scored[game.Move] {
			_, estimation := e.inner.Evaluate(child.Position, player.Other())
			return Scored[game.Move]{Choice: move, Estimation: estimation}
		})
	}

	return pool.Join(parts, func(results []Scored[game.Move]) Result {
		best := BestFor(results, player)
		return Result{Move: best.Choice, Estimation: best.Estimation}
	})
}

// Evaluate blocks the calling goroutine until the pool is done
func (e *Pooled) Evaluate(position game.Position, player game.Player) (game.Move, Estimation) {
	r := pool.Await(e.EvaluateAsync(position, player))
	return r.Move, r.Estimation
}

package searcher

import (
	"power4/game"

	"golang.org/x/sync/errgroup"
)

// Threaded evaluates every legal move on its own goroutine with the inner
// evaluator, then keeps the best one. It parallelizes a single level: wrap
// it around an evaluator one ply shallower than the wanted depth, and do not
// nest it.
type Threaded struct {
	inner SyncEvaluator
}

// NewThreaded wraps the inner evaluator, which must be safe for concurrent use
func NewThreaded(inner SyncEvaluator) *Threaded {
	return &Threaded{inner: inner}
}

func (t *Threaded) Evaluate(position game.Position, player game.Player) (game.Move, Estimation) {
	if outcome, over := position.End(); over {
		return game.MustMove(center, player), Exact(outcome)
	}

	children := position.LegalMoves(player)
	scored := make([]Scored[game.Move], len(children))

	var g errgroup.Group
	for i, child := range children {
		i, child := i, child
		move := game.MustMove(child.Column, player)
		if child.Over {
			scored[i] = Scored[game.Move]{Choice: move, Estimation: Exact(child.Outcome)}
			continue
		}
		g.Go(func() error {
			_, estimation := t.inner.Evaluate(child.Position, player.Other())
			scored[i] = Scored[game.Move]{Choice: move, Estimation: estimation}
			return nil
		})
	}
	_ = g.Wait() // Evaluations never fail

	best := BestFor(scored, player)
	return best.Choice, best.Estimation
}

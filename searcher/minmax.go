package searcher

import (
	"power4/experiments/metrics"
	"power4/game"
)

// MinMax searches every line of play up to a fixed depth, without pruning
type MinMax struct {
	depth   int
	metrics metrics.Collector
}

func NewMinMax(depth int, opts ...Option) *MinMax {
	if depth < 0 {
		panic("search depth cannot be negative")
	}
	o := newOptions(opts)
	return &MinMax{depth: depth, metrics: o.metrics}
}

func (m *MinMax) Depth() int {
	return m.depth
}

func (m *MinMax) Evaluate(position game.Position, player game.Player) (game.Move, Estimation) {
	column, estimation := m.max(position, player, m.depth)
	return game.MustMove(column, player), estimation
}

func (m *MinMax) max(position game.Position, player game.Player, depth int) (int, Estimation) {
	m.metrics.AddNode()

	if outcome, over := position.End(); over {
		return center, Exact(outcome)
	}
	if depth == 0 {
		return center, Heuristic(position.NaiveEval())
	}

	children := position.LegalMoves(player)
	scored := make([]Scored[int], len(children))
	for i, child := range children {
		if child.Over {
			scored[i] = Scored[int]{Choice: child.Column, Estimation: Exact(child.Outcome)}
			continue
		}
		// Estimations share one orientation, the child's value needs no flip
		_, estimation := m.max(child.Position, player.Other(), depth-1)
		scored[i] = Scored[int]{Choice: child.Column, Estimation: estimation}
	}

	best := BestFor(scored, player)
	return best.Choice, best.Estimation
}

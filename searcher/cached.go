package searcher

import (
	"power4/cache"
	"power4/experiments/metrics"
	"power4/game"

	"github.com/rs/zerolog/log"
)

// MinMaxCached is MinMax with a transposition cache of exact results.
// Heuristic results depend on the remaining depth and are never cached.
// Every line of play fills the board after the same number of plies, so a
// stall is only found when no line below it stopped on a heuristic: cached
// entries stay valid for later searches of any depth.
// Use a cache.Shared when the evaluator runs on several goroutines.
type MinMaxCached struct {
	depth   int
	cache   cache.Cache
	metrics metrics.Collector
}

func NewMinMaxCached(depth int, c cache.Cache, opts ...Option) *MinMaxCached {
	if depth < 0 {
		panic("search depth cannot be negative")
	}
	if c == nil {
		panic("cached search needs a cache")
	}
	o := newOptions(opts)
	return &MinMaxCached{depth: depth, cache: c, metrics: o.metrics}
}

func (m *MinMaxCached) Depth() int {
	return m.depth
}

// KnowledgeSize returns the number of cached positions
func (m *MinMaxCached) KnowledgeSize() int {
	return m.cache.Len()
}

func (m *MinMaxCached) Evaluate(position game.Position, player game.Player) (game.Move, Estimation) {
	column, estimation := m.max(position, player, m.depth)
	return game.MustMove(column, player), estimation
}

func (m *MinMaxCached) max(position game.Position, player game.Player, depth int) (int, Estimation) {
	m.metrics.AddNode()

	if outcome, over := position.End(); over {
		return center, Exact(outcome)
	}
	if depth == 0 {
		return center, Heuristic(position.NaiveEval())
	}

	opponent := player.Other()
	children := position.LegalMoves(player)
	scored := make([]Scored[int], len(children))
	for i, child := range children {
		if child.Over {
			scored[i] = Scored[int]{Choice: child.Column, Estimation: Exact(child.Outcome)}
			continue
		}

		if entry, ok := m.cache.Lookup(child.Position, opponent); ok {
			m.metrics.AddCacheHit()
			log.Trace().Msgf("cache hit: %s", entry.Outcome)
			scored[i] = Scored[int]{Choice: child.Column, Estimation: Exact(entry.Outcome)}
			continue
		}

		reply, estimation := m.max(child.Position, opponent, depth-1)
		if outcome, exact := estimation.Outcome(); exact {
			m.cache.Remember(child.Position, opponent, reply, outcome)
		}
		scored[i] = Scored[int]{Choice: child.Column, Estimation: estimation}
	}

	best := BestFor(scored, player)
	return best.Choice, best.Estimation
}

package searcher

import (
	"sync"

	"power4/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(opts ...Option) *Random {
	o := newOptions(opts)
	return &Random{rng: rand.New(rand.NewSource(o.seed))}
}

func (r *Random) Evaluate(position game.Position, player game.Player) (game.Move, Estimation) {
	if outcome, over := position.End(); over {
		log.Error().Msgf("nothing to play, game ended with %s", outcome)
		panic("no move to play on a finished game")
	}

	children := position.LegalMoves(player)
	r.mu.Lock()
	child := children[r.rng.Intn(len(children))]
	r.mu.Unlock()

	return game.MustMove(child.Column, player), Heuristic(0)
}

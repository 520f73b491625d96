package searcher

import (
	"cmp"
	"fmt"
	"math"

	"power4/game"
)

// Estimation is the value of a position: either an exact outcome, or a
// heuristic score when the search stopped before the end of the game.
// Scores are oriented towards First: positive values favor First and
// negative values favor Second. A win ranks above or below every score.
type Estimation struct {
	exact   bool
	outcome game.Outcome
	score   float64
}

func Exact(outcome game.Outcome) Estimation {
	return Estimation{exact: true, outcome: outcome}
}

func Heuristic(score float64) Estimation {
	return Estimation{score: score}
}

func (e Estimation) IsExact() bool {
	return e.exact
}

// Outcome returns the exact outcome, if any
func (e Estimation) Outcome() (game.Outcome, bool) {
	return e.outcome, e.exact
}

// Value projects the estimation on the real line: ±Inf for wins, 0 for a stall
func (e Estimation) Value() float64 {
	switch e.rank() {
	case 1:
		return math.Inf(1)
	case -1:
		return math.Inf(-1)
	}
	return e.score
}

// rank separates wins from everything else so that a win outranks any score,
// infinite ones included
func (e Estimation) rank() int {
	if !e.exact || e.outcome.IsStall() {
		return 0
	}
	if e.outcome.Winner == game.First {
		return 1
	}
	return -1
}

// Compare orders estimations from Second's best to First's best. Two wins
// for the same player, or a stall and a zero score, compare equal.
func (e Estimation) Compare(other Estimation) int {
	if c := cmp.Compare(e.rank(), other.rank()); c != 0 {
		return c
	}
	if e.rank() != 0 {
		return 0
	}
	// Stall keeps a zero score
	return cmp.Compare(e.score, other.score)
}

// IsBetter reports whether other is strictly preferred to e by the player
func (e Estimation) IsBetter(other Estimation, player game.Player) bool {
	switch player {
	case game.First:
		return other.Compare(e) > 0
	case game.Second:
		return other.Compare(e) < 0
	default:
		panic("no preference for an empty player")
	}
}

// Negate flips the favored player
func (e Estimation) Negate() Estimation {
	if !e.exact {
		return Heuristic(-e.score)
	}
	if e.outcome.IsStall() {
		return e
	}
	return Exact(game.Win(e.outcome.Winner.Other()))
}

func (e Estimation) String() string {
	if e.exact {
		return fmt.Sprintf("Exact(%s)", e.outcome)
	}
	return fmt.Sprintf("Heuristic(%g)", e.score)
}

// Scored pairs a choice with its estimation
type Scored[T any] struct {
	Choice     T
	Estimation Estimation
}

// BestFor returns the candidate the player prefers. On ties the earliest
// candidate wins. Candidates must not be empty.
func BestFor[T any](candidates []Scored[T], player game.Player) Scored[T] {
	if len(candidates) == 0 {
		panic("no candidate to choose from")
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if best.Estimation.IsBetter(c.Estimation, player) {
			best = c
		}
	}
	return best
}

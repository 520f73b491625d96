package searcher

import (
	"power4/game"
	"power4/pool"
)

// Column played when the search has nothing better to say
const center = game.Width / 2

// Result is a recommended move with its estimation
type Result struct {
	Move       game.Move
	Estimation Estimation
}

// SyncEvaluator recommends a move for the player and blocks until done
type SyncEvaluator interface {
	Evaluate(position game.Position, player game.Player) (game.Move, Estimation)
}

// AsyncEvaluator recommends a move for the player without blocking the
// caller: the result is an awaitable
type AsyncEvaluator interface {
	EvaluateAsync(position game.Position, player game.Player) pool.Awaitable[Result]
}

// EvaluateGame evaluates the current position for the player to move
func EvaluateGame(e SyncEvaluator, gs *game.GameState) (game.Move, Estimation) {
	return e.Evaluate(gs.Position(), gs.Next())
}

// EvaluateGameAsync evaluates the current position for the player to move
func EvaluateGameAsync(e AsyncEvaluator, gs *game.GameState) pool.Awaitable[Result] {
	return e.EvaluateAsync(gs.Position(), gs.Next())
}

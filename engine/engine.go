package engine

import (
	"errors"
	"fmt"

	"power4/game"
	"power4/player"

	"github.com/rs/zerolog/log"
)

// MaxRetries is the number of illegal columns a player may choose in a row
const MaxRetries = 3

var ErrDesync = errors.New("remote history does not match the local game")

type Engine interface {
	// Run plays the game till its end and returns the outcome
	Run() (game.Outcome, error)
}

// playTurn asks the player for a column until it is legal, then hands it to
// play. Only illegal columns are retried: once play is called the move may
// already be on the wire, so its errors end the game.
func playTurn(gs *game.GameState, p player.Player, play func(column int) (game.Outcome, bool, error)) (game.Outcome, bool, error) {
	for attempt := 1; ; attempt++ {
		column, err := p.NextColumn(gs)
		if err != nil {
			return game.Outcome{}, false, fmt.Errorf("%s failed to choose a column: %w", gs.Next(), err)
		}

		if _, _, err := gs.Copy().Play(column); err != nil {
			if attempt >= MaxRetries {
				return game.Outcome{}, false, fmt.Errorf("%s gave up after %d illegal columns: %w", gs.Next(), attempt, err)
			}
			log.Warn().Err(err).Msgf("illegal column %d, try again", column)
			continue
		}
		return play(column)
	}
}

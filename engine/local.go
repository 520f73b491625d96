package engine

import (
	"io"

	"power4/game"
	"power4/player"

	"github.com/rs/zerolog/log"
)

// LocalEngine plays two players against each other on the same machine
type LocalEngine struct {
	State   *game.GameState
	first   player.Player
	second  player.Player
	display io.Writer
}

// NewLocalEngine starts a game with first to play. A nil display disables
// rendering.
func NewLocalEngine(first, second player.Player, display io.Writer) *LocalEngine {
	return &LocalEngine{
		State:   game.NewGameState(),
		first:   first,
		second:  second,
		display: display,
	}
}

// Run executes the entire game loop until the game ends.
func (e *LocalEngine) Run() (game.Outcome, error) {
	log.Info().Msgf("%s is starting", e.State.Next())

	for {
		if outcome, over := e.State.End(); over {
			return outcome, nil
		}
		render(e.display, e.State)

		current := e.first
		if e.State.Next() == game.Second {
			current = e.second
		}

		outcome, over, err := playTurn(e.State, current, e.State.Play)
		if err != nil {
			return game.Outcome{}, err
		}
		if over {
			render(e.display, e.State)
			log.Info().Msgf("game over: %s", outcome)
			return outcome, nil
		}
	}
}

func render(w io.Writer, gs *game.GameState) {
	if w == nil {
		return
	}
	if err := gs.Render(w); err != nil {
		log.Warn().Err(err).Msg("failed to render the board")
	}
}

package engine

import (
	"errors"
	"fmt"
	"io"

	"power4/communication"
	"power4/game"
	"power4/player"

	"github.com/rs/zerolog/log"
)

// RemoteEngine plays the local player against a remote one. The client
// plays first, the host second.
type RemoteEngine struct {
	state   *game.GameState
	comm    communication.Communicator
	player  player.Player
	display io.Writer
}

// NewClient joins a game as First
func NewClient(comm communication.Communicator, p player.Player, display io.Writer) *RemoteEngine {
	return &RemoteEngine{
		state:   game.NewGameState(),
		comm:    comm,
		player:  p,
		display: display,
	}
}

// NewHost hosts a game as Second and waits for the client's first move
func NewHost(comm communication.Communicator, p player.Player, display io.Writer) (*RemoteEngine, error) {
	e := &RemoteEngine{
		state:   game.NewGameState(),
		comm:    comm,
		player:  p,
		display: display,
	}
	if _, _, err := e.awaitOpponent(); err != nil {
		return nil, err
	}
	return e, nil
}

// State returns a copy of the local game
func (e *RemoteEngine) State() *game.GameState {
	return e.state.Copy()
}

// Play applies the column locally, sends the history and, unless the game
// is over, waits for the opponent's answer
func (e *RemoteEngine) Play(column int) (game.Outcome, bool, error) {
	outcome, over, err := e.state.Play(column)
	if err != nil {
		return game.Outcome{}, false, err
	}
	if err := e.comm.SendHistory(e.state.History()); err != nil {
		return game.Outcome{}, false, err
	}
	if over {
		return outcome, true, nil
	}
	return e.awaitOpponent()
}

func (e *RemoteEngine) awaitOpponent() (game.Outcome, bool, error) {
	history, err := e.comm.ReceiveHistory()
	if errors.Is(err, game.ErrOutOfBound) || errors.Is(err, game.ErrInvalidPlayer) {
		return game.Outcome{}, false, fmt.Errorf("%w: %v", ErrDesync, err)
	}
	if err != nil {
		return game.Outcome{}, false, err
	}

	local := e.state.History()
	if len(history) != len(local)+1 {
		return game.Outcome{}, false, fmt.Errorf("%w: expected %d moves, received %d", ErrDesync, len(local)+1, len(history))
	}
	for i := range local {
		if history[i] != local[i] {
			return game.Outcome{}, false, fmt.Errorf("%w: move %d differs", ErrDesync, i)
		}
	}
	last := history[len(history)-1]
	if last.Player() != e.state.Next() {
		return game.Outcome{}, false, fmt.Errorf("%w: move played by %s, expected %s", ErrDesync, last.Player(), e.state.Next())
	}

	log.Info().Msgf("opponent played %s", last)
	outcome, over, err := e.state.Play(last.Column())
	if err != nil {
		return game.Outcome{}, false, fmt.Errorf("%w: %v", ErrDesync, err)
	}
	return outcome, over, nil
}

// Run plays until the game ends on either side
func (e *RemoteEngine) Run() (game.Outcome, error) {
	for {
		if outcome, over := e.state.End(); over {
			render(e.display, e.state)
			log.Info().Msgf("game over: %s", outcome)
			return outcome, nil
		}
		render(e.display, e.state)

		outcome, over, err := playTurn(e.state, e.player, e.Play)
		if err != nil {
			return game.Outcome{}, err
		}
		if over {
			render(e.display, e.state)
			log.Info().Msgf("game over: %s", outcome)
			return outcome, nil
		}
	}
}

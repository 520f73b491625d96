package game

import (
	"fmt"
	"io"
)

// GameState is the state of a game: the current position, the player to
// move and the history of moves that led there.
type GameState struct {
	position Position
	next     Player
	history  []Move
}

// NewGameState initializes an empty board with First to play.
func NewGameState() *GameState {
	return &GameState{next: First}
}

// FromHistory replays a history of moves from the empty board
func FromHistory(history []Move) (*GameState, error) {
	gs := NewGameState()
	for i, m := range history {
		if m.Player() != gs.next {
			return nil, fmt.Errorf("move %d played by %s, expected %s", i, m.Player(), gs.next)
		}
		if _, _, err := gs.Play(m.Column()); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}
	return gs, nil
}

// Copy of the GameState.
func (gs *GameState) Copy() *GameState {
	history := make([]Move, len(gs.history))
	copy(history, gs.history)
	return &GameState{
		position: gs.position,
		next:     gs.next,
		history:  history,
	}
}

// Play drops a piece of the next player in the column. The state is left
// unchanged on error.
func (gs *GameState) Play(column int) (Outcome, bool, error) {
	m, err := NewMove(column, gs.next)
	if err != nil {
		return Outcome{}, false, err
	}
	position, outcome, over, err := gs.position.Apply(m)
	if err != nil {
		return Outcome{}, false, err
	}
	gs.position = position
	gs.next = gs.next.Other()
	gs.history = append(gs.history, m)
	return outcome, over, nil
}

// History returns a copy of the moves played so far
func (gs *GameState) History() []Move {
	history := make([]Move, len(gs.history))
	copy(history, gs.history)
	return history
}

func (gs *GameState) End() (Outcome, bool) {
	return gs.position.End()
}

// Next returns the player to move
func (gs *GameState) Next() Player {
	return gs.next
}

func (gs *GameState) Position() Position {
	return gs.position
}

func (gs *GameState) Render(w io.Writer) error {
	return gs.position.Render(w)
}

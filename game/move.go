package game

import (
	"encoding/json"
	"fmt"
)

// Move is a column choice attributed to a player. It carries no board.
type Move struct {
	column int
	player Player
}

// NewMove validates the column against the board width and the player
func NewMove(column int, player Player) (Move, error) {
	if column < 0 || column >= Width {
		return Move{}, fmt.Errorf("column %d: %w", column, ErrOutOfBound)
	}
	if player != First && player != Second {
		return Move{}, fmt.Errorf("move by %s: %w", player, ErrInvalidPlayer)
	}
	return Move{column: column, player: player}, nil
}

// MustMove is NewMove for columns already known to be in bounds
func MustMove(column int, player Player) Move {
	m, err := NewMove(column, player)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Move) Column() int {
	return m.column
}

func (m Move) Player() Player {
	return m.player
}

func (m Move) String() string {
	return fmt.Sprintf("%s@%c", m.player, 'a'+rune(m.column))
}

type wireMove struct {
	Column int    `json:"column"`
	Player Player `json:"player"`
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireMove{Column: m.column, Player: m.player})
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var w wireMove
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	move, err := NewMove(w.Column, w.Player)
	if err != nil {
		return err
	}
	*m = move
	return nil
}

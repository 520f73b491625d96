package game

import (
	"cmp"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Position is an immutable snapshot of the board. Row 0 is the bottom row.
// Positions are comparable and can be used as map keys.
type Position struct {
	cells [Height][Width]Player
}

// Child is the result of playing one legal column from a position
type Child struct {
	Column   int
	Position Position
	Outcome  Outcome
	Over     bool // Outcome is set only when Over
}

// At returns the player occupying the cell, None if empty
func (p Position) At(row, column int) Player {
	return p.cells[row][column]
}

// Apply drops the move's piece in its column and returns the new position,
// with the outcome if the game ended
func (p Position) Apply(m Move) (Position, Outcome, bool, error) {
	for row := 0; row < Height; row++ {
		if p.cells[row][m.column] == None {
			next := p
			next.cells[row][m.column] = m.player
			outcome, over := next.End()
			return next, outcome, over, nil
		}
	}
	return p, Outcome{}, false, fmt.Errorf("column %d: %w", m.column, ErrColumnFull)
}

// ApplySequence plays the moves in order. The moves must all be legal.
func (p Position) ApplySequence(moves []Move) (Position, Outcome, bool, error) {
	position := p
	outcome, over := position.End()
	for i, m := range moves {
		var err error
		position, outcome, over, err = position.Apply(m)
		if err != nil {
			return p, Outcome{}, false, fmt.Errorf("move %d: %w", i, err)
		}
	}
	return position, outcome, over, nil
}

// End reports the outcome of the position if the game is over
func (p Position) End() (Outcome, bool) {
	for _, player := range []Player{First, Second} {
		if p.countAlign(Power, player) > 0 {
			return Win(player), true
		}
	}
	if p.full() {
		return Stall, true
	}
	return Outcome{}, false
}

// LegalMoves lists the playable columns for the player, in column order
func (p Position) LegalMoves(player Player) []Child {
	children := make([]Child, 0, Width)
	for column := 0; column < Width; column++ {
		next, outcome, over, err := p.Apply(MustMove(column, player))
		if err != nil {
			log.Trace().Err(err).Msgf("cannot play column %d", column)
			continue
		}
		children = append(children, Child{Column: column, Position: next, Outcome: outcome, Over: over})
	}
	return children
}

// Compare orders positions cell by cell. The order only serves as a key
// order and has no game meaning.
func (p Position) Compare(other Position) int {
	for row := 0; row < Height; row++ {
		for column := 0; column < Width; column++ {
			if c := cmp.Compare(p.cells[row][column], other.cells[row][column]); c != 0 {
				return c
			}
		}
	}
	return 0
}

// Pieces counts the occupied cells
func (p Position) Pieces() int {
	count := 0
	for row := 0; row < Height; row++ {
		for column := 0; column < Width; column++ {
			if p.cells[row][column] != None {
				count++
			}
		}
	}
	return count
}

func (p Position) full() bool {
	for column := 0; column < Width; column++ {
		if p.cells[Height-1][column] == None {
			return false
		}
	}
	return true
}

// countAlign counts every run of size cells owned by the player, in the four
// directions. Overlapping runs are counted separately.
func (p Position) countAlign(size int, player Player) int {
	directions := [4][2]int{
		{0, 1},  // Horizontal
		{1, 0},  // Vertical
		{1, 1},  // Rising
		{-1, 1}, // Falling
	}
	count := 0
	for _, d := range directions {
		for row := 0; row < Height; row++ {
			for column := 0; column < Width; column++ {
				endRow := row + d[0]*(size-1)
				endColumn := column + d[1]*(size-1)
				if endRow < 0 || endRow >= Height || endColumn >= Width {
					continue
				}
				aligned := true
				for i := 0; i < size && aligned; i++ {
					aligned = p.cells[row+d[0]*i][column+d[1]*i] == player
				}
				if aligned {
					count++
				}
			}
		}
	}
	return count
}

package player

import (
	"bufio"
	"fmt"
	"io"

	"power4/game"
)

// Player chooses the column to play for the player to move
type Player interface {
	NextColumn(gs *game.GameState) (int, error)
}

// Human reads column letters from an input, one per line
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHuman creates a new Human reading from r and prompting on w.
func NewHuman(r io.Reader, w io.Writer) *Human {
	return &Human{
		in:  bufio.NewScanner(r),
		out: w,
	}
}

// NextColumn loops until the input gives a readable column
func (h *Human) NextColumn(gs *game.GameState) (int, error) {
	for {
		fmt.Fprintf(h.out, "%s to play: ", gs.Next())
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			return 0, io.EOF
		}
		column, err := game.ColumnFromLetter(h.in.Text())
		if err != nil {
			fmt.Fprintln(h.out, "Error: no value readable")
			continue
		}
		return column, nil
	}
}

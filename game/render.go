package game

import (
	"bufio"
	"io"
	"strings"
)

const (
	verticalSeparator   = "|"
	horizontalSeparator = "-"
	crossSeparator      = "+"
	filler              = " "
)

func renderPlayer(p Player) string {
	switch p {
	case First:
		return "o"
	case Second:
		return "x"
	default:
		return filler
	}
}

// Render writes the board top row first, followed by the column letters
func (p Position) Render(w io.Writer) error {
	buf := bufio.NewWriter(w)
	interline := crossSeparator + strings.Repeat(horizontalSeparator+crossSeparator, Width) + "\n"

	buf.WriteString(interline)
	for row := Height - 1; row >= 0; row-- {
		for column := 0; column < Width; column++ {
			buf.WriteString(verticalSeparator)
			buf.WriteString(renderPlayer(p.cells[row][column]))
		}
		buf.WriteString(verticalSeparator + "\n")
		buf.WriteString(interline)
	}
	buf.WriteString(verticalSeparator)
	for column := 0; column < Width; column++ {
		buf.WriteByte(byte('a' + column))
		buf.WriteString(verticalSeparator)
	}
	buf.WriteString("\n")
	return buf.Flush()
}

// ColumnFromLetter maps 'a', 'b', ... to column indices
func ColumnFromLetter(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrOutOfBound
	}
	column := int(input[0]) - 'a'
	if column < 0 || column >= Width {
		return 0, ErrOutOfBound
	}
	return column, nil
}

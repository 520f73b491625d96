package game

import (
	"errors"
	"fmt"
)

// Board dimensions. Width must stay below 26 so columns map to letters.
const (
	Height = 6
	Width  = 9
	Power  = 4 // Number of aligned pieces needed to win
)

var (
	ErrOutOfBound    = errors.New("column out of bound")
	ErrColumnFull    = errors.New("column is full")
	ErrInvalidPlayer = errors.New("invalid player")
)

// Player identifies one of the two movers. None marks an empty cell.
type Player uint8

const (
	None Player = iota
	First
	Second
)

// Other returns the opponent of the player
func (p Player) Other() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		panic("no opponent for an empty player")
	}
}

func (p Player) String() string {
	switch p {
	case First:
		return "FIRST"
	case Second:
		return "SECOND"
	default:
		return "NONE"
	}
}

func (p Player) MarshalText() ([]byte, error) {
	if p != First && p != Second {
		return nil, fmt.Errorf("cannot encode player %d: %w", p, ErrInvalidPlayer)
	}
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "FIRST":
		*p = First
	case "SECOND":
		*p = Second
	default:
		return fmt.Errorf("unknown player %q: %w", text, ErrInvalidPlayer)
	}
	return nil
}

// Outcome is the terminal result of a position: a win for Winner, or a
// stall when Winner is None.
type Outcome struct {
	Winner Player
}

// Stall is the outcome of a full board with no alignment
var Stall = Outcome{}

// Win returns the outcome won by player p
func Win(p Player) Outcome {
	return Outcome{Winner: p}
}

func (o Outcome) IsStall() bool {
	return o.Winner == None
}

func (o Outcome) String() string {
	if o.IsStall() {
		return "Stall"
	}
	return fmt.Sprintf("Win(%s)", o.Winner)
}

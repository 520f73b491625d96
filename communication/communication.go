package communication

import (
	"encoding/json"
	"fmt"
	"net"

	"power4/game"

	"github.com/rs/zerolog/log"
)

// Communicator exchanges move histories with the remote player. The whole
// history is sent on every turn.
type Communicator interface {
	SendHistory(history []game.Move) error
	ReceiveHistory() ([]game.Move, error)
	Close() error
}

// Conn sends each history as a JSON array with no framing. The receiver
// reads consecutive JSON values off the stream, so a history split over
// several reads is decoded once complete.
type Conn struct {
	conn    net.Conn
	decoder *json.Decoder
}

func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn:    conn,
		decoder: json.NewDecoder(conn),
	}
}

func (c *Conn) SendHistory(history []game.Move) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if _, err := c.conn.Write(data); err != nil {
		return fmt.Errorf("failed to send history: %w", err)
	}
	log.Info().Msgf("sent history of %d moves", len(history))
	return nil
}

func (c *Conn) ReceiveHistory() ([]game.Move, error) {
	var history []game.Move
	if err := c.decoder.Decode(&history); err != nil {
		return nil, fmt.Errorf("failed to receive history: %w", err)
	}
	log.Debug().Msgf("received history of %d moves", len(history))
	return history, nil
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

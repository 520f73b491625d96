package server

import (
	"fmt"
	"net"

	"power4/communication"

	"github.com/rs/zerolog/log"
)

// Listener waits for the remote player to connect
type Listener struct {
	listener net.Listener
}

func Listen(addr string) (*Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	return &Listener{listener: l}, nil
}

// Addr returns the bound address, useful when listening on port 0
func (l *Listener) Addr() string {
	return l.listener.Addr().String()
}

// Accept waits for a single player
func (l *Listener) Accept() (*communication.Conn, error) {
	conn, err := l.listener.Accept()
	if err != nil {
		return nil, fmt.Errorf("failed to accept connection: %w", err)
	}
	log.Info().Msgf("player connected from %s", conn.RemoteAddr())
	return communication.NewConn(conn), nil
}

func (l *Listener) Close() error {
	return l.listener.Close()
}

package client

import (
	"fmt"
	"net"

	"power4/communication"
)

// Dial connects to a host waiting for a game
func Dial(addr string) (*communication.Conn, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return communication.NewConn(conn), nil
}

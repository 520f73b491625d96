package server

import (
	"testing"

	"power4/communication/client"
	"power4/game"

	"github.com/stretchr/testify/require"
)

func TestListen(t *testing.T) {
	t.Run("client and host exchange histories", func(t *testing.T) {
		l, err := Listen("127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		history := []game.Move{game.MustMove(2, game.First)}
		errs := make(chan error, 1)
		go func() {
			conn, err := client.Dial(l.Addr())
			if err != nil {
				errs <- err
				return
			}
			defer conn.Close()
			errs <- conn.SendHistory(history)
		}()

		conn, err := l.Accept()
		require.NoError(t, err)
		defer conn.Close()

		got, err := conn.ReceiveHistory()
		require.NoError(t, err)
		require.Equal(t, history, got)
		require.NoError(t, <-errs)
	})

	t.Run("fails on a busy address", func(t *testing.T) {
		l, err := Listen("127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		_, err = Listen(l.Addr())
		require.Error(t, err)
	})
}

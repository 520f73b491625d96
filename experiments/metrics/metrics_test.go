package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"power4/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent work", func(t *testing.T) {
		c := NewCollector()
		c.Start("threaded", 4)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
				}
				c.AddCacheHit()
			}()
		}
		wg.Wait()

		m := c.Complete()
		require.Equal(t, "threaded", m.Strategy)
		require.Equal(t, 4, m.Depth)
		require.Equal(t, 800, m.Nodes)
		require.Equal(t, 8, m.CacheHits)
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("minmax", 1)
		c.AddNode()
		c.Complete()

		c.Start("minmax", 1)
		require.Zero(t, c.Complete().Nodes)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minmax", 3)
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)
	require.Equal(t, "unit", filepath.Base(filepath.Dir(w.Dir())))

	t.Run("writes move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 3,
			MoveMetric: MoveMetric{
				Step:         5,
				Player:       game.Second,
				SearchMetric: SearchMetric{Strategy: "cached", Depth: 4, Duration: time.Millisecond, Nodes: 120, CacheHits: 7},
			},
		}})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(w.Dir(), "move_records.csv"))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Equal(t, []string{
			"game,step,player,strategy,depth,duration,nodes,cache_hits",
			"3,5,SECOND,cached,4,1ms,120,7",
		}, lines)
	})

	t.Run("writes game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 0,
			Agent2: 1,
			GameMetric: GameMetric{
				StartingPlayer: game.First,
				Winner:         "NONE",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     54,
			},
		}})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(w.Dir(), "game_records.csv"))
		require.NoError(t, err)
		require.Contains(t, string(data), "1,0,1,FIRST,NONE,2024-01-02T03:04:05Z,2024-01-02T03:04:06Z,1s,54")
	})
}

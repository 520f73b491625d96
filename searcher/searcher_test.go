package searcher

import (
	"testing"

	"power4/cache"
	"power4/experiments/metrics"
	"power4/game"
	"power4/pool"

	"github.com/stretchr/testify/require"
)

func replay(t *testing.T, columns ...int) *game.GameState {
	t.Helper()
	gs := game.NewGameState()
	for _, column := range columns {
		_, _, err := gs.Play(column)
		require.NoError(t, err)
	}
	return gs
}

// Positions with the player to move, from quiet openings to tactical ones
var sampleGames = map[string][]int{
	"empty":            {},
	"opening":          {4, 4, 3},
	"first threatens":  {0, 8, 1, 8, 2},
	"second threatens": {4, 0, 4, 1, 8, 2},
	"crowded center":   {4, 4, 4, 4, 3, 5, 5, 3, 3, 5},
}

func TestMinMax(t *testing.T) {
	t.Run("panics on a negative depth", func(t *testing.T) {
		require.Panics(t, func() { NewMinMax(-1) })
	})

	t.Run("depth zero returns the heuristic", func(t *testing.T) {
		gs := replay(t, 4, 3)

		move, estimation := EvaluateGame(NewMinMax(0), gs)
		require.Equal(t, game.MustMove(center, game.First), move)
		require.Equal(t, Heuristic(gs.Position().NaiveEval()), estimation)
	})

	t.Run("finished games are exact at any depth", func(t *testing.T) {
		gs := replay(t, 0, 0, 1, 1, 2, 2, 3)
		for _, depth := range []int{0, 1, 3} {
			_, estimation := EvaluateGame(NewMinMax(depth), gs)
			require.Equal(t, Exact(game.Win(game.First)), estimation, "depth %d", depth)
		}
	})

	t.Run("plays an immediate win", func(t *testing.T) {
		gs := replay(t, 0, 0, 1, 1, 2, 2)

		move, estimation := EvaluateGame(NewMinMax(1), gs)
		require.Equal(t, 3, move.Column())
		require.Equal(t, Exact(game.Win(game.First)), estimation)
	})

	t.Run("blocks an immediate threat", func(t *testing.T) {
		gs := replay(t, sampleGames["first threatens"]...)
		require.Equal(t, game.Second, gs.Next())

		move, estimation := EvaluateGame(NewMinMax(2), gs)
		require.Equal(t, 3, move.Column())
		require.False(t, estimation.IsExact())
	})

	t.Run("sees a forced loss", func(t *testing.T) {
		// Two open ends on the bottom row, Second cannot block both
		gs := replay(t, 3, 8, 4, 8, 5)
		require.Equal(t, game.Second, gs.Next())

		_, estimation := EvaluateGame(NewMinMax(2), gs)
		require.Equal(t, Exact(game.Win(game.First)), estimation)
	})

	t.Run("counts visited nodes", func(t *testing.T) {
		collector := metrics.NewCollector()
		collector.Start("minmax", 1)

		NewMinMax(1, WithMetrics(collector)).Evaluate(game.Position{}, game.First)

		require.Equal(t, 1+game.Width, collector.Complete().Nodes)
	})
}

func TestMinMaxCached(t *testing.T) {
	t.Run("panics without a cache", func(t *testing.T) {
		require.Panics(t, func() { NewMinMaxCached(1, nil) })
	})

	for name, columns := range sampleGames {
		t.Run("matches minmax on "+name, func(t *testing.T) {
			gs := replay(t, columns...)
			for depth := 0; depth <= 3; depth++ {
				wantMove, wantEstimation := EvaluateGame(NewMinMax(depth), gs)
				move, estimation := EvaluateGame(NewMinMaxCached(depth, cache.NewLocal()), gs)

				require.Equal(t, wantMove, move, "depth %d", depth)
				require.Equal(t, wantEstimation, estimation, "depth %d", depth)
			}
		})
	}

	t.Run("a cache reused across a game agrees with fresh searches", func(t *testing.T) {
		cached := NewMinMaxCached(3, cache.NewLocal())
		opponent := NewRandom(WithSeed(5))
		gs := game.NewGameState()

		for {
			if _, over := gs.End(); over {
				break
			}
			wantMove, wantEstimation := EvaluateGame(NewMinMax(3), gs)
			move, estimation := EvaluateGame(cached, gs)
			require.Equal(t, wantMove, move, "move %d", len(gs.History()))
			require.Equal(t, wantEstimation, estimation, "move %d", len(gs.History()))

			if gs.Next() == game.Second {
				move, _ = EvaluateGame(opponent, gs)
			}
			_, _, err := gs.Play(move.Column())
			require.NoError(t, err)
		}
		require.Positive(t, cached.KnowledgeSize())
	})

	t.Run("remembers exact results only", func(t *testing.T) {
		gs := replay(t, sampleGames["first threatens"]...)
		c := cache.NewLocal()
		collector := metrics.NewCollector()
		collector.Start("cached", 3)

		m := NewMinMaxCached(3, c, WithMetrics(collector))
		m.Evaluate(gs.Position(), gs.Next())

		require.Positive(t, m.KnowledgeSize())
		require.Equal(t, c.Len(), m.KnowledgeSize())

		quiet := NewMinMaxCached(1, cache.NewLocal())
		quiet.Evaluate(game.Position{}, game.First)
		require.Zero(t, quiet.KnowledgeSize(), "Heuristic results should not be cached")
	})
}

func TestThreaded(t *testing.T) {
	for name, columns := range sampleGames {
		t.Run("matches minmax on "+name, func(t *testing.T) {
			gs := replay(t, columns...)
			for depth := 1; depth <= 3; depth++ {
				wantMove, wantEstimation := EvaluateGame(NewMinMax(depth), gs)

				move, estimation := EvaluateGame(NewThreaded(NewMinMax(depth-1)), gs)
				require.Equal(t, wantMove, move, "depth %d", depth)
				require.Equal(t, wantEstimation, estimation, "depth %d", depth)

				move, estimation = EvaluateGame(NewThreaded(NewMinMaxCached(depth-1, cache.NewShared())), gs)
				require.Equal(t, wantMove, move, "cached depth %d", depth)
				require.Equal(t, wantEstimation, estimation, "cached depth %d", depth)
			}
		})
	}

	t.Run("finished games are exact", func(t *testing.T) {
		gs := replay(t, 0, 1, 0, 1, 0, 1, 0)
		_, estimation := EvaluateGame(NewThreaded(NewMinMax(2)), gs)
		require.Equal(t, Exact(game.Win(game.First)), estimation)
	})
}

func TestPooled(t *testing.T) {
	p := pool.New(3)
	defer p.Close()

	for name, columns := range sampleGames {
		t.Run("matches minmax on "+name, func(t *testing.T) {
			gs := replay(t, columns...)
			for depth := 1; depth <= 3; depth++ {
				wantMove, wantEstimation := EvaluateGame(NewMinMax(depth), gs)

				move, estimation := EvaluateGame(NewPooled(NewMinMax(depth-1), p), gs)
				require.Equal(t, wantMove, move, "depth %d", depth)
				require.Equal(t, wantEstimation, estimation, "depth %d", depth)

				result := pool.Await(EvaluateGameAsync(NewPooled(NewMinMaxCached(depth-1, cache.NewShared()), p), gs))
				require.Equal(t, wantMove, result.Move, "cached depth %d", depth)
				require.Equal(t, wantEstimation, result.Estimation, "cached depth %d", depth)
			}
		})
	}

	t.Run("finished games complete on the first poll", func(t *testing.T) {
		gs := replay(t, 0, 0, 1, 1, 2, 2, 3)

		result, ok := EvaluateGameAsync(NewPooled(NewMinMax(2), p), gs).Poll(func() {})
		require.True(t, ok)
		require.Equal(t, Exact(game.Win(game.First)), result.Estimation)
	})

	t.Run("polling does not wait for the workers", func(t *testing.T) {
		gs := replay(t, sampleGames["opening"]...)
		task := EvaluateGameAsync(NewPooled(NewMinMax(3), p), gs)

		woken := make(chan struct{}, 1)
		wake := func() {
			select {
			case woken <- struct{}{}:
			default:
			}
		}
		for {
			if result, ok := task.Poll(wake); ok {
				require.Equal(t, game.Second, result.Move.Player())
				return
			}
			<-woken
		}
	})
}

func TestBlocking(t *testing.T) {
	for name, columns := range sampleGames {
		t.Run("matches the inner evaluator on "+name, func(t *testing.T) {
			gs := replay(t, columns...)
			wantMove, wantEstimation := EvaluateGame(NewMinMax(2), gs)

			result, ok := EvaluateGameAsync(NewBlocking(NewMinMax(2)), gs).Poll(func() {})
			require.True(t, ok, "Blocking tasks complete on the first poll")
			require.Equal(t, wantMove, result.Move)
			require.Equal(t, wantEstimation, result.Estimation)
		})
	}
}

func TestRandom(t *testing.T) {
	t.Run("plays legal columns", func(t *testing.T) {
		gs := replay(t, 0, 0, 0, 0, 0, 0)
		r := NewRandom(WithSeed(1))

		for i := 0; i < 50; i++ {
			move, estimation := EvaluateGame(r, gs)
			require.NotEqual(t, 0, move.Column(), "Full column should never be played")
			require.Equal(t, game.First, move.Player())
			require.Equal(t, Heuristic(0), estimation)
		}
	})

	t.Run("same seed replays the same moves", func(t *testing.T) {
		a, b := NewRandom(WithSeed(42)), NewRandom(WithSeed(42))
		for i := 0; i < 20; i++ {
			moveA, _ := a.Evaluate(game.Position{}, game.First)
			moveB, _ := b.Evaluate(game.Position{}, game.First)
			require.Equal(t, moveA, moveB)
		}
	})

	t.Run("panics on a finished game", func(t *testing.T) {
		gs := replay(t, 0, 1, 0, 1, 0, 1, 0)
		require.Panics(t, func() { EvaluateGame(NewRandom(), gs) })
	})
}

func TestStrategies(t *testing.T) {
	p := pool.New(2)
	defer p.Close()

	t.Run("parses every known strategy", func(t *testing.T) {
		for _, s := range Strategies() {
			got, err := ParseStrategy(string(s))
			require.NoError(t, err)
			require.Equal(t, s, got)
		}
	})

	t.Run("rejects unknown strategies", func(t *testing.T) {
		_, err := ParseStrategy("alphabeta")
		require.ErrorIs(t, err, ErrUnknownStrategy)

		_, err = NewSync("alphabeta", 2, p)
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("rejects invalid depths", func(t *testing.T) {
		_, err := NewSync(StrategyMinMax, -1, p)
		require.ErrorIs(t, err, ErrInvalidDepth)

		_, err = NewSync(StrategyThreaded, 0, p)
		require.ErrorIs(t, err, ErrInvalidDepth)

		_, err = NewAsync(StrategyPooled, 0, p)
		require.ErrorIs(t, err, ErrInvalidDepth)
	})

	t.Run("every search strategy agrees with minmax", func(t *testing.T) {
		gs := replay(t, sampleGames["second threatens"]...)
		wantMove, wantEstimation := EvaluateGame(NewMinMax(3), gs)

		for _, s := range Strategies() {
			if s == StrategyRandom {
				continue
			}
			evaluator, err := NewSync(s, 3, p)
			require.NoError(t, err)
			move, estimation := EvaluateGame(evaluator, gs)
			require.Equal(t, wantMove, move, "sync %s", s)
			require.Equal(t, wantEstimation, estimation, "sync %s", s)

			async, err := NewAsync(s, 3, p)
			require.NoError(t, err)
			result := pool.Await(EvaluateGameAsync(async, gs))
			require.Equal(t, wantMove, result.Move, "async %s", s)
			require.Equal(t, wantEstimation, result.Estimation, "async %s", s)
		}
	})

	t.Run("pooled strategies stay on the pool", func(t *testing.T) {
		e, err := NewAsync(StrategyPooled, 2, p)
		require.NoError(t, err)
		require.IsType(t, &Pooled{}, e)

		e, err = NewAsync(StrategyMinMax, 2, p)
		require.NoError(t, err)
		require.IsType(t, &Blocking{}, e)
	})
}

package player

import (
	"time"

	"power4/experiments/metrics"
	"power4/game"
	"power4/searcher"

	"github.com/rs/zerolog/log"
)

// Robot plays the move recommended by a blocking evaluator
type Robot struct {
	evaluator searcher.SyncEvaluator
	collector metrics.Collector
	config    metrics.AgentConfig
	metrics   []metrics.MoveMetric
}

func NewRobot(evaluator searcher.SyncEvaluator) *Robot {
	return &Robot{
		evaluator: evaluator,
		collector: metrics.NewDummyCollector(),
	}
}

// WithMetrics records a search metric for every move. The collector must be
// the one the evaluator reports to.
func (r *Robot) WithMetrics(collector metrics.Collector, config metrics.AgentConfig) *Robot {
	r.collector = collector
	r.config = config
	return r
}

func (r *Robot) NextColumn(gs *game.GameState) (int, error) {
	log.Info().Msg("thinking...")
	r.collector.Start(r.config.Strategy, r.config.Depth)
	start := time.Now()

	move, estimation := searcher.EvaluateGame(r.evaluator, gs)

	r.metrics = append(r.metrics, metrics.MoveMetric{
		Step:         len(gs.History()) + 1,
		Player:       gs.Next(),
		SearchMetric: r.collector.Complete(),
	})
	log.Info().Msgf("thought for %d ms", time.Since(start).Milliseconds())
	log.Info().Msgf("playing %s, estimation: %s", move, estimation)
	return move.Column(), nil
}

// Metrics returns the metrics of the moves played so far
func (r *Robot) Metrics() []metrics.MoveMetric {
	return r.metrics
}

// AsyncRobot plays the move recommended by an awaitable evaluator. While
// the search runs it keeps logging a heartbeat.
type AsyncRobot struct {
	evaluator searcher.AsyncEvaluator
	heartbeat time.Duration
}

// NewAsyncRobot creates an AsyncRobot. A zero heartbeat disables the
// liveness messages.
func NewAsyncRobot(evaluator searcher.AsyncEvaluator, heartbeat time.Duration) *AsyncRobot {
	return &AsyncRobot{evaluator: evaluator, heartbeat: heartbeat}
}

func (r *AsyncRobot) NextColumn(gs *game.GameState) (int, error) {
	log.Info().Msg("thinking...")
	start := time.Now()

	task := searcher.EvaluateGameAsync(r.evaluator, gs)

	signal := make(chan struct{}, 1)
	wake := func() {
		select {
		case signal <- struct{}{}:
		default:
		}
	}

	var tick <-chan time.Time
	if r.heartbeat > 0 {
		ticker := time.NewTicker(r.heartbeat)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if result, ok := task.Poll(wake); ok {
			log.Info().Msgf("thought for %d ms", time.Since(start).Milliseconds())
			log.Info().Msgf("playing %s, estimation: %s", result.Move, result.Estimation)
			return result.Move.Column(), nil
		}
		select {
		case <-signal:
		case <-tick:
			log.Warn().Msg("I'm alive")
		}
	}
}

// StartHeartbeat logs a liveness message at every interval until stopped
func StartHeartbeat(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				log.Warn().Msg("I'm alive")
			}
		}
	}()
	return func() { close(done) }
}

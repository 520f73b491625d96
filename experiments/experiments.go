package experiments

import (
	"fmt"
	"time"

	"power4/engine"
	"power4/experiments/metrics"
	"power4/game"
	"power4/player"
	"power4/pool"
	"power4/searcher"

	"github.com/rs/zerolog/log"
)

// Experiment runs match ups between search strategies and stores the results
type Experiment struct {
	Root     string // Directory receiving the CSV files
	NumGames int    // Per match up
	Pool     *pool.Pool
}

// RunStrategyExperiment pairs every config against the baseline. Starting
// sides alternate between games.
func (x Experiment) RunStrategyExperiment(baseline metrics.AgentConfig, configs []metrics.AgentConfig) (*metrics.Writer, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return x.runExperiment("strategies", append(configs, baseline), matchUps)
}

func (x Experiment) runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (*metrics.Writer, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < x.NumGames; i++ {
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			gameMetric, moveMetrics, err := x.runGame(first, second)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(x.Root, name)
	if err != nil {
		return nil, err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored %s experiment in %s", name, writer.Dir())
	return writer, nil
}

// runGame plays a single game, first moving first
func (x Experiment) runGame(first, second metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	robot1, err := x.createRobot(first)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	robot2, err := x.createRobot(second)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine(robot1, robot2, nil)
	start := time.Now()
	outcome, err := e.Run()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	end := time.Now()

	moveMetrics := mergeMoves(robot1.Metrics(), robot2.Metrics())
	return metrics.GameMetric{
		StartingPlayer: game.First,
		Winner:         outcome.Winner.String(),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     len(e.State.History()),
	}, moveMetrics, nil
}

func (x Experiment) createRobot(config metrics.AgentConfig) (*player.Robot, error) {
	strategy, err := searcher.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}
	collector := metrics.NewCollector()
	evaluator, err := searcher.NewSync(strategy, config.Depth, x.Pool, searcher.WithMetrics(collector))
	if err != nil {
		return nil, err
	}
	return player.NewRobot(evaluator).WithMetrics(collector, config), nil
}

// mergeMoves interleaves the moves of both robots by step
func mergeMoves(a, b []metrics.MoveMetric) []metrics.MoveMetric {
	merged := make([]metrics.MoveMetric, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if j >= len(b) || (i < len(a) && a[i].Step < b[j].Step) {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	return merged
}

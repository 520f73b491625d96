package experiments

import (
	"power4/experiments/metrics"
	"power4/game"
	"power4/searcher"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment evaluates the same positions with every config
// and reports the search metrics of each evaluation. The positions are
// replayed from the given histories.
func (x Experiment) RunThroughputExperiment(configs []metrics.AgentConfig, histories [][]game.Move) ([]metrics.MoveRecord, error) {
	records := []metrics.MoveRecord{}

	for _, config := range configs {
		strategy, err := searcher.ParseStrategy(config.Strategy)
		if err != nil {
			return nil, err
		}
		collector := metrics.NewCollector()
		evaluator, err := searcher.NewSync(strategy, config.Depth, x.Pool, searcher.WithMetrics(collector))
		if err != nil {
			return nil, err
		}

		for i, history := range histories {
			gs, err := game.FromHistory(history)
			if err != nil {
				return nil, err
			}
			if _, over := gs.End(); over {
				continue
			}

			collector.Start(config.Strategy, config.Depth)
			searcher.EvaluateGame(evaluator, gs)
			metric := collector.Complete()

			log.Info().Msgf("%s depth %d position %d: %d nodes in %s", config.Strategy, config.Depth, i, metric.Nodes, metric.Duration)
			records = append(records, metrics.MoveRecord{
				Game: config.ID,
				MoveMetric: metrics.MoveMetric{
					Step:         len(history) + 1,
					Player:       gs.Next(),
					SearchMetric: metric,
				},
			})
		}
	}

	writer, err := metrics.NewWriter(x.Root, "throughput")
	if err != nil {
		return nil, err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, err
	}
	if err := writer.WriteMoveRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}

package searcher

import (
	"time"

	"power4/experiments/metrics"
)

type Option func(o *options)

type options struct {
	metrics metrics.Collector
	seed    uint64
}

func WithMetrics(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func newOptions(opts []Option) options {
	o := options{ // Default values
		metrics: metrics.NewDummyCollector(),
		seed:    uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

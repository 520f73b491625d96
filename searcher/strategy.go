package searcher

import (
	"errors"
	"fmt"

	"power4/cache"
	"power4/pool"
)

// Strategy names a way to build an evaluator
type Strategy string

const (
	StrategyMinMax         Strategy = "minmax"
	StrategyCached         Strategy = "cached"
	StrategyThreaded       Strategy = "threaded"
	StrategyThreadedCached Strategy = "threaded-cached"
	StrategyPooled         Strategy = "pooled"
	StrategyPooledCached   Strategy = "pooled-cached"
	StrategyBlocking       Strategy = "blocking"
	StrategyRandom         Strategy = "random"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrInvalidDepth    = errors.New("invalid search depth")
)

var strategies = []Strategy{
	StrategyMinMax,
	StrategyCached,
	StrategyThreaded,
	StrategyThreadedCached,
	StrategyPooled,
	StrategyPooledCached,
	StrategyBlocking,
	StrategyRandom,
}

// Strategies lists every known strategy
func Strategies() []Strategy {
	return append([]Strategy(nil), strategies...)
}

func ParseStrategy(name string) (Strategy, error) {
	for _, s := range strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// NewSync builds a blocking evaluator searching to the given depth. Fan-out
// strategies spend one ply on the fan-out itself. Pooled strategies run on p,
// or on the shared pool when p is nil.
func NewSync(strategy Strategy, depth int, p *pool.Pool, opts ...Option) (SyncEvaluator, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}

	switch strategy {
	case StrategyMinMax:
		return NewMinMax(depth, opts...), nil
	case StrategyCached:
		return NewMinMaxCached(depth, cache.NewLocal(), opts...), nil
	case StrategyRandom:
		return NewRandom(opts...), nil
	case StrategyBlocking:
		// Only meaningful asynchronously, the blocking form is plain minmax
		return NewMinMax(depth, opts...), nil
	}

	if depth < 1 {
		return nil, fmt.Errorf("%w: strategy %s needs a depth of at least 1, got %d", ErrInvalidDepth, strategy, depth)
	}

	switch strategy {
	case StrategyThreaded:
		return NewThreaded(NewMinMax(depth-1, opts...)), nil
	case StrategyThreadedCached:
		return NewThreaded(NewMinMaxCached(depth-1, cache.NewShared(), opts...)), nil
	case StrategyPooled:
		return NewPooled(NewMinMax(depth-1, opts...), p), nil
	case StrategyPooledCached:
		return NewPooled(NewMinMaxCached(depth-1, cache.NewShared(), opts...), p), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// NewAsync builds an awaitable evaluator. Pooled strategies fan out on the
// pool, every other strategy runs on its own goroutine through Blocking.
func NewAsync(strategy Strategy, depth int, p *pool.Pool, opts ...Option) (AsyncEvaluator, error) {
	e, err := NewSync(strategy, depth, p, opts...)
	if err != nil {
		return nil, err
	}
	if async, ok := e.(AsyncEvaluator); ok {
		return async, nil
	}
	return NewBlocking(e), nil
}

package metrics

import (
	"sync/atomic"
	"time"

	"power4/game"
)

type AgentConfig struct {
	ID       int
	Strategy string
	Depth    int
}

type SearchMetric struct {
	Strategy  string
	Depth     int
	Duration  time.Duration
	Nodes     int
	CacheHits int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         string // "FIRST", "SECOND" or "NONE" on a stall
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector counts search work. It is safe for concurrent use so that the
// goroutines of a fan-out evaluator can share it.
type Collector interface {
	Start(strategy string, depth int)
	AddNode()
	AddCacheHit()
	Complete() SearchMetric
}

type collector struct {
	strategy  string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	cacheHits atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search
func (m *collector) Start(strategy string, depth int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.nodes.Store(0)
	m.cacheHits.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:  m.strategy,
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		CacheHits: int(m.cacheHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddCacheHit()                     {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }

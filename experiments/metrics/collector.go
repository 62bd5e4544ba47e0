package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one minimax search: the configured depth and what
// the tree expansion cost.
type SearchMetric struct {
	Depth       int
	Duration    time.Duration
	Nodes       int
	Evaluations int
	Cutoffs     int
}

// MoveMetric ties a search to its place in a game.
type MoveMetric struct {
	Step int
	Side string
	SearchMetric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	StartingSide string
	Winner       string
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

// Collector accumulates counters during one search. The search itself is
// single-threaded, but the counters stay atomic so a collector can be read
// while games run on other goroutines.
type Collector interface {
	Start(depth int)
	AddNode()
	AddEvaluation()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.startTime = time.Now()
	c.depth = depth
	c.nodes.Store(0)
	c.evaluations.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddEvaluation() {
	c.evaluations.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       c.depth,
		Duration:    time.Since(c.startTime),
		Nodes:       int(c.nodes.Load()),
		Evaluations: int(c.evaluations.Load()),
		Cutoffs:     int(c.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(depth int)        {}
func (c *dummyCollector) AddNode()               {}
func (c *dummyCollector) AddEvaluation()         {}
func (c *dummyCollector) AddCutoff()             {}
func (c *dummyCollector) Complete() SearchMetric { return SearchMetric{} }

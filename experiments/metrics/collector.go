package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy   string
	Goroutines int
	Duration   time.Duration
	Rollouts   int // Random playouts started
	Decisive   int // Playouts that ended in a win
	Nodes      int // States scored by exhaustive search
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a draw or an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers counters for a single search. Counters are safe to bump
// from several goroutines.
type Collector interface {
	Start(strategy string, goroutines int)
	AddRollout()
	AddDecisive()
	AddNodes(n int)
	Complete() SearchMetric
}

type collector struct {
	strategy   string
	goroutines int
	startTime  time.Time
	rollouts   atomic.Int64
	decisive   atomic.Int64
	nodes      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, goroutines int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.goroutines = goroutines
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) AddDecisive() {
	m.decisive.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:   m.strategy,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Rollouts:   int(m.rollouts.Load()),
		Decisive:   int(m.decisive.Load()),
		Nodes:      int(m.nodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, goroutines int) {}
func (m *dummyCollector) AddRollout()                           {}
func (m *dummyCollector) AddDecisive()                          {}
func (m *dummyCollector) AddNodes(n int)                        {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }

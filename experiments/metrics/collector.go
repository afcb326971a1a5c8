package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one decision of a game-tree search.
type SearchMetric struct {
	Algorithm   string
	Depth       int
	Duration    time.Duration
	Expanded    int // Nodes whose children were generated
	Evaluations int // Calls to the evaluation function
	Prunes      int // Alpha-beta cutoffs
}

type MoveMetric struct {
	Step   int
	Agent  int    // Agent index, 0 is pacman
	Action string // Chosen action
	Score  float64
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Pacman     string
	Ghosts     string
	Win        bool
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(algorithm string, depth int)
	AddExpansion()
	AddEvaluation()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	algorithm   string
	depth       int
	startTime   time.Time
	expanded    atomic.Int64
	evaluations atomic.Int64
	prunes      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new decision.
func (m *collector) Start(algorithm string, depth int) {
	m.algorithm = algorithm
	m.depth = depth
	m.startTime = time.Now()
	m.expanded.Store(0)
	m.evaluations.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddExpansion() {
	m.expanded.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:   m.algorithm,
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Expanded:    int(m.expanded.Load()),
		Evaluations: int(m.evaluations.Load()),
		Prunes:      int(m.prunes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddExpansion()                     {}
func (m *dummyCollector) AddEvaluation()                    {}
func (m *dummyCollector) AddPrune()                         {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }

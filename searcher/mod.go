// Package searcher implements depth-limited game-tree search for turn-based
// games where agent 0 maximizes and every other agent either minimizes or
// moves at random.
package searcher

import (
	"math"
	"pacman/experiments/metrics"
)

// State is a game position as seen by the searchers. Agents move in index
// order starting from 0; one ply is a full round of NumAgents moves.
type State[S any, A any] interface {
	LegalActions(agent int) []A
	Successor(agent int, action A) S
	NumAgents() int
	IsWin() bool
	IsLose() bool
}

// Evaluate scores a state from the perspective of agent 0.
type Evaluate[S any] func(state S) float64

type Decision[A any] struct {
	Action A
	Value  float64
	Metric metrics.SearchMetric
}

type Searcher[S any, A any] interface {
	// FindNextMove returns false when agent 0 has no legal action in state.
	FindNextMove(state S) (Decision[A], bool)
}

type Option func(s *settings)

type settings struct {
	metrics metrics.Collector
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

type base[S State[S, A], A any] struct {
	name     string
	depth    int
	evaluate Evaluate[S]
	metrics  metrics.Collector
}

func newBase[S State[S, A], A any](name string, depth int, evaluate Evaluate[S], options []Option) base[S, A] {
	if depth < 0 {
		panic("Must specify a non-negative search depth")
	}
	if evaluate == nil {
		panic("Must specify an evaluation function")
	}
	s := &settings{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return base[S, A]{
		name:     name,
		depth:    depth,
		evaluate: evaluate,
		metrics:  s.metrics,
	}
}

// decide picks the legal action of agent 0 whose child value is strictly the
// greatest, keeping the earliest action on ties. child receives the best
// value found so far.
func (b *base[S, A]) decide(state S, child func(successor S, best float64) float64) (Decision[A], bool) {
	b.metrics.Start(b.name, b.depth)
	if state.IsWin() || state.IsLose() {
		return Decision[A]{Metric: b.metrics.Complete()}, false
	}
	actions := state.LegalActions(0)
	if len(actions) == 0 {
		return Decision[A]{Metric: b.metrics.Complete()}, false
	}

	b.metrics.AddExpansion()
	best := Decision[A]{Action: actions[0], Value: math.Inf(-1)}
	for _, action := range actions {
		value := child(state.Successor(0, action), best.Value)
		if value > best.Value {
			best.Action = action
			best.Value = value
		}
	}
	best.Metric = b.metrics.Complete()
	return best, true
}

func (b *base[S, A]) leaf(state S) float64 {
	b.metrics.AddEvaluation()
	return b.evaluate(state)
}

func (b *base[S, A]) cutoff(depth int, state S) bool {
	return depth <= 0 || state.IsWin() || state.IsLose()
}

// next returns the agent to move after agent and the remaining depth.
func next(agent, depth, numAgents int) (int, int) {
	agent = (agent + 1) % numAgents
	if agent == 0 {
		depth--
	}
	return agent, depth
}

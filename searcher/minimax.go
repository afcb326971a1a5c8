package searcher

import "math"

// Minimax searches the full game tree to a fixed number of plies, assuming
// every agent other than 0 plays to minimize the evaluation.
type Minimax[S State[S, A], A any] struct {
	base[S, A]
}

func NewMinimax[S State[S, A], A any](depth int, evaluate Evaluate[S], options ...Option) *Minimax[S, A] {
	return &Minimax[S, A]{base: newBase[S, A]("minimax", depth, evaluate, options)}
}

func (m *Minimax[S, A]) FindNextMove(state S) (Decision[A], bool) {
	agent, depth := next(0, m.depth, state.NumAgents())
	return m.decide(state, func(child S, _ float64) float64 {
		return m.value(agent, depth, child)
	})
}

func (m *Minimax[S, A]) value(agent, depth int, state S) float64 {
	if m.cutoff(depth, state) {
		return m.leaf(state)
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return m.leaf(state)
	}

	m.metrics.AddExpansion()
	nextAgent, nextDepth := next(agent, depth, state.NumAgents())
	if agent == 0 {
		v := math.Inf(-1)
		for _, action := range actions {
			v = max(v, m.value(nextAgent, nextDepth, state.Successor(agent, action)))
		}
		return v
	}

	v := math.Inf(1)
	for _, action := range actions {
		v = min(v, m.value(nextAgent, nextDepth, state.Successor(agent, action)))
	}
	return v
}

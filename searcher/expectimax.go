package searcher

import "math"

// Expectimax treats every agent other than 0 as choosing uniformly at random
// among its legal actions.
type Expectimax[S State[S, A], A any] struct {
	base[S, A]
}

func NewExpectimax[S State[S, A], A any](depth int, evaluate Evaluate[S], options ...Option) *Expectimax[S, A] {
	return &Expectimax[S, A]{base: newBase[S, A]("expectimax", depth, evaluate, options)}
}

func (m *Expectimax[S, A]) FindNextMove(state S) (Decision[A], bool) {
	agent, depth := next(0, m.depth, state.NumAgents())
	return m.decide(state, func(child S, _ float64) float64 {
		return m.value(agent, depth, child)
	})
}

func (m *Expectimax[S, A]) value(agent, depth int, state S) float64 {
	if m.cutoff(depth, state) {
		return m.leaf(state)
	}
	actions := state.LegalActions(agent)
	nextAgent, nextDepth := next(agent, depth, state.NumAgents())

	if agent == 0 {
		if len(actions) == 0 {
			return m.leaf(state)
		}
		m.metrics.AddExpansion()
		v := math.Inf(-1)
		for _, action := range actions {
			v = max(v, m.value(nextAgent, nextDepth, state.Successor(agent, action)))
		}
		return v
	}

	// A chance node without outcomes contributes nothing.
	if len(actions) == 0 {
		return 0
	}
	m.metrics.AddExpansion()
	total := 0.0
	for _, action := range actions {
		total += m.value(nextAgent, nextDepth, state.Successor(agent, action))
	}
	return total / float64(len(actions))
}

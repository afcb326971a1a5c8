package searcher

import "math"

// AlphaBeta returns the same decisions as Minimax while skipping subtrees
// that cannot change the result.
type AlphaBeta[S State[S, A], A any] struct {
	base[S, A]
}

func NewAlphaBeta[S State[S, A], A any](depth int, evaluate Evaluate[S], options ...Option) *AlphaBeta[S, A] {
	return &AlphaBeta[S, A]{base: newBase[S, A]("alphabeta", depth, evaluate, options)}
}

func (m *AlphaBeta[S, A]) FindNextMove(state S) (Decision[A], bool) {
	agent, depth := next(0, m.depth, state.NumAgents())
	return m.decide(state, func(child S, alpha float64) float64 {
		return m.value(agent, depth, child, alpha, math.Inf(1))
	})
}

// value prunes only on strict inequality so that equal-valued siblings are
// still explored.
func (m *AlphaBeta[S, A]) value(agent, depth int, state S, alpha, beta float64) float64 {
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
			v = max(v, m.value(nextAgent, nextDepth, state.Successor(agent, action), alpha, beta))
			if v > beta {
				m.metrics.AddPrune()
				return v
			}
			alpha = max(alpha, v)
		}
		return v
	}

	v := math.Inf(1)
	for _, action := range actions {
		v = min(v, m.value(nextAgent, nextDepth, state.Successor(agent, action), alpha, beta))
		if v < alpha {
			m.metrics.AddPrune()
			return v
		}
		beta = min(beta, v)
	}
	return v
}

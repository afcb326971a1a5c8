// Package graph implements uninformed and informed graph search over an
// abstract search problem: depth-first, breadth-first, uniform cost and A*.
package graph

// Successor is one outgoing edge of a state.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64 // Non-negative step cost
}

// Problem is a search problem. States must be comparable so that expanded
// states can be remembered.
type Problem[S comparable, A any] interface {
	Start() S
	IsGoal(state S) bool
	// Successors returns the edges leaving state in a fixed order.
	Successors(state S) []Successor[S, A]
	// PathCost returns the total cost of a sequence of legal actions from the start.
	PathCost(actions []A) float64
}

// Heuristic estimates the remaining cost from state to the nearest goal.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic is the trivial heuristic.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}

// node is a frontier entry: a state and the path that reached it.
type node[S comparable, A any] struct {
	state S
	path  []A
	cost  float64
}

// extend returns the path to a successor. The parent path is never aliased so
// that sibling paths cannot overwrite each other.
func extend[A any](path []A, action A) []A {
	next := make([]A, len(path)+1)
	copy(next, path)
	next[len(path)] = action
	return next
}

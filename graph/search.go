package graph

// Every search returns the actions leading from the start to a goal and
// whether a goal was reached. A start that is already a goal yields an empty,
// non-nil path. An exhausted frontier yields (nil, false), which is a normal
// outcome and not an error.

// DepthFirst expands the deepest state first. The returned path reaches a goal
// but is not necessarily the shortest.
func DepthFirst[S comparable, A any](problem Problem[S, A]) ([]A, bool) {
	frontier := &stack[node[S, A]]{}
	frontier.push(node[S, A]{state: problem.Start(), path: []A{}})
	visited := make(map[S]bool)

	for !frontier.empty() {
		current := frontier.pop()
		if visited[current.state] {
			continue
		}
		visited[current.state] = true

		if problem.IsGoal(current.state) {
			return current.path, true
		}

		for _, succ := range problem.Successors(current.state) {
			if !visited[succ.State] {
				frontier.push(node[S, A]{state: succ.State, path: extend(current.path, succ.Action)})
			}
		}
	}
	return nil, false
}

// BreadthFirst expands the shallowest state first and returns a path with the
// fewest actions.
func BreadthFirst[S comparable, A any](problem Problem[S, A]) ([]A, bool) {
	frontier := &queue[node[S, A]]{}
	frontier.push(node[S, A]{state: problem.Start(), path: []A{}})
	visited := make(map[S]bool)

	for !frontier.empty() {
		current := frontier.pop()
		if visited[current.state] {
			continue
		}
		visited[current.state] = true

		if problem.IsGoal(current.state) {
			return current.path, true
		}

		for _, succ := range problem.Successors(current.state) {
			if !visited[succ.State] {
				frontier.push(node[S, A]{state: succ.State, path: extend(current.path, succ.Action)})
			}
		}
	}
	return nil, false
}

// UniformCost expands the state with the cheapest path so far and returns a
// path of minimal total cost when step costs are non-negative.
func UniformCost[S comparable, A any](problem Problem[S, A]) ([]A, bool) {
	return bestFirst(problem, NullHeuristic[S, A])
}

// AStar orders the frontier by path cost plus heuristic. The path is optimal
// when the heuristic is admissible and consistent. A nil heuristic is the
// null heuristic, which makes AStar a uniform cost search.
func AStar[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A]) ([]A, bool) {
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	return bestFirst(problem, heuristic)
}

func bestFirst[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A]) ([]A, bool) {
	start := problem.Start()
	frontier := &priorityQueue[node[S, A]]{}
	frontier.push(node[S, A]{state: start, path: []A{}}, heuristic(start, problem))

	// best holds the cheapest known cost of every discovered state; entries
	// popped with a higher cost are stale and skipped.
	best := map[S]float64{start: 0}
	closed := make(map[S]bool)

	for !frontier.empty() {
		current := frontier.pop()
		if closed[current.state] || current.cost > best[current.state] {
			continue
		}
		closed[current.state] = true

		if problem.IsGoal(current.state) {
			return current.path, true
		}

		for _, succ := range problem.Successors(current.state) {
			if closed[succ.State] {
				continue
			}
			cost := current.cost + succ.Cost
			if known, seen := best[succ.State]; seen && known <= cost {
				continue
			}
			best[succ.State] = cost
			frontier.push(
				node[S, A]{state: succ.State, path: extend(current.path, succ.Action), cost: cost},
				cost+heuristic(succ.State, problem),
			)
		}
	}
	return nil, false
}

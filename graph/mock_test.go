package graph

type edge struct {
	to     string
	action string
	cost   float64
}

// mockProblem is an explicit graph. It counts expansions.
type mockProblem struct {
	start    string
	goals    map[string]bool
	edges    map[string][]edge
	expanded []string
}

func (m *mockProblem) Start() string { return m.start }

func (m *mockProblem) IsGoal(state string) bool { return m.goals[state] }

func (m *mockProblem) Successors(state string) []Successor[string, string] {
	m.expanded = append(m.expanded, state)
	var successors []Successor[string, string]
	for _, e := range m.edges[state] {
		successors = append(successors, Successor[string, string]{State: e.to, Action: e.action, Cost: e.cost})
	}
	return successors
}

func (m *mockProblem) PathCost(actions []string) float64 {
	state := m.start
	total := 0.0
	for _, action := range actions {
		found := false
		for _, e := range m.edges[state] {
			if e.action == action {
				total += e.cost
				state = e.to
				found = true
				break
			}
		}
		if !found {
			panic("illegal action " + action + " from " + state)
		}
	}
	return total
}

// follow replays actions and returns the final state.
func (m *mockProblem) follow(actions []string) string {
	state := m.start
	for _, action := range actions {
		for _, e := range m.edges[state] {
			if e.action == action {
				state = e.to
				break
			}
		}
	}
	return state
}

type point struct{ x, y int }

// gridProblem walks a maze of open cells with unit or column-weighted costs.
type gridProblem struct {
	open     map[point]bool
	start    point
	goal     point
	weighted bool
	expanded int
}

var gridMoves = []struct {
	name string
	dx   int
	dy   int
}{{"N", 0, 1}, {"S", 0, -1}, {"E", 1, 0}, {"W", -1, 0}}

func (g *gridProblem) Start() point            { return g.start }
func (g *gridProblem) IsGoal(state point) bool { return state == g.goal }

func (g *gridProblem) stepCost(p point) float64 {
	if g.weighted {
		return float64(1 + p.x%3)
	}
	return 1
}

func (g *gridProblem) Successors(state point) []Successor[point, string] {
	g.expanded++
	var successors []Successor[point, string]
	for _, m := range gridMoves {
		next := point{state.x + m.dx, state.y + m.dy}
		if g.open[next] {
			successors = append(successors, Successor[point, string]{State: next, Action: m.name, Cost: g.stepCost(next)})
		}
	}
	return successors
}

func (g *gridProblem) PathCost(actions []string) float64 {
	p := g.start
	total := 0.0
	for _, action := range actions {
		for _, m := range gridMoves {
			if m.name == action {
				p = point{p.x + m.dx, p.y + m.dy}
				break
			}
		}
		if !g.open[p] {
			panic("path leaves the grid")
		}
		total += g.stepCost(p)
	}
	return total
}

func (g *gridProblem) end(actions []string) point {
	p := g.start
	for _, action := range actions {
		for _, m := range gridMoves {
			if m.name == action {
				p = point{p.x + m.dx, p.y + m.dy}
			}
		}
	}
	return p
}

func manhattan(state point, problem Problem[point, string]) float64 {
	goal := problem.(*gridProblem).goal
	dx := state.x - goal.x
	dy := state.y - goal.y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/graph"
	"time"

	"github.com/rs/zerolog/log"
)

type (
	positionProblem   = graph.Problem[game.Position, game.Direction]
	positionHeuristic = graph.Heuristic[game.Position, game.Direction]
)

// SearchFn finds a path for a problem. Uninformed searches ignore the heuristic.
type SearchFn func(problem positionProblem, heuristic positionHeuristic) ([]game.Direction, bool)

var Searches = map[string]SearchFn{
	"dfs": func(p positionProblem, _ positionHeuristic) ([]game.Direction, bool) {
		return graph.DepthFirst(p)
	},
	"bfs": func(p positionProblem, _ positionHeuristic) ([]game.Direction, bool) {
		return graph.BreadthFirst(p)
	},
	"ucs": func(p positionProblem, _ positionHeuristic) ([]game.Direction, bool) {
		return graph.UniformCost(p)
	},
	"astar": func(p positionProblem, h positionHeuristic) ([]game.Direction, bool) {
		return graph.AStar(p, h)
	},
}

var Heuristics = map[string]positionHeuristic{
	"null":      graph.NullHeuristic[game.Position, game.Direction],
	"manhattan": ManhattanHeuristic,
	"euclidean": EuclideanHeuristic,
}

var Costs = map[string]CostFn{
	"unit": UnitCost,
	"east": StayEastCost,
	"west": StayWestCost,
}

// expander is implemented by problems that count their expansions.
type expander interface {
	positionProblem
	expanded() int
}

func (p *PositionProblem) expanded() int {
	return p.Expanded
}

// ProblemFn builds a search problem from the state pacman starts planning in.
type ProblemFn func(state *game.GameState, cost CostFn) expander

var Problems = map[string]ProblemFn{
	// The bottom left corner, where the single food of the search mazes is
	"position": func(state *game.GameState, cost CostFn) expander {
		return NewPositionProblem(state, game.Position{X: 1, Y: 1}, cost)
	},
	"food": func(state *game.GameState, cost CostFn) expander {
		return NewAnyFoodProblem(state, cost)
	},
}

// SearchAgent plans a path once, on its first move, and then follows it.
// It stops once the plan is used up or when no plan was found.
type SearchAgent struct {
	name      string
	search    SearchFn
	heuristic positionHeuristic
	problem   ProblemFn
	cost      CostFn

	plan    []game.Direction
	next    int
	planned bool
}

func NewSearchAgent(name string, search SearchFn, heuristic positionHeuristic, problem ProblemFn, cost CostFn) *SearchAgent {
	if search == nil || problem == nil {
		panic("Must specify a search function and a problem")
	}
	return &SearchAgent{
		name:      name,
		search:    search,
		heuristic: heuristic,
		problem:   problem,
		cost:      cost,
	}
}

// NewPlanAgent returns an agent that follows a fixed plan.
func NewPlanAgent(plan []game.Direction) *SearchAgent {
	return &SearchAgent{name: "plan", plan: plan, planned: true}
}

// TinyMazePlan solves tinyMaze and nothing else.
func TinyMazePlan() []game.Direction {
	s, w := game.South, game.West
	return []game.Direction{s, s, w, s, w, w, s, w}
}

func (a *SearchAgent) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric) {
	var metric metrics.SearchMetric
	if !a.planned {
		a.planned = true
		metric = a.replan(state)
	}

	if a.next >= len(a.plan) {
		return game.Stop, metric
	}
	action := a.plan[a.next]
	a.next++
	return action, metric
}

// Plan returns the planned actions, nil before the first move.
func (a *SearchAgent) Plan() []game.Direction {
	return a.plan
}

func (a *SearchAgent) replan(state *game.GameState) metrics.SearchMetric {
	start := time.Now()
	problem := a.problem(state, a.cost)
	plan, found := a.search(problem, a.heuristic)
	metric := metrics.SearchMetric{
		Algorithm: a.name,
		Duration:  time.Since(start),
		Expanded:  problem.expanded(),
	}

	if !found {
		log.Warn().Msgf("%s found no path from %v", a.name, state.PacmanPosition())
		a.plan, a.next = nil, 0
		return metric
	}
	log.Info().Msgf("%s found a path with total cost of %v in %v, search nodes expanded: %d",
		a.name, problem.PathCost(plan), metric.Duration, metric.Expanded)
	a.plan, a.next = plan, 0
	return metric
}

// ClosestDotAgent repeatedly walks to the nearest food using breadth first search.
type ClosestDotAgent struct {
	inner *SearchAgent
}

func NewClosestDotAgent() *ClosestDotAgent {
	return &ClosestDotAgent{
		inner: NewSearchAgent("bfs", Searches["bfs"], nil, Problems["food"], UnitCost),
	}
}

func (a *ClosestDotAgent) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric) {
	var metric metrics.SearchMetric
	if a.inner.next >= len(a.inner.plan) && state.NumFood() > 0 {
		metric = a.inner.replan(state)
		a.inner.planned = true
	}
	if a.inner.next >= len(a.inner.plan) {
		return game.Stop, metric
	}
	action := a.inner.plan[a.inner.next]
	a.inner.next++
	return action, metric
}

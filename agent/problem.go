package agent

import (
	"math"
	"pacman/game"
	"pacman/graph"
)

// CostFn is the cost of stepping onto a position.
type CostFn func(pos game.Position) float64

func UnitCost(game.Position) float64 {
	return 1
}

// StayEastCost makes western positions expensive.
func StayEastCost(pos game.Position) float64 {
	return math.Pow(0.5, float64(pos.X))
}

// StayWestCost makes eastern positions expensive.
func StayWestCost(pos game.Position) float64 {
	return math.Pow(2, float64(pos.X))
}

// PositionProblem is the problem of walking pacman to a goal position. It
// keeps count of the positions it expanded.
type PositionProblem struct {
	layout *game.Layout
	start  game.Position
	goal   game.Position
	cost   CostFn

	Expanded int
	Visited  []game.Position // In order of first expansion
	seen     map[game.Position]bool
}

func NewPositionProblem(state *game.GameState, goal game.Position, cost CostFn) *PositionProblem {
	if cost == nil {
		cost = UnitCost
	}
	return &PositionProblem{
		layout: state.Layout(),
		start:  state.PacmanPosition(),
		goal:   goal,
		cost:   cost,
		seen:   map[game.Position]bool{},
	}
}

func (p *PositionProblem) Start() game.Position {
	return p.start
}

func (p *PositionProblem) IsGoal(pos game.Position) bool {
	return pos == p.goal
}

func (p *PositionProblem) Targets() []game.Position {
	return []game.Position{p.goal}
}

func (p *PositionProblem) Successors(pos game.Position) []graph.Successor[game.Position, game.Direction] {
	p.Expanded++
	if !p.seen[pos] {
		p.seen[pos] = true
		p.Visited = append(p.Visited, pos)
	}

	var successors []graph.Successor[game.Position, game.Direction]
	for _, d := range p.layout.Neighbors(pos) {
		next := pos.Step(d)
		successors = append(successors, graph.Successor[game.Position, game.Direction]{
			State:  next,
			Action: d,
			Cost:   p.cost(next),
		})
	}
	return successors
}

// PathCost is infinite for paths that walk into a wall.
func (p *PositionProblem) PathCost(actions []game.Direction) float64 {
	pos := p.start
	total := 0.0
	for _, d := range actions {
		pos = pos.Step(d)
		if p.layout.IsWall(pos) {
			return math.Inf(1)
		}
		total += p.cost(pos)
	}
	return total
}

// AnyFoodProblem is the problem of reaching any cell that still has food.
type AnyFoodProblem struct {
	*PositionProblem
	food game.Grid
}

func NewAnyFoodProblem(state *game.GameState, cost CostFn) *AnyFoodProblem {
	return &AnyFoodProblem{
		PositionProblem: NewPositionProblem(state, state.PacmanPosition(), cost),
		food:            state.Food(),
	}
}

func (p *AnyFoodProblem) IsGoal(pos game.Position) bool {
	return p.food.At(pos)
}

func (p *AnyFoodProblem) Targets() []game.Position {
	return p.food.List()
}

// targeted problems expose the positions their goals are at, for heuristics.
type targeted interface {
	Targets() []game.Position
}

// ManhattanHeuristic is the Manhattan distance to the closest target. It is
// zero for problems without targets.
func ManhattanHeuristic(pos game.Position, problem graph.Problem[game.Position, game.Direction]) float64 {
	t, ok := problem.(targeted)
	if !ok {
		return 0
	}
	d, found := game.NearestDistance(pos, t.Targets())
	if !found {
		return 0
	}
	return float64(d)
}

func EuclideanHeuristic(pos game.Position, problem graph.Problem[game.Position, game.Direction]) float64 {
	t, ok := problem.(targeted)
	if !ok {
		return 0
	}
	best := math.Inf(1)
	for _, target := range t.Targets() {
		best = min(best, game.EuclideanDistance(pos, target))
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

package agent

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
	"time"

	"golang.org/x/exp/rand"
)

// ReflexEvaluation scores playing action in state by looking one move ahead.
func ReflexEvaluation(state *game.GameState, action game.Direction) float64 {
	next := state.Successor(game.PacmanIndex, action)
	if next.IsLose() {
		return math.Inf(-1)
	}
	if next.IsWin() {
		return math.Inf(1)
	}

	pos := next.PacmanPosition()
	score := next.Score()
	if d, ok := game.NearestDistance(pos, next.Food().List()); ok {
		score += 10.0 / float64(d+1)
	}
	for _, ghost := range next.GhostStates() {
		d := game.ManhattanDistance(pos, ghost.Position)
		switch {
		case ghost.ScaredTimer > d:
			score += 50.0 / float64(d+1)
		case d <= 1:
			score -= 500
		}
	}
	if action == game.Stop {
		score -= 5
	}
	return score
}

// ReflexAgent picks the action with the best ReflexEvaluation, choosing
// uniformly at random among equally good actions.
type ReflexAgent struct {
	rand *rand.Rand
}

func NewReflexAgent(seed uint64) *ReflexAgent {
	return &ReflexAgent{rand: rand.New(rand.NewSource(seed))}
}

func (a *ReflexAgent) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric) {
	start := time.Now()
	actions := state.LegalActions(game.PacmanIndex)
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}
	}

	bestScore := math.Inf(-1)
	var best []game.Direction
	for _, action := range actions {
		score := ReflexEvaluation(state, action)
		switch {
		case score > bestScore:
			bestScore = score
			best = []game.Direction{action}
		case score == bestScore:
			best = append(best, action)
		}
	}

	metric := metrics.SearchMetric{
		Algorithm:   "reflex",
		Duration:    time.Since(start),
		Expanded:    1,
		Evaluations: len(actions),
	}
	return best[a.rand.Intn(len(best))], metric
}

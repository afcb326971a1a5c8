package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"

	"golang.org/x/exp/rand"
)

// RandomGhost moves uniformly at random among its legal actions.
type RandomGhost struct {
	index int
	rand  *rand.Rand
}

func NewRandomGhost(index int, seed uint64) *RandomGhost {
	if index <= game.PacmanIndex {
		panic("Must specify a ghost index")
	}
	return &RandomGhost{index: index, rand: rand.New(rand.NewSource(seed))}
}

func (g *RandomGhost) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric) {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}
	}
	return actions[g.rand.Intn(len(actions))], metrics.SearchMetric{}
}

const (
	AttackProb = 0.8 // Probability of chasing pacman
	FleeProb   = 0.8 // Probability of running away while scared
)

// DirectionalGhost prefers the actions that bring it closest to pacman, or
// furthest away while it is scared.
type DirectionalGhost struct {
	index int
	rand  *rand.Rand
}

func NewDirectionalGhost(index int, seed uint64) *DirectionalGhost {
	if index <= game.PacmanIndex {
		panic("Must specify a ghost index")
	}
	return &DirectionalGhost{index: index, rand: rand.New(rand.NewSource(seed))}
}

type ActionProb struct {
	Action game.Direction
	Prob   float64
}

// Distribution returns the probability of each legal action, in legal order.
func (g *DirectionalGhost) Distribution(state *game.GameState) []ActionProb {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return nil
	}
	ghost := state.AgentState(g.index)
	pacman := state.PacmanPosition()

	distances := make([]int, len(actions))
	for i, action := range actions {
		distances[i] = game.ManhattanDistance(ghost.Position.Step(action), pacman)
	}

	scared := ghost.IsScared()
	bestProb := AttackProb
	if scared {
		bestProb = FleeProb
	}
	bestDistance := distances[0]
	for _, d := range distances[1:] {
		if (scared && d > bestDistance) || (!scared && d < bestDistance) {
			bestDistance = d
		}
	}
	numBest := 0
	for _, d := range distances {
		if d == bestDistance {
			numBest++
		}
	}

	dist := make([]ActionProb, len(actions))
	for i, action := range actions {
		prob := (1 - bestProb) / float64(len(actions))
		if distances[i] == bestDistance {
			prob += bestProb / float64(numBest)
		}
		dist[i] = ActionProb{Action: action, Prob: prob}
	}
	return dist
}

func (g *DirectionalGhost) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric) {
	dist := g.Distribution(state)
	if len(dist) == 0 {
		return game.Stop, metrics.SearchMetric{}
	}
	return sample(g.rand, dist), metrics.SearchMetric{}
}

func sample(r *rand.Rand, dist []ActionProb) game.Direction {
	sampled := r.Float64()
	cumulative := 0.0
	for _, w := range dist {
		cumulative += w.Prob
		if sampled < cumulative {
			return w.Action
		}
	}
	// Rounding left the total just below one
	return dist[len(dist)-1].Action
}

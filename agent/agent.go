// Package agent contains pacman and ghost agents built on the graph and
// game-tree searchers, and a registry that builds them by name.
package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
)

type Agent interface {
	// FindMove returns the action to play and the metrics of the decision, if collected
	FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric)
}

package engine

import "pacman/experiments/metrics"

// MaxMoves is the default limit on pacman moves in one game.
const MaxMoves = 10000

type Engine interface {
	// Run plays a game until pacman wins or loses or the move limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

package game

import "math"

// Evaluate scores a state from pacman's point of view, higher is better.
type Evaluate func(*GameState) float64

// ScoreEvaluation returns the game score unchanged.
func ScoreEvaluation(s *GameState) float64 {
	return s.Score()
}

// BetterEvaluation adds to the score a reward for being close to food, a
// penalty for food and capsules left on the board, a penalty for standing near
// an active ghost and a reward for chasing scared ghosts that can be reached
// before they recover.
func BetterEvaluation(s *GameState) float64 {
	if s.IsWin() || s.IsLose() {
		return s.Score()
	}

	pacman := s.PacmanPosition()
	score := s.Score()

	if nearest, ok := NearestDistance(pacman, s.Food().List()); ok {
		score += 10.0 / float64(nearest+1)
	}
	score -= 4.0 * float64(s.NumFood())
	score -= 20.0 * float64(len(s.capsules))

	for _, ghost := range s.GhostStates() {
		distance := ManhattanDistance(pacman, ghost.Position)
		if ghost.IsScared() {
			// Only worth chasing if it is reachable before it recovers
			if distance < ghost.ScaredTimer {
				score += 100.0 / float64(distance+1)
			}
			continue
		}
		if distance <= 1 {
			score -= 200
		} else {
			score -= 2.0 / float64(distance)
		}
	}

	return score
}

// NearestDistance returns the smallest manhattan distance from p to any target.
func NearestDistance(p Position, targets []Position) (int, bool) {
	if len(targets) == 0 {
		return 0, false
	}
	nearest := math.MaxInt
	for _, target := range targets {
		if d := ManhattanDistance(p, target); d < nearest {
			nearest = d
		}
	}
	return nearest, true
}

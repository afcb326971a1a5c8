package game

// Scoring and timing rules of the classic game.
const (
	TimePenalty  = 1   // Lost on every pacman move
	FoodReward   = 10  // Eating one food
	WinReward    = 500 // Eating the last food
	LosePenalty  = 500 // Being caught by an active ghost
	GhostReward  = 200 // Eating a scared ghost
	ScaredTime   = 40  // Ghost moves a capsule keeps ghosts scared
	PacmanIndex  = 0
	MaxNumGhosts = 4
)

// AgentState is the dynamic part of one agent.
type AgentState struct {
	Start       Position  `json:"start"`
	Position    Position  `json:"position"`
	Direction   Direction `json:"direction"`
	ScaredTimer int       `json:"scaredTimer"`
}

// IsScared reports whether pacman can currently eat this ghost.
func (a AgentState) IsScared() bool {
	return a.ScaredTimer > 0
}

func (s *GameState) pacmanActions() []Direction {
	pos := s.agents[PacmanIndex].Position
	actions := s.layout.Neighbors(pos)
	return append(actions, Stop)
}

// Ghosts can't stop and only turn back when there is nothing else to do.
func (s *GameState) ghostActions(agent int) []Direction {
	ghost := s.agents[agent]
	actions := s.layout.Neighbors(ghost.Position)
	reverse := ghost.Direction.Reverse()
	if ghost.Direction == Stop || len(actions) <= 1 {
		return actions
	}
	filtered := actions[:0]
	for _, d := range actions {
		if d != reverse {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func (s *GameState) applyPacman(action Direction) {
	pacman := &s.agents[PacmanIndex]
	pacman.Position = pacman.Position.Step(action)
	pacman.Direction = action
	s.score -= TimePenalty

	pos := pacman.Position
	if s.food.At(pos) {
		s.food = s.food.With(pos, false)
		s.score += FoodReward
		if s.food.Count() == 0 && !s.lose {
			s.score += WinReward
			s.win = true
		}
	}

	for i, capsule := range s.capsules {
		if capsule == pos {
			capsules := make([]Position, 0, len(s.capsules)-1)
			capsules = append(capsules, s.capsules[:i]...)
			s.capsules = append(capsules, s.capsules[i+1:]...)
			for g := 1; g < len(s.agents); g++ {
				s.agents[g].ScaredTimer = ScaredTime
			}
			break
		}
	}
}

func (s *GameState) applyGhost(agent int, action Direction) {
	ghost := &s.agents[agent]
	ghost.Position = ghost.Position.Step(action)
	ghost.Direction = action
	if ghost.ScaredTimer > 0 {
		ghost.ScaredTimer--
	}
}

// checkDeath resolves collisions caused by the agent that just moved.
func (s *GameState) checkDeath(agent int) {
	if agent == PacmanIndex {
		for g := 1; g < len(s.agents); g++ {
			s.collide(g)
		}
		return
	}
	s.collide(agent)
}

func (s *GameState) collide(ghostIndex int) {
	ghost := &s.agents[ghostIndex]
	if ghost.Position != s.agents[PacmanIndex].Position {
		return
	}
	if ghost.IsScared() {
		s.score += GhostReward
		ghost.Position = ghost.Start
		ghost.Direction = Stop
		ghost.ScaredTimer = 0
		return
	}
	if !s.win {
		s.score -= LosePenalty
		s.lose = true
	}
}

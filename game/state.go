package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

type StateHash uint64

// GameState is an immutable snapshot of a game. Successor always returns a new
// state and never modifies the receiver, so states can be shared freely
// between searches.
type GameState struct {
	layout   *Layout
	food     Grid
	capsules []Position
	agents   []AgentState // Pacman first, then ghosts
	score    float64
	win      bool
	lose     bool
}

// NewGameState places pacman and at most maxGhosts ghosts on their starting
// cells. A negative maxGhosts keeps every ghost of the layout.
func NewGameState(l *Layout, maxGhosts int) *GameState {
	ghosts := l.GhostStarts
	if maxGhosts >= 0 && len(ghosts) > maxGhosts {
		ghosts = ghosts[:maxGhosts]
	}

	agents := make([]AgentState, 0, len(ghosts)+1)
	agents = append(agents, AgentState{Start: l.PacmanStart, Position: l.PacmanStart, Direction: Stop})
	for _, start := range ghosts {
		agents = append(agents, AgentState{Start: start, Position: start, Direction: Stop})
	}

	capsules := make([]Position, len(l.Capsules))
	copy(capsules, l.Capsules)

	return &GameState{
		layout:   l,
		food:     l.Food,
		capsules: capsules,
		agents:   agents,
	}
}

func (s *GameState) copy() *GameState {
	agents := make([]AgentState, len(s.agents))
	copy(agents, s.agents)
	return &GameState{
		layout:   s.layout, // Layout is never modified
		food:     s.food,   // Grid copies on write
		capsules: s.capsules,
		agents:   agents,
		score:    s.score,
		win:      s.win,
		lose:     s.lose,
	}
}

// LegalActions returns the moves available to an agent. Terminal states have none.
func (s *GameState) LegalActions(agent int) []Direction {
	if s.win || s.lose {
		return nil
	}
	if agent == PacmanIndex {
		return s.pacmanActions()
	}
	return s.ghostActions(agent)
}

// Successor returns the state after agent plays action. It panics on terminal
// states and illegal actions.
func (s *GameState) Successor(agent int, action Direction) *GameState {
	if s.win || s.lose {
		panic("cannot generate a successor of a terminal state")
	}
	if agent < 0 || agent >= len(s.agents) {
		panic(fmt.Sprintf("agent index %d out of range [0, %d)", agent, len(s.agents)))
	}
	if !s.IsLegal(agent, action) {
		panic(fmt.Sprintf("illegal action %s for agent %d at %s", action, agent, s.agents[agent].Position))
	}

	next := s.copy()
	if agent == PacmanIndex {
		next.applyPacman(action)
	} else {
		next.applyGhost(agent, action)
	}
	next.checkDeath(agent)
	return next
}

func (s *GameState) IsLegal(agent int, action Direction) bool {
	for _, legal := range s.LegalActions(agent) {
		if legal == action {
			return true
		}
	}
	return false
}

func (s *GameState) NumAgents() int { return len(s.agents) }
func (s *GameState) IsWin() bool    { return s.win }
func (s *GameState) IsLose() bool   { return s.lose }
func (s *GameState) Score() float64 { return s.score }
func (s *GameState) Layout() *Layout {
	return s.layout
}

func (s *GameState) PacmanPosition() Position {
	return s.agents[PacmanIndex].Position
}

// AgentState returns a copy of the state of one agent.
func (s *GameState) AgentState(agent int) AgentState {
	return s.agents[agent]
}

// GhostStates returns copies of every ghost state, in agent order.
func (s *GameState) GhostStates() []AgentState {
	ghosts := make([]AgentState, len(s.agents)-1)
	copy(ghosts, s.agents[1:])
	return ghosts
}

func (s *GameState) GhostPositions() []Position {
	positions := make([]Position, 0, len(s.agents)-1)
	for _, ghost := range s.agents[1:] {
		positions = append(positions, ghost.Position)
	}
	return positions
}

func (s *GameState) Food() Grid    { return s.food }
func (s *GameState) NumFood() int  { return s.food.Count() }
func (s *GameState) Walls() Grid   { return s.layout.Walls }
func (s *GameState) HasFood(p Position) bool {
	return s.food.At(p)
}

func (s *GameState) Capsules() []Position {
	capsules := make([]Position, len(s.capsules))
	copy(capsules, s.capsules)
	return capsules
}

// Hash identifies the dynamic part of a state. The score is not part of it.
func (s *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash agents
	for _, agent := range s.agents {
		binary.Write(hasher, binary.LittleEndian, int64(agent.Position.X))
		binary.Write(hasher, binary.LittleEndian, int64(agent.Position.Y))
		binary.Write(hasher, binary.LittleEndian, int64(agent.Direction))
		binary.Write(hasher, binary.LittleEndian, int64(agent.ScaredTimer))
	}

	// Hash remaining food and capsules
	for _, p := range s.food.List() {
		binary.Write(hasher, binary.LittleEndian, int64(p.X))
		binary.Write(hasher, binary.LittleEndian, int64(p.Y))
	}
	for _, p := range s.capsules {
		binary.Write(hasher, binary.LittleEndian, int64(-p.X-1))
		binary.Write(hasher, binary.LittleEndian, int64(-p.Y-1))
	}

	binary.Write(hasher, binary.LittleEndian, s.win)
	binary.Write(hasher, binary.LittleEndian, s.lose)

	return StateHash(hasher.Sum64())
}

// String draws the board in the layout format, so the output can be parsed back
// with ParseLayout.
func (s *GameState) String() string {
	l := s.layout
	var b strings.Builder
	for y := l.Height - 1; y >= 0; y-- {
		for x := 0; x < l.Width; x++ {
			b.WriteByte(s.cell(Position{x, y}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *GameState) cell(p Position) byte {
	if s.agents[PacmanIndex].Position == p {
		return 'P'
	}
	for _, ghost := range s.agents[1:] {
		if ghost.Position == p {
			return 'G'
		}
	}
	switch {
	case s.layout.Walls.At(p):
		return '%'
	case s.food.At(p):
		return '.'
	}
	for _, capsule := range s.capsules {
		if capsule == p {
			return 'o'
		}
	}
	return ' '
}

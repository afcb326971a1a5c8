package game

import (
	"fmt"
	"strings"
)

// Snapshot is a serializable form of a GameState, used to send states to a
// remote agent.
type Snapshot struct {
	Layout   string       `json:"layout"`
	Food     []Position   `json:"food"`
	Capsules []Position   `json:"capsules"`
	Agents   []AgentState `json:"agents"`
	Score    float64      `json:"score"`
	Win      bool         `json:"win,omitempty"`
	Lose     bool         `json:"lose,omitempty"`
}

func (s *GameState) Snapshot() Snapshot {
	agents := make([]AgentState, len(s.agents))
	copy(agents, s.agents)
	return Snapshot{
		Layout:   s.layout.String(),
		Food:     s.food.List(),
		Capsules: s.Capsules(),
		Agents:   agents,
		Score:    s.score,
		Win:      s.win,
		Lose:     s.lose,
	}
}

// FromSnapshot rebuilds a state, checking that every position, agent starts
// included, lies on an open cell.
func FromSnapshot(snap Snapshot) (*GameState, error) {
	l, err := ParseLayout("snapshot", strings.NewReader(snap.Layout))
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot layout: %w", err)
	}
	if len(snap.Agents) == 0 {
		return nil, fmt.Errorf("snapshot has no agents")
	}

	food := NewGrid(l.Width, l.Height)
	for _, p := range snap.Food {
		if l.IsWall(p) {
			return nil, fmt.Errorf("snapshot food at %s is not an open cell", p)
		}
		food.set(p)
	}
	for _, p := range snap.Capsules {
		if l.IsWall(p) {
			return nil, fmt.Errorf("snapshot capsule at %s is not an open cell", p)
		}
	}
	for i, agent := range snap.Agents {
		if l.IsWall(agent.Position) {
			return nil, fmt.Errorf("snapshot agent %d at %s is not an open cell", i, agent.Position)
		}
		if l.IsWall(agent.Start) {
			return nil, fmt.Errorf("snapshot agent %d starts at %s, which is not an open cell", i, agent.Start)
		}
		if agent.ScaredTimer < 0 {
			return nil, fmt.Errorf("snapshot agent %d has negative scared timer %d", i, agent.ScaredTimer)
		}
	}

	agents := make([]AgentState, len(snap.Agents))
	copy(agents, snap.Agents)
	capsules := make([]Position, len(snap.Capsules))
	copy(capsules, snap.Capsules)

	return &GameState{
		layout:   l,
		food:     food,
		capsules: capsules,
		agents:   agents,
		score:    snap.Score,
		win:      snap.Win,
		lose:     snap.Lose,
	}, nil
}

// String draws the initial board of the layout.
func (l *Layout) String() string {
	var b strings.Builder
	for y := l.Height - 1; y >= 0; y-- {
		for x := 0; x < l.Width; x++ {
			b.WriteByte(l.cell(Position{x, y}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (l *Layout) cell(p Position) byte {
	if l.PacmanStart == p {
		return 'P'
	}
	for _, start := range l.GhostStarts {
		if start == p {
			return 'G'
		}
	}
	switch {
	case l.Walls.At(p):
		return '%'
	case l.Food.At(p):
		return '.'
	}
	for _, capsule := range l.Capsules {
		if capsule == p {
			return 'o'
		}
	}
	return ' '
}

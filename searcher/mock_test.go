package searcher

import (
	"slices"

	"golang.org/x/exp/rand"
)

// tree is an explicit game tree. The actions of a node are the indexes of its
// children, whatever agent is to move.
type tree struct {
	agents   int
	value    float64
	children []*tree
	win      bool
	lose     bool
}

func (t *tree) LegalActions(agent int) []int {
	actions := make([]int, len(t.children))
	for i := range t.children {
		actions[i] = i
	}
	return actions
}

func (t *tree) Successor(agent int, action int) *tree {
	return t.children[action]
}

func (t *tree) NumAgents() int { return t.agents }
func (t *tree) IsWin() bool    { return t.win }
func (t *tree) IsLose() bool   { return t.lose }

func leaf(value float64) *tree {
	return &tree{value: value}
}

func node(children ...*tree) *tree {
	return &tree{children: children}
}

// withAgents sets the agent count on every node of t.
func withAgents(agents int, t *tree) *tree {
	t.agents = agents
	for _, child := range t.children {
		withAgents(agents, child)
	}
	return t
}

func treeValue(t *tree) float64 {
	return t.value
}

// randomTree builds a tree of the given height with one to three children
// per node and integer leaf values. Some inner nodes are terminal.
func randomTree(r *rand.Rand, agents, height int) *tree {
	if height == 0 {
		return &tree{agents: agents, value: float64(r.Intn(41) - 20)}
	}
	t := &tree{agents: agents, value: float64(r.Intn(41) - 20)}
	if r.Intn(10) == 0 {
		t.win = r.Intn(2) == 0
		t.lose = !t.win
	}
	n := 1 + r.Intn(3)
	for i := 0; i < n; i++ {
		t.children = append(t.children, randomTree(r, agents, height-1))
	}
	return t
}

// chain has a single legal action per agent and remembers which agents moved.
type chain struct {
	agents int
	moved  []int
}

func (c *chain) LegalActions(agent int) []int { return []int{0} }

func (c *chain) Successor(agent int, action int) *chain {
	return &chain{agents: c.agents, moved: append(slices.Clone(c.moved), agent)}
}

func (c *chain) NumAgents() int { return c.agents }
func (c *chain) IsWin() bool    { return false }
func (c *chain) IsLose() bool   { return false }

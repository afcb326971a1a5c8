package agent

import (
	"errors"
	"fmt"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"
)

var (
	ErrUnknownAgent      = errors.New("unknown agent")
	ErrUnknownEvaluation = errors.New("unknown evaluation function")
	ErrUnknownSearch     = errors.New("unknown search function")
)

var Evaluations = map[string]game.Evaluate{
	"score":  game.ScoreEvaluation,
	"better": game.BetterEvaluation,
}

// Config selects a pacman agent and its parameters. Fields that do not apply
// to the chosen agent are ignored.
type Config struct {
	Agent      string // search, closest, tinymaze, reflex, minimax, alphabeta, expectimax
	Depth      int
	Evaluation string
	Search     string // dfs, bfs, ucs, astar
	Heuristic  string
	Problem    string // position, food
	Cost       string // unit, east, west
	Seed       uint64
}

func DefaultConfig() Config {
	return Config{
		Agent:      "alphabeta",
		Depth:      2,
		Evaluation: "better",
		Search:     "bfs",
		Heuristic:  "null",
		Problem:    "position",
		Cost:       "unit",
	}
}

func (c Config) String() string {
	switch c.Agent {
	case "search":
		return fmt.Sprintf("%s(%s,%s,%s,%s)", c.Agent, c.Search, c.Heuristic, c.Problem, c.Cost)
	case "minimax", "alphabeta", "expectimax":
		return fmt.Sprintf("%s(depth=%d,%s)", c.Agent, c.Depth, c.Evaluation)
	default:
		return c.Agent
	}
}

// Validate checks that every name cfg uses for its agent is known, without
// building the agent.
func (c Config) Validate() error {
	switch c.Agent {
	case "search":
		if _, ok := Searches[c.Search]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSearch, c.Search)
		}
		if _, ok := Heuristics[c.Heuristic]; !ok {
			return fmt.Errorf("%w: heuristic %q", ErrUnknownSearch, c.Heuristic)
		}
		if _, ok := Problems[c.Problem]; !ok {
			return fmt.Errorf("%w: problem %q", ErrUnknownSearch, c.Problem)
		}
		if _, ok := Costs[c.Cost]; !ok {
			return fmt.Errorf("%w: cost %q", ErrUnknownSearch, c.Cost)
		}
		return nil
	case "closest", "tinymaze", "reflex":
		return nil
	}

	if _, ok := Searchers[c.Agent]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAgent, c.Agent)
	}
	if _, ok := Evaluations[c.Evaluation]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEvaluation, c.Evaluation)
	}
	if c.Depth < 0 {
		return fmt.Errorf("invalid depth %d for %s", c.Depth, c.Agent)
	}
	return nil
}

// NewPacman builds the agent described by cfg. Game-tree agents collect
// search metrics.
func NewPacman(cfg Config) (Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Agent {
	case "search":
		return NewSearchAgent(cfg.Search, Searches[cfg.Search], Heuristics[cfg.Heuristic],
			Problems[cfg.Problem], Costs[cfg.Cost]), nil
	case "closest":
		return NewClosestDotAgent(), nil
	case "tinymaze":
		return NewPlanAgent(TinyMazePlan()), nil
	case "reflex":
		return NewReflexAgent(cfg.Seed), nil
	}

	s := Searchers[cfg.Agent](cfg.Depth, Evaluations[cfg.Evaluation], searcher.WithMetrics(metrics.NewCollector()))
	return NewMultiAgent(s), nil
}

// Ghosts builds ghost agents by name.
var Ghosts = map[string]func(index int, seed uint64) Agent{
	"random":      func(index int, seed uint64) Agent { return NewRandomGhost(index, seed) },
	"directional": func(index int, seed uint64) Agent { return NewDirectionalGhost(index, seed) },
}

// NewGhost builds the ghost agent called name for the given agent index.
func NewGhost(name string, index int, seed uint64) (Agent, error) {
	if index <= game.PacmanIndex {
		return nil, fmt.Errorf("invalid ghost index %d", index)
	}
	newGhost, ok := Ghosts[name]
	if !ok {
		return nil, fmt.Errorf("%w: ghost %q", ErrUnknownAgent, name)
	}
	return newGhost(index, seed), nil
}

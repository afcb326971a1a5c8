// Package config loads the TOML configuration of games, agents, the agent
// server and experiments.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"pacman/agent"
	"pacman/engine"
	"pacman/game"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

type Log struct {
	Level  string `toml:"level"`  // zerolog level name
	Pretty bool   `toml:"pretty"` // Console output instead of JSON
}

type Game struct {
	Layout   string `toml:"layout"`
	Ghost    string `toml:"ghost"`  // Ghost agent, random or directional
	Ghosts   int    `toml:"ghosts"` // Negative places every ghost of the layout
	MaxMoves int    `toml:"max_moves"`
	Seed     uint64 `toml:"seed"`
}

// Pacman mirrors agent.Config.
type Pacman struct {
	Agent      string `toml:"agent"`
	Depth      int    `toml:"depth"`
	Evaluation string `toml:"evaluation"`
	Search     string `toml:"search"`
	Heuristic  string `toml:"heuristic"`
	Problem    string `toml:"problem"`
	Cost       string `toml:"cost"`
}

type Server struct {
	Addr     string `toml:"addr"`      // Listen address of the agent server
	Remote   string `toml:"remote"`    // URL of an agent server to play against, if any
	Timeout  uint   `toml:"timeout"`   // Milliseconds per remote decision
	MaxDepth int    `toml:"max_depth"` // Deepest search a request may ask for
}

type Experiment struct {
	Name    string   `toml:"name"`
	Dir     string   `toml:"dir"`
	Games   int      `toml:"games"` // Per layout and agent
	Layouts []string `toml:"layouts"`
	Agents  []Pacman `toml:"agents"`
}

type Config struct {
	Log        Log        `toml:"log"`
	Game       Game       `toml:"game"`
	Pacman     Pacman     `toml:"pacman"`
	Server     Server     `toml:"server"`
	Experiment Experiment `toml:"experiment"`
}

func Default() Config {
	d := agent.DefaultConfig()
	pacman := Pacman{
		Agent:      d.Agent,
		Depth:      d.Depth,
		Evaluation: d.Evaluation,
		Search:     d.Search,
		Heuristic:  d.Heuristic,
		Problem:    d.Problem,
		Cost:       d.Cost,
	}
	return Config{
		Log: Log{Level: "info", Pretty: true},
		Game: Game{
			Layout:   "smallClassic",
			Ghost:    "random",
			Ghosts:   -1,
			MaxMoves: engine.MaxMoves,
			Seed:     1,
		},
		Pacman: pacman,
		Server: Server{Addr: ":8080", Timeout: 30000, MaxDepth: 4},
		Experiment: Experiment{
			Name:    "depth",
			Dir:     "experiments",
			Games:   10,
			Layouts: []string{"smallClassic"},
			Agents: []Pacman{
				{Agent: "minimax", Depth: 2, Evaluation: "better"},
				{Agent: "alphabeta", Depth: 3, Evaluation: "better"},
				{Agent: "expectimax", Depth: 2, Evaluation: "better"},
			},
		},
	}
}

// Load decodes a configuration from r on top of the defaults. Unknown keys
// are an error.
func Load(r io.Reader) (Config, error) {
	// Lists replace the defaults instead of being merged into them
	c := Default()
	c.Experiment.Layouts = nil
	c.Experiment.Agents = nil

	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if !md.IsDefined("experiment", "layouts") {
		c.Experiment.Layouts = Default().Experiment.Layouts
	}
	if !md.IsDefined("experiment", "agents") {
		c.Experiment.Agents = Default().Experiment.Agents
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Open loads the configuration file at path.
func Open(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Dump writes c as TOML.
func (c Config) Dump(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports every invalid value of c, unknown names included.
func (c Config) Validate() error {
	var errs []error
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := game.LoadLayout(c.Game.Layout); err != nil {
		errs = append(errs, fmt.Errorf("game.layout: %w", err))
	}
	if _, ok := agent.Ghosts[c.Game.Ghost]; !ok {
		errs = append(errs, fmt.Errorf("game.ghost: %w: ghost %q", agent.ErrUnknownAgent, c.Game.Ghost))
	}
	if c.Game.MaxMoves <= 0 {
		errs = append(errs, fmt.Errorf("game.max_moves must be positive, got %d", c.Game.MaxMoves))
	}
	if c.Pacman.Depth < 0 {
		errs = append(errs, fmt.Errorf("pacman.depth must not be negative, got %d", c.Pacman.Depth))
	} else if err := c.Pacman.AgentConfig(0).Validate(); err != nil {
		errs = append(errs, fmt.Errorf("pacman: %w", err))
	}
	if c.Server.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("server.max_depth must be positive, got %d", c.Server.MaxDepth))
	}
	if c.Experiment.Games < 0 {
		errs = append(errs, fmt.Errorf("experiment.games must not be negative, got %d", c.Experiment.Games))
	}
	for i, name := range c.Experiment.Layouts {
		if _, err := game.LoadLayout(name); err != nil {
			errs = append(errs, fmt.Errorf("experiment.layouts[%d]: %w", i, err))
		}
	}
	for i, a := range c.Experiment.Agents {
		if a.Depth < 0 {
			errs = append(errs, fmt.Errorf("experiment.agents[%d].depth must not be negative, got %d", i, a.Depth))
		} else if err := a.AgentConfig(0).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("experiment.agents[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// AgentConfig fills in the fields p leaves empty from the default agent.
func (p Pacman) AgentConfig(seed uint64) agent.Config {
	cfg := agent.DefaultConfig()
	if p.Agent != "" {
		cfg.Agent = p.Agent
	}
	if p.Depth > 0 {
		cfg.Depth = p.Depth
	}
	if p.Evaluation != "" {
		cfg.Evaluation = p.Evaluation
	}
	if p.Search != "" {
		cfg.Search = p.Search
	}
	if p.Heuristic != "" {
		cfg.Heuristic = p.Heuristic
	}
	if p.Problem != "" {
		cfg.Problem = p.Problem
	}
	if p.Cost != "" {
		cfg.Cost = p.Cost
	}
	cfg.Seed = seed
	return cfg
}

func (s Server) RequestTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Millisecond
}

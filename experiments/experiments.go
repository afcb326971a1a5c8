package experiments

import (
	"fmt"
	"pacman/agent"
	"pacman/config"
	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/rs/zerolog/log"
)

// NewGame sets up a local game of pacman against the ghosts described by g.
// Ghost i is seeded with seed+i.
func NewGame(l *game.Layout, pacman agent.Agent, pacmanName string, g config.Game, seed uint64) (*engine.Local, error) {
	numGhosts := len(l.GhostStarts)
	if g.Ghosts >= 0 && g.Ghosts < numGhosts {
		numGhosts = g.Ghosts
	}

	ghosts := make([]agent.Agent, numGhosts)
	names := make([]string, numGhosts)
	for i := range ghosts {
		ghost, err := agent.NewGhost(g.Ghost, i+1, seed+uint64(i)+1)
		if err != nil {
			return nil, fmt.Errorf("failed to create ghost %d: %w", i+1, err)
		}
		ghosts[i] = ghost
		names[i] = g.Ghost
	}

	return engine.LocalEngine(l, pacman, ghosts,
		engine.WithMaxMoves(g.MaxMoves),
		engine.WithNames(pacmanName, names...),
	), nil
}

// Run plays the configured number of games for every layout and agent of
// the experiment and writes the records. It returns the output directory.
func Run(cfg config.Config) (string, error) {
	exp := cfg.Experiment
	if len(exp.Agents) == 0 || len(exp.Layouts) == 0 {
		return "", fmt.Errorf("experiment %s needs at least one agent and one layout", exp.Name)
	}

	agentConfigs := make([]metrics.AgentConfig, len(exp.Agents))
	for i, p := range exp.Agents {
		a := p.AgentConfig(0)
		agentConfigs[i] = metrics.AgentConfig{
			ID:         i + 1,
			Agent:      a.Agent,
			Depth:      a.Depth,
			Evaluation: a.Evaluation,
			Search:     a.Search,
			Heuristic:  a.Heuristic,
		}
	}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for _, name := range exp.Layouts {
		l, err := game.LoadLayout(name)
		if err != nil {
			return "", err
		}

		for ai, p := range exp.Agents {
			for i := 0; i < exp.Games; i++ {
				seed := cfg.Game.Seed + uint64(count)*uint64(game.MaxNumGhosts+1)
				a := p.AgentConfig(seed)
				log.Info().Msgf("starting %s game %d of %d with %s...", name, i+1, exp.Games, a)

				gameMetric, moveMetrics, err := runGame(l, a, cfg.Game, seed)
				if err != nil {
					return "", err
				}
				count++
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         count,
					Agent:      agentConfigs[ai].ID,
					Seed:       seed,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       count,
						MoveMetric: mm,
					})
				}

				log.Info().Msgf("completed %s game %d with win=%t score=%v", name, i+1, gameMetric.Win, gameMetric.Score)
			}
		}
	}

	log.Info().Msgf("completed %s experiment", exp.Name)
	for _, s := range Summarize(agentConfigs, gameRecords, moveRecords) {
		log.Info().Msgf("%s", s)
	}

	dir, err := store(exp, agentConfigs, gameRecords, moveRecords)
	if err != nil {
		return "", err
	}
	log.Info().Msgf("stored experiment records in %s", dir)
	return dir, nil
}

func runGame(l *game.Layout, cfg agent.Config, g config.Game, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	pacman, err := agent.NewPacman(cfg)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	e, err := NewGame(l, pacman, cfg.String(), g, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}

func store(exp config.Experiment, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(exp.Dir, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", err
	}
	return writer.Dir(), nil
}

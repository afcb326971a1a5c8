package engine

import (
	"fmt"
	"pacman/agent"
	"pacman/experiments/metrics"
	"pacman/game"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// WithMaxMoves limits the number of pacman moves.
func WithMaxMoves(moves int) Option {
	return func(e *Local) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithNames labels the agents in the game metric.
func WithNames(pacman string, ghosts ...string) Option {
	return func(e *Local) {
		e.pacmanName = pacman
		e.ghostNames = strings.Join(ghosts, ",")
	}
}

type Local struct {
	State  *game.GameState
	Pacman agent.Agent
	Ghosts []agent.Agent // Ghost i+1 in the state

	layout     string
	maxMoves   int
	pacmanName string
	ghostNames string
}

// LocalEngine places pacman and one ghost per ghost agent on the layout.
func LocalEngine(layout *game.Layout, pacman agent.Agent, ghosts []agent.Agent, options ...Option) *Local {
	if pacman == nil {
		panic("Must specify a pacman agent")
	}
	if len(ghosts) > len(layout.GhostStarts) {
		panic(fmt.Sprintf("layout %s has room for %d ghosts, got %d", layout.Name, len(layout.GhostStarts), len(ghosts)))
	}

	e := &Local{ // Default values
		State:    game.NewGameState(layout, len(ghosts)),
		Pacman:   pacman,
		Ghosts:   ghosts,
		layout:   layout.Name,
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) agent(index int) agent.Agent {
	if index == game.PacmanIndex {
		return e.Pacman
	}
	return e.Ghosts[index-1]
}

func (e *Local) over() bool {
	return e.State.IsWin() || e.State.IsLose()
}

// Run executes the game loop. Illegal choices are replaced by the first
// legal action and agents without legal actions skip their turn.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	log.Debug().Msgf("starting game on %s with %d ghosts", e.layout, len(e.Ghosts))

	var moveMetrics []metrics.MoveMetric
	step := 0
	for round := 0; round < e.maxMoves && !e.over(); round++ {
		for index := 0; index < e.State.NumAgents() && !e.over(); index++ {
			legal := e.State.LegalActions(index)
			if len(legal) == 0 {
				log.Debug().Msgf("agent %d has no legal action at step %d", index, step)
				continue
			}

			action, searchMetric := e.agent(index).FindMove(e.State)
			if !e.State.IsLegal(index, action) {
				log.Warn().Msgf("agent %d chose illegal action %v at step %d, playing %v instead", index, action, step, legal[0])
				action = legal[0]
			}

			e.State = e.State.Successor(index, action)
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Agent:        index,
				Action:       action.String(),
				Score:        e.State.Score(),
				SearchMetric: searchMetric,
			})
			step++
		}
	}

	if !e.over() {
		log.Info().Msgf("stopped after %d pacman moves without a result", e.maxMoves)
	}

	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		Layout:     e.layout,
		Pacman:     e.pacmanName,
		Ghosts:     e.ghostNames,
		Win:        e.State.IsWin(),
		Score:      e.State.Score(),
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(startTime),
		TotalMoves: step,
	}
	return gameMetric, moveMetrics
}

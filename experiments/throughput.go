package experiments

import (
	"fmt"
	"pacman/experiments/metrics"
	"time"
)

// Summary aggregates the games and pacman decisions of one agent configuration.
type Summary struct {
	Agent        metrics.AgentConfig
	Games        int
	Wins         int
	MeanScore    float64
	Decisions    int
	MeanDuration time.Duration // Per pacman decision
	MeanExpanded float64       // Per pacman decision
	Throughput   float64       // Expanded nodes per second of search
}

func (s Summary) String() string {
	return fmt.Sprintf("agent %d (%s depth=%d): won %d of %d, mean score %.1f, %d decisions of %v, %.1f nodes each, %.0f nodes/s",
		s.Agent.ID, s.Agent.Agent, s.Agent.Depth, s.Wins, s.Games, s.MeanScore, s.Decisions, s.MeanDuration, s.MeanExpanded, s.Throughput)
}

// Summarize returns one summary per agent configuration, in configuration order.
func Summarize(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) []Summary {
	index := make(map[int]int, len(configs)) // AgentConfig.ID to position
	summaries := make([]Summary, len(configs))
	for i, c := range configs {
		index[c.ID] = i
		summaries[i].Agent = c
	}

	gameAgent := make(map[int]int, len(games)) // GameRecord.ID to position
	scores := make([]float64, len(configs))
	for _, g := range games {
		i, ok := index[g.Agent]
		if !ok {
			continue
		}
		gameAgent[g.ID] = i
		summaries[i].Games++
		if g.Win {
			summaries[i].Wins++
		}
		scores[i] += g.Score
	}

	durations := make([]time.Duration, len(configs))
	expanded := make([]int, len(configs))
	for _, m := range moves {
		i, ok := gameAgent[m.Game]
		if !ok || m.Agent != 0 {
			continue
		}
		summaries[i].Decisions++
		durations[i] += m.Duration
		expanded[i] += m.Expanded
	}

	for i := range summaries {
		s := &summaries[i]
		if s.Games > 0 {
			s.MeanScore = scores[i] / float64(s.Games)
		}
		if s.Decisions > 0 {
			s.MeanDuration = durations[i] / time.Duration(s.Decisions)
			s.MeanExpanded = float64(expanded[i]) / float64(s.Decisions)
		}
		if durations[i] > 0 {
			s.Throughput = float64(expanded[i]) / durations[i].Seconds()
		}
	}
	return summaries
}

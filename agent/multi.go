package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"
)

type GameSearcher = searcher.Searcher[*game.GameState, game.Direction]

// MultiAgent plays the moves chosen by a game-tree searcher.
type MultiAgent struct {
	searcher GameSearcher
}

func NewMultiAgent(s GameSearcher) *MultiAgent {
	if s == nil {
		panic("Must specify a searcher")
	}
	return &MultiAgent{searcher: s}
}

// FindMove stops when the searcher cannot decide.
func (a *MultiAgent) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric) {
	decision, ok := a.searcher.FindNextMove(state)
	if !ok {
		return game.Stop, decision.Metric
	}
	return decision.Action, decision.Metric
}

// Searchers builds the game-tree searchers by name.
var Searchers = map[string]func(depth int, evaluate game.Evaluate, options ...searcher.Option) GameSearcher{
	"minimax": func(depth int, evaluate game.Evaluate, options ...searcher.Option) GameSearcher {
		return searcher.NewMinimax[*game.GameState, game.Direction](depth, searcher.Evaluate[*game.GameState](evaluate), options...)
	},
	"alphabeta": func(depth int, evaluate game.Evaluate, options ...searcher.Option) GameSearcher {
		return searcher.NewAlphaBeta[*game.GameState, game.Direction](depth, searcher.Evaluate[*game.GameState](evaluate), options...)
	},
	"expectimax": func(depth int, evaluate game.Evaluate, options ...searcher.Option) GameSearcher {
		return searcher.NewExpectimax[*game.GameState, game.Direction](depth, searcher.Evaluate[*game.GameState](evaluate), options...)
	},
}

package agent

import (
	"pacman/game"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// play moves pacman alone until the game ends or maxMoves is reached.
func play(t *testing.T, a Agent, state *game.GameState, maxMoves int) *game.GameState {
	t.Helper()
	for i := 0; i < maxMoves && !state.IsWin() && !state.IsLose(); i++ {
		action, _ := a.FindMove(state)
		require.True(t, state.IsLegal(game.PacmanIndex, action), "move %d: %v is illegal", i, action)
		state = state.Successor(game.PacmanIndex, action)
	}
	return state
}

func TestSearchAgent(t *testing.T) {
	t.Run("following the planned path", func(t *testing.T) {
		a := NewSearchAgent("bfs", Searches["bfs"], nil, Problems["position"], UnitCost)

		end := play(t, a, mustLoad(t, "tinyMaze"), 20)

		require.True(t, end.IsWin())
		require.Equal(t, 502.0, end.Score())
		require.Equal(t, TinyMazePlan(), a.Plan())
	})

	t.Run("reporting the planning metric on the first move only", func(t *testing.T) {
		a := NewSearchAgent("astar", Searches["astar"], ManhattanHeuristic, Problems["position"], UnitCost)
		state := mustLoad(t, "tinyMaze")

		_, first := a.FindMove(state)
		_, second := a.FindMove(state)

		require.Equal(t, "astar", first.Algorithm)
		require.Equal(t, 14, first.Expanded)
		require.Zero(t, second.Expanded)
	})

	t.Run("stopping without a path", func(t *testing.T) {
		state := mustParse(t, strings.Join([]string{
			"%%%%%%",
			"%.%P %",
			"%%%%%%",
		}, "\n"))
		a := NewSearchAgent("dfs", Searches["dfs"], nil, Problems["food"], UnitCost)

		action, _ := a.FindMove(state)

		require.Equal(t, game.Stop, action)
		require.Empty(t, a.Plan())
	})

	t.Run("replaying a fixed plan", func(t *testing.T) {
		end := play(t, NewPlanAgent(TinyMazePlan()), mustLoad(t, "tinyMaze"), 20)

		require.True(t, end.IsWin())
	})

	t.Run("stopping once the plan is used up", func(t *testing.T) {
		a := NewPlanAgent([]game.Direction{game.West})
		state := mustLoad(t, "testMaze")

		first, _ := a.FindMove(state)
		second, _ := a.FindMove(state.Successor(game.PacmanIndex, first))

		require.Equal(t, game.West, first)
		require.Equal(t, game.Stop, second)
	})
}

func TestClosestDotAgent(t *testing.T) {
	state := mustParse(t, strings.Join([]string{
		"%%%%%%%%%%",
		"%. ..  P.%",
		"% %%%% % %",
		"%.   .   %",
		"%%%%%%%%%%",
	}, "\n"))

	end := play(t, NewClosestDotAgent(), state, 100)

	require.True(t, end.IsWin())
	require.Zero(t, end.NumFood())
}

func TestReflexAgent(t *testing.T) {
	t.Run("avoiding a neighboring ghost", func(t *testing.T) {
		state := mustParse(t, strings.Join([]string{
			"%%%%%%%%",
			"%  PG .%",
			"%%%%%%%%",
		}, "\n"))

		action, metric := NewReflexAgent(1).FindMove(state)

		require.Equal(t, game.West, action)
		require.Equal(t, "reflex", metric.Algorithm)
		require.Equal(t, 3, metric.Evaluations)
	})

	t.Run("eating the last food", func(t *testing.T) {
		state := mustParse(t, strings.Join([]string{
			"%%%%%%",
			"%.P G%",
			"%%%%%%",
		}, "\n"))

		action, _ := NewReflexAgent(1).FindMove(state)

		require.Equal(t, game.West, action)
	})

	t.Run("scoring a losing move lowest", func(t *testing.T) {
		state := mustParse(t, strings.Join([]string{
			"%%%%%%%%",
			"%  PG .%",
			"%%%%%%%%",
		}, "\n"))

		require.Less(t, ReflexEvaluation(state, game.East), ReflexEvaluation(state, game.Stop))
		require.Less(t, ReflexEvaluation(state, game.Stop), ReflexEvaluation(state, game.West))
	})

	t.Run("same seed same choices", func(t *testing.T) {
		state := mustLoad(t, "openSearch")
		a, b := NewReflexAgent(9), NewReflexAgent(9)
		for i := 0; i < 10; i++ {
			actionA, _ := a.FindMove(state)
			actionB, _ := b.FindMove(state)
			require.Equal(t, actionA, actionB)
		}
	})
}

func TestMultiAgent(t *testing.T) {
	t.Run("alphabeta agrees with minimax", func(t *testing.T) {
		for depth := 1; depth <= 3; depth++ {
			state := mustLoad(t, "minimaxClassic")
			minimax := NewMultiAgent(Searchers["minimax"](depth, game.BetterEvaluation))
			alphaBeta := NewMultiAgent(Searchers["alphabeta"](depth, game.BetterEvaluation))

			for step := 0; step < 5 && !state.IsWin() && !state.IsLose(); step++ {
				want, _ := minimax.FindMove(state)
				got, _ := alphaBeta.FindMove(state)
				require.Equal(t, want, got, "depth %d step %d", depth, step)

				state = state.Successor(game.PacmanIndex, got)
				for ghost := 1; ghost < state.NumAgents() && !state.IsWin() && !state.IsLose(); ghost++ {
					state = state.Successor(ghost, state.LegalActions(ghost)[0])
				}
			}
		}
	})

	t.Run("expectimax picks a legal action", func(t *testing.T) {
		state := mustLoad(t, "smallClassic")
		a := NewMultiAgent(Searchers["expectimax"](2, game.ScoreEvaluation))

		action, _ := a.FindMove(state)

		require.True(t, state.IsLegal(game.PacmanIndex, action))
	})

	t.Run("stopping on a finished game", func(t *testing.T) {
		snap := mustLoad(t, "minimaxClassic").Snapshot()
		snap.Win = true
		state, err := game.FromSnapshot(snap)
		require.NoError(t, err)
		a := NewMultiAgent(Searchers["alphabeta"](2, game.BetterEvaluation))

		action, _ := a.FindMove(state)

		require.Equal(t, game.Stop, action)
	})

	require.Panics(t, func() { NewMultiAgent(nil) })
}

// junction has a ghost with four exits and pacman right below it.
const junction = `%%%%%
%%.%%
%.G.%
%%P%%
%%%%%`

func TestRandomGhost(t *testing.T) {
	state := mustParse(t, junction)
	a, b := NewRandomGhost(1, 3), NewRandomGhost(1, 3)

	seen := map[game.Direction]bool{}
	for i := 0; i < 50; i++ {
		actionA, _ := a.FindMove(state)
		actionB, _ := b.FindMove(state)
		require.Equal(t, actionA, actionB, "Same seed should give the same moves")
		require.True(t, state.IsLegal(1, actionA))
		seen[actionA] = true
	}
	require.Len(t, seen, 4, "Every exit should eventually be taken")
	require.Panics(t, func() { NewRandomGhost(0, 1) })
}

func TestDirectionalGhost(t *testing.T) {
	t.Run("chasing pacman", func(t *testing.T) {
		g := NewDirectionalGhost(1, 5)

		dist := g.Distribution(mustParse(t, junction))

		require.Len(t, dist, 4)
		require.Equal(t, game.South, dist[1].Action)
		require.InDelta(t, 0.85, dist[1].Prob, 1e-9)
		for _, i := range []int{0, 2, 3} {
			require.InDelta(t, 0.05, dist[i].Prob, 1e-9)
		}
	})

	t.Run("fleeing while scared", func(t *testing.T) {
		snap := mustParse(t, junction).Snapshot()
		snap.Agents[1].ScaredTimer = 10
		state, err := game.FromSnapshot(snap)
		require.NoError(t, err)
		g := NewDirectionalGhost(1, 5)

		dist := g.Distribution(state)

		total := 0.0
		for _, w := range dist {
			total += w.Prob
		}
		require.InDelta(t, 1.0, total, 1e-9)
		require.InDelta(t, 0.05, dist[1].Prob, 1e-9)
		require.InDelta(t, 0.8/3+0.05, dist[0].Prob, 1e-9)
	})

	t.Run("sampling follows the distribution", func(t *testing.T) {
		state := mustParse(t, junction)
		g := NewDirectionalGhost(1, 11)

		south := 0
		const n = 2000
		for i := 0; i < n; i++ {
			action, _ := g.FindMove(state)
			require.True(t, state.IsLegal(1, action))
			if action == game.South {
				south++
			}
		}
		require.InDelta(t, 0.85, float64(south)/n, 0.05)
	})
}

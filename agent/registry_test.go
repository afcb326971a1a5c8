package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPacman(t *testing.T) {
	t.Run("building every known agent", func(t *testing.T) {
		for _, name := range []string{"search", "closest", "tinymaze", "reflex", "minimax", "alphabeta", "expectimax"} {
			cfg := DefaultConfig()
			cfg.Agent = name

			a, err := NewPacman(cfg)

			require.NoError(t, err, name)
			require.NotNil(t, a, name)
		}
	})

	t.Run("game-tree agents collect metrics", func(t *testing.T) {
		a, err := NewPacman(DefaultConfig())
		require.NoError(t, err)

		_, metric := a.FindMove(mustLoad(t, "minimaxClassic"))

		require.Equal(t, "alphabeta", metric.Algorithm)
		require.Equal(t, 2, metric.Depth)
		require.Positive(t, metric.Evaluations)
	})

	t.Run("unknown names", func(t *testing.T) {
		cases := []struct {
			cfg  Config
			want error
		}{
			{Config{Agent: "telepathic"}, ErrUnknownAgent},
			{Config{Agent: "minimax", Evaluation: "vibes"}, ErrUnknownEvaluation},
			{Config{Agent: "search", Search: "bogo", Heuristic: "null", Problem: "position", Cost: "unit"}, ErrUnknownSearch},
			{Config{Agent: "search", Search: "bfs", Heuristic: "oracle", Problem: "position", Cost: "unit"}, ErrUnknownSearch},
			{Config{Agent: "search", Search: "bfs", Heuristic: "null", Problem: "corners", Cost: "unit"}, ErrUnknownSearch},
			{Config{Agent: "search", Search: "bfs", Heuristic: "null", Problem: "position", Cost: "free"}, ErrUnknownSearch},
		}
		for _, c := range cases {
			_, err := NewPacman(c.cfg)
			require.ErrorIs(t, err, c.want, "%+v", c.cfg)
			require.ErrorIs(t, c.cfg.Validate(), c.want, "%+v", c.cfg)
		}
	})

	t.Run("negative depth", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Depth = -1

		_, err := NewPacman(cfg)

		require.Error(t, err)
	})

	t.Run("validating ignores fields of other agents", func(t *testing.T) {
		require.NoError(t, Config{Agent: "reflex", Evaluation: "vibes", Search: "bogo"}.Validate())
		require.NoError(t, Config{Agent: "expectimax", Depth: 0, Evaluation: "score", Cost: "free"}.Validate())
		require.Error(t, Config{Agent: "minimax", Depth: -1, Evaluation: "score"}.Validate())
	})

	t.Run("describing a config", func(t *testing.T) {
		require.Equal(t, "alphabeta(depth=2,better)", DefaultConfig().String())
		require.Equal(t, "search(bfs,null,position,unit)", Config{Agent: "search", Search: "bfs", Heuristic: "null", Problem: "position", Cost: "unit"}.String())
		require.Equal(t, "reflex", Config{Agent: "reflex"}.String())
	})
}

func TestNewGhost(t *testing.T) {
	a, err := NewGhost("random", 1, 0)
	require.NoError(t, err)
	require.IsType(t, &RandomGhost{}, a)

	a, err = NewGhost("directional", 2, 0)
	require.NoError(t, err)
	require.IsType(t, &DirectionalGhost{}, a)

	_, err = NewGhost("blinky", 1, 0)
	require.ErrorIs(t, err, ErrUnknownAgent)

	_, err = NewGhost("random", 0, 0)
	require.Error(t, err)
}

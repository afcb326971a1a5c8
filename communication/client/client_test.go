package client

import (
	"context"
	"net/http/httptest"
	"pacman/agent"
	"pacman/communication/server"
	"pacman/engine"
	"pacman/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	ts := httptest.NewServer(server.NewServer(agent.DefaultConfig()))
	defer ts.Close()

	t.Run("playing a remote game", func(t *testing.T) {
		l, err := game.LoadLayout("tinyMaze")
		require.NoError(t, err)
		c := NewClient(ts.URL, WithAgent("search", 0, ""))

		gameMetric, moveMetrics := engine.LocalEngine(l, c, nil, engine.WithMaxMoves(20)).Run()

		require.True(t, gameMetric.Win, "Each request replans breadth first from the current position")
		require.Equal(t, 8, gameMetric.TotalMoves)
		require.Equal(t, "bfs", moveMetrics[0].Algorithm)
	})

	t.Run("reporting server errors", func(t *testing.T) {
		l, err := game.LoadLayout("tinyMaze")
		require.NoError(t, err)
		c := NewClient(ts.URL, WithAgent("oracle", 0, ""))

		_, err = c.Decide(context.Background(), game.NewGameState(l, -1))

		require.ErrorContains(t, err, "status 400")
		require.ErrorContains(t, err, "unknown agent")
	})

	t.Run("stopping when the server is gone", func(t *testing.T) {
		gone := httptest.NewServer(server.NewServer(agent.DefaultConfig()))
		url := gone.URL
		gone.Close()
		l, err := game.LoadLayout("tinyMaze")
		require.NoError(t, err)

		action, _ := NewClient(url).FindMove(game.NewGameState(l, -1))

		require.Equal(t, game.Stop, action)
	})
}

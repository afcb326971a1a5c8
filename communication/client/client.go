package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"pacman/communication"
	"pacman/experiments/metrics"
	"pacman/game"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a pacman agent whose decisions are made by a remote server.
type Client struct {
	serverURL  string
	httpClient *http.Client
	agent      string
	depth      int
	evaluation string
}

type Option func(c *Client)

// WithAgent selects the agent the server plays. Zero values keep the server defaults.
func WithAgent(name string, depth int, evaluation string) Option {
	return func(c *Client) {
		c.agent = name
		c.depth = depth
		c.evaluation = evaluation
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func NewClient(serverURL string, options ...Option) *Client {
	c := &Client{
		serverURL:  serverURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Decide posts state to the server and returns its decision.
func (c *Client) Decide(ctx context.Context, state *game.GameState) (communication.DecideResponse, error) {
	var decision communication.DecideResponse
	body, err := json.Marshal(communication.DecideRequest{
		State:      state.Snapshot(),
		Agent:      c.agent,
		Depth:      c.depth,
		Evaluation: c.evaluation,
	})
	if err != nil {
		return decision, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+communication.DecidePath, bytes.NewReader(body))
	if err != nil {
		return decision, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decision, fmt.Errorf("failed to reach agent server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure communication.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return decision, fmt.Errorf("agent server returned status %d: %s", resp.StatusCode, failure.Error)
	}
	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		return decision, fmt.Errorf("failed to decode decision: %w", err)
	}
	return decision, nil
}

// FindMove stops when the server cannot be reached.
func (c *Client) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric) {
	start := time.Now()
	decision, err := c.Decide(context.Background(), state)
	if err != nil {
		log.Error().Err(err).Msg("remote decision failed")
		return game.Stop, metrics.SearchMetric{Duration: time.Since(start)}
	}
	return decision.Action, metrics.SearchMetric{
		Algorithm:   decision.Algorithm,
		Duration:    time.Since(start),
		Expanded:    decision.Expanded,
		Evaluations: decision.Evaluations,
	}
}

// Package communication defines the messages exchanged between a game and a
// remote pacman agent.
package communication

import (
	"pacman/agent"
	"pacman/game"
)

const DecidePath = "/decide"

// DecideRequest asks for pacman's next move in State. Agent selects the agent
// on the server; an empty Agent uses the server default.
type DecideRequest struct {
	State      game.Snapshot `json:"state"`
	Agent      string        `json:"agent,omitempty"`
	Depth      int           `json:"depth,omitempty"`
	Evaluation string        `json:"evaluation,omitempty"`
}

type DecideResponse struct {
	Action game.Direction `json:"action"`
	// Algorithm and Expanded describe the search behind the decision
	Algorithm   string `json:"algorithm,omitempty"`
	Expanded    int    `json:"expanded"`
	Evaluations int    `json:"evaluations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Config returns the agent configuration of the request on top of defaults.
func (r DecideRequest) Config(defaults agent.Config) agent.Config {
	cfg := defaults
	if r.Agent != "" {
		cfg.Agent = r.Agent
	}
	if r.Depth > 0 {
		cfg.Depth = r.Depth
	}
	if r.Evaluation != "" {
		cfg.Evaluation = r.Evaluation
	}
	return cfg
}

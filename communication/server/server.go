package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"pacman/agent"
	"pacman/communication"
	"pacman/game"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultMaxDepth = 4
	maxRequestBytes = 1 << 20
)

// Server answers decision requests for remote games. Every request gets a
// fresh agent, so requests do not share state.
type Server struct {
	defaults agent.Config
	maxDepth int
	mux      *http.ServeMux
}

type Option func(*Server)

// WithMaxDepth caps the search depth a request may ask for. Searches cannot
// be cancelled once started.
func WithMaxDepth(depth int) Option {
	return func(s *Server) {
		if depth <= 0 {
			panic("Must specify a positive maximum depth")
		}
		s.maxDepth = depth
	}
}

func NewServer(defaults agent.Config, options ...Option) *Server {
	s := &Server{
		defaults: defaults,
		maxDepth: DefaultMaxDepth,
		mux:      http.NewServeMux(),
	}
	for _, option := range options {
		option(s)
	}
	s.mux.HandleFunc("POST "+communication.DecidePath, s.handleDecide)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe blocks serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("starting agent server on %s with default agent %s", addr, s.defaults)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req communication.DecideRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request: %w", err))
		return
	}
	state, err := game.FromSnapshot(req.State)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Depth > s.maxDepth {
		writeError(w, http.StatusBadRequest, fmt.Errorf("depth %d exceeds the server limit of %d", req.Depth, s.maxDepth))
		return
	}
	cfg := req.Config(s.defaults)
	pacman, err := agent.NewPacman(cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	action, metric := pacman.FindMove(state)
	log.Debug().Msgf("%s chose %v at %v", cfg, action, state.PacmanPosition())

	writeJSON(w, http.StatusOK, communication.DecideResponse{
		Action:      action,
		Algorithm:   metric.Algorithm,
		Expanded:    metric.Expanded,
		Evaluations: metric.Evaluations,
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Warn().Err(err).Msg("rejected decision request")
	writeJSON(w, status, communication.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

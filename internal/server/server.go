// Package server provides the HTTP REST API for the keyword research engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/rankbuddy/internal/config"
	"github.com/jonathan/rankbuddy/internal/difficulty"
	"github.com/jonathan/rankbuddy/internal/sources"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	cfg        config.Config

	// policy is the search-grounded difficulty policy when a Custom Search
	// key is configured; nil means the policy named in the engine config.
	policy difficulty.Policy

	// sources overrides the production suggestion sources in tests.
	sources []sources.Source
}

// Config holds server configuration
type Config struct {
	Port   int
	Engine config.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg.Engine}

	if cfg.Engine.SearchAPIKey != "" {
		grounded, err := difficulty.NewSearchGrounded(context.Background(),
			cfg.Engine.SearchAPIKey, cfg.Engine.SearchCx,
			difficulty.PolicyByName(cfg.Engine.Difficulty))
		if err != nil {
			return nil, err
		}
		s.policy = grounded
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /prompt", s.handlePrompt)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Start runs the server until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// errorResponse writes a JSON error envelope
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// jsonResponse writes a JSON body with the given status
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// handleHealth reports service liveness
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

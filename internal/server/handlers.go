package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/rankbuddy/internal/pipeline"
	"github.com/jonathan/rankbuddy/internal/types"
)

// AnalyzeRequest represents the request body for /analyze and /prompt
type AnalyzeRequest struct {
	Seed            string  `json:"seed" validate:"required,min=1,max=200"`
	TargetWords     int     `json:"target_words,omitempty" validate:"omitempty,min=100,max=20000"`
	Density         float64 `json:"density,omitempty" validate:"omitempty,gt=0,lte=10"`
	Tone            string  `json:"tone,omitempty" validate:"omitempty,oneof=expert-accessible casual formal conversational technical"`
	Audience        string  `json:"audience,omitempty" validate:"omitempty,max=200"`
	IncludeFAQ      bool    `json:"include_faq,omitempty"`
	IncludeExamples bool    `json:"include_examples,omitempty"`
	Difficulty      string  `json:"difficulty,omitempty" validate:"omitempty,oneof=lexical frequency"`
	IncludePrompt   bool    `json:"include_prompt,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// runOptions converts a request into pipeline options using the server's
// configured defaults.
func (s *Server) runOptions(req *AnalyzeRequest, includePrompt bool) pipeline.RunOptions {
	targetWords := req.TargetWords
	if targetWords == 0 {
		targetWords = s.cfg.TargetWords
	}
	density := req.Density
	if density == 0 {
		density = s.cfg.Density
	}
	policyName := req.Difficulty
	if policyName == "" {
		policyName = s.cfg.Difficulty
	}

	opts := pipeline.RunOptions{
		Seed:        req.Seed,
		Sources:     s.sources,
		Policy:      s.policy,
		PolicyName:  policyName,
		MaxPoolSize: s.cfg.MaxPoolSize,
		Plan:        &types.PlanConfig{TargetWords: targetWords, Density: density},
	}

	if includePrompt {
		tone := req.Tone
		if tone == "" {
			tone = s.cfg.Tone
		}
		audience := req.Audience
		if audience == "" {
			audience = s.cfg.Audience
		}
		opts.Prompt = &types.PromptOptions{
			TargetWords:     targetWords,
			Tone:            types.Tone(tone),
			Audience:        audience,
			IncludeFAQ:      req.IncludeFAQ,
			IncludeExamples: req.IncludeExamples,
		}
	}
	return opts
}

// decodeAnalyzeRequest parses and validates the request body, writing the
// error response itself on failure.
func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) *AnalyzeRequest {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return nil
	}
	return &req
}

// handleAnalyze runs the research pipeline and returns the full report
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req := s.decodeAnalyzeRequest(w, r)
	if req == nil {
		return
	}

	result, err := pipeline.Run(r.Context(), s.runOptions(req, req.IncludePrompt))
	if err != nil {
		var seedErr *types.SeedError
		if errors.As(err, &seedErr) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Analyze failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	log.Printf("Analyzed seed %q (run %s): %d keywords", result.Seed, result.RunID, len(result.Keywords))
	s.jsonResponse(w, http.StatusOK, result)
}

// handlePrompt runs the pipeline and returns only the assembled writing
// prompt as plain text
func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	req := s.decodeAnalyzeRequest(w, r)
	if req == nil {
		return
	}

	result, err := pipeline.Run(r.Context(), s.runOptions(req, true))
	if err != nil {
		var seedErr *types.SeedError
		if errors.As(err, &seedErr) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Prompt assembly failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "prompt assembly failed")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Prompt))
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rankbuddy/internal/config"
	"github.com/jonathan/rankbuddy/internal/pipeline"
	"github.com/jonathan/rankbuddy/internal/sources"
	"github.com/jonathan/rankbuddy/internal/types"
)

type stubSource struct {
	batch types.CandidateBatch
}

func (s *stubSource) Name() string       { return "stub" }
func (s *stubSource) Mode() sources.Mode { return sources.ModePhrase }

func (s *stubSource) Fetch(_ context.Context, _ string) (types.CandidateBatch, error) {
	return s.batch, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(Config{Port: 0, Engine: config.Config{}})
	require.NoError(t, err)
	srv.sources = []sources.Source{&stubSource{batch: types.CandidateBatch{
		"content marketing tips",
		"content marketing guide",
	}}}
	return srv
}

func TestHandleAnalyze_Success(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze",
		strings.NewReader(`{"seed":"content marketing"}`))
	rec := httptest.NewRecorder()
	srv.handleAnalyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "content marketing", result.Seed)
	assert.Contains(t, result.Keywords, "content marketing tips")
	assert.NotEmpty(t, result.RunID)
	assert.Empty(t, result.Prompt)
}

func TestHandleAnalyze_IncludePrompt(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze",
		strings.NewReader(`{"seed":"content marketing","include_prompt":true,"tone":"casual"}`))
	rec := httptest.NewRecorder()
	srv.handleAnalyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.Prompt, "casual and friendly")
}

func TestHandleAnalyze_MissingSeed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request")
}

func TestHandleAnalyze_SeedTooLong(t *testing.T) {
	srv := newTestServer(t)

	body := `{"seed":"` + strings.Repeat("a", 201) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	srv.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestHandleAnalyze_InvalidTone(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze",
		strings.NewReader(`{"seed":"seo","tone":"sarcastic"}`))
	rec := httptest.NewRecorder()
	srv.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePrompt_ReturnsPlainText(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/prompt",
		strings.NewReader(`{"seed":"content marketing","audience":"small business owners"}`))
	rec := httptest.NewRecorder()
	srv.handlePrompt(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Primary Keyword: content marketing")
	assert.Contains(t, rec.Body.String(), "small business owners")
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNew_InvalidEngineConfig(t *testing.T) {
	_, err := New(Config{Port: 0, Engine: config.Config{Difficulty: "magic"}})
	assert.Error(t, err)
}

func TestRunOptions_ServerDefaultsApplied(t *testing.T) {
	srv, err := New(Config{Port: 0, Engine: config.Config{
		TargetWords: 1200,
		Density:     2,
		Difficulty:  "frequency",
		MaxPoolSize: 25,
	}})
	require.NoError(t, err)

	opts := srv.runOptions(&AnalyzeRequest{Seed: "seo"}, false)

	assert.Equal(t, "frequency", opts.PolicyName)
	assert.Equal(t, 25, opts.MaxPoolSize)
	require.NotNil(t, opts.Plan)
	assert.Equal(t, 1200, opts.Plan.TargetWords)
	assert.Equal(t, 2.0, opts.Plan.Density)
	assert.Nil(t, opts.Prompt)
}

func TestRunOptions_RequestOverridesDefaults(t *testing.T) {
	srv, err := New(Config{Port: 0, Engine: config.Config{TargetWords: 1200, Tone: "formal"}})
	require.NoError(t, err)

	opts := srv.runOptions(&AnalyzeRequest{Seed: "seo", TargetWords: 800, Tone: "casual"}, true)

	assert.Equal(t, 800, opts.Plan.TargetWords)
	require.NotNil(t, opts.Prompt)
	assert.Equal(t, types.ToneCasual, opts.Prompt.Tone)
	assert.Equal(t, 800, opts.Prompt.TargetWords)
}

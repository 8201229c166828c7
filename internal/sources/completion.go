package sources

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/jonathan/rankbuddy/internal/fetch"
	"github.com/jonathan/rankbuddy/internal/types"
)

// DefaultCompletionURL is the public autocomplete endpoint. The response is
// a JSON array whose second element is the array of suggestion strings.
const DefaultCompletionURL = "http://suggestqueries.google.com/complete/search"

// maxCompletionResults caps the suggestions returned per query.
const maxCompletionResults = 20

// CompletionSource queries the autocomplete endpoint for a single phrase
// and returns up to 20 suggestions, excluding the seed itself.
type CompletionSource struct {
	baseURL string
	opts    *fetch.Options
}

// NewCompletionSource creates a completion source against the default
// endpoint.
func NewCompletionSource() *CompletionSource {
	return &CompletionSource{
		baseURL: DefaultCompletionURL,
		opts:    &fetch.Options{Timeout: 15 * time.Second, UserAgent: fetch.DefaultUserAgent},
	}
}

// NewCompletionSourceWithURL creates a completion source against a custom
// endpoint. Used by the related source and by tests.
func NewCompletionSourceWithURL(baseURL string, opts *fetch.Options) *CompletionSource {
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	return &CompletionSource{baseURL: baseURL, opts: opts}
}

// Name implements Source.
func (s *CompletionSource) Name() string { return "completion" }

// Mode implements Source.
func (s *CompletionSource) Mode() Mode { return ModePhrase }

// Fetch implements Source.
func (s *CompletionSource) Fetch(ctx context.Context, seed string) (types.CandidateBatch, error) {
	suggestions, err := s.query(ctx, seed)
	if err != nil {
		return types.CandidateBatch{}, err
	}

	batch := make(types.CandidateBatch, 0, len(suggestions))
	normalizedSeed := types.NormalizeKeyword(seed)
	for _, suggestion := range suggestions {
		if suggestion == "" || types.NormalizeKeyword(suggestion) == normalizedSeed {
			continue
		}
		batch = append(batch, suggestion)
		if len(batch) >= maxCompletionResults {
			break
		}
	}
	return batch, nil
}

// query issues one autocomplete call and decodes the positional response
// array. Shared with RelatedSource for its per-template sub-calls.
func (s *CompletionSource) query(ctx context.Context, phrase string) ([]string, error) {
	params := url.Values{}
	params.Set("client", "firefox")
	params.Set("q", phrase)
	params.Set("hl", "en")

	var raw []json.RawMessage
	if err := fetch.JSON(ctx, s.baseURL, params, s.opts, &raw); err != nil {
		return nil, &SourceUnavailableError{Source: s.Name(), Message: "autocomplete query failed", Cause: err}
	}

	if len(raw) < 2 {
		return nil, &MalformedResponseError{Source: s.Name(), Message: "response array has no suggestion element"}
	}

	var suggestions []string
	if err := json.Unmarshal(raw[1], &suggestions); err != nil {
		return nil, &MalformedResponseError{Source: s.Name(), Message: "suggestion element is not a string array", Cause: err}
	}
	return suggestions, nil
}

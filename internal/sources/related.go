package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/rankbuddy/internal/fetch"
	"github.com/jonathan/rankbuddy/internal/types"
)

// maxRelatedResults caps the merged results across all template queries.
const maxRelatedResults = 30

// defaultPacing is the inter-request delay between template sub-calls, to
// avoid hammering the autocomplete endpoint.
const defaultPacing = 100 * time.Millisecond

// relatedTemplates are the fixed query rewrites issued per seed. %s is the
// seed phrase.
var relatedTemplates = []string{
	"how to %s",
	"what is %s",
	"best %s",
	"%s guide",
	"%s tutorial",
	"%s tips",
	"%s examples",
	"%s tools",
	"%s free",
	"%s 2024",
}

// RelatedSource discovers related searches by querying the autocomplete
// endpoint with a fixed set of templated rewrites of the seed. Results are
// filtered to those containing the seed substring, deduplicated, and capped.
// A single template's failure does not block the remaining templates.
type RelatedSource struct {
	completion *CompletionSource
	pacing     time.Duration
}

// NewRelatedSource creates a related-searches source against the default
// autocomplete endpoint.
func NewRelatedSource() *RelatedSource {
	completion := NewCompletionSourceWithURL(DefaultCompletionURL,
		&fetch.Options{Timeout: 10 * time.Second, UserAgent: fetch.DefaultUserAgent})
	return &RelatedSource{completion: completion, pacing: defaultPacing}
}

// NewRelatedSourceWithURL creates a related-searches source against a
// custom endpoint with custom pacing. Used by tests.
func NewRelatedSourceWithURL(baseURL string, opts *fetch.Options, pacing time.Duration) *RelatedSource {
	return &RelatedSource{
		completion: NewCompletionSourceWithURL(baseURL, opts),
		pacing:     pacing,
	}
}

// Name implements Source.
func (s *RelatedSource) Name() string { return "related" }

// Mode implements Source.
func (s *RelatedSource) Mode() Mode { return ModePhrase }

// Fetch implements Source. It returns the deduplicated union of all
// template queries; only a failure of every template surfaces as an error.
func (s *RelatedSource) Fetch(ctx context.Context, seed string) (types.CandidateBatch, error) {
	normalizedSeed := types.NormalizeKeyword(seed)
	seen := make(map[string]bool)
	batch := make(types.CandidateBatch, 0, maxRelatedResults)
	failures := 0

	for i, template := range relatedTemplates {
		if i > 0 && s.pacing > 0 {
			select {
			case <-ctx.Done():
				return batch, nil
			case <-time.After(s.pacing):
			}
		}

		variation := fmt.Sprintf(template, seed)
		suggestions, err := s.completion.query(ctx, variation)
		if err != nil {
			failures++
			continue
		}

		for _, suggestion := range suggestions {
			normalized := types.NormalizeKeyword(suggestion)
			if normalized == "" || !strings.Contains(normalized, normalizedSeed) {
				continue
			}
			if seen[normalized] {
				continue
			}
			seen[normalized] = true
			batch = append(batch, suggestion)
			if len(batch) >= maxRelatedResults {
				return batch, nil
			}
		}
	}

	if failures == len(relatedTemplates) {
		return types.CandidateBatch{}, &SourceUnavailableError{
			Source:  s.Name(),
			Message: fmt.Sprintf("all %d template queries failed", len(relatedTemplates)),
		}
	}
	return batch, nil
}

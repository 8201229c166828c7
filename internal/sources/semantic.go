package sources

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/rankbuddy/internal/fetch"
	"github.com/jonathan/rankbuddy/internal/types"
)

// DefaultSemanticURL is the Datamuse word-relation endpoint.
const DefaultSemanticURL = "https://api.datamuse.com/words"

// maxSemanticResults caps the merged results across the three relation
// queries.
const maxSemanticResults = 25

// relationQuery pairs a Datamuse relation parameter with its result limit.
type relationQuery struct {
	param string
	max   int
}

// The three lexical relations queried per seed: similar meaning, words
// that commonly follow, and words that commonly precede.
var relationQueries = []relationQuery{
	{param: "ml", max: 20},
	{param: "lc", max: 15},
	{param: "rc", max: 15},
}

// semanticEntry is one object in the Datamuse response array.
type semanticEntry struct {
	Word string `json:"word"`
}

// SemanticSource queries a lexical-relation service for words related to
// the seed and merges their single-word results.
type SemanticSource struct {
	baseURL string
	opts    *fetch.Options
}

// NewSemanticSource creates a semantic source against the default endpoint.
func NewSemanticSource() *SemanticSource {
	return &SemanticSource{
		baseURL: DefaultSemanticURL,
		opts:    &fetch.Options{Timeout: 10 * time.Second, UserAgent: fetch.DefaultUserAgent},
	}
}

// NewSemanticSourceWithURL creates a semantic source against a custom
// endpoint. Used by tests.
func NewSemanticSourceWithURL(baseURL string, opts *fetch.Options) *SemanticSource {
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	return &SemanticSource{baseURL: baseURL, opts: opts}
}

// Name implements Source.
func (s *SemanticSource) Name() string { return "semantic" }

// Mode implements Source. Semantic candidates are bare words; the
// aggregator synthesizes seed combinations from them.
func (s *SemanticSource) Mode() Mode { return ModeWord }

// Fetch implements Source. Each relation query fails independently; only a
// failure of all three surfaces as an error.
func (s *SemanticSource) Fetch(ctx context.Context, seed string) (types.CandidateBatch, error) {
	seen := make(map[string]bool)
	batch := make(types.CandidateBatch, 0, maxSemanticResults)
	failures := 0

	for _, q := range relationQueries {
		params := url.Values{}
		params.Set(q.param, seed)
		params.Set("max", strconv.Itoa(q.max))

		var entries []semanticEntry
		if err := fetch.JSON(ctx, s.baseURL, params, s.opts, &entries); err != nil {
			failures++
			continue
		}

		for _, entry := range entries {
			word := types.NormalizeKeyword(entry.Word)
			if word == "" || strings.Contains(word, " ") || seen[word] {
				continue
			}
			seen[word] = true
			batch = append(batch, word)
			if len(batch) >= maxSemanticResults {
				return batch, nil
			}
		}
	}

	if failures == len(relationQueries) {
		return types.CandidateBatch{}, &SourceUnavailableError{
			Source:  s.Name(),
			Message: "all relation queries failed",
		}
	}
	return batch, nil
}

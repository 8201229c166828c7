package sources

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/rankbuddy/internal/fetch"
	"github.com/jonathan/rankbuddy/internal/types"
)

// Default Wikipedia endpoints: topic summary by slug, and full-text search.
const (
	DefaultSummaryURL = "https://en.wikipedia.org/api/rest_v1/page/summary"
	DefaultSearchURL  = "https://en.wikipedia.org/w/api.php"
)

// maxEncyclopedicResults caps the merged terms from both endpoints.
const maxEncyclopedicResults = 20

// searchResultLimit is the number of titles requested from the search
// endpoint.
const searchResultLimit = 10

// termPattern matches capitalized single- or multi-word terms in summary
// text, e.g. "Content Marketing" or "Analytics".
var termPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)*\b`)

// termStopwords are determiners, conjunctions, and question words excluded
// from extracted terms.
var termStopwords = map[string]bool{
	"The": true, "This": true, "That": true, "These": true, "Those": true,
	"And": true, "But": true, "Or": true, "If": true, "When": true,
	"Where": true, "How": true, "What": true, "Why": true, "Who": true,
	"Which": true,
}

// summaryResponse is the shape of the topic summary endpoint response.
type summaryResponse struct {
	Extract string `json:"extract"`
}

// searchResponse is the shape of the full-text search endpoint response.
type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

// EncyclopedicSource extracts capitalized terms from a topic summary and
// merges them with matching article titles from a full-text search.
type EncyclopedicSource struct {
	summaryURL string
	searchURL  string
	opts       *fetch.Options
}

// NewEncyclopedicSource creates an encyclopedic source against the default
// endpoints.
func NewEncyclopedicSource() *EncyclopedicSource {
	return &EncyclopedicSource{
		summaryURL: DefaultSummaryURL,
		searchURL:  DefaultSearchURL,
		opts:       &fetch.Options{Timeout: 10 * time.Second, UserAgent: fetch.DefaultUserAgent},
	}
}

// NewEncyclopedicSourceWithURLs creates an encyclopedic source against
// custom endpoints. Used by tests.
func NewEncyclopedicSourceWithURLs(summaryURL, searchURL string, opts *fetch.Options) *EncyclopedicSource {
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	return &EncyclopedicSource{summaryURL: summaryURL, searchURL: searchURL, opts: opts}
}

// Name implements Source.
func (s *EncyclopedicSource) Name() string { return "encyclopedic" }

// Mode implements Source. Encyclopedic terms are combined with the seed
// only when the term itself has at most 3 tokens.
func (s *EncyclopedicSource) Mode() Mode { return ModeTerm }

// Fetch implements Source. The summary and search calls fail independently;
// only a failure of both surfaces as an error.
func (s *EncyclopedicSource) Fetch(ctx context.Context, seed string) (types.CandidateBatch, error) {
	seen := make(map[string]bool)
	batch := make(types.CandidateBatch, 0, maxEncyclopedicResults)
	failures := 0

	add := func(term string) bool {
		normalized := types.NormalizeKeyword(term)
		if normalized == "" || seen[normalized] {
			return false
		}
		seen[normalized] = true
		batch = append(batch, term)
		return len(batch) >= maxEncyclopedicResults
	}

	// Topic summary: extract capitalized terms from the free-text extract.
	if terms, err := s.summaryTerms(ctx, seed); err != nil {
		failures++
	} else {
		for _, term := range terms {
			if add(term) {
				return batch, nil
			}
		}
	}

	// Full-text search: matching article titles.
	if titles, err := s.searchTitles(ctx, seed); err != nil {
		failures++
	} else {
		for _, title := range titles {
			if add(title) {
				return batch, nil
			}
		}
	}

	if failures == 2 {
		return types.CandidateBatch{}, &SourceUnavailableError{
			Source:  s.Name(),
			Message: "summary and search queries both failed",
		}
	}
	return batch, nil
}

func (s *EncyclopedicSource) summaryTerms(ctx context.Context, seed string) ([]string, error) {
	slug := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(seed), " ", "_"))
	var summary summaryResponse
	if err := fetch.JSON(ctx, s.summaryURL+"/"+slug, nil, s.opts, &summary); err != nil {
		return nil, &SourceUnavailableError{Source: s.Name(), Message: "summary query failed", Cause: err}
	}
	return ExtractTerms(summary.Extract), nil
}

func (s *EncyclopedicSource) searchTitles(ctx context.Context, seed string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", seed)
	params.Set("srlimit", "10")

	var result searchResponse
	if err := fetch.JSON(ctx, s.searchURL, params, s.opts, &result); err != nil {
		return nil, &SourceUnavailableError{Source: s.Name(), Message: "search query failed", Cause: err}
	}

	titles := make([]string, 0, searchResultLimit)
	for _, item := range result.Query.Search {
		if item.Title != "" {
			titles = append(titles, item.Title)
		}
		if len(titles) >= searchResultLimit {
			break
		}
	}
	return titles, nil
}

// ExtractTerms pulls capitalized terms from free text, excluding stopwords
// and any term of 3 characters or fewer.
func ExtractTerms(text string) []string {
	matches := termPattern.FindAllString(text, -1)
	seen := make(map[string]bool)
	terms := make([]string, 0, len(matches))
	for _, match := range matches {
		if len(match) <= 3 || termStopwords[match] || seen[match] {
			continue
		}
		seen[match] = true
		terms = append(terms, match)
	}
	return terms
}

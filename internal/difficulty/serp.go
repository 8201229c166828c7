package difficulty

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/rankbuddy/internal/fetch"
)

// resultCountPatterns match the approximate result count on a search
// results page, e.g. "About 1,230,000 results".
var resultCountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`About ([\d,]+) results`),
	regexp.MustCompile(`Approximately ([\d,]+) results`),
	regexp.MustCompile(`([\d,]+) results`),
}

// SERPCounter extracts the reported result count for an exact-phrase query
// from an HTML search results page. It exists for deployments without a
// Custom Search API key.
type SERPCounter struct {
	baseURL string
	opts    *fetch.Options
}

// NewSERPCounter creates a counter against the given results page URL.
func NewSERPCounter(baseURL string, opts *fetch.Options) *SERPCounter {
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	return &SERPCounter{baseURL: baseURL, opts: opts}
}

// Count fetches the results page for an exact-phrase query and returns the
// reported result count.
func (c *SERPCounter) Count(ctx context.Context, keyword string) (int64, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%q", keyword))
	params.Set("num", "1")

	body, err := fetch.Body(ctx, c.baseURL, params, c.opts)
	if err != nil {
		return 0, err
	}
	return ExtractResultCount(string(body))
}

// ExtractResultCount parses a search results page and returns the
// approximate result count. It prefers the result-stats node, falling back
// to scanning the whole page text.
func ExtractResultCount(html string) (int64, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, fmt.Errorf("failed to parse results page: %w", err)
	}

	texts := []string{doc.Find("#result-stats").Text(), doc.Text()}
	for _, text := range texts {
		for _, pattern := range resultCountPatterns {
			match := pattern.FindStringSubmatch(text)
			if match == nil {
				continue
			}
			count, err := strconv.ParseInt(strings.ReplaceAll(match[1], ",", ""), 10, 64)
			if err != nil {
				continue
			}
			return count, nil
		}
	}
	return 0, fmt.Errorf("no result count found on page")
}

// SERPGrounded scores keywords from scraped result counts, falling back to
// an offline policy on any failure.
type SERPGrounded struct {
	counter  *SERPCounter
	fallback Policy
}

// NewSERPGrounded creates a SERP-count policy. The fallback defaults to the
// lexical policy when nil.
func NewSERPGrounded(counter *SERPCounter, fallback Policy) *SERPGrounded {
	if fallback == nil {
		fallback = NewLexical()
	}
	return &SERPGrounded{counter: counter, fallback: fallback}
}

// Name implements Policy.
func (g *SERPGrounded) Name() string { return "serp-grounded" }

// Score implements Policy.
func (g *SERPGrounded) Score(ctx context.Context, keyword string) float64 {
	count, err := g.counter.Count(ctx, keyword)
	if err != nil {
		return g.fallback.Score(ctx, keyword)
	}
	return BandScore(count)
}

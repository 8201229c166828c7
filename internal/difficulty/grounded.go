package difficulty

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// SearchGrounded scores keywords from the search index's reported result
// count for an exact-phrase query, falling back to an offline policy when
// the service fails or returns no count.
type SearchGrounded struct {
	svc      *customsearch.Service
	cx       string
	fallback Policy
}

// NewSearchGrounded creates a grounded policy backed by the Custom Search
// API. The fallback defaults to the lexical policy when nil.
func NewSearchGrounded(ctx context.Context, apiKey, cx string, fallback Policy) (*SearchGrounded, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	if fallback == nil {
		fallback = NewLexical()
	}
	return &SearchGrounded{svc: svc, cx: cx, fallback: fallback}, nil
}

// Name implements Policy.
func (g *SearchGrounded) Name() string { return "search-grounded" }

// Score implements Policy. Failures degrade to the fallback policy; they
// never abort a scoring pass.
func (g *SearchGrounded) Score(ctx context.Context, keyword string) float64 {
	resp, err := g.svc.Cse.List().Context(ctx).Cx(g.cx).Q(fmt.Sprintf("%q", keyword)).Num(1).Do()
	if err != nil || resp.SearchInformation == nil {
		return g.fallback.Score(ctx, keyword)
	}

	count, err := strconv.ParseInt(resp.SearchInformation.TotalResults, 10, 64)
	if err != nil || count < 0 {
		return g.fallback.Score(ctx, keyword)
	}
	return BandScore(count)
}

// BandScore converts a raw result-count magnitude into a difficulty score.
// Each order of magnitude maps to a band; within a band the score grows
// linearly with the count.
func BandScore(count int64) float64 {
	c := float64(count)
	switch {
	case count < 10_000:
		return clamp(c/500, 5, 20) // very easy
	case count < 100_000:
		return clamp(c/2500, 20, 40) // easy
	case count < 1_000_000:
		return clamp(c/16667, 40, 60) // medium
	case count < 10_000_000:
		return clamp(c/125000, 60, 80) // hard
	default:
		return clamp(c/1_000_000, 80, 95) // very hard
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

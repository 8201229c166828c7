// Package difficulty assigns each keyword a 0-100 competitiveness score.
// Scores are heuristic proxies, not measured market metrics.
//
// Two offline policies are supported: the lexical heuristic (the default)
// and the frequency-informed heuristic used by the offline analyzer. A
// search-grounded policy additionally consults a search index's reported
// result magnitude when a search service is configured.
package difficulty

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/rankbuddy/internal/types"
)

// DefaultScore is the medium score assigned when a keyword's features
// cannot be computed (empty tokens).
const DefaultScore = 50.0

// highCompetitionTerms each add 5 points when present in a keyword.
var highCompetitionTerms = []string{"best", "top", "free", "review", "buy", "cheap", "price"}

// nonAlphanumeric strips punctuation before tokenizing for the frequency
// policy.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)

// Policy scores a single keyword in [0,100]. Implementations must be
// monotonic in the intuitive direction: more or shorter generic tokens
// raise the score, more specific and longer phrasing lowers it.
type Policy interface {
	Name() string
	Score(ctx context.Context, keyword string) float64
}

// ScorePool scores every pool member in a single pass. The returned map is
// never partially stale: it has exactly one entry per pool member.
func ScorePool(ctx context.Context, pool *types.KeywordPool, policy Policy) types.ScoreMap {
	scores := make(types.ScoreMap, pool.Size())
	for keyword := range pool.Keywords {
		scores[keyword] = policy.Score(ctx, keyword)
	}
	return scores
}

// Lexical is the default policy: a pure function of word count, average
// word length, and high-competition term occurrences. No network access.
type Lexical struct{}

// NewLexical returns the default difficulty policy.
func NewLexical() *Lexical { return &Lexical{} }

// Name implements Policy.
func (l *Lexical) Name() string { return "lexical" }

// Score implements Policy: clamp(80 - 15*tokens - 2*avgLen, floor 10),
// plus 5 per high-competition term, capped at 95.
func (l *Lexical) Score(_ context.Context, keyword string) float64 {
	normalized := types.NormalizeKeyword(keyword)
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return DefaultScore
	}

	wordCount := float64(len(tokens))
	avgLength := types.AvgTokenLength(normalized)

	base := 80 - wordCount*15 - avgLength*2
	if base < 10 {
		base = 10
	}

	boost := 0.0
	for _, term := range highCompetitionTerms {
		if strings.Contains(normalized, term) {
			boost += 5
		}
	}

	score := base + boost
	if score > 95 {
		score = 95
	}
	return score
}

// Frequency is the offline analyzer's policy: a lookup-table word-frequency
// contribution capped at 50, a token-count bonus for short phrases, and an
// average-word-length bonus for short words, summed and clamped to [0,100].
type Frequency struct {
	frequencies map[string]float64
}

// NewFrequency returns the frequency-informed policy backed by the built-in
// word frequency table.
func NewFrequency() *Frequency {
	return &Frequency{frequencies: wordFrequencies}
}

// Name implements Policy.
func (f *Frequency) Name() string { return "frequency" }

// Score implements Policy.
func (f *Frequency) Score(_ context.Context, keyword string) float64 {
	cleaned := nonAlphanumeric.ReplaceAllString(types.NormalizeKeyword(keyword), "")
	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return DefaultScore
	}

	totalFrequency := 0.0
	totalLength := 0
	for _, tok := range tokens {
		totalFrequency += f.frequencies[tok]
		totalLength += len(tok)
	}
	wordCount := float64(len(tokens))
	avgLength := float64(totalLength) / wordCount

	frequencyScore := totalFrequency / 10000
	if frequencyScore > 50 {
		frequencyScore = 50
	}
	lengthScore := 30 - wordCount*5
	if lengthScore < 0 {
		lengthScore = 0
	}
	wordLengthScore := 20 - avgLength*2
	if wordLengthScore < 0 {
		wordLengthScore = 0
	}

	score := frequencyScore + lengthScore + wordLengthScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// PolicyByName returns the named offline policy, defaulting to lexical.
func PolicyByName(name string) Policy {
	switch name {
	case "frequency":
		return NewFrequency()
	default:
		return NewLexical()
	}
}

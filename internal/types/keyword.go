// Package types defines the core data structures shared across the keyword
// research engine: keywords, pools, buckets, score maps, and content plans.
package types

import (
	"fmt"
	"strings"
)

// Keyword length and shape limits enforced at the aggregation boundary.
const (
	MinKeywordLength = 3
	MaxKeywordLength = 100
	MaxKeywordTokens = 6

	// MaxSeedLength bounds caller-supplied seed phrases. Anything longer is
	// rejected before any network call is made.
	MaxSeedLength = 200
)

// SeedError indicates an invalid caller-supplied seed phrase.
type SeedError struct {
	Seed    string
	Message string
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("invalid seed phrase %q: %s", e.Seed, e.Message)
}

// NormalizeKeyword lowercases and trims a raw candidate string. Keyword
// identity is the exact string after normalization.
func NormalizeKeyword(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// TokenCount returns the number of whitespace-delimited tokens in a keyword.
func TokenCount(keyword string) int {
	return len(strings.Fields(keyword))
}

// AvgTokenLength returns the mean length of a keyword's tokens.
// Returns 0 for an empty keyword.
func AvgTokenLength(keyword string) float64 {
	tokens := strings.Fields(keyword)
	if len(tokens) == 0 {
		return 0
	}
	total := 0
	for _, tok := range tokens {
		total += len(tok)
	}
	return float64(total) / float64(len(tokens))
}

// ValidKeyword reports whether a normalized candidate passes the aggregation
// filter: length in [MinKeywordLength, MaxKeywordLength] and at most
// MaxKeywordTokens tokens.
func ValidKeyword(keyword string) bool {
	if len(keyword) < MinKeywordLength || len(keyword) > MaxKeywordLength {
		return false
	}
	return TokenCount(keyword) <= MaxKeywordTokens
}

// ValidateSeed checks a caller-supplied seed phrase before aggregation begins.
// An empty or oversized seed is a caller-input error, not a pipeline fault.
func ValidateSeed(seed string) error {
	trimmed := strings.TrimSpace(seed)
	if trimmed == "" {
		return &SeedError{Seed: seed, Message: "seed phrase is empty"}
	}
	if len(trimmed) > MaxSeedLength {
		return &SeedError{Seed: trimmed, Message: fmt.Sprintf("seed phrase exceeds %d characters", MaxSeedLength)}
	}
	return nil
}

// CapitalizeKeyword title-cases each token of a keyword for display in
// titles and headings ("content marketing" -> "Content Marketing").
func CapitalizeKeyword(keyword string) string {
	tokens := strings.Fields(keyword)
	for i, tok := range tokens {
		tokens[i] = strings.ToUpper(tok[:1]) + tok[1:]
	}
	return strings.Join(tokens, " ")
}

// Package sources provides the suggestion source adapters that feed the
// keyword aggregator. Each adapter wraps one external query/response
// contract and returns a finite batch of raw candidate strings. A source
// never raises past its boundary: transport, status, and parse failures
// degrade to an empty batch plus a typed error the aggregator records as a
// warning.
package sources

import (
	"context"

	"github.com/jonathan/rankbuddy/internal/types"
)

// Mode describes how a source's candidates merge into the pool.
type Mode int

const (
	// ModePhrase candidates are full phrases inserted as-is.
	ModePhrase Mode = iota
	// ModeWord candidates are single words; the aggregator synthesizes
	// "word seed" and "seed word" combinations instead of inserting the
	// bare word.
	ModeWord
	// ModeTerm candidates are encyclopedic terms; combinations are only
	// synthesized when the term itself has at most 3 tokens.
	ModeTerm
)

// Source fetches raw keyword candidates for a seed phrase.
type Source interface {
	// Name identifies the source in warnings and logs.
	Name() string
	// Mode returns the merge rule for this source's candidates.
	Mode() Mode
	// Fetch returns candidates for the seed. On failure it returns an
	// empty batch and a *SourceUnavailableError or *MalformedResponseError;
	// it never panics and never returns a partial batch alongside an error
	// that should abort aggregation.
	Fetch(ctx context.Context, seed string) (types.CandidateBatch, error)
}

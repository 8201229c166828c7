// Package aggregate fans out to every suggestion source for a seed phrase
// and merges the results into a single deduplicated, filtered, capped
// keyword pool.
package aggregate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/rankbuddy/internal/sources"
	"github.com/jonathan/rankbuddy/internal/types"
)

// DefaultMaxPoolSize caps the final pool.
const DefaultMaxPoolSize = 50

// maxCombineTokens is the largest encyclopedic term (in tokens) that still
// gets combined with the seed.
const maxCombineTokens = 3

// Warning records a source that degraded to an empty contribution.
type Warning struct {
	Source string `json:"source"`
	Err    error  `json:"-"`
}

// Message returns a human-readable form of the warning.
func (w Warning) Message() string {
	return fmt.Sprintf("source %s contributed no results: %v", w.Source, w.Err)
}

// Aggregator merges candidate batches from all configured sources into a
// keyword pool. The merge is commutative: source order never affects the
// resulting set.
type Aggregator struct {
	sources     []sources.Source
	maxPoolSize int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithMaxPoolSize overrides the final pool cap.
func WithMaxPoolSize(max int) Option {
	return func(a *Aggregator) { a.maxPoolSize = max }
}

// New creates an Aggregator over the given sources.
func New(srcs []sources.Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		sources:     srcs,
		maxPoolSize: DefaultMaxPoolSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DefaultSources returns the four production suggestion sources.
func DefaultSources() []sources.Source {
	return []sources.Source{
		sources.NewCompletionSource(),
		sources.NewRelatedSource(),
		sources.NewSemanticSource(),
		sources.NewEncyclopedicSource(),
	}
}

// Aggregate builds the keyword pool for a seed phrase. Sources are queried
// concurrently; each failure is downgraded to an empty contribution plus a
// warning. The returned pool always contains the normalized seed. The only
// error returned is an invalid seed, reported before any network call.
func (a *Aggregator) Aggregate(ctx context.Context, seed string) (*types.KeywordPool, []Warning, error) {
	if err := types.ValidateSeed(seed); err != nil {
		return nil, nil, err
	}

	batches := make([]types.CandidateBatch, len(a.sources))
	warnings := make([]Warning, len(a.sources))

	// Fan out. Goroutines only write their own slot; the merge happens
	// behind the Wait barrier in a single writer.
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range a.sources {
		i, src := i, src
		g.Go(func() error {
			batch, err := src.Fetch(gctx, seed)
			if err != nil {
				warnings[i] = Warning{Source: src.Name(), Err: err}
				return nil
			}
			batches[i] = batch
			return nil
		})
	}
	// Source fetches never return errors through the group, so Wait is a
	// pure barrier here.
	_ = g.Wait()

	pool := types.NewKeywordPool(seed)
	for i, src := range a.sources {
		merge(pool, batches[i], src.Mode())
	}
	pool.Truncate(a.maxPoolSize)

	collected := make([]Warning, 0, len(a.sources))
	for _, w := range warnings {
		if w.Source != "" {
			collected = append(collected, w)
		}
	}
	return pool, collected, nil
}

// merge applies a source's combination rule to its batch.
func merge(pool *types.KeywordPool, batch types.CandidateBatch, mode sources.Mode) {
	seed := pool.Seed
	for _, raw := range batch {
		candidate := types.NormalizeKeyword(raw)
		if candidate == "" {
			continue
		}
		switch mode {
		case sources.ModePhrase:
			pool.Add(candidate)
		case sources.ModeWord:
			pool.Add(candidate + " " + seed)
			pool.Add(seed + " " + candidate)
		case sources.ModeTerm:
			if types.TokenCount(candidate) <= maxCombineTokens {
				pool.Add(candidate + " " + seed)
				pool.Add(seed + " " + candidate)
			}
		}
	}
}

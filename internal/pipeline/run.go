// Package pipeline provides the high-level orchestration for one keyword
// research run: aggregate -> categorize -> score -> plan.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/rankbuddy/internal/aggregate"
	"github.com/jonathan/rankbuddy/internal/categorize"
	"github.com/jonathan/rankbuddy/internal/difficulty"
	"github.com/jonathan/rankbuddy/internal/planner"
	"github.com/jonathan/rankbuddy/internal/sources"
	"github.com/jonathan/rankbuddy/internal/types"
)

// ProgressEvent represents a progress update during a research run
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when run progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for one research run
type RunOptions struct {
	Seed string

	// Sources overrides the production suggestion sources (tests, offline
	// mode). Nil means the default four.
	Sources []sources.Source

	// Policy overrides the difficulty policy. Nil means the policy named
	// by PolicyName, which itself defaults to lexical.
	Policy     difficulty.Policy
	PolicyName string

	MaxPoolSize int
	Plan        *types.PlanConfig
	Prompt      *types.PromptOptions

	OnProgress ProgressCallback
}

// Result holds everything one run produced. It lives only for the current
// request; a new seed phrase means a new run.
type Result struct {
	RunID       string                  `json:"run_id"`
	Seed        string                  `json:"seed"`
	Keywords    []string                `json:"keywords"`
	Buckets     types.CategoryBuckets   `json:"buckets"`
	Scores      types.ScoreMap          `json:"scores"`
	Structure   *types.ContentStructure `json:"structure"`
	Prompt      string                  `json:"prompt,omitempty"`
	Warnings    []string                `json:"warnings,omitempty"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Content: content,
		})
	}
}

// Run executes the full research pipeline for a seed phrase. The only
// fatal errors are an invalid seed or invalid caller overrides; degraded
// sources surface as warnings on the result.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if err := types.ValidateSeed(opts.Seed); err != nil {
		return nil, err
	}

	runID := uuid.New().String()

	srcs := opts.Sources
	if srcs == nil {
		srcs = aggregate.DefaultSources()
	}
	var aggOpts []aggregate.Option
	if opts.MaxPoolSize > 0 {
		aggOpts = append(aggOpts, aggregate.WithMaxPoolSize(opts.MaxPoolSize))
	}
	agg := aggregate.New(srcs, aggOpts...)

	emitProgress(&opts, runID, "aggregate", "Fetching keyword suggestions", nil)
	pool, warnings, err := agg.Aggregate(ctx, opts.Seed)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, runID, "aggregate", "Keyword pool built", pool.Size())

	emitProgress(&opts, runID, "categorize", "Partitioning keywords", nil)
	buckets := categorize.Split(pool)

	policy := opts.Policy
	if policy == nil {
		policy = difficulty.PolicyByName(opts.PolicyName)
	}
	emitProgress(&opts, runID, "score", "Estimating keyword difficulty", policy.Name())
	scores := difficulty.ScorePool(ctx, pool, policy)

	emitProgress(&opts, runID, "plan", "Deriving content structure", nil)
	structure, err := planner.Plan(opts.Seed, pool, scores, opts.Plan)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:       runID,
		Seed:        pool.Seed,
		Keywords:    pool.Sorted(),
		Buckets:     buckets,
		Scores:      scores,
		Structure:   structure,
		GeneratedAt: time.Now().UTC(),
	}

	if opts.Prompt != nil {
		emitProgress(&opts, runID, "prompt", "Assembling writing prompt", nil)
		prompt, err := planner.AssemblePrompt(opts.Seed, structure, scores, opts.Prompt)
		if err != nil {
			return nil, err
		}
		result.Prompt = prompt
	}

	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.Message())
	}

	emitProgress(&opts, runID, "done", "Research complete", nil)
	return result, nil
}

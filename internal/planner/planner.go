// Package planner derives a content outline (titles, headings, meta
// description, word and density targets) from a scored keyword pool, and
// assembles the long-form writing prompt built on top of it. All numeric
// contracts live here; the wording lives in the prompts package.
package planner

import (
	"strings"

	"github.com/jonathan/rankbuddy/internal/prompts"
	"github.com/jonathan/rankbuddy/internal/types"
)

// structureFile holds the outline templates.
const structureFile = "structure.json"

// Plan produces the content structure for a seed phrase. The structure is
// deterministic templating on the seed; pool and scores are carried for
// the prompt-assembly stage that consumes the same plan. cfg may be nil.
func Plan(seed string, pool *types.KeywordPool, scores types.ScoreMap, cfg *types.PlanConfig) (*types.ContentStructure, error) {
	if err := types.ValidateSeed(seed); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &types.PlanConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	normalized := types.NormalizeKeyword(seed)
	topic := types.CapitalizeKeyword(normalized)
	data := map[string]string{"Topic": topic, "Seed": normalized}

	titles := renderLines(prompts.MustGet(structureFile, "titles"), data)
	headings := renderLines(prompts.MustGet(structureFile, "headings"), data)
	meta := prompts.Format(prompts.MustGet(structureFile, "meta_description"), data)

	targetWords := cfg.TargetWords
	if targetWords == 0 {
		targetWords = types.DefaultTargetWords
	}
	density := cfg.Density
	if density == 0 {
		density = types.DefaultDensity
	}

	return &types.ContentStructure{
		Titles:          titles,
		Headings:        headings,
		MetaDescription: meta,
		TargetLength:    targetWords,
		KeywordDensity:  density,
	}, nil
}

// renderLines substitutes the template data into each line of a
// newline-separated pattern list.
func renderLines(patterns string, data map[string]string) []string {
	lines := strings.Split(patterns, "\n")
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		rendered = append(rendered, prompts.Format(line, data))
	}
	return rendered
}

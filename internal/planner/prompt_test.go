package planner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rankbuddy/internal/types"
)

func testStructure() *types.ContentStructure {
	return &types.ContentStructure{
		Titles: []string{
			"Complete Guide to Seo",
			"How to Master Seo: Expert Tips",
			"Seo: Everything You Need to Know",
			"Ultimate Seo Tutorial for Beginners",
			"Advanced Seo: Best Practices",
		},
		Headings: []string{
			"What is Seo?",
			"Why Seo Matters in 2024",
			"Getting Started with Seo",
			"Advanced Seo Strategies",
			"Common Seo Mistakes to Avoid",
			"Best Seo Tools and Resources",
			"Real-World Seo Examples",
			"Seo Future Trends",
		},
		MetaDescription: "Master seo with our comprehensive guide.",
		TargetLength:    2000,
		KeywordDensity:  1.5,
	}
}

func TestAssemblePrompt_InterpolatesTargets(t *testing.T) {
	scores := types.ScoreMap{"seo": 60, "seo basics": 10}

	prompt, err := AssemblePrompt("seo", testStructure(), scores, nil)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Primary Keyword: seo")
	assert.Contains(t, prompt, "seo basics")
	assert.Contains(t, prompt, "30 times in 2000 words")
	assert.Contains(t, prompt, "about 1.5% density")
	assert.Contains(t, prompt, "Complete Guide to Seo", "suggested title")
	assert.Contains(t, prompt, "Master seo with our comprehensive guide.", "suggested meta")
	assert.Contains(t, prompt, "expert but accessible", "default tone")
	assert.Contains(t, prompt, "value to readers", "default audience")
	assert.NotContains(t, prompt, "{{.", "no unfilled placeholders")
}

func TestAssemblePrompt_WordOverrideRecomputesMentions(t *testing.T) {
	prompt, err := AssemblePrompt("seo", testStructure(), types.ScoreMap{},
		&types.PromptOptions{TargetWords: 1000})
	require.NoError(t, err)
	assert.Contains(t, prompt, "15 times in 1000 words")
}

func TestAssemblePrompt_ToneAndAudience(t *testing.T) {
	prompt, err := AssemblePrompt("seo", testStructure(), types.ScoreMap{},
		&types.PromptOptions{Tone: types.ToneCasual, Audience: "small business owners"})
	require.NoError(t, err)

	assert.Contains(t, prompt, "casual and friendly")
	assert.Contains(t, prompt, "small business owners")
}

func TestAssemblePrompt_OptionalSections(t *testing.T) {
	base, err := AssemblePrompt("seo", testStructure(), types.ScoreMap{}, nil)
	require.NoError(t, err)
	assert.NotContains(t, base, "FAQ SECTION")
	assert.NotContains(t, base, "REAL EXAMPLES")

	full, err := AssemblePrompt("seo", testStructure(), types.ScoreMap{},
		&types.PromptOptions{IncludeFAQ: true, IncludeExamples: true})
	require.NoError(t, err)
	assert.Contains(t, full, "FAQ SECTION")
	assert.Contains(t, full, "REAL EXAMPLES")
}

func TestAssemblePrompt_HeadingLevels(t *testing.T) {
	prompt, err := AssemblePrompt("seo", testStructure(), types.ScoreMap{}, nil)
	require.NoError(t, err)

	assert.Contains(t, prompt, "H2. What is Seo?")
	assert.Contains(t, prompt, "H2. Advanced Seo Strategies", "first four headings are H2")
	assert.Contains(t, prompt, "H3. Common Seo Mistakes to Avoid", "remaining headings are H3")
	assert.Contains(t, prompt, "H3. Seo Future Trends")
}

func TestAssemblePrompt_InvalidInput(t *testing.T) {
	_, err := AssemblePrompt("", testStructure(), types.ScoreMap{}, nil)
	var seedErr *types.SeedError
	assert.ErrorAs(t, err, &seedErr)

	_, err = AssemblePrompt("seo", testStructure(), types.ScoreMap{},
		&types.PromptOptions{Tone: "sarcastic"})
	assert.Error(t, err)
}

func TestSecondaryKeywords_SelectionOrder(t *testing.T) {
	scores := types.ScoreMap{
		"seo":        60, // seed, always excluded
		"alpha easy": 10,
		"beta easy":  10,
		"gamma easy": 25,
		"medium one": 35,
		"medium two": 45,
		"hard one":   75,
	}

	selected := SecondaryKeywords("seo", scores)

	assert.Equal(t, []string{"alpha easy", "beta easy", "gamma easy", "medium one", "medium two"}, selected)
	assert.NotContains(t, selected, "seo")
	assert.NotContains(t, selected, "hard one")
}

func TestSecondaryKeywords_Caps(t *testing.T) {
	scores := types.ScoreMap{}
	for i := 0; i < 12; i++ {
		scores[fmt.Sprintf("easy %02d", i)] = 10
	}
	for i := 0; i < 8; i++ {
		scores[fmt.Sprintf("medium %02d", i)] = 40
	}

	selected := SecondaryKeywords("seo", scores)

	require.Len(t, selected, maxSecondaryTotals)
	easies := 0
	for _, kw := range selected {
		if strings.HasPrefix(kw, "easy") {
			easies++
		}
	}
	assert.Equal(t, maxEasyKeywords, easies)
}

func TestSecondaryKeywords_Deterministic(t *testing.T) {
	scores := types.ScoreMap{"bravo": 10, "alpha": 10, "delta": 40, "charlie": 40}

	first := SecondaryKeywords("seo", scores)
	second := SecondaryKeywords("seo", scores)

	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, first)
	assert.Equal(t, first, second)
}

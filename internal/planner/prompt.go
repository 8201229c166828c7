package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/rankbuddy/internal/prompts"
	"github.com/jonathan/rankbuddy/internal/types"
)

// promptFile holds the long-form writing prompt templates.
const promptFile = "blogpost.json"

// Secondary keyword selection limits: the easiest keywords first, then
// medium-difficulty ones, capped overall.
const (
	easyThreshold      = 30.0
	mediumThreshold    = 50.0
	maxEasyKeywords    = 8
	maxMediumKeywords  = 5
	maxSecondaryTotals = 12
)

// toneDescriptions expands the tone enum into the phrasing used inside the
// prompt text.
var toneDescriptions = map[types.Tone]string{
	types.ToneExpertAccessible: "expert but accessible, helpful and actionable",
	types.ToneCasual:           "casual and friendly",
	types.ToneFormal:           "professional and formal",
	types.ToneConversational:   "conversational",
	types.ToneTechnical:        "technical and detailed",
}

// AssemblePrompt interpolates the content structure, the lowest-difficulty
// keywords, and the caller's overrides into the long-form writing prompt.
// It is pure templating: every number it emits is already present in the
// structure or derived by the documented mentions formula.
func AssemblePrompt(seed string, structure *types.ContentStructure, scores types.ScoreMap, opts *types.PromptOptions) (string, error) {
	if err := types.ValidateSeed(seed); err != nil {
		return "", err
	}
	if opts == nil {
		opts = &types.PromptOptions{}
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	normalized := types.NormalizeKeyword(seed)

	targetWords := structure.TargetLength
	if opts.TargetWords > 0 {
		targetWords = opts.TargetWords
	}
	density := structure.KeywordDensity
	targetMentions := int(float64(targetWords)*density/100 + 0.5)

	tone := opts.Tone
	if tone == "" {
		tone = types.ToneExpertAccessible
	}
	audience := opts.Audience
	if audience == "" {
		audience = "readers"
	}

	secondary := SecondaryKeywords(normalized, scores)
	data := map[string]string{
		"Seed":              normalized,
		"SecondaryKeywords": strings.Join(secondary, ", "),
		"TargetWords":       fmt.Sprintf("%d", targetWords),
		"TargetMentions":    fmt.Sprintf("%d", targetMentions),
		"Density":           strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", density), "0"), "."),
		"Tone":              toneDescriptions[tone],
		"Audience":          audience,
		"SuggestedTitle":    first(structure.Titles),
		"SuggestedMeta":     structure.MetaDescription,
	}

	var sections []string
	for _, key := range []string{"mission", "keyword_strategy", "title_section", "meta_section", "intro_section", "main_content_header"} {
		sections = append(sections, prompts.Format(prompts.MustGet(promptFile, key), data))
	}

	sections = append(sections, headingSections(structure.Headings))

	for _, key := range []string{"conclusion_section", "guidelines"} {
		sections = append(sections, prompts.Format(prompts.MustGet(promptFile, key), data))
	}

	if opts.IncludeFAQ {
		sections = append(sections, prompts.MustGet(promptFile, "faq_bonus"))
	}
	if opts.IncludeExamples {
		sections = append(sections, prompts.MustGet(promptFile, "examples_bonus"))
	}

	sections = append(sections, prompts.MustGet(promptFile, "closing"))
	return strings.Join(sections, "\n\n"), nil
}

// SecondaryKeywords selects the lowest-difficulty pool members as secondary
// keywords: up to 8 below the easy threshold, then up to 5 below the medium
// threshold, 12 total. The seed itself is excluded. Selection order is
// deterministic: ascending score, then lexicographic.
func SecondaryKeywords(seed string, scores types.ScoreMap) []string {
	var easy, medium []string
	for keyword, score := range scores {
		if keyword == seed {
			continue
		}
		switch {
		case score < easyThreshold:
			easy = append(easy, keyword)
		case score < mediumThreshold:
			medium = append(medium, keyword)
		}
	}

	byScore := func(keywords []string) {
		sort.Slice(keywords, func(i, j int) bool {
			si, sj := scores[keywords[i]], scores[keywords[j]]
			if si != sj {
				return si < sj
			}
			return keywords[i] < keywords[j]
		})
	}
	byScore(easy)
	byScore(medium)

	if len(easy) > maxEasyKeywords {
		easy = easy[:maxEasyKeywords]
	}
	if len(medium) > maxMediumKeywords {
		medium = medium[:maxMediumKeywords]
	}

	selected := append(easy, medium...)
	if len(selected) > maxSecondaryTotals {
		selected = selected[:maxSecondaryTotals]
	}
	return selected
}

// headingSections renders the per-heading guidance blocks: the first four
// headings are H2 sections, the rest H3.
func headingSections(headings []string) string {
	var sb strings.Builder
	for i, heading := range headings {
		level := 2
		if i >= 4 {
			level = 3
		}
		sb.WriteString(fmt.Sprintf("H%d. %s\n", level, heading))

		var key string
		switch {
		case i == 0:
			key = "heading_guidance_first"
		case i == 1:
			key = "heading_guidance_second"
		case i < 4:
			key = "heading_guidance_early"
		default:
			key = "heading_guidance_late"
		}
		sb.WriteString(prompts.MustGet(promptFile, key))
		if i < len(headings)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

func first(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

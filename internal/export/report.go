// Package export renders one research run as Markdown, plain text, or
// JSON. It only consumes the engine's output structures; nothing here
// computes new scores or keywords.
package export

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/rankbuddy/internal/pipeline"
	"github.com/jonathan/rankbuddy/internal/types"
)

// Display truncation limits for the SERP-style preview fields.
const (
	titleDisplayLimit = 60
	metaDisplayLimit  = 160
)

// List limits for the rendered reports.
const (
	maxShortTailListed = 10
	maxLongTailListed  = 15
	maxKeywordsListed  = 20
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a URL slug from the seed phrase.
func Slug(seed string) string {
	slug := slugPattern.ReplaceAllString(types.NormalizeKeyword(seed), "-")
	return strings.Trim(slug, "-")
}

// TruncateForDisplay shortens a string to a display limit, appending an
// ellipsis when truncated.
func TruncateForDisplay(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// Markdown renders the research report as a Markdown document.
func Markdown(result *pipeline.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Keyword Research: %s\n\n", types.CapitalizeKeyword(result.Seed))
	fmt.Fprintf(&sb, "Generated: %s\n\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))

	sb.WriteString("## Keywords Found\n")
	fmt.Fprintf(&sb, "- **Total Keywords:** %d\n", len(result.Keywords))
	fmt.Fprintf(&sb, "- **Short-tail:** %d\n", len(result.Buckets.ShortTail))
	fmt.Fprintf(&sb, "- **Long-tail:** %d\n\n", len(result.Buckets.LongTail))

	sb.WriteString("### Top Short-Tail Keywords\n")
	writeKeywordList(&sb, result.Buckets.ShortTail, result.Scores, maxShortTailListed)

	sb.WriteString("\n### Top Long-Tail Keywords\n")
	writeKeywordList(&sb, result.Buckets.LongTail, result.Scores, maxLongTailListed)

	sb.WriteString("\n## Content Strategy\n")
	if len(result.Structure.Titles) > 0 {
		fmt.Fprintf(&sb, "### Recommended Title\n%s\n\n", result.Structure.Titles[0])
	}
	fmt.Fprintf(&sb, "### Meta Description\n%s\n\n", result.Structure.MetaDescription)

	sb.WriteString("### Content Structure\n")
	for _, heading := range result.Structure.Headings {
		fmt.Fprintf(&sb, "- %s\n", heading)
	}

	sb.WriteString("\n## SEO Guidelines\n")
	fmt.Fprintf(&sb, "- Target Length: %d words\n", result.Structure.TargetLength)
	fmt.Fprintf(&sb, "- Keyword Density: %g%%\n", result.Structure.KeywordDensity)
	fmt.Fprintf(&sb, "- Target Mentions: %d\n", result.Structure.TargetMentions())
	fmt.Fprintf(&sb, "- Suggested URL Slug: %s\n", Slug(result.Seed))
	sb.WriteString("- Focus on easy-difficulty keywords first\n")
	sb.WriteString("- Use long-tail keywords in subheadings\n")

	if len(result.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(&sb, "- %s\n", w)
		}
	}

	return sb.String()
}

// Text renders the research report as plain text.
func Text(result *pipeline.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "KEYWORD RESEARCH: %s\n", strings.ToUpper(result.Seed))
	fmt.Fprintf(&sb, "Generated: %s\n\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))

	sb.WriteString("KEYWORDS FOUND:\n")
	fmt.Fprintf(&sb, "Total: %d\n", len(result.Keywords))
	fmt.Fprintf(&sb, "Short-tail: %d\n", len(result.Buckets.ShortTail))
	fmt.Fprintf(&sb, "Long-tail: %d\n\n", len(result.Buckets.LongTail))

	sb.WriteString("TOP KEYWORDS:\n")
	count := len(result.Keywords)
	if count > maxKeywordsListed {
		count = maxKeywordsListed
	}
	for _, kw := range result.Keywords[:count] {
		fmt.Fprintf(&sb, "- %s (Difficulty: %.0f)\n", kw, score(result.Scores, kw))
	}

	if len(result.Structure.Titles) > 0 {
		fmt.Fprintf(&sb, "\nRECOMMENDED TITLE:\n%s\n", TruncateForDisplay(result.Structure.Titles[0], titleDisplayLimit))
	}
	fmt.Fprintf(&sb, "\nMETA DESCRIPTION:\n%s\n", TruncateForDisplay(result.Structure.MetaDescription, metaDisplayLimit))

	return sb.String()
}

// JSON renders the research report as indented JSON. The output conforms
// to the embedded research report schema.
func JSON(result *pipeline.Result) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

func writeKeywordList(sb *strings.Builder, keywords []string, scores types.ScoreMap, max int) {
	count := len(keywords)
	if count > max {
		count = max
	}
	for _, kw := range keywords[:count] {
		fmt.Fprintf(sb, "- **%s** (Difficulty: %.0f)\n", kw, score(scores, kw))
	}
}

// score looks up a keyword's score, defaulting to the documented medium
// score for keywords missing from the map.
func score(scores types.ScoreMap, keyword string) float64 {
	if s, ok := scores[keyword]; ok {
		return s
	}
	return 50
}

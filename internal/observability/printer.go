// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/rankbuddy/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBuckets outputs the categorized keyword pool with scores.
func (p *Printer) PrintBuckets(buckets types.CategoryBuckets, scores types.ScoreMap) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Short-tail (%d):\n", len(buckets.ShortTail)))
	writeScoredList(&sb, buckets.ShortTail, scores)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Long-tail (%d):\n", len(buckets.LongTail)))
	writeScoredList(&sb, buckets.LongTail, scores)

	p.printBox("Keyword Pool", strings.TrimRight(sb.String(), "\n"))
}

// PrintStructure outputs the derived content structure.
func (p *Printer) PrintStructure(structure *types.ContentStructure) {
	if structure == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("Titles:\n")
	for i, title := range structure.Titles {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, title))
	}
	sb.WriteString("Headings:\n")
	for _, heading := range structure.Headings {
		sb.WriteString(fmt.Sprintf("  • %s\n", heading))
	}
	sb.WriteString(fmt.Sprintf("Meta: %s\n", structure.MetaDescription))
	sb.WriteString(fmt.Sprintf("Target: %d words at %g%% density (%d mentions)",
		structure.TargetLength, structure.KeywordDensity, structure.TargetMentions()))

	p.printBox("Content Structure", sb.String())
}

// PrintWarnings outputs non-fatal source warnings.
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	p.printBox("Warnings", strings.Join(warnings, "\n"))
}

func writeScoredList(sb *strings.Builder, keywords []string, scores types.ScoreMap) {
	count := len(keywords)
	if count > maxItemsToShow {
		count = maxItemsToShow
	}
	for _, kw := range keywords[:count] {
		sb.WriteString(fmt.Sprintf("  • %s (%.0f)\n", kw, scores[kw]))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
	}
}

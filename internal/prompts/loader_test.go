package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingKey(t *testing.T) {
	ClearCache()

	template, err := Get("structure.json", "meta_description")
	require.NoError(t, err)
	assert.Contains(t, template, "{{.Seed}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("structure.json", "nonexistent")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nonexistent.json", "titles")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("structure.json", "nonexistent")
	})
}

func TestFormat(t *testing.T) {
	result := Format("Guide to {{.Topic}} for {{.Audience}}", map[string]string{
		"Topic":    "Content Marketing",
		"Audience": "beginners",
	})
	assert.Equal(t, "Guide to Content Marketing for beginners", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("Guide to {{.Topic}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Guide to {{.Topic}}", result)
}

func TestStructureTemplates_ExpectedLineCounts(t *testing.T) {
	titles := MustGet("structure.json", "titles")
	assert.Len(t, strings.Split(titles, "\n"), 5)

	headings := MustGet("structure.json", "headings")
	assert.Len(t, strings.Split(headings, "\n"), 8)
}

func TestBlogpostTemplates_AllKeysPresent(t *testing.T) {
	keys := []string{
		"mission", "keyword_strategy", "title_section", "meta_section",
		"intro_section", "main_content_header", "heading_guidance_first",
		"heading_guidance_second", "heading_guidance_early", "heading_guidance_late",
		"conclusion_section", "guidelines", "faq_bonus", "examples_bonus", "closing",
	}
	for _, key := range keys {
		template, err := Get("blogpost.json", key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, template, key)
	}
}

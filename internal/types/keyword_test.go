package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKeyword(t *testing.T) {
	assert.Equal(t, "content marketing", NormalizeKeyword("  Content Marketing  "))
	assert.Equal(t, "seo", NormalizeKeyword("SEO"))
	assert.Equal(t, "", NormalizeKeyword("   "))
}

func TestTokenCount(t *testing.T) {
	assert.Equal(t, 0, TokenCount(""))
	assert.Equal(t, 1, TokenCount("marketing"))
	assert.Equal(t, 2, TokenCount("content marketing"))
	assert.Equal(t, 3, TokenCount("  content   marketing  tips  "))
}

func TestAvgTokenLength(t *testing.T) {
	assert.Equal(t, 0.0, AvgTokenLength(""))
	assert.Equal(t, 3.0, AvgTokenLength("seo"))
	// "content" (7) + "marketing" (9) = 16 / 2
	assert.Equal(t, 8.0, AvgTokenLength("content marketing"))
}

func TestValidKeyword_LengthBoundaries(t *testing.T) {
	assert.False(t, ValidKeyword("ab"), "2 characters is below the minimum")
	assert.True(t, ValidKeyword("abc"), "3 characters is the minimum")

	assert.True(t, ValidKeyword(strings.Repeat("a", 100)), "100 characters is the maximum")
	assert.False(t, ValidKeyword(strings.Repeat("a", 101)), "101 characters exceeds the maximum")
}

func TestValidKeyword_TokenBoundaries(t *testing.T) {
	assert.True(t, ValidKeyword("one two three four five six"), "6 tokens is the maximum")
	assert.False(t, ValidKeyword("one two three four five six seven"), "7 tokens exceeds the maximum")
}

func TestValidateSeed_Valid(t *testing.T) {
	assert.NoError(t, ValidateSeed("content marketing"))
	assert.NoError(t, ValidateSeed(strings.Repeat("a", 200)))
}

func TestValidateSeed_Empty(t *testing.T) {
	err := ValidateSeed("   ")
	require.Error(t, err)

	var seedErr *SeedError
	require.ErrorAs(t, err, &seedErr)
	assert.Contains(t, seedErr.Message, "empty")
}

func TestValidateSeed_TooLong(t *testing.T) {
	err := ValidateSeed(strings.Repeat("a", 201))
	require.Error(t, err)

	var seedErr *SeedError
	require.ErrorAs(t, err, &seedErr)
	assert.Contains(t, seedErr.Message, "200")
}

func TestCapitalizeKeyword(t *testing.T) {
	assert.Equal(t, "Content Marketing", CapitalizeKeyword("content marketing"))
	assert.Equal(t, "Seo", CapitalizeKeyword("seo"))
	assert.Equal(t, "", CapitalizeKeyword(""))
}

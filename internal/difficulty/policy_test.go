package difficulty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rankbuddy/internal/types"
)

func TestLexicalScore_Range(t *testing.T) {
	policy := NewLexical()
	for _, keyword := range []string{
		"a",
		"seo",
		"content marketing",
		"best free seo tools review",
		"advanced industrial keyword research methodology",
	} {
		score := policy.Score(context.Background(), keyword)
		assert.GreaterOrEqual(t, score, 0.0, keyword)
		assert.LessOrEqual(t, score, 100.0, keyword)
	}
}

func TestLexicalScore_ShorterGenericScoresHigher(t *testing.T) {
	policy := NewLexical()
	ctx := context.Background()

	short := policy.Score(ctx, "a")
	long := policy.Score(ctx, "advanced industrial keyword research methodology")
	assert.GreaterOrEqual(t, short, long)
}

func TestLexicalScore_HighCompetitionBoost(t *testing.T) {
	policy := NewLexical()
	ctx := context.Background()

	// Same token shape, one contains a high-competition term.
	boosted := policy.Score(ctx, "best guide")
	plain := policy.Score(ctx, "cool guide")
	assert.Equal(t, plain+5, boosted)
}

func TestLexicalScore_FloorAndCap(t *testing.T) {
	policy := NewLexical()
	ctx := context.Background()

	// 5 long tokens drive the base far below the floor.
	floored := policy.Score(ctx, "advanced industrial keyword research methodology")
	assert.Equal(t, 10.0, floored)

	// Stacked high-competition terms cannot push past the cap.
	capped := policy.Score(ctx, "best top free buy")
	assert.LessOrEqual(t, capped, 95.0)
}

func TestLexicalScore_EmptyKeyword(t *testing.T) {
	policy := NewLexical()
	assert.Equal(t, DefaultScore, policy.Score(context.Background(), "   "))
}

func TestFrequencyScore_Range(t *testing.T) {
	policy := NewFrequency()
	for _, keyword := range []string{
		"how",
		"content marketing",
		"methodology framework approach implementation",
	} {
		score := policy.Score(context.Background(), keyword)
		assert.GreaterOrEqual(t, score, 0.0, keyword)
		assert.LessOrEqual(t, score, 100.0, keyword)
	}
}

func TestFrequencyScore_CommonWordsScoreHigher(t *testing.T) {
	policy := NewFrequency()
	ctx := context.Background()

	common := policy.Score(ctx, "how")
	rare := policy.Score(ctx, "methodology framework approach implementation")
	assert.Greater(t, common, rare)
}

func TestFrequencyScore_StripsPunctuation(t *testing.T) {
	policy := NewFrequency()
	ctx := context.Background()

	assert.Equal(t, policy.Score(ctx, "how"), policy.Score(ctx, "how?"))
}

func TestFrequencyScore_EmptyKeyword(t *testing.T) {
	policy := NewFrequency()
	assert.Equal(t, DefaultScore, policy.Score(context.Background(), ""))
}

func TestScorePool_OneEntryPerMember(t *testing.T) {
	pool := types.NewKeywordPool("seo")
	require.True(t, pool.Add("seo tools"))
	require.True(t, pool.Add("best seo tools"))

	scores := ScorePool(context.Background(), pool, NewLexical())

	assert.Len(t, scores, pool.Size())
	for keyword := range pool.Keywords {
		score, ok := scores[keyword]
		require.True(t, ok, keyword)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestPolicyByName(t *testing.T) {
	assert.Equal(t, "lexical", PolicyByName("lexical").Name())
	assert.Equal(t, "frequency", PolicyByName("frequency").Name())
	assert.Equal(t, "lexical", PolicyByName("").Name(), "lexical is the default")
	assert.Equal(t, "lexical", PolicyByName("unknown").Name())
}

func TestBandScore_Bands(t *testing.T) {
	assert.Equal(t, 5.0, BandScore(100), "tiny counts clamp to the band floor")
	assert.Equal(t, 10.0, BandScore(5_000))
	assert.Equal(t, 20.0, BandScore(50_000))
	assert.Equal(t, 40.0, BandScore(500_000), "low medium counts clamp to the band floor")
	assert.Equal(t, 60.0, BandScore(5_000_000), "band boundaries stay monotonic")
	assert.Equal(t, 80.0, BandScore(50_000_000))
	assert.Equal(t, 95.0, BandScore(200_000_000), "huge counts clamp to the band ceiling")
}

func TestBandScore_Monotonic(t *testing.T) {
	counts := []int64{0, 1_000, 9_999, 10_000, 99_999, 100_000, 999_999, 1_000_000, 9_999_999, 10_000_000, 1_000_000_000}
	prev := -1.0
	for _, count := range counts {
		score := BandScore(count)
		assert.GreaterOrEqual(t, score, prev, "count %d", count)
		prev = score
	}
}

// Package categorize partitions a keyword pool into short-tail and
// long-tail buckets by token count.
package categorize

import (
	"github.com/jonathan/rankbuddy/internal/types"
)

// shortTailMaxTokens is the token-count boundary: at most this many tokens
// is short-tail, anything longer is long-tail.
const shortTailMaxTokens = 2

// Split partitions the pool: every member lands in exactly one bucket.
// Buckets follow the pool's stable iteration order.
func Split(pool *types.KeywordPool) types.CategoryBuckets {
	buckets := types.CategoryBuckets{
		ShortTail: []string{},
		LongTail:  []string{},
	}
	for _, keyword := range pool.Sorted() {
		if types.TokenCount(keyword) <= shortTailMaxTokens {
			buckets.ShortTail = append(buckets.ShortTail, keyword)
		} else {
			buckets.LongTail = append(buckets.LongTail, keyword)
		}
	}
	return buckets
}

package types

import "sort"

// CandidateBatch is the ordered sequence of raw strings produced by one
// suggestion source call. A failed source contributes an empty batch,
// never a nil-panic or an error that crosses the source boundary.
type CandidateBatch []string

// KeywordPool is the deduplicated set of keyword candidates for one seed
// phrase. It is built once per seed and rebuilt whenever the seed changes.
type KeywordPool struct {
	Seed     string          `json:"seed"`
	Keywords map[string]bool `json:"-"`
}

// NewKeywordPool creates a pool seeded with the normalized seed phrase.
// A pool always contains at least the seed, even when every source fails.
func NewKeywordPool(seed string) *KeywordPool {
	normalized := NormalizeKeyword(seed)
	return &KeywordPool{
		Seed:     normalized,
		Keywords: map[string]bool{normalized: true},
	}
}

// Add normalizes and inserts a candidate if it passes the keyword filter.
// Returns true if the candidate was accepted.
func (p *KeywordPool) Add(raw string) bool {
	keyword := NormalizeKeyword(raw)
	if !ValidKeyword(keyword) {
		return false
	}
	p.Keywords[keyword] = true
	return true
}

// Contains reports whether the pool holds the normalized form of a keyword.
func (p *KeywordPool) Contains(keyword string) bool {
	return p.Keywords[NormalizeKeyword(keyword)]
}

// Size returns the number of unique keywords in the pool.
func (p *KeywordPool) Size() int {
	return len(p.Keywords)
}

// Sorted returns the pool members ordered by token count, then
// lexicographically. This is the stable order used for truncation and
// display; callers must not rely on any other ordering.
func (p *KeywordPool) Sorted() []string {
	keywords := make([]string, 0, len(p.Keywords))
	for kw := range p.Keywords {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		ti, tj := TokenCount(keywords[i]), TokenCount(keywords[j])
		if ti != tj {
			return ti < tj
		}
		return keywords[i] < keywords[j]
	})
	return keywords
}

// Truncate caps the pool at max members, keeping the seed and then the first
// entries in the pool's stable order.
func (p *KeywordPool) Truncate(max int) {
	if len(p.Keywords) <= max {
		return
	}
	kept := make(map[string]bool, max)
	kept[p.Seed] = true
	for _, kw := range p.Sorted() {
		if len(kept) >= max {
			break
		}
		kept[kw] = true
	}
	p.Keywords = kept
}

// CategoryBuckets partitions a pool by token count: every pool member
// appears in exactly one bucket.
type CategoryBuckets struct {
	ShortTail []string `json:"short_tail"` // <=2 tokens
	LongTail  []string `json:"long_tail"`  // >2 tokens
}

// ScoreMap maps each pool member to its difficulty score in [0,100].
type ScoreMap map[string]float64

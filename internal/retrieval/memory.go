package retrieval

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// MemoryIndex is an in-process Retriever over a fixed set of passages.
// Scoring is token overlap between query and passage, which is enough
// for offline use and tests; the hosted knowledge base uses Pinecone.
type MemoryIndex struct {
	passages []string
	tokens   []map[string]int
}

var _ Retriever = (*MemoryIndex)(nil)

// NewMemoryIndex builds an index over the given passages. Blank passages
// are skipped.
func NewMemoryIndex(passages []string) *MemoryIndex {
	idx := &MemoryIndex{}
	for _, p := range passages {
		if strings.TrimSpace(p) == "" {
			continue
		}
		idx.passages = append(idx.passages, p)
		idx.tokens = append(idx.tokens, tokenize(p))
	}
	return idx
}

// Len returns the number of indexed passages.
func (m *MemoryIndex) Len() int {
	return len(m.passages)
}

// Retrieve scores every passage against the query and returns the top k.
func (m *MemoryIndex) Retrieve(_ context.Context, query string, k int) ([]Passage, error) {
	if k <= 0 || len(m.passages) == 0 {
		return nil, nil
	}

	qTokens := tokenize(query)

	type scored struct {
		idx   int
		score float32
	}
	var hits []scored
	for i, pt := range m.tokens {
		s := overlap(qTokens, pt)
		if s > 0 {
			hits = append(hits, scored{idx: i, score: s})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })

	if len(hits) > k {
		hits = hits[:k]
	}

	out := make([]Passage, len(hits))
	for i, h := range hits {
		out[i] = Passage{Content: m.passages[h.idx], Score: h.score}
	}
	return out, nil
}

// tokenize splits text into lowercased word tokens. CJK runes are
// treated as single-character tokens so Chinese source material still
// matches without a segmenter.
func tokenize(text string) map[string]int {
	counts := make(map[string]int)
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			counts[strings.ToLower(word.String())]++
			word.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) && r < 0x2E80:
			word.WriteRune(r)
		case unicode.IsDigit(r):
			word.WriteRune(r)
		case unicode.Is(unicode.Han, r):
			flush()
			counts[string(r)]++
		default:
			flush()
		}
	}
	flush()
	return counts
}

// overlap is the count of query tokens present in the passage, weighted
// by passage frequency.
func overlap(query, passage map[string]int) float32 {
	var s float32
	for tok := range query {
		if n, ok := passage[tok]; ok {
			s += float32(n)
		}
	}
	return s
}

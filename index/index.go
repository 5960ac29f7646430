// Package index provides the in-memory TF-IDF corpus index and the
// query engine that ranks indexable units by cosine similarity.
//
// An Index is immutable once built. Any change to the corpus requires a
// full rebuild; Asker swaps rebuilt indexes atomically so concurrent
// readers observe either the old or the new index, never a partial one.
package index

import (
	"math"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Index holds the full unit set plus the derived numeric structures:
// vocabulary, IDF table, and one sparse TF-IDF vector per unit.
type Index struct {
	units   []*clawdoc.Unit
	vocab   map[string]int
	idf     map[string]float64
	vectors []map[string]float64
}

// New builds an index over the given units. A nil or empty unit set
// yields an empty index; searching it returns no results.
func New(units []*clawdoc.Unit) *Index {
	ix := &Index{
		units: units,
		vocab: make(map[string]int),
		idf:   make(map[string]float64),
	}

	tokenLists := make([][]string, len(units))
	for i, u := range units {
		tokenLists[i] = clawdoc.Tokenize(u.Content)
	}

	// Document frequency counts units whose token *set* contains the
	// term, not raw occurrences.
	df := make(map[string]int)
	for _, tokens := range tokenLists {
		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	n := len(units)
	for term, freq := range df {
		ix.idf[term] = math.Log(float64(n)/float64(freq+1)) + 1
	}
	for term := range ix.idf {
		ix.vocab[term] = len(ix.vocab)
	}

	ix.vectors = make([]map[string]float64, len(units))
	for i, tokens := range tokenLists {
		ix.vectors[i] = ix.vectorize(termFrequencies(tokens))
	}

	return ix
}

// Len returns the number of indexed units.
func (ix *Index) Len() int {
	return len(ix.units)
}

// IDF returns the inverse document frequency weight for a term. Terms
// outside the vocabulary carry weight 1.0 so novel query terms still
// contribute via raw term frequency.
func (ix *Index) IDF(term string) float64 {
	if w, ok := ix.idf[term]; ok {
		return w
	}
	return 1.0
}

// termFrequencies computes count/total for each distinct term.
func termFrequencies(tokens []string) map[string]float64 {
	total := len(tokens)
	if total == 0 {
		total = 1
	}
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	tf := make(map[string]float64, len(counts))
	for term, count := range counts {
		tf[term] = float64(count) / float64(total)
	}
	return tf
}

// vectorize weights a term-frequency map by IDF.
func (ix *Index) vectorize(tf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(tf))
	for term, weight := range tf {
		vec[term] = weight * ix.IDF(term)
	}
	return vec
}

// cosine computes cosine similarity between two sparse vectors.
// Returns exactly 0.0 when either norm is zero.
func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, va := range a {
		normA += va * va
		if vb, ok := b[term]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

package index

import (
	"sort"
	"strings"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// MinSimilarity is the score threshold below which results are dropped.
const MinSimilarity = 0.05

// stopwords are excluded from boost matching so that question scaffolding
// ("how do I ...") never triggers a section or title boost.
var stopwords = map[string]bool{
	"how": true, "do": true, "i": true, "what": true, "are": true,
	"the": true, "to": true, "a": true, "an": true, "is": true,
	"it": true, "with": true, "explain": true,
}

// boostQuery carries the precomputed query features the boost
// predicates match against.
type boostQuery struct {
	lower    string
	keyTerms []string
}

// boost is one heuristic relevance adjustment: a predicate paired with
// a multiplier. Boosts are evaluated once each, in order, and compound
// when several apply. The factors and their order are part of the
// engine's observable ranking behavior; do not reorder.
type boost struct {
	factor  float64
	applies func(q boostQuery, u *clawdoc.Unit) bool
}

var boosts = []boost{
	// Key term in the section label is the strongest signal.
	{1.5, func(q boostQuery, u *clawdoc.Unit) bool {
		section := strings.ToLower(u.Section)
		for _, term := range q.keyTerms {
			if strings.Contains(section, term) {
				return true
			}
		}
		return false
	}},
	// Key term in the document title.
	{1.3, func(q boostQuery, u *clawdoc.Unit) bool {
		title := strings.ToLower(u.Title)
		for _, term := range q.keyTerms {
			if strings.Contains(title, term) {
				return true
			}
		}
		return false
	}},
	// Description and overview sections answer general questions well.
	{1.15, func(q boostQuery, u *clawdoc.Unit) bool {
		section := strings.ToLower(u.Section)
		return strings.Contains(section, "description") || strings.Contains(section, "overview")
	}},
	// Code examples when the query asks for an example or a how-to.
	{1.1, func(q boostQuery, u *clawdoc.Unit) bool {
		section := strings.ToLower(u.Section)
		if !strings.Contains(section, "code") {
			return false
		}
		return strings.Contains(q.lower, "example") || strings.Contains(q.lower, "how")
	}},
}

// Search ranks every indexed unit against the query and returns the top
// K results with score >= MinSimilarity, highest first. Ties keep the
// units' original insertion order. topK <= 0 selects clawdoc.DefaultTopK.
func (ix *Index) Search(query string, topK int) []clawdoc.SearchResult {
	if topK <= 0 {
		topK = clawdoc.DefaultTopK
	}
	if len(ix.units) == 0 {
		return nil
	}

	queryVec := ix.vectorize(termFrequencies(clawdoc.Tokenize(query)))

	bq := boostQuery{lower: strings.ToLower(query)}
	for _, word := range strings.Fields(bq.lower) {
		if !stopwords[word] {
			bq.keyTerms = append(bq.keyTerms, word)
		}
	}

	var results []clawdoc.SearchResult
	for i, unit := range ix.units {
		score := cosine(queryVec, ix.vectors[i])
		for _, b := range boosts {
			if b.applies(bq, unit) {
				score *= b.factor
			}
		}
		if score >= MinSimilarity {
			results = append(results, clawdoc.SearchResult{Unit: unit, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

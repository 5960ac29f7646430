package clawdoc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var wordRe = regexp.MustCompile(`\w+`)

// ExtractSnippet returns the most query-relevant window of content that
// fits within maxChars. Content already within the budget is returned
// verbatim. Otherwise the content is split into sentences, the sentence
// containing the most query terms is selected, and the selection grows
// by alternately prepending and appending neighboring sentences while
// it stays within the budget. When no sentence matches any query term,
// the head of the content is returned with a truncation marker.
func ExtractSnippet(content, query string, maxChars int) string {
	if utf8.RuneCountInString(content) <= maxChars {
		return content
	}

	terms := queryWords(query)
	sentences := SplitSentences(content)

	bestIdx, bestScore := -1, 0
	for i, sentence := range sentences {
		lower := strings.ToLower(sentence)
		score := 0
		for term := range terms {
			if strings.Contains(lower, term) {
				score++
			}
		}
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	if bestIdx < 0 {
		return truncate(content, maxChars) + "..."
	}

	result := sentences[bestIdx]
	prev, next := bestIdx-1, bestIdx+1
	for prev >= 0 || next < len(sentences) {
		added := false
		if prev >= 0 {
			if candidate := sentences[prev] + " " + result; utf8.RuneCountInString(candidate) <= maxChars {
				result = candidate
				prev--
				added = true
			}
		}
		if next < len(sentences) {
			if candidate := result + " " + sentences[next]; utf8.RuneCountInString(candidate) <= maxChars {
				result = candidate
				next++
				added = true
			}
		}
		if !added {
			break
		}
	}

	return result
}

// SplitSentences splits text after sentence-ending punctuation followed
// by whitespace. The punctuation stays attached to its sentence.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		// Only break when whitespace follows the punctuation run.
		j := i + 1
		for j < len(text) && (text[j] == '.' || text[j] == '!' || text[j] == '?') {
			j++
		}
		if j >= len(text) || !isSpaceByte(text[j]) {
			i = j - 1
			continue
		}
		sentences = append(sentences, text[start:j])
		for j < len(text) && isSpaceByte(text[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

// queryWords extracts the set of lowercase word tokens from a query.
func queryWords(query string) map[string]struct{} {
	words := wordRe.FindAllString(strings.ToLower(query), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

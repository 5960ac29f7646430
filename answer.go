package clawdoc

import (
	"fmt"
	"strings"
)

// Snippet character budgets for answer assembly.
const (
	primarySnippetChars    = 600
	supportingSnippetChars = 250
)

// NoResultsMessage is returned by SynthesizeAnswer when the query
// matched nothing in the corpus.
const NoResultsMessage = "I couldn't find any relevant documentation for your question."

// SynthesizeAnswer assembles a deterministic, extractive answer from
// ranked search results: the top result's snippet as the primary
// answer, up to two supporting bullets, and one citation line per
// distinct source. It never rewrites content.
func SynthesizeAnswer(query string, results []SearchResult) string {
	if len(results) == 0 {
		return NoResultsMessage
	}

	var lines []string

	lines = append(lines, "**Answer:**", "")
	lines = append(lines, ExtractSnippet(results[0].Unit.Content, query, primarySnippetChars), "")

	if len(results) > 1 {
		lines = append(lines, "**Additional Details:**", "")
		for _, res := range results[1:min(3, len(results))] {
			snippet := ExtractSnippet(res.Unit.Content, query, supportingSnippetChars)
			if res.Unit.Section != "" && res.Unit.Section != "Description" {
				lines = append(lines, fmt.Sprintf("- *%s:* %s", res.Unit.Section, snippet))
			} else {
				lines = append(lines, "- "+snippet)
			}
			lines = append(lines, "")
		}
	}

	lines = append(lines, "**Sources:**", "")
	lines = append(lines, citationLines(results)...)

	return strings.Join(lines, "\n")
}

// citation groups the sections cited from one source.
type citation struct {
	source   string
	title    string
	sections []string
}

// citationLines groups results by source in rank order and emits one
// citation per distinct source with up to two section names.
func citationLines(results []SearchResult) []string {
	var order []string
	bySource := make(map[string]*citation)
	for _, res := range results {
		c, ok := bySource[res.Unit.Source]
		if !ok {
			c = &citation{source: res.Unit.Source, title: res.Unit.Title}
			bySource[res.Unit.Source] = c
			order = append(order, res.Unit.Source)
		}
		c.sections = append(c.sections, res.Unit.Section)
	}

	var lines []string
	for _, source := range order {
		c := bySource[source]
		display := source
		if i := strings.LastIndex(display, "/"); i >= 0 {
			display = display[i+1:]
		}
		lines = append(lines, fmt.Sprintf("- `%s` (%s)", c.title, display))
		for _, sec := range c.sections[:min(2, len(c.sections))] {
			if sec == "" {
				sec = "overview"
			}
			lines = append(lines, fmt.Sprintf("  - Section: *%s*", sec))
		}
	}
	return lines
}

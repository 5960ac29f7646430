// Package goquery provides a selector-based fallback implementation of
// clawdoc.Extractor for pages where readability extraction comes back
// empty.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// contentSelectors are tried in order; the first non-empty match wins.
var contentSelectors = []string{
	"main",
	"article",
	"div[role=main]",
	"#content",
	".content",
	"body",
}

// chromeSelectors are stripped from the matched content before
// rendering: navigation, scripts, and other page chrome.
var chromeSelectors = []string{
	"script",
	"style",
	"noscript",
	"nav",
	"header",
	"footer",
	"aside",
}

// Ensure Extractor implements clawdoc.Extractor at compile time.
var _ clawdoc.Extractor = (*Extractor)(nil)

// Extractor extracts page content using CSS selectors.
type Extractor struct{}

// NewExtractor creates a new selector-based Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML, takes the title from <title> or the first
// h1, and returns the first content container that has text after page
// chrome is removed.
func (e *Extractor) Extract(rawHTML string) (*clawdoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Empty HTML input.")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	for _, selector := range chromeSelectors {
		doc.Find(selector).Remove()
	}

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		contentHTML, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to render content: %v", err)
		}
		return &clawdoc.ExtractResult{
			Title:       title,
			ContentHTML: contentHTML,
		}, nil
	}

	return &clawdoc.ExtractResult{Title: title}, nil
}

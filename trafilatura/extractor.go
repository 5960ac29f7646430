// Package trafilatura extracts the main documentation content from raw
// HTML pages, dropping navigation and boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Ensure Extractor implements clawdoc.Extractor at compile time.
var _ clawdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and the main
// content subtree rendered back to HTML.
func (e *Extractor) Extract(rawHTML string) (*clawdoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Empty HTML input.")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Content extraction failed: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &clawdoc.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node back to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

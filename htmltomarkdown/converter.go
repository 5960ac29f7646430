// Package htmltomarkdown converts extracted HTML content into markdown
// suitable for the markdown document parser.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Ensure Converter implements clawdoc.Converter at compile time.
var _ clawdoc.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Convert transforms HTML content into Markdown, collapsing runs of
// blank lines left behind by stripped elements.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", clawdoc.Errorf(clawdoc.EINVALID, "Empty HTML input.")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", clawdoc.Errorf(clawdoc.EINVALID, "Markdown conversion failed: %v", err)
	}

	return strings.TrimSpace(blankRunRe.ReplaceAllString(result, "\n\n")), nil
}

package clawdoc

// ExtractResult holds the readable content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title from metadata.
	Title string

	// ContentHTML is the main content with boilerplate (nav, footer,
	// sidebar, ads) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts clean HTML into Markdown for parsing.
type Converter interface {
	Convert(html string) (string, error)
}

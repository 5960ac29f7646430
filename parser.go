package clawdoc

// Parser converts raw source text into a structured document.
type Parser interface {
	// Parse builds a document from the source content. A source that
	// yields zero sections still produces a minimal document with only
	// title and description populated; this is not an error.
	Parse(name, content string) (*Document, error)
}

package clawdoc

import "context"

// DefaultTopK is the number of results returned when the caller does
// not specify a limit.
const DefaultTopK = 5

// Asker answers natural language questions over the learned corpus.
type Asker interface {
	// Ask returns a formatted, extractive answer for the question.
	// topK <= 0 selects DefaultTopK. An empty corpus yields the fixed
	// no-results message, never an error.
	Ask(ctx context.Context, question string, topK int) (string, error)
}

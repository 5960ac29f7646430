package clawdoc

import "context"

// SourceRequest describes one source to learn.
type SourceRequest struct {
	// Source is a local path, an http(s) URL, or a synthetic reference
	// such as "man:tar".
	Source string

	// Name overrides the derived document name when non-empty.
	Name string

	// Type forces a parsing strategy when non-empty; otherwise the
	// strategy is chosen by source hint and content sniffing.
	Type DocumentType
}

// Learner ingests sources into the document store.
type Learner interface {
	// Learn fetches, parses, and persists one source. Fetch failures
	// are classified EUNAVAILABLE or ENOTFOUND; parse failures EINVALID.
	Learn(ctx context.Context, req SourceRequest) (*Document, error)
}

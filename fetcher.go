package clawdoc

import "context"

// Fetcher obtains raw source text for learning.
// Implementations wrap HTTP requests or command output; local files are
// read directly by the learner.
type Fetcher interface {
	// Fetch returns the raw content of the source. The context bounds
	// the fetch; expiry is classified as EUNAVAILABLE. A source that
	// does not exist is classified as ENOTFOUND.
	Fetch(ctx context.Context, source string) (string, error)
}

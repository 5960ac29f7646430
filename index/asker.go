package index

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Ensure Asker implements clawdoc.Asker at compile time.
var _ clawdoc.Asker = (*Asker)(nil)

// Asker answers questions by loading the learned corpus, building an
// Index over its units, and synthesizing extractive answers from search
// results. The index is built on first use and replaced wholesale by
// Rebuild; concurrent Ask calls are pure reads over an immutable index.
type Asker struct {
	docs   clawdoc.DocumentService
	logger *slog.Logger

	idx atomic.Pointer[Index]
}

// NewAsker creates an Asker over the given document store.
func NewAsker(docs clawdoc.DocumentService, logger *slog.Logger) *Asker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Asker{docs: docs, logger: logger}
}

// Rebuild loads all persisted documents, decomposes them into units,
// and atomically replaces the current index. Readers observe either the
// old or the new index, never a partially built one.
func (a *Asker) Rebuild(ctx context.Context) error {
	docs, err := a.docs.FindDocuments(ctx, clawdoc.DocumentFilter{})
	if err != nil {
		return err
	}

	var units []*clawdoc.Unit
	for _, doc := range docs {
		units = append(units, doc.Units()...)
	}

	ix := New(units)
	a.idx.Store(ix)

	a.logger.Debug("index rebuilt", "documents", len(docs), "units", ix.Len())
	return nil
}

// Ask searches the corpus and returns a formatted extractive answer.
// An empty corpus yields the fixed no-results message, not an error.
func (a *Asker) Ask(ctx context.Context, question string, topK int) (string, error) {
	ix := a.idx.Load()
	if ix == nil {
		if err := a.Rebuild(ctx); err != nil {
			return "", err
		}
		ix = a.idx.Load()
	}

	results := ix.Search(question, topK)
	return clawdoc.SynthesizeAnswer(question, results), nil
}

// Search exposes ranked results without answer synthesis, building the
// index first if needed.
func (a *Asker) Search(ctx context.Context, query string, topK int) ([]clawdoc.SearchResult, error) {
	ix := a.idx.Load()
	if ix == nil {
		if err := a.Rebuild(ctx); err != nil {
			return nil, err
		}
		ix = a.idx.Load()
	}
	return ix.Search(query, topK), nil
}

// Package mock provides function-field mock implementations of the
// clawdoc service interfaces for testing.
package mock

import (
	"context"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

var _ clawdoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of clawdoc.DocumentService.
type DocumentService struct {
	CreateDocumentFn     func(ctx context.Context, doc *clawdoc.Document) error
	FindDocumentByNameFn func(ctx context.Context, name string) (*clawdoc.Document, error)
	FindDocumentsFn      func(ctx context.Context, filter clawdoc.DocumentFilter) ([]*clawdoc.Document, error)
	DeleteDocumentFn     func(ctx context.Context, name string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *clawdoc.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByName(ctx context.Context, name string) (*clawdoc.Document, error) {
	return s.FindDocumentByNameFn(ctx, name)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter clawdoc.DocumentFilter) ([]*clawdoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, name string) error {
	return s.DeleteDocumentFn(ctx, name)
}

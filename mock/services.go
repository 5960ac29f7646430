package mock

import (
	"context"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

var _ clawdoc.Asker = (*Asker)(nil)

// Asker is a mock implementation of clawdoc.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string, topK int) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string, topK int) (string, error) {
	return a.AskFn(ctx, question, topK)
}

var _ clawdoc.Learner = (*Learner)(nil)

// Learner is a mock implementation of clawdoc.Learner.
type Learner struct {
	LearnFn func(ctx context.Context, req clawdoc.SourceRequest) (*clawdoc.Document, error)
}

func (l *Learner) Learn(ctx context.Context, req clawdoc.SourceRequest) (*clawdoc.Document, error) {
	return l.LearnFn(ctx, req)
}

var _ clawdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of clawdoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, source string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, source string) (string, error) {
	return f.FetchFn(ctx, source)
}

var _ clawdoc.Parser = (*Parser)(nil)

// Parser is a mock implementation of clawdoc.Parser.
type Parser struct {
	ParseFn func(name, content string) (*clawdoc.Document, error)
}

func (p *Parser) Parse(name, content string) (*clawdoc.Document, error) {
	return p.ParseFn(name, content)
}

var _ clawdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of clawdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*clawdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*clawdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ clawdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of clawdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Package learn orchestrates document acquisition: it classifies a
// source, fetches its content, extracts and converts web pages, parses
// the result into a structured document, and saves it.
package learn

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// DefaultConcurrency bounds parallel sources during batch learning.
const DefaultConcurrency = 4

// Ensure Learner implements clawdoc.Learner at compile time.
var _ clawdoc.Learner = (*Learner)(nil)

// Learner wires fetchers, extractors, parsers, and a document store
// into the learning pipeline.
type Learner struct {
	Documents clawdoc.DocumentService

	// Web fetches http(s) sources; Man fetches man: sources.
	Web clawdoc.Fetcher
	Man clawdoc.Fetcher

	// Extractor pulls main content out of fetched HTML; Fallback is
	// tried when the primary extraction comes back empty.
	Extractor clawdoc.Extractor
	Fallback  clawdoc.Extractor
	Converter clawdoc.Converter

	// Markdown parses markdown and plain content; Refpage parses
	// man-style reference pages.
	Markdown clawdoc.Parser
	Refpage  clawdoc.Parser

	// Limiter throttles web fetches per host. Optional.
	Limiter *HostLimiter

	// Concurrency and RetryDelays tune batch learning. Zero values
	// fall back to DefaultConcurrency and defaultRetryDelays.
	Concurrency int
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// sourceKind classifies where content comes from.
type sourceKind int

const (
	kindFile sourceKind = iota
	kindMan
	kindWeb
)

func (k sourceKind) String() string {
	switch k {
	case kindMan:
		return "man"
	case kindWeb:
		return "web"
	default:
		return "file"
	}
}

// Learn fetches, parses, and saves a single source. The returned
// document is the stored version, including its assigned ID.
func (l *Learner) Learn(ctx context.Context, req clawdoc.SourceRequest) (*clawdoc.Document, error) {
	if req.Source == "" {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Source required.")
	}

	kind := classify(req.Source)
	name := req.Name
	if name == "" {
		name = deriveName(req.Source, kind)
	}

	content, docType, err := l.acquire(ctx, req.Source, kind)
	if err != nil {
		return nil, err
	}
	if req.Type != "" {
		docType = req.Type
	}
	if docType == "" {
		docType = clawdoc.DetectType(name, content)
	}

	parser := l.Markdown
	if docType == clawdoc.TypeReferencePage {
		parser = l.Refpage
	}
	doc, err := parser.Parse(name, content)
	if err != nil {
		return nil, err
	}

	doc.Source = req.Source
	doc.SourceType = kind.String()
	doc.ContentHash = Hash(content)

	if err := l.Documents.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}

	l.logger().Debug("learned document",
		slog.String("name", doc.Name),
		slog.String("source", doc.Source),
		slog.String("type", string(doc.Type)),
	)
	return doc, nil
}

// acquire returns the raw content for a source, and the document type
// when the acquisition path alone determines it.
func (l *Learner) acquire(ctx context.Context, source string, kind sourceKind) (string, clawdoc.DocumentType, error) {
	switch kind {
	case kindMan:
		content, err := l.Man.Fetch(ctx, source)
		if err != nil {
			return "", "", err
		}
		return content, clawdoc.TypeReferencePage, nil

	case kindWeb:
		if l.Limiter != nil {
			if u, err := url.Parse(source); err == nil {
				if err := l.Limiter.Wait(ctx, u.Host); err != nil {
					return "", "", err
				}
			}
		}
		html, err := fetchWithRetry(ctx, source, l.Web.Fetch, l.retryDelays(), l.logger())
		if err != nil {
			return "", "", err
		}
		markdown, err := l.extract(html, source)
		if err != nil {
			return "", "", err
		}
		return markdown, clawdoc.TypeMarkdown, nil

	default:
		data, err := os.ReadFile(source)
		if os.IsNotExist(err) {
			return "", "", clawdoc.Errorf(clawdoc.ENOTFOUND, "File not found: %s", source)
		}
		if err != nil {
			return "", "", clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to read %s: %v", source, err)
		}
		return string(data), "", nil
	}
}

// extract pulls the main content out of fetched HTML and converts it
// to markdown, falling back to the selector extractor when the primary
// one yields nothing.
func (l *Learner) extract(html, source string) (string, error) {
	result, err := l.Extractor.Extract(html)
	if (err != nil || result.ContentHTML == "") && l.Fallback != nil {
		l.logger().Debug("primary extraction empty, using fallback", slog.String("source", source))
		result, err = l.Fallback.Extract(html)
	}
	if err != nil {
		return "", err
	}
	if result.ContentHTML == "" {
		return "", clawdoc.Errorf(clawdoc.EINVALID, "No extractable content at %s.", source)
	}
	return l.Converter.Convert(result.ContentHTML)
}

func (l *Learner) retryDelays() []time.Duration {
	if l.RetryDelays != nil {
		return l.RetryDelays
	}
	return defaultRetryDelays()
}

func (l *Learner) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// classify determines the acquisition path for a source string.
func classify(source string) sourceKind {
	switch {
	case strings.HasPrefix(source, "man:"):
		return kindMan
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return kindWeb
	default:
		return kindFile
	}
}

// deriveName produces a document name from the source when the caller
// did not supply one.
func deriveName(source string, kind sourceKind) string {
	switch kind {
	case kindMan:
		return strings.TrimPrefix(source, "man:")
	case kindWeb:
		u, err := url.Parse(source)
		if err != nil || u.Path == "" || u.Path == "/" {
			if err == nil {
				return u.Host
			}
			return source
		}
		base := path.Base(strings.TrimSuffix(u.Path, "/"))
		return strings.TrimSuffix(base, path.Ext(base))
	default:
		base := filepath.Base(source)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
}

// Hash computes a content hash using xxhash.
func Hash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

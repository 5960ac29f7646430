// Package fs provides a directory-of-JSON-files implementation of
// clawdoc.DocumentService. Each document is stored as <name>.json in
// the knowledge directory, which keeps the store inspectable with
// ordinary tools.
package fs

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Ensure DocumentService implements clawdoc.DocumentService at compile time.
var _ clawdoc.DocumentService = (*DocumentService)(nil)

// DocumentService stores documents as JSON files under a directory.
type DocumentService struct {
	dir    string
	logger *slog.Logger
}

// NewDocumentService creates a store rooted at dir, creating the
// directory if needed.
func NewDocumentService(dir string, logger *slog.Logger) (*DocumentService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to create knowledge directory %s: %v", dir, err)
	}
	return &DocumentService{dir: dir, logger: logger}, nil
}

func (s *DocumentService) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// CreateDocument saves a document, replacing any existing file with
// the same name. The write goes to a temporary file first and is
// renamed into place so readers never see a partial document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *clawdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.LearnedAt = time.Now().UTC()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to encode document %q: %v", doc.Name, err)
	}

	tmp, err := os.CreateTemp(s.dir, doc.Name+".*.tmp")
	if err != nil {
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to create temp file: %v", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to write document %q: %v", doc.Name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to write document %q: %v", doc.Name, err)
	}

	if err := os.Rename(tmpName, s.path(doc.Name)); err != nil {
		os.Remove(tmpName)
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to save document %q: %v", doc.Name, err)
	}
	return nil
}

// FindDocumentByName loads a document by exact name, falling back to a
// substring match over stored names.
func (s *DocumentService) FindDocumentByName(ctx context.Context, name string) (*clawdoc.Document, error) {
	doc, err := s.load(s.path(name))
	if err == nil {
		return doc, nil
	}
	if clawdoc.ErrorCode(err) != clawdoc.ENOTFOUND {
		return nil, err
	}

	names, err := s.listNames()
	if err != nil {
		return nil, err
	}
	for _, candidate := range names {
		if strings.Contains(candidate, name) {
			return s.load(s.path(candidate))
		}
	}
	return nil, clawdoc.Errorf(clawdoc.ENOTFOUND, "Document %q not found.", name)
}

// FindDocuments loads documents matching the filter, ordered by name.
// Files that cannot be decoded are skipped with a warning.
func (s *DocumentService) FindDocuments(ctx context.Context, filter clawdoc.DocumentFilter) ([]*clawdoc.Document, error) {
	names, err := s.listNames()
	if err != nil {
		return nil, err
	}

	var docs []*clawdoc.Document
	skipped := 0
	for _, name := range names {
		if filter.Name != nil && !strings.Contains(name, *filter.Name) {
			continue
		}

		doc, err := s.load(s.path(name))
		if err != nil {
			s.logger.Warn("skipping undecodable document file",
				slog.String("name", name),
				slog.Any("error", err),
			)
			continue
		}
		if filter.Type != nil && doc.Type != *filter.Type {
			continue
		}

		if skipped < filter.Offset {
			skipped++
			continue
		}
		docs = append(docs, doc)
		if filter.Limit > 0 && len(docs) >= filter.Limit {
			break
		}
	}
	return docs, nil
}

// DeleteDocument removes a document file by name.
func (s *DocumentService) DeleteDocument(ctx context.Context, name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return clawdoc.Errorf(clawdoc.ENOTFOUND, "Document %q not found.", name)
	}
	if err != nil {
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to delete document %q: %v", name, err)
	}
	return nil
}

// listNames returns stored document names in sorted order.
func (s *DocumentService) listNames() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to read knowledge directory: %v", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// load reads one document file.
func (s *DocumentService) load(path string) (*clawdoc.Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, clawdoc.Errorf(clawdoc.ENOTFOUND, "Document file %s not found.", filepath.Base(path))
	}
	if err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to read %s: %v", path, err)
	}

	var doc clawdoc.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Corrupt document file %s: %v", filepath.Base(path), err)
	}
	return &doc, nil
}

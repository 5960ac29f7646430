package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Compile-time interface verification.
var _ clawdoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements clawdoc.DocumentService using SQLite.
type DocumentService struct {
	db     *DB
	logger *slog.Logger
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{db: db, logger: logger}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// documentColumns is the column list shared by all document queries.
const documentColumns = "id, name, type, title, description, learned_from, source_type, sections, options, examples, code_blocks, commands, content_hash, learned_at"

// CreateDocument saves a document, replacing any existing document
// with the same name. The document's ID, ContentHash, and LearnedAt
// are filled in when empty.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *clawdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.LearnedAt = time.Now().UTC()

	sections, err := json.Marshal(doc.Sections)
	if err != nil {
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to encode sections: %v", err)
	}
	options, err := json.Marshal(orEmpty(doc.Options))
	if err != nil {
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to encode options: %v", err)
	}
	examples, err := json.Marshal(orEmpty(doc.Examples))
	if err != nil {
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to encode examples: %v", err)
	}
	codeBlocks, err := json.Marshal(orEmpty(doc.CodeBlocks))
	if err != nil {
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to encode code blocks: %v", err)
	}
	commands, err := json.Marshal(orEmpty(doc.Commands))
	if err != nil {
		return clawdoc.Errorf(clawdoc.EINTERNAL, "Failed to encode commands: %v", err)
	}

	if doc.ContentHash == "" {
		doc.ContentHash = hashContent(doc.Description + string(sections))
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			type = excluded.type,
			title = excluded.title,
			description = excluded.description,
			learned_from = excluded.learned_from,
			source_type = excluded.source_type,
			sections = excluded.sections,
			options = excluded.options,
			examples = excluded.examples,
			code_blocks = excluded.code_blocks,
			commands = excluded.commands,
			content_hash = excluded.content_hash,
			learned_at = excluded.learned_at
	`, doc.ID, doc.Name, string(doc.Type), doc.Title, doc.Description, doc.Source, doc.SourceType,
		string(sections), string(options), string(examples), string(codeBlocks), string(commands),
		doc.ContentHash, doc.LearnedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	// On replace the row keeps its original id.
	return s.db.QueryRowContext(ctx, "SELECT id FROM documents WHERE name = ?", doc.Name).Scan(&doc.ID)
}

// FindDocumentByName retrieves a document by exact name, falling back
// to a substring match when no exact match exists.
func (s *DocumentService) FindDocumentByName(ctx context.Context, name string) (*clawdoc.Document, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE name = ?", name)
	doc, err := s.scanDocument(row.Scan)
	if err == nil {
		return doc, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	row = s.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE name LIKE ? ORDER BY name LIMIT 1",
		"%"+name+"%")
	doc, err = s.scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, clawdoc.Errorf(clawdoc.ENOTFOUND, "Document %q not found.", name)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, ordered by
// name. Rows whose stored JSON cannot be decoded are skipped with a
// warning instead of failing the whole listing.
func (s *DocumentService) FindDocuments(ctx context.Context, filter clawdoc.DocumentFilter) ([]*clawdoc.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.Name != nil {
		query.WriteString(" AND name LIKE ?")
		args = append(args, "%"+*filter.Name+"%")
	}
	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, string(*filter.Type))
	}

	query.WriteString(" ORDER BY name ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*clawdoc.Document
	for rows.Next() {
		doc, err := s.scanDocument(rows.Scan)
		if err != nil {
			if clawdoc.ErrorCode(err) == clawdoc.EINVALID {
				s.logger.Warn("skipping undecodable document record", slog.Any("error", err))
				continue
			}
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document by name.
func (s *DocumentService) DeleteDocument(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE name = ?", name)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return clawdoc.Errorf(clawdoc.ENOTFOUND, "Document %q not found.", name)
	}

	return nil
}

// scanDocument scans one document row, decoding the JSON columns.
// Decode failures are reported as EINVALID so callers can distinguish
// corrupt records from query errors.
func (s *DocumentService) scanDocument(scan func(...any) error) (*clawdoc.Document, error) {
	var doc clawdoc.Document
	var docType, sections, options, examples, codeBlocks, commands, learnedAt string

	if err := scan(&doc.ID, &doc.Name, &docType, &doc.Title, &doc.Description, &doc.Source, &doc.SourceType,
		&sections, &options, &examples, &codeBlocks, &commands, &doc.ContentHash, &learnedAt); err != nil {
		return nil, err
	}

	doc.Type = clawdoc.DocumentType(docType)

	if err := json.Unmarshal([]byte(sections), &doc.Sections); err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Corrupt sections for %q: %v", doc.Name, err)
	}
	if err := json.Unmarshal([]byte(options), &doc.Options); err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Corrupt options for %q: %v", doc.Name, err)
	}
	if err := json.Unmarshal([]byte(examples), &doc.Examples); err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Corrupt examples for %q: %v", doc.Name, err)
	}
	if err := json.Unmarshal([]byte(codeBlocks), &doc.CodeBlocks); err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Corrupt code blocks for %q: %v", doc.Name, err)
	}
	if err := json.Unmarshal([]byte(commands), &doc.Commands); err != nil {
		return nil, clawdoc.Errorf(clawdoc.EINVALID, "Corrupt commands for %q: %v", doc.Name, err)
	}

	if t, err := time.Parse(time.RFC3339, learnedAt); err == nil {
		doc.LearnedAt = t
	}

	return &doc, nil
}

// orEmpty keeps JSON columns as [] instead of null for nil slices.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

package clawdoc

import (
	"bytes"
	"context"
	"encoding/json"
	"time"
)

// DocumentType identifies the parsing strategy that produced a document.
type DocumentType string

// Document types. Reference pages are man-style text with all-caps
// section headings; markdown documents use ATX headings and fenced code
// blocks; plain documents had no recognizable structure.
const (
	TypeReferencePage DocumentType = "reference-page"
	TypeMarkdown      DocumentType = "markdown"
	TypePlain         DocumentType = "plain"
)

// Document is the persisted result of learning one source. It is created
// once per ingestion call and never mutated afterward; re-learning the
// same name overwrites the prior record.
type Document struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Type        DocumentType `json:"type"`
	Source      string       `json:"learned_from"`
	SourceType  string       `json:"source_type"`
	Description string       `json:"description"`
	Sections    Sections     `json:"sections"`
	Options     []Option     `json:"options,omitempty"`
	Examples    []string     `json:"examples,omitempty"`
	CodeBlocks  []CodeBlock  `json:"code_blocks,omitempty"`
	Commands    []Command    `json:"commands,omitempty"`
	ContentHash string       `json:"content_hash,omitempty"`
	LearnedAt   time.Time    `json:"learned_at"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.Source == "" {
		return Errorf(EINVALID, "document source required")
	}
	return nil
}

// Section is one named section of a parsed document.
type Section struct {
	Name string
	Text string
}

// Sections is an ordered name-to-text mapping. It marshals as a JSON
// object so the persisted record matches the documented contract, while
// preserving the order sections appeared in the source.
type Sections []Section

// Get returns the text of the named section and whether it exists.
func (s Sections) Get(name string) (string, bool) {
	for _, sec := range s {
		if sec.Name == name {
			return sec.Text, true
		}
	}
	return "", false
}

// MarshalJSON encodes the sections as a JSON object in insertion order.
func (s Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(sec.Name)
		if err != nil {
			return nil, err
		}
		text, err := json.Marshal(sec.Text)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(text)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving key order.
func (s *Sections) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Errorf(EINVALID, "sections must be a JSON object")
	}

	var out Sections
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var text string
		if err := dec.Decode(&text); err != nil {
			return Errorf(EINVALID, "section %q must map to a string", key)
		}
		out = append(out, Section{Name: key, Text: text})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

// Option is a command-line flag extracted from a reference page's
// OPTIONS section.
type Option struct {
	Flag        string `json:"flag"`
	Argument    string `json:"argument,omitempty"`
	Description string `json:"description"`
}

// CodeBlock is a fenced code block extracted from a markdown document.
type CodeBlock struct {
	Language string `json:"language"`
	Content  string `json:"content"`
}

// Command is a runnable command line extracted from a shell-like code
// block, with the section it was found in for context.
type Command struct {
	Command string `json:"command"`
	Context string `json:"context,omitempty"`
}

// DocumentService manages persisted document records.
type DocumentService interface {
	// CreateDocument persists a document, replacing any existing record
	// with the same name.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByName retrieves a document by exact name, falling
	// back to a partial match. Returns ENOTFOUND if nothing matches.
	FindDocumentByName(ctx context.Context, name string) (*Document, error)

	// FindDocuments retrieves documents matching the filter. Records
	// that cannot be decoded are skipped, not fatal.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument removes a document by exact name.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, name string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	Name *string       `json:"name"`
	Type *DocumentType `json:"type"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

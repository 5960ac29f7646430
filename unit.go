package clawdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the smallest chunk of a parsed document that the index ranks
// independently: a description, a named section, or a code block.
type Unit struct {
	// ID is unique within one index build: "name:section" or
	// "name:code:N" for code blocks.
	ID string

	// Title is inherited from the parent document.
	Title string

	// Content is the raw text of the unit. Always non-empty; empty
	// sections are not decomposed into units.
	Content string

	// Section is the label of the originating section, if any.
	Section string

	// Source identifies the parent document's origin (path, URL, or a
	// synthetic reference such as "man:tar").
	Source string

	// Metadata carries free-form provenance such as the document name
	// or a code block's language.
	Metadata map[string]string
}

// SearchResult pairs a unit with its relevance score for one query.
type SearchResult struct {
	Unit  *Unit
	Score float64
}

// Units decomposes a document into its indexable units: one for the
// description, one per non-empty named section, and one per code block.
func (d *Document) Units() []*Unit {
	var units []*Unit

	if d.Description != "" {
		units = append(units, &Unit{
			ID:       d.Name + ":description",
			Title:    d.Title,
			Content:  d.Description,
			Section:  "Description",
			Source:   d.Source,
			Metadata: map[string]string{"doc": d.Name},
		})
	}

	for _, sec := range d.Sections {
		if strings.TrimSpace(sec.Text) == "" {
			continue
		}
		units = append(units, &Unit{
			ID:       d.Name + ":" + sec.Name,
			Title:    d.Title,
			Content:  sec.Text,
			Section:  sec.Name,
			Source:   d.Source,
			Metadata: map[string]string{"doc": d.Name},
		})
	}

	for i, block := range d.CodeBlocks {
		if block.Content == "" {
			continue
		}
		// Include the language in the content for better matching.
		content := block.Content
		if block.Language != "" {
			content = fmt.Sprintf("%s code example:\n%s", block.Language, block.Content)
		}
		units = append(units, &Unit{
			ID:      d.Name + ":code:" + strconv.Itoa(i),
			Title:   d.Title,
			Content: content,
			Section: fmt.Sprintf("Code Example %d", i+1),
			Source:  d.Source,
			Metadata: map[string]string{
				"doc":      d.Name,
				"language": block.Language,
			},
		})
	}

	return units
}

package clawdoc_test

import (
	"encoding/json"
	"testing"

	"github.com/juniperonsteam67-glitch/clawdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		doc := &clawdoc.Document{Name: "tar", Source: "man:tar"}

		assert.NoError(t, doc.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		doc := &clawdoc.Document{Source: "man:tar"}

		err := doc.Validate()
		assert.Equal(t, clawdoc.EINVALID, clawdoc.ErrorCode(err))
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		doc := &clawdoc.Document{Name: "tar"}

		err := doc.Validate()
		assert.Equal(t, clawdoc.EINVALID, clawdoc.ErrorCode(err))
	})
}

func TestSections_JSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals as object in insertion order", func(t *testing.T) {
		t.Parallel()

		s := clawdoc.Sections{
			{Name: "SYNOPSIS", Text: "tar [OPTIONS]"},
			{Name: "DESCRIPTION", Text: "An archiving utility."},
		}

		data, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, `{"SYNOPSIS":"tar [OPTIONS]","DESCRIPTION":"An archiving utility."}`, string(data))
	})

	t.Run("round-trips preserving order", func(t *testing.T) {
		t.Parallel()

		s := clawdoc.Sections{
			{Name: "Usage", Text: "Run widget."},
			{Name: "Configuration", Text: "Edit widget.toml."},
			{Name: "FAQ", Text: "None yet."},
		}

		data, err := json.Marshal(s)
		require.NoError(t, err)

		var out clawdoc.Sections
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, s, out)
	})

	t.Run("rejects non-object payloads", func(t *testing.T) {
		t.Parallel()

		var out clawdoc.Sections
		err := json.Unmarshal([]byte(`["Usage"]`), &out)

		assert.Error(t, err)
	})

	t.Run("Get finds a section by name", func(t *testing.T) {
		t.Parallel()

		s := clawdoc.Sections{{Name: "Usage", Text: "Run widget."}}

		text, ok := s.Get("Usage")
		assert.True(t, ok)
		assert.Equal(t, "Run widget.", text)

		_, ok = s.Get("Missing")
		assert.False(t, ok)
	})
}

func TestDocument_Units(t *testing.T) {
	t.Parallel()

	t.Run("decomposes description sections and code blocks", func(t *testing.T) {
		t.Parallel()

		doc := &clawdoc.Document{
			Name:        "widget",
			Title:       "Widget",
			Source:      "docs/widget.md",
			Description: "Widget is a tool for X",
			Sections: clawdoc.Sections{
				{Name: "Usage", Text: "Run widget --init first."},
				{Name: "Empty", Text: ""},
			},
			CodeBlocks: []clawdoc.CodeBlock{
				{Language: "bash", Content: "widget --init"},
			},
		}

		units := doc.Units()

		require.Len(t, units, 3)

		assert.Equal(t, "widget:description", units[0].ID)
		assert.Equal(t, "Description", units[0].Section)
		assert.Equal(t, "Widget is a tool for X", units[0].Content)

		assert.Equal(t, "widget:Usage", units[1].ID)
		assert.Equal(t, "Widget", units[1].Title)

		assert.Equal(t, "widget:code:0", units[2].ID)
		assert.Equal(t, "Code Example 1", units[2].Section)
		assert.Equal(t, "bash code example:\nwidget --init", units[2].Content)
		assert.Equal(t, "bash", units[2].Metadata["language"])
	})

	t.Run("empty sections are not indexed", func(t *testing.T) {
		t.Parallel()

		doc := &clawdoc.Document{
			Name:     "empty",
			Source:   "empty.md",
			Sections: clawdoc.Sections{
				{Name: "Blank", Text: ""},
				{Name: "Whitespace", Text: "  \n\t  "},
			},
		}

		assert.Empty(t, doc.Units())
	})

	t.Run("unit IDs are unique within a document", func(t *testing.T) {
		t.Parallel()

		doc := &clawdoc.Document{
			Name:        "dup",
			Source:      "dup.md",
			Description: "desc",
			Sections:    clawdoc.Sections{{Name: "A", Text: "a"}, {Name: "B", Text: "b"}},
			CodeBlocks:  []clawdoc.CodeBlock{{Content: "x"}, {Content: "y"}},
		}

		seen := map[string]bool{}
		for _, u := range doc.Units() {
			assert.False(t, seen[u.ID], "duplicate ID %s", u.ID)
			seen[u.ID] = true
		}
	})
}

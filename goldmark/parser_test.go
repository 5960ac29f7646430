package goldmark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniperonsteam67-glitch/clawdoc"
	"github.com/juniperonsteam67-glitch/clawdoc/goldmark"
)

const widgetDoc = `# Widget

Widget is a tool for X

## Installation

Install with your package manager.

` + "```bash" + `
$ widget --init
` + "```" + `

## Usage

Run the tool against a directory:

` + "```go" + `
w := widget.New()
` + "```" + `

## Configuration

Set WIDGET_HOME to change the data directory.
`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	p := goldmark.NewParser()
	doc, err := p.Parse("widget", widgetDoc)
	require.NoError(t, err)

	t.Run("Identity", func(t *testing.T) {
		assert.Equal(t, "widget", doc.Name)
		assert.Equal(t, "Widget", doc.Title)
		assert.Equal(t, clawdoc.TypeMarkdown, doc.Type)
	})

	t.Run("Description", func(t *testing.T) {
		assert.Equal(t, "Widget is a tool for X", doc.Description)
	})

	t.Run("Sections", func(t *testing.T) {
		require.Len(t, doc.Sections, 3)
		assert.Equal(t, "Installation", doc.Sections[0].Name)
		assert.Equal(t, "Install with your package manager.", doc.Sections[0].Text)
		assert.Equal(t, "Usage", doc.Sections[1].Name)
		assert.Equal(t, "Configuration", doc.Sections[2].Name)
	})

	t.Run("CodeBlocks", func(t *testing.T) {
		require.Len(t, doc.CodeBlocks, 2)
		assert.Equal(t, "bash", doc.CodeBlocks[0].Language)
		assert.Equal(t, "$ widget --init", doc.CodeBlocks[0].Content)
		assert.Equal(t, "go", doc.CodeBlocks[1].Language)
		assert.Equal(t, "w := widget.New()", doc.CodeBlocks[1].Content)
	})

	t.Run("Commands", func(t *testing.T) {
		require.Len(t, doc.Commands, 1)
		assert.Equal(t, "widget --init", doc.Commands[0].Command)
		assert.Equal(t, "Installation", doc.Commands[0].Context)
	})
}

func TestParser_Parse_DescriptionSection(t *testing.T) {
	t.Parallel()

	content := `# Tool

Preamble text.

## Description

The real description.
`
	p := goldmark.NewParser()
	doc, err := p.Parse("tool", content)
	require.NoError(t, err)
	assert.Equal(t, "The real description.", doc.Description)
}

func TestParser_Parse_CodeExcludedFromSections(t *testing.T) {
	t.Parallel()

	content := "# T\n\n## Setup\n\nBefore.\n\n```sh\nmake install\n```\n\nAfter.\n"
	p := goldmark.NewParser()
	doc, err := p.Parse("t", content)
	require.NoError(t, err)

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Before.\n\nAfter.", doc.Sections[0].Text)
	require.Len(t, doc.CodeBlocks, 1)
	assert.Equal(t, "make install", doc.CodeBlocks[0].Content)
	require.Len(t, doc.Commands, 1)
	assert.Equal(t, "make install", doc.Commands[0].Command)
}

func TestParser_Parse_DeepHeadingsStayInline(t *testing.T) {
	t.Parallel()

	content := "# T\n\n## API\n\nIntro.\n\n##### Detail\n\nFine print.\n"
	p := goldmark.NewParser()
	doc, err := p.Parse("t", content)
	require.NoError(t, err)

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "API", doc.Sections[0].Name)
	assert.Contains(t, doc.Sections[0].Text, "Detail")
	assert.Contains(t, doc.Sections[0].Text, "Fine print.")
}

func TestParser_Parse_NoStructure(t *testing.T) {
	t.Parallel()

	p := goldmark.NewParser()
	doc, err := p.Parse("notes", "just a few lines\nof loose prose\n")
	require.NoError(t, err)

	assert.Equal(t, clawdoc.TypePlain, doc.Type)
	assert.Equal(t, "notes", doc.Title)
	assert.Empty(t, doc.Sections)
	assert.NotEmpty(t, doc.Description)
}

func TestParser_Parse_NonShellBlocksNotScanned(t *testing.T) {
	t.Parallel()

	content := "# T\n\n## Code\n\n```python\nimport os\nrun --fast\n```\n"
	p := goldmark.NewParser()
	doc, err := p.Parse("t", content)
	require.NoError(t, err)

	assert.Empty(t, doc.Commands)
	require.Len(t, doc.CodeBlocks, 1)
	assert.Equal(t, "python", doc.CodeBlocks[0].Language)
}

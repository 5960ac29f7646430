package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetMarkdown = `# Widget

Widget is a tool for X

## Installation

Install with your package manager.

` + "```bash" + `
$ widget --init
` + "```" + `

## Usage

Run widget against a directory to enable verbose output with -v.
`

// run executes the CLI against a file-backed store in dir.
func run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	m := NewMain()
	m.Dir = dir

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(t.TempDir(), "widget.md")
	require.NoError(t, os.WriteFile(source, []byte(widgetMarkdown), 0o644))

	stdout, _, err := run(t, dir, "learn", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, `Learned "widget"`)

	stdout, _, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "widget")
	assert.Contains(t, stdout, "markdown")

	stdout, _, err = run(t, dir, "show", "widget")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Widget is a tool for X")
	assert.Contains(t, stdout, "Installation")
	assert.Contains(t, stdout, "widget --init")

	stdout, _, err = run(t, dir, "ask", "how", "do", "I", "install", "widget")
	require.NoError(t, err)
	assert.Contains(t, stdout, "**Answer:**")
	assert.Contains(t, stdout, "**Sources:**")

	stdout, _, err = run(t, dir, "delete", "widget", "--force")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Deleted document "widget"`)

	stdout, _, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No documents learned yet")
}

func TestMain_GlobalFlagBeforeCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(t.TempDir(), "widget.md")
	require.NoError(t, os.WriteFile(source, []byte(widgetMarkdown), 0o644))

	stdout, _, err := run(t, dir, "-v", "learn", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, `Learned "widget"`)

	stdout, _, err = run(t, dir, "--verbose", "ask", "how", "do", "I", "install", "widget")
	require.NoError(t, err)
	assert.Contains(t, stdout, "**Answer:**")
}

func TestMain_AskWithNothingLearned(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, t.TempDir(), "ask", "anything")
	require.NoError(t, err)
	assert.Contains(t, stdout, "couldn't find any relevant documentation")
}

func TestMain_NoCommand(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, t.TempDir())
	require.Error(t, err)
}

func TestMain_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, t.TempDir(), "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "learn")
	assert.Contains(t, stdout, "ask")
}

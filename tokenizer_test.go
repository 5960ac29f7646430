package clawdoc_test

import (
	"testing"

	"github.com/juniperonsteam67-glitch/clawdoc"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and splits on whitespace", func(t *testing.T) {
		t.Parallel()

		tokens := clawdoc.Tokenize("Enable Verbose Output")

		assert.Equal(t, []string{"enable", "verbose", "output"}, tokens)
	})

	t.Run("preserves hyphens underscores and periods", func(t *testing.T) {
		t.Parallel()

		tokens := clawdoc.Tokenize("run --verbose with os.exec and snake_case")

		assert.Contains(t, tokens, "--verbose")
		assert.Contains(t, tokens, "os.exec")
		assert.Contains(t, tokens, "snake_case")
	})

	t.Run("replaces other punctuation with spaces", func(t *testing.T) {
		t.Parallel()

		tokens := clawdoc.Tokenize("foo(bar,baz)|quux")

		assert.Equal(t, []string{"foo", "bar", "baz", "quux"}, tokens)
	})

	t.Run("drops single-character and purely numeric tokens", func(t *testing.T) {
		t.Parallel()

		tokens := clawdoc.Tokenize("a 1 42 3.14 go")

		assert.Equal(t, []string{"3.14", "go"}, tokens)
	})

	t.Run("retains duplicates in order", func(t *testing.T) {
		t.Parallel()

		tokens := clawdoc.Tokenize("widget builds a widget")

		assert.Equal(t, []string{"widget", "builds", "widget"}, tokens)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		input := "The --force flag re-runs ingestion; see docs/usage.md!"

		assert.Equal(t, clawdoc.Tokenize(input), clawdoc.Tokenize(input))
	})

	t.Run("empty input yields no tokens", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, clawdoc.Tokenize(""))
	})
}

package clawdoc_test

import (
	"strings"
	"testing"

	"github.com/juniperonsteam67-glitch/clawdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSnippet(t *testing.T) {
	t.Parallel()

	t.Run("returns content verbatim when within budget", func(t *testing.T) {
		t.Parallel()

		content := "Short content."

		assert.Equal(t, content, clawdoc.ExtractSnippet(content, "anything", 100))
	})

	t.Run("selects the sentence with the most query terms", func(t *testing.T) {
		t.Parallel()

		content := "Alpha is unrelated filler text. The verbose flag enables verbose output. Omega is more filler."

		snippet := clawdoc.ExtractSnippet(content, "verbose output", 45)

		assert.Equal(t, "The verbose flag enables verbose output.", snippet)
	})

	t.Run("grows the selection with neighboring sentences", func(t *testing.T) {
		t.Parallel()

		content := "First sentence here. The verbose flag matters. Last sentence here. Extra padding sentence to exceed the character budget of this content."

		snippet := clawdoc.ExtractSnippet(content, "verbose", 90)

		assert.Contains(t, snippet, "The verbose flag matters.")
		assert.Contains(t, snippet, "First sentence here.")
		assert.Contains(t, snippet, "Last sentence here.")
		assert.LessOrEqual(t, len(snippet), 90)
	})

	t.Run("falls back to head with marker when nothing matches", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("unrelated words here. ", 20)

		snippet := clawdoc.ExtractSnippet(content, "zzz", 50)

		assert.True(t, strings.HasSuffix(snippet, "..."))
		assert.LessOrEqual(t, len(snippet), 53)
	})

	t.Run("budget counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		// 20 runes, 40 bytes in UTF-8. Fits a 20-rune budget verbatim.
		content := strings.Repeat("é", 20)

		assert.Equal(t, content, clawdoc.ExtractSnippet(content, "anything", 20))

		snippet := clawdoc.ExtractSnippet(content+" more", "zzz", 10)

		assert.True(t, strings.HasSuffix(snippet, "..."))
		assert.Equal(t, 13, len([]rune(snippet)))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		content := "Filler sentence one goes on and on. VERBOSE output is enabled here. Filler sentence two goes on and on."

		snippet := clawdoc.ExtractSnippet(content, "verbose", 35)

		assert.Equal(t, "VERBOSE output is enabled here.", snippet)
	})
}

func TestSplitSentences(t *testing.T) {
	t.Parallel()

	t.Run("splits after terminal punctuation", func(t *testing.T) {
		t.Parallel()

		sentences := clawdoc.SplitSentences("One. Two! Three? Four")

		require.Len(t, sentences, 4)
		assert.Equal(t, "One.", sentences[0])
		assert.Equal(t, "Two!", sentences[1])
		assert.Equal(t, "Three?", sentences[2])
		assert.Equal(t, "Four", sentences[3])
	})

	t.Run("keeps mid-token periods intact", func(t *testing.T) {
		t.Parallel()

		sentences := clawdoc.SplitSentences("See docs/usage.md for details. Done.")

		require.Len(t, sentences, 2)
		assert.Equal(t, "See docs/usage.md for details.", sentences[0])
	})
}

package index_test

import (
	"fmt"
	"testing"

	"github.com/juniperonsteam67-glitch/clawdoc"
	"github.com/juniperonsteam67-glitch/clawdoc/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unit(id, title, section, content string) *clawdoc.Unit {
	return &clawdoc.Unit{
		ID:      id,
		Title:   title,
		Content: content,
		Section: section,
		Source:  "test:" + id,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty corpus yields empty index", func(t *testing.T) {
		t.Parallel()

		ix := index.New(nil)

		assert.Equal(t, 0, ix.Len())
		assert.Empty(t, ix.Search("anything", 5))
	})

	t.Run("IDF decreases as document frequency increases", func(t *testing.T) {
		t.Parallel()

		// "common" appears in all three units, "rare" in one.
		ix := index.New([]*clawdoc.Unit{
			unit("a", "A", "", "common rare words"),
			unit("b", "B", "", "common other words"),
			unit("c", "C", "", "common more words"),
		})

		assert.Less(t, ix.IDF("common"), ix.IDF("rare"))
	})

	t.Run("IDF is positive for terms in fewer than all units", func(t *testing.T) {
		t.Parallel()

		ix := index.New([]*clawdoc.Unit{
			unit("a", "A", "", "alpha shared"),
			unit("b", "B", "", "beta shared"),
			unit("c", "C", "", "gamma shared"),
			unit("d", "D", "", "delta shared"),
		})

		for _, term := range []string{"alpha", "beta", "gamma", "delta"} {
			assert.Greater(t, ix.IDF(term), 0.0, "IDF(%s)", term)
		}
	})

	t.Run("unknown terms carry IDF weight 1.0", func(t *testing.T) {
		t.Parallel()

		ix := index.New([]*clawdoc.Unit{unit("a", "A", "", "known words")})

		assert.Equal(t, 1.0, ix.IDF("unheard"))
	})
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	t.Run("self-similarity is maximal", func(t *testing.T) {
		t.Parallel()

		content := "archive extraction compression utility"
		ix := index.New([]*clawdoc.Unit{
			unit("self", "Self", "", content),
			unit("other", "Other", "", "completely unrelated filler prose"),
		})

		// Querying with a unit's exact tokens puts that unit first with
		// cosine similarity 1.0 before boosts.
		results := ix.Search(content, 5)

		require.NotEmpty(t, results)
		assert.Equal(t, "self", results[0].Unit.ID)
		assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	})

	t.Run("returns at most k results above the threshold sorted descending", func(t *testing.T) {
		t.Parallel()

		var units []*clawdoc.Unit
		for i := 0; i < 10; i++ {
			units = append(units, unit(
				fmt.Sprintf("u%d", i), "Doc", "",
				fmt.Sprintf("compression handles data number%d", i),
			))
		}
		ix := index.New(units)

		results := ix.Search("compression data", 3)

		assert.LessOrEqual(t, len(results), 3)
		for i, res := range results {
			assert.GreaterOrEqual(t, res.Score, index.MinSimilarity)
			if i > 0 {
				assert.LessOrEqual(t, res.Score, results[i-1].Score)
			}
		}
	})

	t.Run("ties keep insertion order", func(t *testing.T) {
		t.Parallel()

		ix := index.New([]*clawdoc.Unit{
			unit("first", "Doc", "", "identical content here"),
			unit("second", "Doc", "", "identical content here"),
		})

		results := ix.Search("identical content", 5)

		require.Len(t, results, 2)
		assert.Equal(t, "first", results[0].Unit.ID)
		assert.Equal(t, "second", results[1].Unit.ID)
	})

	t.Run("section boost outranks an equal-similarity unit", func(t *testing.T) {
		t.Parallel()

		// Both units share identical content, so raw cosine similarity
		// is equal; the OPTIONS section label matches the non-stopword
		// query terms via the Description/overview-free path only for
		// the unit whose section carries a boosted keyword.
		ix := index.New([]*clawdoc.Unit{
			unit("plain", "tar", "NOTES", "verbose output can be enabled"),
			unit("boosted", "tar", "verbose flags", "verbose output can be enabled"),
		})

		results := ix.Search("how do I enable verbose output", 5)

		require.Len(t, results, 2)
		assert.Equal(t, "boosted", results[0].Unit.ID)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("title boost applies when a key term matches the title", func(t *testing.T) {
		t.Parallel()

		ix := index.New([]*clawdoc.Unit{
			unit("a", "widget manual", "", "setup steps described here"),
			unit("b", "other manual", "", "setup steps described here"),
		})

		results := ix.Search("widget setup steps", 5)

		require.Len(t, results, 2)
		assert.Equal(t, "a", results[0].Unit.ID)
	})

	t.Run("description sections get a general boost", func(t *testing.T) {
		t.Parallel()

		ix := index.New([]*clawdoc.Unit{
			unit("plain", "doc", "NOTES", "the tool processes archives"),
			unit("desc", "doc", "Description", "the tool processes archives"),
		})

		results := ix.Search("processes archives", 5)

		require.Len(t, results, 2)
		assert.Equal(t, "desc", results[0].Unit.ID)
	})

	t.Run("code sections boost for example queries", func(t *testing.T) {
		t.Parallel()

		ix := index.New([]*clawdoc.Unit{
			unit("prose", "doc", "NOTES", "widget --init bootstraps the tree"),
			unit("code", "doc", "Code Example 1", "widget --init bootstraps the tree"),
		})

		results := ix.Search("example of widget --init", 5)

		require.Len(t, results, 2)
		assert.Equal(t, "code", results[0].Unit.ID)
	})

	t.Run("stopword-only queries trigger no key-term boosts", func(t *testing.T) {
		t.Parallel()

		ix := index.New([]*clawdoc.Unit{
			unit("a", "how", "what is", "is it with the to an how do"),
		})

		// Every query word is a stopword; the unit still matches by
		// cosine but gains no section or title boost.
		results := ix.Search("how is it", 5)

		if len(results) > 0 {
			// 1.15 description boost does not apply either ("what is"
			// contains neither "description" nor "overview").
			assert.LessOrEqual(t, results[0].Score, 1.0+1e-9)
		}
	})

	t.Run("out-of-vocabulary query terms still contribute", func(t *testing.T) {
		t.Parallel()

		ix := index.New([]*clawdoc.Unit{
			unit("a", "doc", "", "shared term content"),
			unit("b", "doc", "", "different prose entirely"),
		})

		// "novelword" is absent from the corpus; the query still ranks
		// unit a because "shared" matches and the novel term carries
		// weight 1.0 rather than being dropped.
		results := ix.Search("shared novelword", 5)

		require.NotEmpty(t, results)
		assert.Equal(t, "a", results[0].Unit.ID)
	})
}

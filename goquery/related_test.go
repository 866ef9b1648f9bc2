package goquery_test

import (
	"testing"

	"github.com/fwojciec/serpjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RelatedQuestions(t *testing.T) {
	t.Parallel()

	t.Run("returns questions in page order", func(t *testing.T) {
		t.Parallel()

		html := `<div jsname="yEVEwb"><span>First question?</span></div>
<div jsname="yEVEwb"><div><span>Second  question?</span><span>ignored</span></div></div>`

		rec, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"First question?", "Second question?"}, rec.RelatedQuestions)
	})

	t.Run("skips blocks without question text", func(t *testing.T) {
		t.Parallel()

		html := `<div jsname="yEVEwb"><span></span></div>
<div jsname="yEVEwb"><div>no span</div></div>
<div jsname="yEVEwb"><span>  </span></div>`

		rec, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		assert.Nil(t, rec.RelatedQuestions)
		assert.NotContains(t, rec.Categories(), serpjson.CategoryRelatedQuestions)
	})
}

func TestExtractor_RelatedSearches(t *testing.T) {
	t.Parallel()

	t.Run("uses anchor text as name", func(t *testing.T) {
		t.Parallel()

		html := `<div class="AuVD"><a href="/search?q=a"><b>cold</b> brew</a></div>`

		rec, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []serpjson.RelatedSearch{{Name: "cold brew", Link: "/search?q=a"}}, rec.RelatedSearches)
	})

	t.Run("falls back to a label in a following sibling", func(t *testing.T) {
		t.Parallel()

		html := `<div class="oIk2Cb"><div>
<a href="/search?q=b"></a>
text node
<div>no label</div>
<div><p><span>decaf coffee</span></p></div>
<div><span>too late</span></div>
</div></div>`

		rec, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []serpjson.RelatedSearch{{Name: "decaf coffee", Link: "/search?q=b"}}, rec.RelatedSearches)
	})

	t.Run("keeps entry with empty name when no label exists", func(t *testing.T) {
		t.Parallel()

		html := `<div class="oIk2Cb"><a href="/search?q=c"></a></div>`

		rec, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []serpjson.RelatedSearch{{Name: "", Link: "/search?q=c"}}, rec.RelatedSearches)
	})

	t.Run("skips anchors without href", func(t *testing.T) {
		t.Parallel()

		rec, err := newExtractor(t).Extract(`<div class="oIk2Cb"><a>nowhere</a></div>`)

		require.NoError(t, err)
		assert.Nil(t, rec.RelatedSearches)
	})
}

package serpjson_test

import (
	"testing"

	"github.com/fwojciec/serpjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Categories(t *testing.T) {
	t.Parallel()

	t.Run("lists present categories in serialization order", func(t *testing.T) {
		t.Parallel()

		rec := &serpjson.Record{
			Videos:           []serpjson.VideoResult{{Title: "v"}},
			SearchMetadata:   &serpjson.SearchMetadata{Status: serpjson.StatusSuccess},
			RelatedQuestions: []string{"q"},
			KnowledgeGraph:   &serpjson.KnowledgeGraph{Title: "k"},
		}

		assert.Equal(t, []string{
			serpjson.CategorySearchMetadata,
			serpjson.CategoryRelatedQuestions,
			serpjson.CategoryKnowledgeGraph,
			serpjson.CategoryVideos,
		}, rec.Categories())
	})

	t.Run("skips an empty knowledge graph", func(t *testing.T) {
		t.Parallel()

		rec := &serpjson.Record{KnowledgeGraph: &serpjson.KnowledgeGraph{}}

		assert.Empty(t, rec.Categories())
	})

	t.Run("is nil safe", func(t *testing.T) {
		t.Parallel()

		var rec *serpjson.Record

		assert.Empty(t, rec.Categories())
	})
}

func TestOrganicResult_Valid(t *testing.T) {
	t.Parallel()

	valid := serpjson.OrganicResult{Source: "Example.com", Title: "Example", Link: "https://example.com"}
	assert.True(t, valid.Valid())

	for name, r := range map[string]serpjson.OrganicResult{
		"missing source": {Title: "Example", Link: "https://example.com"},
		"missing title":  {Source: "Example.com", Link: "https://example.com"},
		"missing link":   {Source: "Example.com", Title: "Example"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, r.Valid())
		})
	}
}

func TestKnowledgeGraph_IsEmpty(t *testing.T) {
	t.Parallel()

	var nilGraph *serpjson.KnowledgeGraph
	assert.True(t, nilGraph.IsEmpty())
	assert.True(t, (&serpjson.KnowledgeGraph{}).IsEmpty())
	assert.False(t, (&serpjson.KnowledgeGraph{Type: "Beverage"}).IsEmpty())
	assert.False(t, (&serpjson.KnowledgeGraph{Attributes: map[string]string{"Origin": "Ethiopia"}}).IsEmpty())
}

func TestMarshalRecord(t *testing.T) {
	t.Parallel()

	rec := &serpjson.Record{
		RelatedSearches: []serpjson.RelatedSearch{{Name: "a & b", Link: "/search?q=a&b=1"}},
	}

	t.Run("encodes compactly without escaping URLs", func(t *testing.T) {
		t.Parallel()

		b, err := serpjson.MarshalRecord(rec, false)

		require.NoError(t, err)
		assert.Equal(t, `{"related_searches":[{"name":"a & b","link":"/search?q=a&b=1"}]}`+"\n", string(b))
	})

	t.Run("indents by two spaces", func(t *testing.T) {
		t.Parallel()

		b, err := serpjson.MarshalRecord(rec, true)

		require.NoError(t, err)
		assert.Equal(t, "{\n  \"related_searches\": [\n    {\n      \"name\": \"a & b\",\n      \"link\": \"/search?q=a&b=1\"\n    }\n  ]\n}\n", string(b))
	})

	t.Run("encodes an empty record as an empty object", func(t *testing.T) {
		t.Parallel()

		b, err := serpjson.MarshalRecord(&serpjson.Record{}, false)

		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(b))
	})
}

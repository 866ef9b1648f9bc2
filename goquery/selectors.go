package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/serpjson"
)

// Selector keys. Result pages use obfuscated class names that change
// between markup variants, so every semantic field is located through an
// ordered list of CSS candidates.
const (
	keyOrganicRoot              = "organic.root"
	keyOrganicBlock             = "organic.block"
	keyOrganicTitle             = "organic.title"
	keyOrganicSource            = "organic.source"
	keyOrganicLink              = "organic.link"
	keyOrganicDisplayedLink     = "organic.displayed_link"
	keyOrganicSnippet           = "organic.snippet"
	keyOrganicHighlight         = "organic.highlight"
	keyOrganicDate              = "organic.date"
	keyOrganicSitelinkInline    = "organic.sitelink_inline"
	keyOrganicSitelinkBlock     = "organic.sitelink_expanded"
	keyOrganicSitelinkLink      = "organic.sitelink_expanded_link"
	keyOrganicSitelinkSnippet   = "organic.sitelink_expanded_snippet"
	keyOrganicSitelinkMobile    = "organic.sitelink_mobile"
	keyKnowledgeContainer       = "knowledge_graph.container"
	keyKnowledgeTitle           = "knowledge_graph.title"
	keyKnowledgeType            = "knowledge_graph.type"
	keyKnowledgeDescription     = "knowledge_graph.description"
	keyKnowledgeRow             = "knowledge_graph.row"
	keyKnowledgeLabel           = "knowledge_graph.label"
	keyKnowledgeValue           = "knowledge_graph.value"
	keyRelatedQuestionBlock     = "related_questions.block"
	keyRelatedQuestionText      = "related_questions.text"
	keyRelatedSearchBlock       = "related_searches.block"
	keyRelatedSearchLink        = "related_searches.link"
	keyRelatedSearchSiblingText = "related_searches.sibling_text"
	keyTopStoriesContainer      = "top_stories.container"
	keyTopStoriesItem           = "top_stories.item"
	keyTopStoriesTitle          = "top_stories.title"
	keyTopStoriesSource         = "top_stories.source"
	keyTopStoriesTime           = "top_stories.time"
	keyTopStoriesLink           = "top_stories.link"
	keyTopStoriesThumbnail      = "top_stories.thumbnail"
	keyImagesBlock              = "images.block"
	keyImagesTile               = "images.tile"
	keyImagesLink               = "images.link"
	keyImagesImage              = "images.image"
	keyVideosTile               = "videos.tile"
	keyVideosLink               = "videos.link"
)

// Selectors maps a selector key to its ordered CSS candidates.
//
// Keys naming containers (blocks, rows, items, tiles) are matched as a
// union in document order. Keys naming a field are evaluated candidate by
// candidate and the first candidate producing a value wins.
type Selectors map[string][]string

// DefaultSelectors returns the candidates for Google result pages.
func DefaultSelectors() Selectors {
	return Selectors{
		keyOrganicRoot:              {"#rso"},
		keyOrganicBlock:             {"div.vt6azd.Ww4FFb"},
		keyOrganicTitle:             {"h3", "div.F0FGWb", "div.ynAwRc", "div.MBeuO", "div.v7jaNc"},
		keyOrganicSource:            {"span.VuuXrf", "span.pKWwCd", "div.GkAmnd", "div.ZaCDgb"},
		keyOrganicLink:              {"a"},
		keyOrganicDisplayedLink:     {"cite.qLRx3b.tjvcx", "span.nC62wb.VndCse.z8gr9e"},
		keyOrganicSnippet:           {"div.VwiC3b", "div.tZESfb"},
		keyOrganicHighlight:         {"em"},
		keyOrganicDate:              {".YrbPuc span"},
		keyOrganicSitelinkInline:    {"a.dM1Yyd"},
		keyOrganicSitelinkBlock:     {"div.usJj9c"},
		keyOrganicSitelinkLink:      {"h3 > a"},
		keyOrganicSitelinkSnippet:   {"div.zz3gNc"},
		keyOrganicSitelinkMobile:    {"a.ynAwRc"},
		keyKnowledgeContainer:       {".kp-wholepage", ".knowledge-panel"},
		keyKnowledgeTitle:           {"h2", ".garHBe"},
		keyKnowledgeType:            {".wwUB2c", ".QIclbb"},
		keyKnowledgeDescription:     {".kno-rdesc span"},
		keyKnowledgeRow:             {".rVusze", ".Z1hOCe"},
		keyKnowledgeLabel:           {".w8qArf", ".QIclbb"},
		keyKnowledgeValue:           {".LrzXr", ".kno-fv"},
		keyRelatedQuestionBlock:     {`div[jsname="yEVEwb"]`},
		keyRelatedQuestionText:      {"span"},
		keyRelatedSearchBlock:       {"div.oIk2Cb", "div.AuVD"},
		keyRelatedSearchLink:        {"a"},
		keyRelatedSearchSiblingText: {"span"},
		keyTopStoriesContainer:      {"#rso > div:has(.mCBkyc)"},
		keyTopStoriesItem:           {".WlydOe"},
		keyTopStoriesTitle:          {"div.mCBkyc"},
		keyTopStoriesSource:         {".CEMjEf"},
		keyTopStoriesTime:           {"span.OSrXXb"},
		keyTopStoriesLink:           {"a"},
		keyTopStoriesThumbnail:      {"img"},
		keyImagesBlock:              {"#iur", ".bCOlv.yMbVTb"},
		keyImagesTile:               {".w43QB.EXH1Ce", ".DyfMyc"},
		keyImagesLink:               {"a"},
		keyImagesImage:              {"img"},
		keyVideosTile:               {".sHEJob"},
		keyVideosLink:               {"a"},
	}
}

// Keys returns the selector keys in sorted order.
func (s Selectors) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a copy of s where every key in overrides replaces the
// candidate list of the same key. Unknown keys and candidates that do not
// compile as CSS are rejected with EINVALID.
func (s Selectors) Merge(overrides map[string][]string) (Selectors, error) {
	merged := make(Selectors, len(s))
	for k, v := range s {
		merged[k] = append([]string(nil), v...)
	}

	for key, candidates := range overrides {
		if _, ok := s[key]; !ok {
			return nil, serpjson.Errorf(serpjson.EINVALID, "unknown selector key %q", key)
		}
		if len(candidates) == 0 {
			return nil, serpjson.Errorf(serpjson.EINVALID, "selector %q has no candidates", key)
		}
		for _, css := range candidates {
			if _, err := cascadia.Compile(css); err != nil {
				return nil, serpjson.Errorf(serpjson.EINVALID, "selector %q: invalid CSS %q: %v", key, css, err)
			}
		}
		merged[key] = append([]string(nil), candidates...)
	}

	return merged, nil
}

// findAll returns every element under sel matching any candidate of key,
// in document order.
func (s Selectors) findAll(sel *goquery.Selection, key string) *goquery.Selection {
	return sel.Find(strings.Join(s[key], ", "))
}

// firstMatch returns the first element matched by the first candidate of
// key that matches anything. The returned selection is empty when no
// candidate matches.
func (s Selectors) firstMatch(sel *goquery.Selection, key string) *goquery.Selection {
	for _, css := range s[key] {
		if m := sel.Find(css).First(); m.Length() > 0 {
			return m
		}
	}
	return sel.Slice(0, 0)
}

// firstText returns the normalized text of the first candidate of key
// whose first match has non-blank text.
func (s Selectors) firstText(sel *goquery.Selection, key string) string {
	for _, css := range s[key] {
		if text := cleanText(sel.Find(css).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// firstAttr returns the attribute of the first candidate of key whose first
// match carries a non-empty value for it.
func (s Selectors) firstAttr(sel *goquery.Selection, key, attr string) string {
	for _, css := range s[key] {
		if v, ok := sel.Find(css).First().Attr(attr); ok && v != "" {
			return v
		}
	}
	return ""
}

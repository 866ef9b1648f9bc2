package serpjson

import (
	"bytes"
	"encoding/json"
)

// Category keys as they appear in a serialized Record.
const (
	CategorySearchMetadata   = "search_metadata"
	CategoryOrganicResults   = "organic_results"
	CategoryRelatedSearches  = "related_searches"
	CategoryRelatedQuestions = "related_questions"
	CategoryKnowledgeGraph   = "knowledge_graph"
	CategoryTopStories       = "top_stories"
	CategoryImages           = "images"
	CategoryVideos           = "videos"
)

// ParsedAtLayout is the time layout of SearchMetadata.ParsedAt.
const ParsedAtLayout = "2006-01-02 15:04:05"

// StatusSuccess is the only status an extraction reports.
const StatusSuccess = "success"

// Record is the structured form of one search engine result page.
// Every category is optional and omitted from JSON when empty.
type Record struct {
	SearchMetadata   *SearchMetadata `json:"search_metadata,omitempty"`
	OrganicResults   []OrganicResult `json:"organic_results,omitempty"`
	RelatedSearches  []RelatedSearch `json:"related_searches,omitempty"`
	RelatedQuestions []string        `json:"related_questions,omitempty"`
	KnowledgeGraph   *KnowledgeGraph `json:"knowledge_graph,omitempty"`
	TopStories       []TopStory      `json:"top_stories,omitempty"`
	Images           []ImageResult   `json:"images,omitempty"`
	Videos           []VideoResult   `json:"videos,omitempty"`
}

// Categories returns the keys of the categories present in the record,
// in serialization order.
func (r *Record) Categories() []string {
	if r == nil {
		return nil
	}

	var keys []string
	if r.SearchMetadata != nil {
		keys = append(keys, CategorySearchMetadata)
	}
	if len(r.OrganicResults) > 0 {
		keys = append(keys, CategoryOrganicResults)
	}
	if len(r.RelatedSearches) > 0 {
		keys = append(keys, CategoryRelatedSearches)
	}
	if len(r.RelatedQuestions) > 0 {
		keys = append(keys, CategoryRelatedQuestions)
	}
	if !r.KnowledgeGraph.IsEmpty() {
		keys = append(keys, CategoryKnowledgeGraph)
	}
	if len(r.TopStories) > 0 {
		keys = append(keys, CategoryTopStories)
	}
	if len(r.Images) > 0 {
		keys = append(keys, CategoryImages)
	}
	if len(r.Videos) > 0 {
		keys = append(keys, CategoryVideos)
	}
	return keys
}

// SearchMetadata describes the extraction itself.
type SearchMetadata struct {
	Status   string `json:"status"`
	Engine   string `json:"engine"`
	Title    string `json:"title,omitempty"`
	ParsedAt string `json:"parsed_at"`
}

// OrganicResult is a non-paid search result entry.
type OrganicResult struct {
	Position          int                `json:"position"`
	Source            string             `json:"source"`
	Title             string             `json:"title"`
	Date              string             `json:"date,omitempty"`
	Link              string             `json:"link"`
	DisplayedLink     string             `json:"displayed_link"`
	RedirectLink      string             `json:"redirect_link"`
	Snippet           string             `json:"snippet"`
	HighlightedWords  []string           `json:"snippet_highlighted_words,omitempty"`
	SitelinksInline   []InlineSitelink   `json:"sitelinks_inline,omitempty"`
	SitelinksExpanded []ExpandedSitelink `json:"sitelinks_expanded,omitempty"`
}

// Valid reports whether the result carries the fields every organic
// result must have.
func (r *OrganicResult) Valid() bool {
	return r.Source != "" && r.Title != "" && r.Link != ""
}

// InlineSitelink is a secondary link shown on one line under a result.
type InlineSitelink struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// ExpandedSitelink is a secondary link shown as its own block under a
// result. Mobile markup carries no snippet.
type ExpandedSitelink struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet,omitempty"`
}

// KnowledgeGraph is the entity summary panel.
type KnowledgeGraph struct {
	Title       string            `json:"title,omitempty"`
	Type        string            `json:"type,omitempty"`
	Description string            `json:"description,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// IsEmpty reports whether the panel carries no data. A nil panel is empty.
func (kg *KnowledgeGraph) IsEmpty() bool {
	return kg == nil || (kg.Title == "" && kg.Type == "" && kg.Description == "" && len(kg.Attributes) == 0)
}

// RelatedSearch is a "people also search for" entry.
type RelatedSearch struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// TopStory is an entry of the news cluster.
type TopStory struct {
	Position  int    `json:"position"`
	Title     string `json:"title,omitempty"`
	Source    string `json:"source,omitempty"`
	Time      string `json:"time,omitempty"`
	Link      string `json:"link,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// ImageResult is a tile of an inline image cluster.
type ImageResult struct {
	ImageText string `json:"image_text"`
	Link      string `json:"link,omitempty"`
	Source    string `json:"source,omitempty"`
}

// VideoResult is an inline video tile.
type VideoResult struct {
	Title  string `json:"title"`
	Link   string `json:"link,omitempty"`
	Source string `json:"source,omitempty"`
	Date   string `json:"date,omitempty"`
}

// MarshalRecord encodes rec as JSON terminated by a newline. URLs are kept
// readable: '&', '<', and '>' are not escaped. With indent set, nested
// values are indented by two spaces.
func MarshalRecord(rec *Record, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

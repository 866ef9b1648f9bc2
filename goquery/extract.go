// Package goquery implements result page extraction and cleaning on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serpjson"
)

// Ensure Extractor implements serpjson.Extractor at compile time.
var _ serpjson.Extractor = (*Extractor)(nil)

// Extractor maps a result page to a serpjson.Record. Every category rule
// runs independently over the same read-only document; a category the page
// lacks is simply absent from the record.
//
// Extractor is safe for concurrent use by multiple goroutines.
type Extractor struct {
	selectors Selectors
	overrides map[string][]string
	engine    string
	origin    string
	now       func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the clock used for SearchMetadata.ParsedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithEngine sets the engine name reported in SearchMetadata.
func WithEngine(engine string) Option {
	return func(e *Extractor) {
		e.engine = engine
	}
}

// WithOrigin sets the origin that prefixes organic tracking links.
func WithOrigin(origin string) Option {
	return func(e *Extractor) {
		e.origin = origin
	}
}

// WithSelectors replaces the candidates of the given selector keys.
func WithSelectors(overrides map[string][]string) Option {
	return func(e *Extractor) {
		for k, v := range overrides {
			e.overrides[k] = v
		}
	}
}

// WithConfig applies engine, origin, and selector overrides from cfg.
// Empty config fields keep their defaults.
func WithConfig(cfg *serpjson.Config) Option {
	return func(e *Extractor) {
		if cfg == nil {
			return
		}
		if cfg.Engine != "" {
			e.engine = cfg.Engine
		}
		if cfg.Origin != "" {
			e.origin = cfg.Origin
		}
		WithSelectors(cfg.Selectors)(e)
	}
}

// NewExtractor creates a new Extractor for Google result pages, adjusted by
// opts. Returns EINVALID if a selector override is unknown or malformed.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		overrides: make(map[string][]string),
		engine:    serpjson.DefaultEngine,
		origin:    serpjson.DefaultOrigin,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	selectors, err := DefaultSelectors().Merge(e.overrides)
	if err != nil {
		return nil, err
	}
	e.selectors = selectors
	e.overrides = nil
	e.origin = strings.TrimSuffix(e.origin, "/")

	return e, nil
}

// Extract parses HTML and returns the structured record.
func (e *Extractor) Extract(rawHTML string) (*serpjson.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, serpjson.Errorf(serpjson.EINVALID, "failed to parse HTML: %v", err)
	}
	return e.ExtractDocument(doc), nil
}

// ExtractDocument builds the record from an already parsed document.
// Organic results are read from the results root (#rso by default), or
// from the whole document when the page has no such root.
func (e *Extractor) ExtractDocument(doc *goquery.Document) *serpjson.Record {
	root := doc.Selection

	organicRoot := e.selectors.firstMatch(root, keyOrganicRoot)
	if organicRoot.Length() == 0 {
		organicRoot = root
	}

	return &serpjson.Record{
		SearchMetadata:   e.metadata(root),
		OrganicResults:   e.organicResults(organicRoot),
		RelatedSearches:  e.relatedSearches(root),
		RelatedQuestions: e.relatedQuestions(root),
		KnowledgeGraph:   e.knowledgeGraph(root),
		TopStories:       e.topStories(root),
		Images:           e.images(root),
		Videos:           e.videos(root),
	}
}

func (e *Extractor) metadata(root *goquery.Selection) *serpjson.SearchMetadata {
	return &serpjson.SearchMetadata{
		Status:   serpjson.StatusSuccess,
		Engine:   e.engine,
		Title:    cleanText(root.Find("title").First().Text()),
		ParsedAt: e.now().Format(serpjson.ParsedAtLayout),
	}
}

package mock

import "github.com/fwojciec/serpjson"

var _ serpjson.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of serpjson.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*serpjson.Record, error)
}

func (e *Extractor) Extract(html string) (*serpjson.Record, error) {
	return e.ExtractFn(html)
}

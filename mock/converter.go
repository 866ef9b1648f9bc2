package mock

import "github.com/fwojciec/serpjson"

var _ serpjson.Converter = (*Converter)(nil)

// Converter is a mock implementation of serpjson.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

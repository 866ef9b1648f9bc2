package mock

import "github.com/fwojciec/serpjson"

var _ serpjson.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of serpjson.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (string, error)
}

func (c *Cleaner) Clean(html string) (string, error) {
	return c.CleanFn(html)
}

package mock

import "github.com/fwojciec/jobpage"

var _ jobpage.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobpage.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

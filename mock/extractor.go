package mock

import "github.com/fwojciec/jobpage"

var _ jobpage.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobpage.Extractor.
type Extractor struct {
	ExtractFn func(html string) *jobpage.RawFields
}

func (e *Extractor) Extract(html string) *jobpage.RawFields {
	return e.ExtractFn(html)
}

var _ jobpage.Markup = (*Markup)(nil)

// Markup is a mock implementation of jobpage.Markup.
type Markup struct {
	SafeHTMLFn  func(s string) string
	PlainTextFn func(s string) string
}

func (m *Markup) SafeHTML(s string) string {
	return m.SafeHTMLFn(s)
}

func (m *Markup) PlainText(s string) string {
	return m.PlainTextFn(s)
}

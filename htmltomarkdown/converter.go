// Package htmltomarkdown exports rendered job pages as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/jobpage"
)

// Ensure Converter implements jobpage.Converter at compile time.
var _ jobpage.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a rendered page into Markdown. Scripts, including the
// JSON-LD block, are dropped.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", jobpage.Errorf(jobpage.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// FormatJob prefixes a Markdown body with YAML frontmatter describing job.
func FormatJob(job *jobpage.Job, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(quote(job.PageTitle))
	b.WriteString("\ncompany: ")
	b.WriteString(quote(job.Company))
	b.WriteString("\nlocation: ")
	b.WriteString(quote(job.Location))
	b.WriteString("\nslug: ")
	b.WriteString(job.Slug)
	if len(job.Hashtags.Tags) > 0 {
		b.WriteString("\ntags: [")
		b.WriteString(job.Hashtags.Plain())
		b.WriteString("]")
	}
	b.WriteString("\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// quote wraps s in double quotes for YAML, escaping backslashes and quotes.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

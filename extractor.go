package jobpage

// Extractor locates raw job fields in snapshot HTML.
type Extractor interface {
	// Extract never fails: fields that cannot be located come back empty,
	// and completely unmatched input yields an empty RawFields.
	Extract(html string) *RawFields
}

// Markup converts untrusted markup into renderable forms.
type Markup interface {
	// SafeHTML returns escaped text that keeps line breaks as <br> tags.
	// It is idempotent.
	SafeHTML(s string) string

	// PlainText returns the text content with tags removed. Line breaks
	// and block boundaries become newlines; other whitespace is collapsed.
	PlainText(s string) string
}

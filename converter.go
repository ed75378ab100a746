package jobpage

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms a rendered job page into Markdown.
	Convert(html string) (string, error)
}

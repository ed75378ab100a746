package html

import (
	"strings"

	"github.com/fwojciec/jobpage"
	xhtml "golang.org/x/net/html"
)

// Ensure Sanitizer implements jobpage.Markup.
var _ jobpage.Markup = (*Sanitizer)(nil)

// Sanitizer reduces untrusted markup to text lines. Tags other than line
// breaks are dropped; script and style content is discarded.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// SafeHTML returns the escaped text of s with line breaks kept as <br>.
func (s *Sanitizer) SafeHTML(markup string) string {
	lines := textLines(markup)
	for i, line := range lines {
		lines[i] = xhtml.EscapeString(line)
	}
	return strings.Join(lines, "<br>")
}

// PlainText returns the text of s with line breaks kept as newlines.
func (s *Sanitizer) PlainText(markup string) string {
	return strings.Join(textLines(markup), "\n")
}

// breakTags end a line when opened or closed.
var breakTags = map[string]bool{
	"br": true, "p": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "tr": true,
}

// textLines tokenizes markup into trimmed lines with whitespace collapsed.
// Leading and trailing blank lines are dropped and runs of blank lines are
// reduced to one.
func textLines(markup string) []string {
	var lines []string
	var cur strings.Builder
	skip := 0

	// Block boundaries end a non-empty line; <br> always ends one.
	flush := func(force bool) {
		line := strings.Join(strings.Fields(cur.String()), " ")
		cur.Reset()
		if line != "" || force {
			lines = append(lines, line)
		}
	}

	z := xhtml.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			break
		}
		tok := z.Token()
		switch tt {
		case xhtml.TextToken:
			if skip == 0 {
				cur.WriteString(tok.Data)
			}
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			switch {
			case tok.Data == "script" || tok.Data == "style":
				if tt == xhtml.StartTagToken {
					skip++
				}
			case breakTags[tok.Data]:
				flush(tok.Data == "br")
			}
		case xhtml.EndTagToken:
			switch {
			case tok.Data == "script" || tok.Data == "style":
				if skip > 0 {
					skip--
				}
			case breakTags[tok.Data] && tok.Data != "br":
				flush(false)
			}
		}
	}
	flush(false)

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

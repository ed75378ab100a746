package jobpage

import (
	"regexp"
	"strings"
)

// NoisePhrases are fragments of the source site's UI chrome that leak into
// extracted text.
var NoisePhrases = []string{
	"Identified by Google from the original job post",
	"Job highlightsIdentified Google from original job post",
}

// listItemBoundaries mark the end of one highlighted list item and the start
// of the next inside extracted markup.
var listItemBoundaries = []string{
	`</li><li class="LevrW">`,
	`</li><li jsname="wsRnQ" style="" class="LevrW">`,
}

// FieldBreak is the separator CleanField puts between list items.
const FieldBreak = "<BR>- "

// StopWords are dropped from meta descriptions.
var StopWords = []string{"a", "an", "the", "in", "on", "at", "to", "for", "of", "with", "by"}

// MaxMetaWords is the word budget of a meta description.
const MaxMetaWords = 20

// RemoteLocation replaces any location that mentions remote work.
const RemoteLocation = "Remote Job"

var (
	sentenceJoinRe = regexp.MustCompile(`([.!?])([A-Z])`)
	schemeRe       = regexp.MustCompile(`(?i)^https?://`)
)

// Transform is a single named text rewrite.
type Transform struct {
	Name string
	Fn   func(string) string
}

// Pipeline applies transforms in order. The order is part of the contract
// because the rewrites do not commute.
type Pipeline []Transform

// Apply runs s through every transform.
func (p Pipeline) Apply(s string) string {
	for _, t := range p {
		s = t.Fn(s)
	}
	return s
}

// Names returns the transform names in order.
func (p Pipeline) Names() []string {
	names := make([]string, 0, len(p))
	for _, t := range p {
		names = append(names, t.Name)
	}
	return names
}

var removeNoise = Transform{Name: "remove-noise", Fn: RemoveNoise}

var spaceSentences = Transform{Name: "space-sentences", Fn: func(s string) string {
	return sentenceJoinRe.ReplaceAllString(s, "${1} ${2}")
}}

var trim = Transform{Name: "trim", Fn: strings.TrimSpace}

func replaceBoundaries(with string) func(string) string {
	return func(s string) string {
		for _, b := range listItemBoundaries {
			s = strings.ReplaceAll(s, b, with)
		}
		return s
	}
}

// FieldPipeline is the transform chain behind CleanField.
var FieldPipeline = Pipeline{
	removeNoise,
	{Name: "list-breaks", Fn: replaceBoundaries(FieldBreak)},
	spaceSentences,
	trim,
}

// MetaPipeline is the transform chain behind CleanForMeta.
// Non-ASCII characters are stripped before stop words are removed.
var MetaPipeline = Pipeline{
	removeNoise,
	{Name: "list-dashes", Fn: replaceBoundaries(" - ")},
	spaceSentences,
	{Name: "strip-non-ascii", Fn: StripNonASCII},
	{Name: "remove-stop-words", Fn: RemoveStopWords},
	{Name: "truncate-words", Fn: func(s string) string { return TruncateWords(s, MaxMetaWords) }},
	trim,
}

// StructuredDataPipeline is the transform chain behind CleanForStructuredData.
var StructuredDataPipeline = Pipeline{
	removeNoise,
	{Name: "list-newlines", Fn: func(s string) string {
		s = replaceBoundaries("\n- ")(s)
		return strings.ReplaceAll(s, FieldBreak, "\n- ")
	}},
	trim,
}

// RemoveNoise deletes every noise phrase. Removal repeats until none is left
// so that a phrase exposed by an earlier removal is also dropped.
func RemoveNoise(s string) string {
	for {
		before := s
		for _, phrase := range NoisePhrases {
			s = strings.ReplaceAll(s, phrase, "")
		}
		if s == before {
			return s
		}
	}
}

// CleanField cleans a text field for HTML output.
func CleanField(s string) string {
	if s == "" {
		return ""
	}
	return FieldPipeline.Apply(s)
}

// CleanForMeta cleans text for meta tags: ASCII only, no stop words, at most
// MaxMetaWords words.
func CleanForMeta(s string) string {
	if s == "" {
		return ""
	}
	return MetaPipeline.Apply(s)
}

// CleanForStructuredData cleans text for JSON-LD, where markup is not allowed:
// list boundaries become newline-prefixed dash bullets.
func CleanForStructuredData(s string) string {
	if s == "" {
		return ""
	}
	return StructuredDataPipeline.Apply(s)
}

// CleanList cleans every item, dropping blanks and repeated items while
// keeping document order.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = CleanField(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// StripNonASCII removes every rune outside the ASCII range.
func StripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < 0x80 {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// RemoveStopWords drops StopWords (case-insensitive, whole words) and joins
// the remaining words with single spaces.
func RemoveStopWords(s string) string {
	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if isStopWord(w) {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

func isStopWord(w string) bool {
	for _, stop := range StopWords {
		if strings.EqualFold(w, stop) {
			return true
		}
	}
	return false
}

// TruncateWords keeps the first n whitespace-separated words.
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// CleanLocation normalizes a location, using defaultLocation when the source
// gives nothing usable.
func CleanLocation(s, defaultLocation string) string {
	s = strings.TrimSpace(RemoveNoise(s))
	switch {
	case s == "":
		return defaultLocation
	case strings.Contains(strings.ToLower(s), "remote"):
		return RemoteLocation
	case strings.Contains(s, " via "):
		s, _, _ = strings.Cut(s, " via ")
		if s = trimSeparators(s); s == "" {
			return defaultLocation
		}
		return s
	case strings.HasPrefix(strings.ToLower(s), "via "):
		return defaultLocation
	}
	return s
}

// trimSeparators removes separator characters left dangling at either end.
func trimSeparators(s string) string {
	return strings.Trim(s, " \t\n•·|,-–")
}

// SplitCompanyLocation splits a "Company • Location" line. Everything after
// the first bullet is the location.
func SplitCompanyLocation(s string) (company, location string) {
	company, location, _ = strings.Cut(s, "•")
	return trimSeparators(company), trimSeparators(location)
}

// CleanURL returns an absolute URL without query string or trailing
// slashes, defaulting the scheme to https. Input that is not a URL at all
// comes back mangled, never as a panic.
func CleanURL(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "?"); i >= 0 {
		s = s[:i]
	}
	scheme := "https://"
	if m := schemeRe.FindString(s); m != "" {
		scheme = strings.ToLower(m)
		s = s[len(m):]
	}
	s = strings.Trim(s, "/")
	if s == "" {
		return ""
	}
	return scheme + s
}

// CleanSalary removes a leading "Salary" label.
func CleanSalary(s string) string {
	s = CleanField(s)
	if len(s) >= len("salary") && strings.EqualFold(s[:len("salary")], "salary") {
		s = strings.TrimLeft(s[len("salary"):], " :-")
	}
	return strings.TrimSpace(s)
}

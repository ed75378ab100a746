package jobpage

import (
	"regexp"
	"strings"
)

var (
	slugRe        = regexp.MustCompile(`[^a-z0-9]+`)
	hashtagCharRe = regexp.MustCompile(`[^a-z0-9\-\s]`)
	hashtagSepRe  = regexp.MustCompile(`[\s-]+`)
)

// PageTitle joins company, job title and location with " - ", omitting the
// location when empty, and collapses repeated segments.
func PageTitle(company, jobTitle, location string) string {
	parts := []string{company, jobTitle}
	if location != "" {
		parts = append(parts, location)
	}
	return RemoveDuplicatePhrases(strings.Join(parts, " - "))
}

// RemoveDuplicatePhrases splits s on "-", trims every segment, drops blank
// segments and segments identical to an earlier one, and rejoins with " - ".
func RemoveDuplicatePhrases(s string) string {
	segments := strings.Split(s, "-")
	kept := make([]string, 0, len(segments))
	seen := make(map[string]bool, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" || seen[seg] {
			continue
		}
		seen[seg] = true
		kept = append(kept, seg)
	}
	return strings.Join(kept, " - ")
}

// Slug returns the lower-cased "title-company" with every run of
// non-alphanumeric characters collapsed into one hyphen.
func Slug(title, company string) string {
	combined := strings.ToLower(title + "-" + company)
	return strings.Trim(slugRe.ReplaceAllString(combined, "-"), "-")
}

// Hashtags is the filtered token sequence derived from a page title.
// Every rendering below comes from the same Tags, so they always agree.
type Hashtags struct {
	Tags []string `json:"tags"`
}

// GenerateHashtags lower-cases title, replaces characters other than
// [a-z0-9-] and whitespace with spaces, splits on whitespace and hyphens and
// keeps the first n tokens longer than two characters.
func GenerateHashtags(title string, n int) Hashtags {
	cleaned := hashtagCharRe.ReplaceAllString(strings.ToLower(title), " ")
	var tags []string
	for _, word := range hashtagSepRe.Split(cleaned, -1) {
		if len(tags) >= n {
			break
		}
		if len(word) > 2 {
			tags = append(tags, word)
		}
	}
	return Hashtags{Tags: tags}
}

// Plain returns the tags joined with ", ".
func (h Hashtags) Plain() string {
	return strings.Join(h.Tags, ", ")
}

// Hashed returns "#tag" items joined with ", ".
func (h Hashtags) Hashed() string {
	return h.join("#", ", ")
}

// SpacedHash returns "# tag" items joined with ", ".
func (h Hashtags) SpacedHash() string {
	return h.join("# ", ", ")
}

// ShareText returns "#tag" items joined with single spaces, the form used in
// share snippets.
func (h Hashtags) ShareText() string {
	return h.join("#", " ")
}

func (h Hashtags) join(prefix, sep string) string {
	items := make([]string, len(h.Tags))
	for i, tag := range h.Tags {
		items[i] = prefix + tag
	}
	return strings.Join(items, sep)
}

// MetaDescription derives the meta description from plain-text sources,
// using the first one that yields any words.
func MetaDescription(sources ...string) string {
	for _, src := range sources {
		if meta := CleanForMeta(src); meta != "" {
			return meta
		}
	}
	return ""
}

// ShareSnippet is the text shared alongside a page link.
func ShareSnippet(job *Job) string {
	return strings.TrimSpace(job.MetaDescription + " " + job.Hashtags.ShareText())
}

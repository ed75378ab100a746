package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobpage"
)

// Ensure Extractor implements jobpage.Extractor.
var _ jobpage.Extractor = (*Extractor)(nil)

// Matcher resolves one text field from a parsed snapshot.
type Matcher struct {
	Name  string
	Match func(doc *goquery.Document) string
}

// ListMatcher resolves one list field from a parsed snapshot.
type ListMatcher struct {
	Name  string
	Match func(doc *goquery.Document) []string
}

// Extractor pulls raw job fields out of search-result snapshots. Every field
// has a priority-ordered matcher chain; the first non-empty match wins.
type Extractor struct {
	Title            []Matcher
	CompanyLocation  []Matcher
	JobType          []Matcher
	Salary           []Matcher
	Description      []Matcher
	ApplyHref        []Matcher
	Qualifications   []ListMatcher
	Benefits         []ListMatcher
	Responsibilities []ListMatcher
}

// NewExtractor creates an Extractor with the default matcher chains.
func NewExtractor() *Extractor {
	return &Extractor{
		Title: []Matcher{
			textOf("title-heading", "h1.LZAQDf"),
			textOf("aria-label", `[aria-label*="job"]`),
			textOf("data-title", "[data-title]"),
		},
		CompanyLocation: []Matcher{
			textOf("company-line", ".waQ7qe"),
			textOf("data-company", "[data-company]"),
		},
		JobType: []Matcher{
			textOf("job-type", ".RcZtZb"),
			textOf("data-job-type", "[data-job-type]"),
		},
		Salary: []Matcher{
			textOf("salary-item", `li:contains("Salary")`),
			textOf("data-salary", "[data-salary]"),
		},
		Description: []Matcher{
			htmlOf("labeled-description", `h3:contains("Job description") + span`),
			htmlOf("description-block", ".HBvzbc"),
			htmlOf("data-description", "[data-description]"),
			htmlOf("description-class", ".job-description"),
		},
		ApplyHref: []Matcher{
			attrOf("apply-title", `a[title*="Apply"]`, "href"),
			attrOf("apply-href", `a[href*="apply"]`, "href"),
			{Name: "apply-text", Match: applyByText},
		},
		Qualifications:   sectionMatchers("Qualifications"),
		Benefits:         sectionMatchers("Benefits"),
		Responsibilities: sectionMatchers("Responsibilities"),
	}
}

// Extract returns the raw fields found in html. It never fails; fields whose
// matchers all miss are left empty.
func (e *Extractor) Extract(html string) *jobpage.RawFields {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &jobpage.RawFields{}
	}

	return &jobpage.RawFields{
		Title:            first(doc, e.Title),
		CompanyLocation:  first(doc, e.CompanyLocation),
		JobType:          first(doc, e.JobType),
		Salary:           first(doc, e.Salary),
		Description:      first(doc, e.Description),
		ApplyHref:        first(doc, e.ApplyHref),
		Qualifications:   firstList(doc, e.Qualifications),
		Benefits:         firstList(doc, e.Benefits),
		Responsibilities: firstList(doc, e.Responsibilities),
	}
}

// Explain reports which matcher resolved each text field, keyed by field.
// Fields no matcher resolved are absent.
func (e *Extractor) Explain(html string) map[string]string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	fields := map[string][]Matcher{
		"title":           e.Title,
		"companyLocation": e.CompanyLocation,
		"jobType":         e.JobType,
		"salary":          e.Salary,
		"description":     e.Description,
		"applyHref":       e.ApplyHref,
	}
	names := make(map[string]string)
	for field, matchers := range fields {
		for _, m := range matchers {
			if safeMatch(doc, m) != "" {
				names[field] = m.Name
				break
			}
		}
	}
	return names
}

func first(doc *goquery.Document, matchers []Matcher) string {
	for _, m := range matchers {
		if v := safeMatch(doc, m); v != "" {
			return v
		}
	}
	return ""
}

func firstList(doc *goquery.Document, matchers []ListMatcher) []string {
	for _, m := range matchers {
		if v := safeListMatch(doc, m); len(v) > 0 {
			return v
		}
	}
	return []string{}
}

// safeMatch runs m, treating a panic as a miss. Selectors with :contains and
// sibling combinators come from cascadia and are evaluated against
// uncontrolled markup.
func safeMatch(doc *goquery.Document, m Matcher) (v string) {
	defer func() {
		if recover() != nil {
			v = ""
		}
	}()
	return strings.TrimSpace(m.Match(doc))
}

func safeListMatch(doc *goquery.Document, m ListMatcher) (v []string) {
	defer func() {
		if recover() != nil {
			v = nil
		}
	}()
	return m.Match(doc)
}

func textOf(name, selector string) Matcher {
	return Matcher{Name: name, Match: func(doc *goquery.Document) string {
		return doc.Find(selector).First().Text()
	}}
}

func htmlOf(name, selector string) Matcher {
	return Matcher{Name: name, Match: func(doc *goquery.Document) string {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return ""
		}
		h, err := sel.Html()
		if err != nil {
			return ""
		}
		return h
	}}
}

func attrOf(name, selector, attr string) Matcher {
	return Matcher{Name: name, Match: func(doc *goquery.Document) string {
		return doc.Find(selector).First().AttrOr(attr, "")
	}}
}

func applyByText(doc *goquery.Document) string {
	var href string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(s.Text()), "apply") {
			href = s.AttrOr("href", "")
			return false
		}
		return true
	})
	return href
}

// sectionMatchers collects the list items that immediately follow a heading
// whose text contains label.
func sectionMatchers(label string) []ListMatcher {
	return []ListMatcher{
		itemsAfter("h4-section", "h4", label),
		itemsAfter("h3-section", "h3", label),
		itemsAfter("heading-section", "h2, h5, h6, [role=heading]", label),
	}
}

func itemsAfter(name, headings, label string) ListMatcher {
	return ListMatcher{Name: name, Match: func(doc *goquery.Document) []string {
		var items []string
		doc.Find(headings).EachWithBreak(func(_ int, h *goquery.Selection) bool {
			if !strings.Contains(h.Text(), label) {
				return true
			}
			h.Next().Filter("ul, ol").Find("li").Each(func(_ int, li *goquery.Selection) {
				if text := strings.TrimSpace(li.Text()); text != "" {
					items = append(items, text)
				}
			})
			return len(items) == 0
		})
		return items
	}}
}

package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobpage"
)

// Ensure EntryScanner implements jobpage.EntryScanner.
var _ jobpage.EntryScanner = (*EntryScanner)(nil)

// EntryScanner reads index entries back out of published job pages.
// The embedded JSON-LD is preferred; the visible markup fills the gaps.
type EntryScanner struct{}

// NewEntryScanner creates a new EntryScanner.
func NewEntryScanner() *EntryScanner {
	return &EntryScanner{}
}

// ScanEntry returns the index entry for a published page.
func (s *EntryScanner) ScanEntry(fileName, html string) jobpage.IndexEntry {
	entry := jobpage.IndexEntry{FileName: fileName}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		entry.Title = titleFromFileName(fileName)
		return entry
	}

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		ld, err := jobpage.ParseJobPosting(sel.Text())
		if err != nil {
			return true
		}
		entry.Title = ld.Title
		entry.Company = ld.HiringOrganization.Name
		entry.Location = ld.JobLocation.Address
		return false
	})

	if entry.Title == "" {
		entry.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if entry.Company == "" {
		entry.Company = strings.TrimSpace(doc.Find(".company").First().Text())
	}
	if entry.Location == "" {
		entry.Location = strings.TrimSpace(doc.Find(".location").First().Text())
	}
	entry.Hashtags = strings.TrimSpace(doc.Find(`meta[name="keywords"]`).AttrOr("content", ""))

	if entry.Title == "" {
		entry.Title = titleFromFileName(fileName)
	}
	return entry
}

func titleFromFileName(fileName string) string {
	return strings.TrimSuffix(fileName, ".html")
}

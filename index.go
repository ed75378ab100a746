package jobpage

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

// IndexEntry summarizes one published job page for the index listing.
type IndexEntry struct {
	FileName string `json:"fileName"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`

	// LastModified is the time of the last commit touching the file.
	// The zero value means unknown.
	LastModified time.Time `json:"lastModified,omitzero"`

	Hashtags string `json:"hashtags,omitempty"`
}

// SortIndexEntries returns a copy of entries ordered newest first. Entries
// with a known LastModified come first, by time descending; the rest follow
// by file name descending, since file names embed a sortable slug.
func SortIndexEntries(entries []IndexEntry) []IndexEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b IndexEntry) int {
		aKnown, bKnown := !a.LastModified.IsZero(), !b.LastModified.IsZero()
		switch {
		case aKnown && bKnown:
			if c := b.LastModified.Compare(a.LastModified); c != 0 {
				return c
			}
		case aKnown:
			return -1
		case bKnown:
			return 1
		}
		return strings.Compare(b.FileName, a.FileName)
	})
	return sorted
}

// PageCount returns the number of index pages needed for total entries.
// An index always has at least one page, even when empty.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// IndexPageEntries returns the entries shown on the 1-based page.
// Pages out of range are empty.
func IndexPageEntries(entries []IndexEntry, page, pageSize int) []IndexEntry {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	start := (page - 1) * pageSize
	if page < 1 || start >= len(entries) {
		return nil
	}
	end := min(start+pageSize, len(entries))
	return entries[start:end]
}

// IndexFileName returns the file name of the 1-based index page.
func IndexFileName(page int) string {
	if page <= 1 {
		return "index.html"
	}
	return fmt.Sprintf("index-%d.html", page)
}

// IsIndexFile reports whether name is a generated index page.
func IsIndexFile(name string) bool {
	return name == "index.html" || (strings.HasPrefix(name, "index-") && strings.HasSuffix(name, ".html"))
}

// RenderOptions configures job page rendering.
type RenderOptions struct {
	// Domain hosts the published page; DefaultDomain when empty.
	Domain string

	// PublishedAt is shown in the footer.
	PublishedAt time.Time

	// SalaryUnit is the fallback unit for the embedded base salary.
	SalaryUnit string
}

// IndexOptions configures index page rendering.
type IndexOptions struct {
	Domain   string
	PageSize int
	SiteName string

	// Now supplies the footer year.
	Now time.Time
}

// Renderer produces the published HTML documents.
type Renderer interface {
	// RenderJobPage renders a complete job page.
	RenderJobPage(job *Job, opts RenderOptions) (string, error)

	// RenderIndexPage sorts entries, selects the 1-based page and renders it
	// with links to every page.
	RenderIndexPage(entries []IndexEntry, page int, opts IndexOptions) (string, error)

	// RenderIndexStylesheet returns the stylesheet referenced by index pages.
	RenderIndexStylesheet() string
}

// EntryScanner reads an IndexEntry back out of a published job page.
type EntryScanner interface {
	// ScanEntry returns the entry for the page. Fields that cannot be found
	// are left empty; Title falls back to the file name.
	ScanEntry(fileName, html string) IndexEntry
}

// SitemapBuilder renders a sitemap of published pages.
type SitemapBuilder interface {
	BuildSitemap(domain string, entries []IndexEntry) (string, error)
}

// Repository stores published files, remotely or locally.
type Repository interface {
	// ListFiles returns the names of files at the repository root.
	ListFiles(ctx context.Context, target Target) ([]string, error)

	// ReadFile returns the content of a file.
	// Returns ENOTFOUND if the file does not exist.
	ReadFile(ctx context.Context, target Target, name string) (string, error)

	// LastModified returns the time of the last change to a file.
	LastModified(ctx context.Context, target Target, name string) (time.Time, error)

	// WriteFile creates or replaces a file.
	WriteFile(ctx context.Context, target Target, name, content string) error
}

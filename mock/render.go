package mock

import "github.com/fwojciec/jobpage"

var _ jobpage.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of jobpage.Renderer.
type Renderer struct {
	RenderJobPageFn         func(job *jobpage.Job, opts jobpage.RenderOptions) (string, error)
	RenderIndexPageFn       func(entries []jobpage.IndexEntry, page int, opts jobpage.IndexOptions) (string, error)
	RenderIndexStylesheetFn func() string
}

func (r *Renderer) RenderJobPage(job *jobpage.Job, opts jobpage.RenderOptions) (string, error) {
	return r.RenderJobPageFn(job, opts)
}

func (r *Renderer) RenderIndexPage(entries []jobpage.IndexEntry, page int, opts jobpage.IndexOptions) (string, error) {
	return r.RenderIndexPageFn(entries, page, opts)
}

func (r *Renderer) RenderIndexStylesheet() string {
	return r.RenderIndexStylesheetFn()
}

var _ jobpage.EntryScanner = (*EntryScanner)(nil)

// EntryScanner is a mock implementation of jobpage.EntryScanner.
type EntryScanner struct {
	ScanEntryFn func(fileName, html string) jobpage.IndexEntry
}

func (s *EntryScanner) ScanEntry(fileName, html string) jobpage.IndexEntry {
	return s.ScanEntryFn(fileName, html)
}

var _ jobpage.SitemapBuilder = (*SitemapBuilder)(nil)

// SitemapBuilder is a mock implementation of jobpage.SitemapBuilder.
type SitemapBuilder struct {
	BuildSitemapFn func(domain string, entries []jobpage.IndexEntry) (string, error)
}

func (b *SitemapBuilder) BuildSitemap(domain string, entries []jobpage.IndexEntry) (string, error) {
	return b.BuildSitemapFn(domain, entries)
}

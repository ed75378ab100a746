// Package etree writes sitemap.xml files for published job pages.
package etree

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/fwojciec/jobpage"
)

// SitemapNamespace is the sitemaps.org urlset namespace.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Ensure SitemapBuilder implements jobpage.SitemapBuilder.
var _ jobpage.SitemapBuilder = (*SitemapBuilder)(nil)

// SitemapBuilder renders a urlset with the home page followed by one url
// per published job page.
type SitemapBuilder struct{}

// NewSitemapBuilder creates a new SitemapBuilder.
func NewSitemapBuilder() *SitemapBuilder {
	return &SitemapBuilder{}
}

// BuildSitemap returns the sitemap XML for entries on domain. Entries keep
// their order; lastmod is omitted when LastModified is unknown.
func (b *SitemapBuilder) BuildSitemap(domain string, entries []jobpage.IndexEntry) (string, error) {
	base := "https://" + jobpage.DomainOrDefault(domain) + "/"

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)

	home := urlset.CreateElement("url")
	home.CreateElement("loc").SetText(base)

	for _, e := range entries {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(base + e.FileName)
		if !e.LastModified.IsZero() {
			u.CreateElement("lastmod").SetText(e.LastModified.UTC().Format("2006-01-02"))
		}
	}

	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("write sitemap: %w", err)
	}
	return s, nil
}

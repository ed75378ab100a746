package html

import (
	"embed"
	"html/template"
	"net/url"
	"strings"

	"github.com/fwojciec/jobpage"
)

// Ensure Renderer implements jobpage.Renderer.
var _ jobpage.Renderer = (*Renderer)(nil)

//go:embed templates/job.html templates/index.html
var templateFS embed.FS

//go:embed templates/index.css
var indexStylesheet string

// Renderer renders job pages and index pages from fixed templates. The
// templates only interpolate; every value passed in is already clean.
type Renderer struct {
	job   *template.Template
	index *template.Template
}

// NewRenderer creates a new Renderer with the embedded templates.
func NewRenderer() *Renderer {
	return &Renderer{
		job:   template.Must(template.ParseFS(templateFS, "templates/job.html")),
		index: template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

type section struct {
	ID      string
	Heading string
	Items   []string
}

type shareLink struct {
	Network string
	Label   string
	URL     string
}

type jobView struct {
	Job         *jobpage.Job
	Description template.HTML
	Sections    []section
	PageURL     string
	MapURL      string
	Snippet     string
	ShareLinks  []shareLink
	JSONLD      template.JS
	Domain      string
	PublishedAt string
	Year        int
}

// RenderJobPage renders the complete HTML document for job.
func (r *Renderer) RenderJobPage(job *jobpage.Job, opts jobpage.RenderOptions) (string, error) {
	unit := opts.SalaryUnit
	if unit == "" {
		unit = jobpage.UnitYear
	}
	ld, err := jobpage.MarshalJobPosting(jobpage.PageJobPosting(job, unit))
	if err != nil {
		return "", jobpage.Errorf(jobpage.EINTERNAL, "failed to encode JSON-LD: %v", err)
	}

	domain := jobpage.DomainOrDefault(opts.Domain)
	pageURL := "https://" + domain + "/" + job.FileName()
	snippet := jobpage.ShareSnippet(job)

	var sections []section
	for _, s := range []section{
		{ID: "qualifications", Heading: "Qualifications", Items: job.Qualifications},
		{ID: "benefits", Heading: "Benefits", Items: job.Benefits},
		{ID: "responsibilities", Heading: "Responsibilities", Items: job.Responsibilities},
	} {
		if len(s.Items) > 0 {
			sections = append(sections, s)
		}
	}

	view := jobView{
		Job:         job,
		Description: template.HTML(job.Description),
		Sections:    sections,
		PageURL:     pageURL,
		MapURL:      "https://maps.google.com/maps?" + url.Values{"q": {job.Location}, "output": {"embed"}}.Encode(),
		Snippet:     snippet,
		ShareLinks:  shareLinks(pageURL, job.PageTitle, snippet),
		JSONLD:      template.JS(ld),
		Domain:      domain,
		PublishedAt: opts.PublishedAt.Format("January 2, 2006"),
		Year:        opts.PublishedAt.Year(),
	}

	var b strings.Builder
	if err := r.job.Execute(&b, view); err != nil {
		return "", jobpage.Errorf(jobpage.EINTERNAL, "failed to render job page: %v", err)
	}
	return b.String(), nil
}

func shareLinks(pageURL, title, snippet string) []shareLink {
	return []shareLink{
		{
			Network: "x",
			Label:   "Share on X (Twitter)",
			URL:     "https://twitter.com/intent/tweet?" + url.Values{"text": {snippet}, "url": {pageURL}}.Encode(),
		},
		{
			Network: "facebook",
			Label:   "Share on Facebook",
			URL:     "https://www.facebook.com/sharer/sharer.php?" + url.Values{"u": {pageURL}, "quote": {snippet}}.Encode(),
		},
		{
			Network: "whatsapp",
			Label:   "Share on WhatsApp",
			URL:     "https://api.whatsapp.com/send?" + url.Values{"text": {snippet + " " + pageURL}}.Encode(),
		},
		{
			Network: "linkedin",
			Label:   "Share on LinkedIn",
			URL: "https://www.linkedin.com/shareArticle?" + url.Values{
				"mini":    {"true"},
				"url":     {pageURL},
				"title":   {title},
				"summary": {snippet},
			}.Encode(),
		},
	}
}

type pageLink struct {
	Page     int
	FileName string
	Active   bool
}

type indexView struct {
	SiteName string
	Page     int
	Entries  []jobpage.IndexEntry
	Links    []pageLink
	Domain   string
	Year     int
}

// RenderIndexPage renders the 1-based index page. Entries are sorted before
// pagination. Zero entries render a single empty page.
// Returns EINVALID if page is out of range.
func (r *Renderer) RenderIndexPage(entries []jobpage.IndexEntry, page int, opts jobpage.IndexOptions) (string, error) {
	size := opts.PageSize
	if size <= 0 {
		size = jobpage.DefaultPageSize
	}
	count := jobpage.PageCount(len(entries), size)
	if page < 1 || page > count {
		return "", jobpage.Errorf(jobpage.EINVALID, "index page %d out of range 1-%d", page, count)
	}

	links := make([]pageLink, count)
	for i := range links {
		n := i + 1
		links[i] = pageLink{Page: n, FileName: jobpage.IndexFileName(n), Active: n == page}
	}

	siteName := opts.SiteName
	if siteName == "" {
		siteName = jobpage.DefaultSiteName
	}

	view := indexView{
		SiteName: siteName,
		Page:     page,
		Entries:  jobpage.IndexPageEntries(jobpage.SortIndexEntries(entries), page, size),
		Links:    links,
		Domain:   jobpage.DomainOrDefault(opts.Domain),
		Year:     opts.Now.Year(),
	}

	var b strings.Builder
	if err := r.index.Execute(&b, view); err != nil {
		return "", jobpage.Errorf(jobpage.EINTERNAL, "failed to render index page: %v", err)
	}
	return b.String(), nil
}

// RenderIndexStylesheet returns the stylesheet linked from index pages.
func (r *Renderer) RenderIndexStylesheet() string {
	return indexStylesheet
}

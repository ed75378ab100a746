// Package publish commits rendered job pages to a repository and regenerates
// the paginated index from the pages already published there.
package publish

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/jobpage"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the parallel file reads and lookups made while
// regenerating the index.
const DefaultConcurrency = 8

// File names written next to the index pages.
const (
	StylesheetFile = "index.css"
	SitemapFile    = "sitemap.xml"
)

// Ensure Service implements jobpage.Publisher.
var _ jobpage.Publisher = (*Service)(nil)

// Service publishes job pages. It performs no retries and no rollbacks; a
// failed page write stops the run before the index is touched.
type Service struct {
	Repository jobpage.Repository
	Renderer   jobpage.Renderer
	Scanner    jobpage.EntryScanner

	// Sitemap is optional. When nil no sitemap is written.
	Sitemap jobpage.SitemapBuilder

	Config      jobpage.Config
	Concurrency int
	Now         func() time.Time
}

// NewService creates a new Service with the default concurrency.
func NewService(repo jobpage.Repository, renderer jobpage.Renderer, scanner jobpage.EntryScanner, config jobpage.Config) *Service {
	return &Service{
		Repository:  repo,
		Renderer:    renderer,
		Scanner:     scanner,
		Config:      config,
		Concurrency: DefaultConcurrency,
		Now:         time.Now,
	}
}

// PublishJob renders job and publishes it as slug.html.
func (s *Service) PublishJob(ctx context.Context, job *jobpage.Job, target jobpage.Target) error {
	if err := job.Validate(); err != nil {
		return err
	}
	content, err := s.Renderer.RenderJobPage(job, jobpage.RenderOptions{
		Domain:      target.Domain,
		PublishedAt: s.Now(),
		SalaryUnit:  s.Config.SalaryUnit,
	})
	if err != nil {
		return err
	}
	return s.Publish(ctx, content, job.FileName(), target)
}

// Publish writes content as fileName and regenerates the index. The index
// is only regenerated when the write succeeds.
func (s *Service) Publish(ctx context.Context, content, fileName string, target jobpage.Target) error {
	if err := validateTarget(target); err != nil {
		return err
	}
	if !strings.HasSuffix(fileName, ".html") || jobpage.IsIndexFile(fileName) {
		return jobpage.Errorf(jobpage.EINVALID, "invalid page file name %q", fileName)
	}
	if err := s.Repository.WriteFile(ctx, target, fileName, content); err != nil {
		return fmt.Errorf("write %s: %w", fileName, err)
	}
	return s.RegenerateIndex(ctx, target)
}

// RegenerateIndex rebuilds every index page, the index stylesheet and the
// sitemap from the job pages in the repository.
func (s *Service) RegenerateIndex(ctx context.Context, target jobpage.Target) error {
	if err := validateTarget(target); err != nil {
		return err
	}

	entries, err := s.Entries(ctx, target)
	if err != nil {
		return err
	}

	opts := jobpage.IndexOptions{
		Domain:   target.Domain,
		PageSize: s.Config.PageSize,
		SiteName: s.Config.SiteName,
		Now:      s.Now(),
	}
	count := jobpage.PageCount(len(entries), opts.PageSize)

	// Writes are serialized; the contents API rejects concurrent commits
	// to one branch.
	for page := 1; page <= count; page++ {
		content, err := s.Renderer.RenderIndexPage(entries, page, opts)
		if err != nil {
			return err
		}
		name := jobpage.IndexFileName(page)
		if err := s.Repository.WriteFile(ctx, target, name, content); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	if err := s.Repository.WriteFile(ctx, target, StylesheetFile, s.Renderer.RenderIndexStylesheet()); err != nil {
		return fmt.Errorf("write %s: %w", StylesheetFile, err)
	}

	if s.Sitemap != nil {
		sitemap, err := s.Sitemap.BuildSitemap(jobpage.DomainOrDefault(target.Domain), jobpage.SortIndexEntries(entries))
		if err != nil {
			return err
		}
		if err := s.Repository.WriteFile(ctx, target, SitemapFile, sitemap); err != nil {
			return fmt.Errorf("write %s: %w", SitemapFile, err)
		}
	}
	return nil
}

// Entries scans every published job page into an IndexEntry. Reads and
// last-modified lookups run in parallel. A failed lookup leaves the entry
// without a timestamp and a failed read leaves only the file name; neither
// aborts the scan. Only listing failures and cancellation are returned.
func (s *Service) Entries(ctx context.Context, target jobpage.Target) ([]jobpage.IndexEntry, error) {
	names, err := s.Repository.ListFiles(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	names = slices.DeleteFunc(names, func(name string) bool {
		return !strings.HasSuffix(name, ".html") || jobpage.IsIndexFile(name)
	})

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	entries := make([]jobpage.IndexEntry, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, name := range names {
		g.Go(func() error {
			entries[i] = s.entry(gctx, target, name)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Service) entry(ctx context.Context, target jobpage.Target, name string) jobpage.IndexEntry {
	var entry jobpage.IndexEntry
	if content, err := s.Repository.ReadFile(ctx, target, name); err == nil {
		entry = s.Scanner.ScanEntry(name, content)
	} else {
		entry = jobpage.IndexEntry{FileName: name, Title: strings.TrimSuffix(name, ".html")}
	}

	if t, err := s.Repository.LastModified(ctx, target, name); err == nil {
		entry.LastModified = t
	}
	return entry
}

func validateTarget(target jobpage.Target) error {
	if target.Repo == "" {
		return jobpage.Errorf(jobpage.EINVALID, "target repository required")
	}
	return nil
}

package publish_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/jobpage"
	"github.com/fwojciec/jobpage/html"
	"github.com/fwojciec/jobpage/mock"
	"github.com/fwojciec/jobpage/publish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now    = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	target = jobpage.Target{Repo: "owner/jobs", Branch: "main", Domain: "jobs.example.org"}
)

// memRepo is an in-memory repository recording writes in order.
type memRepo struct {
	mu       sync.Mutex
	files    map[string]string
	modified map[string]time.Time
	writes   []string

	failWrite  string
	failRead   string
	failLookup string
}

func newMemRepo() *memRepo {
	return &memRepo{files: map[string]string{}, modified: map[string]time.Time{}}
}

func (r *memRepo) mock() *mock.Repository {
	return &mock.Repository{
		ListFilesFn: func(_ context.Context, _ jobpage.Target) ([]string, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			names := make([]string, 0, len(r.files))
			for name := range r.files {
				names = append(names, name)
			}
			return names, nil
		},
		ReadFileFn: func(_ context.Context, _ jobpage.Target, name string) (string, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			if name == r.failRead {
				return "", errors.New("read failed")
			}
			content, ok := r.files[name]
			if !ok {
				return "", jobpage.Errorf(jobpage.ENOTFOUND, "file not found")
			}
			return content, nil
		},
		LastModifiedFn: func(_ context.Context, _ jobpage.Target, name string) (time.Time, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			if name == r.failLookup {
				return time.Time{}, errors.New("lookup failed")
			}
			return r.modified[name], nil
		},
		WriteFileFn: func(_ context.Context, _ jobpage.Target, name, content string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			if name == r.failWrite {
				return errors.New("write failed")
			}
			r.files[name] = content
			r.modified[name] = now
			r.writes = append(r.writes, name)
			return nil
		},
	}
}

func newService(repo *memRepo) *publish.Service {
	svc := publish.NewService(repo.mock(), html.NewRenderer(), &mock.EntryScanner{
		ScanEntryFn: func(fileName, content string) jobpage.IndexEntry {
			return jobpage.IndexEntry{FileName: fileName, Title: content}
		},
	}, jobpage.DefaultConfig())
	svc.Sitemap = &mock.SitemapBuilder{
		BuildSitemapFn: func(domain string, entries []jobpage.IndexEntry) (string, error) {
			return fmt.Sprintf("%s:%d", domain, len(entries)), nil
		},
	}
	svc.Now = func() time.Time { return now }
	return svc
}

func TestService_Publish(t *testing.T) {
	t.Parallel()

	t.Run("writes page then regenerates index", func(t *testing.T) {
		t.Parallel()

		repo := newMemRepo()
		svc := newService(repo)

		err := svc.Publish(context.Background(), "<html>job</html>", "data-analyst-acme.html", target)

		require.NoError(t, err)
		assert.Equal(t, []string{"data-analyst-acme.html", "index.html", "index.css", "sitemap.xml"}, repo.writes)
		assert.Equal(t, "jobs.example.org:1", repo.files["sitemap.xml"])
		assert.Contains(t, repo.files["index.html"], `href="data-analyst-acme.html"`)
	})

	t.Run("skips index when page write fails", func(t *testing.T) {
		t.Parallel()

		repo := newMemRepo()
		repo.failWrite = "data-analyst-acme.html"
		svc := newService(repo)

		err := svc.Publish(context.Background(), "<html>job</html>", "data-analyst-acme.html", target)

		require.Error(t, err)
		assert.Empty(t, repo.writes)
		assert.False(t, jobpage.NewPublishResult(err).Success)
	})

	t.Run("rejects index file names", func(t *testing.T) {
		t.Parallel()

		repo := newMemRepo()
		err := newService(repo).Publish(context.Background(), "x", "index-2.html", target)

		assert.Equal(t, jobpage.EINVALID, jobpage.ErrorCode(err))
		assert.Empty(t, repo.writes)
	})

	t.Run("requires a repository", func(t *testing.T) {
		t.Parallel()

		err := newService(newMemRepo()).Publish(context.Background(), "x", "a.html", jobpage.Target{})

		assert.Equal(t, jobpage.EINVALID, jobpage.ErrorCode(err))
	})
}

func TestService_PublishJob(t *testing.T) {
	t.Parallel()

	t.Run("renders job to slug file", func(t *testing.T) {
		t.Parallel()

		repo := newMemRepo()
		svc := newService(repo)
		job := &jobpage.Job{Slug: "data-analyst-acme", PageTitle: "Acme - Data Analyst", JobTitle: "Data Analyst"}

		err := svc.PublishJob(context.Background(), job, target)

		require.NoError(t, err)
		assert.Contains(t, repo.files["data-analyst-acme.html"], "<title>Acme - Data Analyst</title>")
		assert.Contains(t, repo.files["data-analyst-acme.html"], "https://jobs.example.org/data-analyst-acme.html")
	})

	t.Run("rejects job without slug", func(t *testing.T) {
		t.Parallel()

		repo := newMemRepo()
		err := newService(repo).PublishJob(context.Background(), &jobpage.Job{}, target)

		assert.Equal(t, jobpage.EINVALID, jobpage.ErrorCode(err))
		assert.Empty(t, repo.writes)
	})
}

func TestService_RegenerateIndex(t *testing.T) {
	t.Parallel()

	t.Run("paginates and skips non-page files", func(t *testing.T) {
		t.Parallel()

		repo := newMemRepo()
		for i := range 25 {
			name := fmt.Sprintf("job-%02d.html", i)
			repo.files[name] = name
		}
		repo.files["index.html"] = "old"
		repo.files["index-7.html"] = "old"
		repo.files["post.css"] = "css"

		err := newService(repo).RegenerateIndex(context.Background(), target)

		require.NoError(t, err)
		assert.Equal(t, []string{"index.html", "index-2.html", "index-3.html", "index.css", "sitemap.xml"}, repo.writes)
		assert.Equal(t, "jobs.example.org:25", repo.files["sitemap.xml"])
	})

	t.Run("degrades failed lookups and reads", func(t *testing.T) {
		t.Parallel()

		repo := newMemRepo()
		repo.files["a.html"] = "Alpha"
		repo.files["b.html"] = "Beta"
		repo.modified["a.html"] = now
		repo.failLookup = "a.html"
		repo.failRead = "b.html"
		svc := newService(repo)

		entries, err := svc.Entries(context.Background(), target)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		byName := map[string]jobpage.IndexEntry{}
		for _, e := range entries {
			byName[e.FileName] = e
		}
		assert.Equal(t, "Alpha", byName["a.html"].Title)
		assert.True(t, byName["a.html"].LastModified.IsZero())
		assert.Equal(t, "b", byName["b.html"].Title)
	})

	t.Run("renders one page for empty repository", func(t *testing.T) {
		t.Parallel()

		repo := newMemRepo()

		err := newService(repo).RegenerateIndex(context.Background(), target)

		require.NoError(t, err)
		assert.Equal(t, []string{"index.html", "index.css", "sitemap.xml"}, repo.writes)
	})

	t.Run("returns list error", func(t *testing.T) {
		t.Parallel()

		svc := publish.NewService(&mock.Repository{
			ListFilesFn: func(_ context.Context, _ jobpage.Target) ([]string, error) {
				return nil, errors.New("unauthorized")
			},
		}, html.NewRenderer(), &mock.EntryScanner{}, jobpage.DefaultConfig())

		err := svc.RegenerateIndex(context.Background(), target)

		require.Error(t, err)
		assert.Contains(t, jobpage.NewPublishResult(err).Error, "unauthorized")
	})

	t.Run("stops at first failed index write", func(t *testing.T) {
		t.Parallel()

		repo := newMemRepo()
		for i := range 13 {
			repo.files[fmt.Sprintf("job-%02d.html", i)] = "x"
		}
		repo.failWrite = "index.html"

		err := newService(repo).RegenerateIndex(context.Background(), target)

		require.Error(t, err)
		assert.Empty(t, repo.writes)
	})
}

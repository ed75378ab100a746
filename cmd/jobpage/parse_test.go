package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/jobpage"
	main "github.com/fwojciec/jobpage/cmd/jobpage"
	"github.com/fwojciec/jobpage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDeps returns Dependencies whose extractor always yields the data
// analyst fields and whose builder passes markup through unchanged.
func newDeps(t *testing.T) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	extractor := &mock.Extractor{
		ExtractFn: func(html string) *jobpage.RawFields {
			return &jobpage.RawFields{
				Title:           "Data Analyst",
				CompanyLocation: "Acme Ltd • London • via Indeed",
				Salary:          "£35K–£40K a year",
				Description:     "We are hiring.",
			}
		},
	}
	markup := &mock.Markup{
		SafeHTMLFn:  func(s string) string { return s },
		PlainTextFn: func(s string) string { return s },
	}
	config := jobpage.DefaultConfig()
	builder := jobpage.NewBuilder(config, markup)
	builder.Now = func() time.Time { return now }
	builder.Pick = func(int) int { return 0 }

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdin:     strings.NewReader("<html></html>"),
		Stdout:    stdout,
		Stderr:    stderr,
		Config:    config,
		Extractor: extractor,
		Builder:   builder,
		Now:       func() time.Time { return now },
	}, stdout, stderr
}

func TestParseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders page with configured domain", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		var gotOpts jobpage.RenderOptions
		deps.Renderer = &mock.Renderer{
			RenderJobPageFn: func(job *jobpage.Job, opts jobpage.RenderOptions) (string, error) {
				gotOpts = opts
				return "<html>" + job.PageTitle + "</html>", nil
			},
		}

		err := (&main.ParseCmd{Input: "-", Format: "html"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "uk.job.web.id", gotOpts.Domain)
		assert.Equal(t, now, gotOpts.PublishedAt)
		assert.Equal(t, jobpage.UnitYear, gotOpts.SalaryUnit)
		assert.Equal(t, "<html>Acme Ltd - Data Analyst - London</html>\n", stdout.String())
	})

	t.Run("converts rendered page to markdown", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.Renderer = &mock.Renderer{
			RenderJobPageFn: func(*jobpage.Job, jobpage.RenderOptions) (string, error) {
				return "<h1>Data Analyst</h1>", nil
			},
		}
		var gotHTML string
		deps.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				gotHTML = html
				return "# Data Analyst", nil
			},
		}

		err := (&main.ParseCmd{Input: "-", Format: "markdown"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "<h1>Data Analyst</h1>", gotHTML)
		assert.Contains(t, stdout.String(), "slug: data-analyst-acme-ltd")
		assert.True(t, strings.HasSuffix(stdout.String(), "---\n\n# Data Analyst\n"))
	})

	t.Run("reports converter errors", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(t)
		deps.Renderer = &mock.Renderer{
			RenderJobPageFn: func(*jobpage.Job, jobpage.RenderOptions) (string, error) {
				return "<h1>Data Analyst</h1>", nil
			},
		}
		deps.Converter = &mock.Converter{
			ConvertFn: func(string) (string, error) { return "", errors.New("boom") },
		}

		err := (&main.ParseCmd{Input: "-", Format: "markdown"}).Run(deps)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("prints page structured data", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)

		err := (&main.ParseCmd{Input: "-", Format: "jsonld"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"title": "Acme Ltd - Data Analyst - London"`)
		assert.Contains(t, stdout.String(), `"image": "`+jobpage.ImageCatalog[0]+`"`)
		assert.Contains(t, stdout.String(), `"currency": "GBP"`)
	})
}

func TestPublishCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("publishes edited job to configured target", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(t)
		edit := filepath.Join(t.TempDir(), "edit.json")
		require.NoError(t, os.WriteFile(edit, []byte(`{"company":"Globex"}`), 0644))
		var gotJob *jobpage.Job
		var gotTarget jobpage.Target
		deps.Publisher = &mock.Publisher{
			PublishJobFn: func(_ context.Context, job *jobpage.Job, target jobpage.Target) error {
				gotJob = job
				gotTarget = target
				return nil
			},
		}

		err := (&main.PublishCmd{Input: "-", Edit: edit}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotJob)
		assert.Equal(t, "data-analyst-globex", gotJob.Slug)
		assert.Equal(t, deps.Config.Target(), gotTarget)
		assert.Contains(t, stdout.String(), `{"success":true}`)
		assert.Contains(t, stderr.String(), "Published data-analyst-globex.html")
	})

	t.Run("does not publish when edit is invalid", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(t)
		edit := filepath.Join(t.TempDir(), "edit.json")
		require.NoError(t, os.WriteFile(edit, []byte(`{"jsonLd":"{\"@type\":\"Event\"}"}`), 0644))
		deps.Publisher = &mock.Publisher{
			PublishJobFn: func(context.Context, *jobpage.Job, jobpage.Target) error {
				t.Fatal("PublishJob should not be called")
				return nil
			},
		}

		err := (&main.PublishCmd{Input: "-", Edit: edit}).Run(deps)

		assert.Equal(t, jobpage.EINVALID, jobpage.ErrorCode(err))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "JSON-LD @type must be JobPosting")
	})

	t.Run("reports missing edit file", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t)

		err := (&main.PublishCmd{Input: "-", Edit: filepath.Join(t.TempDir(), "missing.json")}).Run(deps)

		assert.Equal(t, jobpage.ENOTFOUND, jobpage.ErrorCode(err))
	})

	t.Run("reports publisher errors as result", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.Publisher = &mock.Publisher{
			PublishJobFn: func(context.Context, *jobpage.Job, jobpage.Target) error {
				return jobpage.Errorf(jobpage.EINVALID, "target repository required")
			},
		}

		err := (&main.PublishCmd{Input: "-"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), `{"success":false,"error":"target repository required"}`)
	})
}

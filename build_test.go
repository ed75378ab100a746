package jobpage_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/jobpage"
	"github.com/fwojciec/jobpage/html"
	"github.com/fwojciec/jobpage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buildTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newBuilder() *jobpage.Builder {
	b := jobpage.NewBuilder(jobpage.DefaultConfig(), html.NewSanitizer())
	b.Now = func() time.Time { return buildTime }
	b.Pick = func(int) int { return 3 }
	return b
}

func newRawFields() *jobpage.RawFields {
	return &jobpage.RawFields{
		Title:           "Data Analyst",
		CompanyLocation: "Acme Ltd • London • via Indeed",
		JobType:         "Full-time",
		Salary:          "Salary: £35K–£40K a year",
		Qualifications:  []string{"SQL", "Python", "SQL", " "},
		Description:     "We are hiring.<br>Join us.",
		ApplyHref:       "https://uk.indeed.com/viewjob?jk=abc&utm_source=google",
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("builds the data analyst scenario", func(t *testing.T) {
		t.Parallel()

		job := newBuilder().Build(newRawFields())

		assert.Equal(t, "Data Analyst", job.JobTitle)
		assert.Equal(t, "Acme Ltd", job.Company)
		assert.Equal(t, "London", job.Location)
		assert.Equal(t, "£35K–£40K a year", job.Salary)
		assert.Equal(t, []string{"SQL", "Python"}, job.Qualifications)
		assert.Empty(t, job.Benefits)
		assert.Equal(t, "https://uk.indeed.com/viewjob", job.ApplyLink)
		assert.Equal(t, "data-analyst-acme-ltd", job.Slug)
		assert.Equal(t, "Acme Ltd - Data Analyst - London", job.PageTitle)
		assert.Equal(t, "We are hiring.<br>Join us.", job.Description)
		assert.Equal(t, "We are hiring. Join us.", job.MetaDescription)
		assert.Equal(t, []string{"acme", "ltd", "data", "analyst", "london"}, job.Hashtags.Tags)
		assert.Equal(t, jobpage.ImageCatalog[3], job.ImageURL)
	})

	t.Run("derives structured data", func(t *testing.T) {
		t.Parallel()

		ld := newBuilder().Build(newRawFields()).JSONLD

		assert.Equal(t, "We are hiring.\nJoin us.\n\nQualifications:\n- SQL\n- Python", ld.Description)
		assert.Equal(t, "GBP", ld.BaseSalary.Currency)
		assert.Equal(t, "35K-40K", ld.BaseSalary.Value.Value)
		assert.Equal(t, jobpage.UnitYear, ld.BaseSalary.Value.UnitText)
		assert.Equal(t, "2026-05-01T12:00:00.000Z", ld.DatePosted)
	})

	t.Run("empty fields yield defaults", func(t *testing.T) {
		t.Parallel()

		job := newBuilder().Build(&jobpage.RawFields{})

		assert.Empty(t, job.JobTitle)
		assert.Equal(t, "United Kingdom", job.Location)
		assert.Empty(t, job.Slug)
		assert.Empty(t, job.MetaDescription)
		assert.NotNil(t, job.Qualifications)
		assert.Equal(t, jobpage.EINVALID, jobpage.ErrorCode(job.Validate()))
	})

	t.Run("sanitizes description through markup", func(t *testing.T) {
		t.Parallel()

		var safeIn string
		var plainIn []string
		markup := &mock.Markup{
			SafeHTMLFn: func(s string) string {
				safeIn = s
				return "<p>safe</p>"
			},
			PlainTextFn: func(s string) string {
				plainIn = append(plainIn, s)
				return "Plain text"
			},
		}
		b := jobpage.NewBuilder(jobpage.DefaultConfig(), markup)
		b.Now = func() time.Time { return buildTime }

		job := b.Build(newRawFields())

		assert.Equal(t, "We are hiring.<br>Join us.", safeIn)
		assert.Equal(t, []string{"We are hiring.<br>Join us.", "SQL", "Python"}, plainIn)
		assert.Equal(t, "<p>safe</p>", job.Description)
		assert.True(t, strings.HasPrefix(job.JSONLD.Description, "Plain text\n\nQualifications:\n- Plain text"))
	})

	t.Run("meta falls back to responsibilities", func(t *testing.T) {
		t.Parallel()

		raw := newRawFields()
		raw.Description = ""
		raw.Responsibilities = []string{"Build dashboards"}

		job := newBuilder().Build(raw)

		assert.Equal(t, "Build dashboards", job.MetaDescription)
	})
}

func TestBuilder_Update(t *testing.T) {
	t.Parallel()

	t.Run("recomputes derived fields", func(t *testing.T) {
		t.Parallel()

		b := newBuilder()
		job := b.Build(newRawFields())
		b.Now = func() time.Time { return buildTime.Add(48 * time.Hour) }
		company := "Globex"

		got, err := b.Update(job, jobpage.JobUpdate{Company: &company})

		require.NoError(t, err)
		assert.Equal(t, "data-analyst-globex", got.Slug)
		assert.Equal(t, "Globex - Data Analyst - London", got.PageTitle)
		assert.Equal(t, "Globex", got.JSONLD.HiringOrganization.Name)
		assert.Equal(t, job.JSONLD.DatePosted, got.JSONLD.DatePosted)
		assert.Equal(t, "data-analyst-acme-ltd", job.Slug)
	})

	t.Run("replaces structured data with edited JSON-LD", func(t *testing.T) {
		t.Parallel()

		b := newBuilder()
		job := b.Build(newRawFields())
		text := `{"@context":"https://schema.org/","@type":"JobPosting","title":"Custom"}`

		got, err := b.Update(job, jobpage.JobUpdate{JSONLD: &text})

		require.NoError(t, err)
		assert.Equal(t, "Custom", got.JSONLD.Title)
		assert.Equal(t, "Data Analyst", job.JSONLD.Title)
	})

	t.Run("invalid JSON-LD leaves job untouched", func(t *testing.T) {
		t.Parallel()

		b := newBuilder()
		job := b.Build(newRawFields())
		before := job.Clone()
		title := "Engineer"
		text := `{"@type":"JobPosting",`

		got, err := b.Update(job, jobpage.JobUpdate{JobTitle: &title, JSONLD: &text})

		assert.Equal(t, jobpage.EINVALID, jobpage.ErrorCode(err))
		assert.Nil(t, got)
		assert.Equal(t, before, job)
	})
}

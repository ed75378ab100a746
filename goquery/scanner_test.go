package goquery_test

import (
	"testing"

	"github.com/fwojciec/jobpage"
	"github.com/fwojciec/jobpage/goquery"
	"github.com/stretchr/testify/assert"
)

func TestEntryScanner_ScanEntry(t *testing.T) {
	t.Parallel()

	t.Run("reads entry from JSON-LD", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="keywords" content="acme, data, analyst">
</head><body>
<h1>Visible heading</h1>
<script type="application/ld+json">
{
  "@context": "https://schema.org/",
  "@type": "JobPosting",
  "title": "Acme Ltd - Data Analyst - London",
  "hiringOrganization": {"@type": "Organization", "name": "Acme Ltd"},
  "jobLocation": {"@type": "Place", "address": "London"}
}
</script>
</body></html>`

		entry := goquery.NewEntryScanner().ScanEntry("data-analyst-acme-ltd.html", html)

		assert.Equal(t, jobpage.IndexEntry{
			FileName: "data-analyst-acme-ltd.html",
			Title:    "Acme Ltd - Data Analyst - London",
			Company:  "Acme Ltd",
			Location: "London",
			Hashtags: "acme, data, analyst",
		}, entry)
	})

	t.Run("falls back to visible markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Engineer</h1>
<p class="company">Globex</p>
<p class="location">Leeds</p>
<script type="application/ld+json">{not json</script>
</body></html>`

		entry := goquery.NewEntryScanner().ScanEntry("engineer-globex.html", html)

		assert.Equal(t, "Engineer", entry.Title)
		assert.Equal(t, "Globex", entry.Company)
		assert.Equal(t, "Leeds", entry.Location)
		assert.Empty(t, entry.Hashtags)
	})

	t.Run("falls back to file name for title", func(t *testing.T) {
		t.Parallel()

		entry := goquery.NewEntryScanner().ScanEntry("mystery-job.html", "")

		assert.Equal(t, "mystery-job", entry.Title)
		assert.Equal(t, "mystery-job.html", entry.FileName)
		assert.True(t, entry.LastModified.IsZero())
	})
}

package jobpage

// Default configuration values.
const (
	DefaultLocation     = "United Kingdom"
	DefaultHashtagCount = 7
	DefaultPageSize     = 12
	DefaultDomain       = "uk.job.web.id"
	DefaultRepo         = "roywikan/job-uk"
	DefaultBranch       = "main"
	DefaultSiteName     = "UK Jobs"
)

// Salary units understood by schema.org QuantitativeValue.unitText.
const (
	UnitHour  = "HOUR"
	UnitWeek  = "WEEK"
	UnitMonth = "MONTH"
	UnitYear  = "YEAR"
)

// Config holds the tunables consumed by normalization, derivation and
// rendering. It is passed explicitly; nothing reads it from global state.
type Config struct {
	// DefaultLocation replaces empty or source-only ("via ...") locations.
	DefaultLocation string `json:"defaultLocation"`

	// HashtagCount limits the number of hashtags derived from a page title.
	HashtagCount int `json:"hashtagCount"`

	// PageSize is the number of job cards per index page.
	PageSize int `json:"pageSize"`

	// Domain is the publishing domain used for share links and the sitemap.
	Domain string `json:"domain"`

	// Repo and Branch identify the publishing repository.
	Repo   string `json:"repo"`
	Branch string `json:"branch"`

	// SalaryUnit is used when no time unit can be detected in a salary.
	SalaryUnit string `json:"salaryUnit"`

	// SiteName is the heading of the index pages.
	SiteName string `json:"siteName"`
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	return Config{
		DefaultLocation: DefaultLocation,
		HashtagCount:    DefaultHashtagCount,
		PageSize:        DefaultPageSize,
		Domain:          DefaultDomain,
		Repo:            DefaultRepo,
		Branch:          DefaultBranch,
		SalaryUnit:      UnitYear,
		SiteName:        DefaultSiteName,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.HashtagCount <= 0 {
		return Errorf(EINVALID, "hashtag count must be positive")
	}
	if c.PageSize <= 0 {
		return Errorf(EINVALID, "page size must be positive")
	}
	switch c.SalaryUnit {
	case UnitHour, UnitWeek, UnitMonth, UnitYear:
	default:
		return Errorf(EINVALID, "unknown salary unit %q", c.SalaryUnit)
	}
	return nil
}

// Target identifies where published pages go.
type Target struct {
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
	Domain string `json:"domain"`
}

// Target returns the publish target described by the config.
func (c *Config) Target() Target {
	return Target{Repo: c.Repo, Branch: c.Branch, Domain: c.Domain}
}

// DomainOrDefault returns domain, or DefaultDomain when domain is blank.
func DomainOrDefault(domain string) string {
	if domain == "" {
		return DefaultDomain
	}
	return domain
}

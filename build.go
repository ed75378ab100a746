package jobpage

import (
	"math/rand/v2"
	"slices"
	"strings"
	"time"
)

// Builder turns raw extracted fields into a canonical Job.
// Now and Pick are the only impure inputs and can be replaced in tests.
type Builder struct {
	Config Config
	Markup Markup

	// Now returns the current time for datePosted and validThrough.
	Now func() time.Time

	// Pick returns a uniformly random index in [0, n) for the featured image.
	Pick func(n int) int
}

// NewBuilder creates a new Builder using the system clock and random source.
func NewBuilder(config Config, markup Markup) *Builder {
	return &Builder{
		Config: config,
		Markup: markup,
		Now:    time.Now,
		Pick:   rand.IntN,
	}
}

// Build cleans raw fields and computes every derived field. It never fails;
// an empty RawFields yields a Job whose fields are empty or defaulted.
func (b *Builder) Build(raw *RawFields) *Job {
	company, location := SplitCompanyLocation(raw.CompanyLocation)

	job := &Job{
		JobTitle:         CleanField(raw.Title),
		Company:          CleanField(company),
		Location:         CleanLocation(CleanField(location), b.Config.DefaultLocation),
		JobType:          CleanField(raw.JobType),
		Salary:           CleanSalary(raw.Salary),
		Description:      CleanField(raw.Description),
		Qualifications:   CleanList(raw.Qualifications),
		Benefits:         CleanList(raw.Benefits),
		Responsibilities: CleanList(raw.Responsibilities),
		ApplyLink:        CleanURL(raw.ApplyHref),
		ImageURL:         PickImage(b.Pick),
	}
	b.derive(job, b.Now())
	return job
}

// Update applies manual edits to job and returns the result with derived
// fields recomputed. The input job is never modified. If the edit carries
// JSON-LD text that does not parse, Update returns EINVALID and no job.
func (b *Builder) Update(job *Job, upd JobUpdate) (*Job, error) {
	var edited *JobPosting
	if upd.JSONLD != nil {
		ld, err := ParseJobPosting(*upd.JSONLD)
		if err != nil {
			return nil, err
		}
		edited = &ld
	}

	other := job.Clone()
	if v := upd.JobTitle; v != nil {
		other.JobTitle = CleanField(*v)
	}
	if v := upd.Company; v != nil {
		other.Company = CleanField(*v)
	}
	if v := upd.Location; v != nil {
		other.Location = CleanLocation(CleanField(*v), b.Config.DefaultLocation)
	}
	if v := upd.JobType; v != nil {
		other.JobType = CleanField(*v)
	}
	if v := upd.Salary; v != nil {
		other.Salary = CleanSalary(*v)
	}
	if v := upd.Description; v != nil {
		other.Description = CleanField(*v)
	}
	if v := upd.Qualifications; v != nil {
		other.Qualifications = CleanList(*v)
	}
	if v := upd.Benefits; v != nil {
		other.Benefits = CleanList(*v)
	}
	if v := upd.Responsibilities; v != nil {
		other.Responsibilities = CleanList(*v)
	}
	if v := upd.ApplyLink; v != nil {
		other.ApplyLink = CleanURL(*v)
	}

	b.derive(other, b.postedAt(job))
	if edited != nil {
		other.JSONLD = *edited
	}
	return other, nil
}

// derive computes every field that depends on more than one clean field.
// Description is sanitized here, after CleanField has run on it.
func (b *Builder) derive(job *Job, now time.Time) {
	plain := b.Markup.PlainText(job.Description)
	job.Description = b.Markup.SafeHTML(job.Description)

	job.Slug = Slug(job.JobTitle, job.Company)
	job.PageTitle = PageTitle(job.Company, job.JobTitle, job.Location)
	job.MetaDescription = MetaDescription(
		plain,
		strings.Join(job.Responsibilities, " "),
		strings.Join(job.Qualifications, " "),
	)
	job.Hashtags = GenerateHashtags(job.PageTitle, b.Config.HashtagCount)
	job.JSONLD = NewJobPosting(job, b.structuredDescription(job, plain), ParseSalary(job.Salary, b.Config.SalaryUnit), now)
}

// structuredDescription is the description text used in JSON-LD. The list
// sections follow the description as dash bullets.
func (b *Builder) structuredDescription(job *Job, plain string) string {
	parts := []string{plain}
	for _, section := range []struct {
		heading string
		items   []string
	}{
		{"Qualifications", job.Qualifications},
		{"Benefits", job.Benefits},
		{"Responsibilities", job.Responsibilities},
	} {
		if len(section.items) == 0 {
			continue
		}
		items := slices.Clone(section.items)
		for i, item := range items {
			items[i] = b.Markup.PlainText(item)
		}
		parts = append(parts, section.heading+":"+"\n- "+strings.Join(items, "\n- "))
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

// postedAt keeps the original posting date across edits.
func (b *Builder) postedAt(job *Job) time.Time {
	if t, err := time.Parse(jsonTimeLayout, job.JSONLD.DatePosted); err == nil {
		return t
	}
	return b.Now()
}

package jobpage

import (
	"context"
	"slices"
	"time"
)

// RawFields holds field values pulled straight out of snapshot markup.
// Nothing is validated; a field that could not be located is empty.
type RawFields struct {
	Title string `json:"title"`

	// CompanyLocation is the "Company • Location • via Source" line,
	// split during building.
	CompanyLocation string `json:"companyLocation"`

	JobType          string   `json:"jobType"`
	Salary           string   `json:"salary"`
	Qualifications   []string `json:"qualifications"`
	Benefits         []string `json:"benefits"`
	Responsibilities []string `json:"responsibilities"`

	// Description is the inner HTML of the description block.
	Description string `json:"description"`

	ApplyHref string `json:"applyHref"`
}

// IsEmpty reports whether no field was extracted at all.
func (r *RawFields) IsEmpty() bool {
	return r.Title == "" && r.CompanyLocation == "" && r.JobType == "" &&
		r.Salary == "" && r.Description == "" && r.ApplyHref == "" &&
		len(r.Qualifications) == 0 && len(r.Benefits) == 0 && len(r.Responsibilities) == 0
}

// Job is the canonical job record flowing from the builder to the renderer
// and the record store.
type Job struct {
	// ID is assigned by the record store.
	ID string `json:"id,omitempty"`

	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Location string `json:"location"`
	JobType  string `json:"jobType"`
	Salary   string `json:"salary"`

	// Description is sanitized HTML that keeps line breaks.
	Description string `json:"description"`

	Qualifications   []string `json:"qualifications"`
	Benefits         []string `json:"benefits"`
	Responsibilities []string `json:"responsibilities"`

	// ApplyLink is an absolute URL without query parameters.
	ApplyLink string `json:"applyLink"`

	Slug            string     `json:"slug"`
	PageTitle       string     `json:"pageTitle"`
	MetaDescription string     `json:"metaDescription"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	Hashtags        Hashtags   `json:"hashtags"`
	JSONLD          JobPosting `json:"jsonLd"`

	// ContentHash and CreatedAt are set by the record store.
	ContentHash string    `json:"contentHash,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// FileName returns the published file name of the job page.
func (j *Job) FileName() string {
	return j.Slug + ".html"
}

// Validate returns an error if the job cannot be published or stored.
func (j *Job) Validate() error {
	if j.Slug == "" {
		return Errorf(EINVALID, "job slug required")
	}
	if j.PageTitle == "" {
		return Errorf(EINVALID, "job page title required")
	}
	return nil
}

// Clone returns a deep copy of the job.
func (j *Job) Clone() *Job {
	other := *j
	other.Qualifications = slices.Clone(j.Qualifications)
	other.Benefits = slices.Clone(j.Benefits)
	other.Responsibilities = slices.Clone(j.Responsibilities)
	other.Hashtags = Hashtags{Tags: slices.Clone(j.Hashtags.Tags)}
	return &other
}

// JobUpdate represents manual edits applied to a parsed job.
// Nil fields are left unchanged.
type JobUpdate struct {
	JobTitle         *string   `json:"jobTitle"`
	Company          *string   `json:"company"`
	Location         *string   `json:"location"`
	JobType          *string   `json:"jobType"`
	Salary           *string   `json:"salary"`
	Description      *string   `json:"description"`
	Qualifications   *[]string `json:"qualifications"`
	Benefits         *[]string `json:"benefits"`
	Responsibilities *[]string `json:"responsibilities"`
	ApplyLink        *string   `json:"applyLink"`

	// JSONLD is hand-edited structured data text. It replaces the derived
	// JSON-LD when it parses as a JobPosting.
	JSONLD *string `json:"jsonLd"`
}

// JobService represents a service for managing stored job records.
type JobService interface {
	// CreateJob stores a job and assigns its ID, ContentHash and CreatedAt.
	// Returns ECONFLICT if a job with the same slug exists.
	CreateJob(ctx context.Context, job *Job) error

	// FindJobBySlug retrieves a job by slug.
	// Returns ENOTFOUND if the job does not exist.
	FindJobBySlug(ctx context.Context, slug string) (*Job, error)

	// FindJobs retrieves jobs matching the filter, newest first.
	FindJobs(ctx context.Context, filter JobFilter) ([]*Job, error)

	// DeleteJob permanently removes a job.
	// Returns ENOTFOUND if the job does not exist.
	DeleteJob(ctx context.Context, id string) error
}

// JobFilter represents a filter for FindJobs.
type JobFilter struct {
	ID      *string `json:"id"`
	Company *string `json:"company"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

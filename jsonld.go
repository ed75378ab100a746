package jobpage

import (
	"encoding/json"
	"time"
)

// ValidFor is how long a posting stays valid after it is generated.
const ValidFor = 30 * 24 * time.Hour

// jsonTimeLayout matches the ISO form with milliseconds used by browsers.
const jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// JobPosting is the schema.org JobPosting embedded in a job page.
// Field order is the serialization order.
type JobPosting struct {
	Context            string         `json:"@context"`
	Type               string         `json:"@type"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Image              string         `json:"image,omitempty"`
	HiringOrganization Organization   `json:"hiringOrganization"`
	JobLocation        Place          `json:"jobLocation"`
	EmploymentType     string         `json:"employmentType"`
	DatePosted         string         `json:"datePosted"`
	ValidThrough       string         `json:"validThrough"`
	BaseSalary         MonetaryAmount `json:"baseSalary"`
}

// Organization is a schema.org Organization.
type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Place is a schema.org Place.
type Place struct {
	Type    string `json:"@type"`
	Address string `json:"address"`
}

// MonetaryAmount is a schema.org MonetaryAmount.
type MonetaryAmount struct {
	Type     string            `json:"@type"`
	Currency string            `json:"currency"`
	Value    QuantitativeValue `json:"value"`
}

// QuantitativeValue is a schema.org QuantitativeValue.
type QuantitativeValue struct {
	Type     string `json:"@type"`
	Value    string `json:"value"`
	UnitText string `json:"unitText"`
}

// NewJobPosting builds the structured data for job. The description uses the
// structured-data text variant, never the HTML one.
func NewJobPosting(job *Job, plainDescription string, salary Salary, now time.Time) JobPosting {
	now = now.UTC()
	return JobPosting{
		Context:     "https://schema.org/",
		Type:        "JobPosting",
		Title:       job.JobTitle,
		Description: CleanForStructuredData(plainDescription),
		HiringOrganization: Organization{
			Type: "Organization",
			Name: job.Company,
		},
		JobLocation: Place{
			Type:    "Place",
			Address: job.Location,
		},
		EmploymentType: job.JobType,
		DatePosted:     now.Format(jsonTimeLayout),
		ValidThrough:   now.Add(ValidFor).Format(jsonTimeLayout),
		BaseSalary:     NewMonetaryAmount(salary),
	}
}

// NewMonetaryAmount converts an inferred salary into a MonetaryAmount.
func NewMonetaryAmount(salary Salary) MonetaryAmount {
	return MonetaryAmount{
		Type:     "MonetaryAmount",
		Currency: salary.Currency,
		Value: QuantitativeValue{
			Type:     "QuantitativeValue",
			Value:    salary.Value,
			UnitText: salary.Unit,
		},
	}
}

// PageJobPosting returns the job's structured data as embedded in its page:
// title, image and base salary are taken from the job itself, overriding
// whatever the stored JSON-LD holds.
func PageJobPosting(job *Job, defaultUnit string) JobPosting {
	ld := job.JSONLD
	ld.Title = job.PageTitle
	ld.Image = job.ImageURL
	ld.BaseSalary = NewMonetaryAmount(ParseSalary(job.Salary, defaultUnit))
	return ld
}

// ParseJobPosting parses hand-edited JSON-LD text.
// Returns EINVALID if the text is not a JobPosting object.
func ParseJobPosting(text string) (JobPosting, error) {
	var ld JobPosting
	if err := json.Unmarshal([]byte(text), &ld); err != nil {
		return JobPosting{}, Errorf(EINVALID, "invalid JSON-LD: %v", err)
	}
	if ld.Type != "JobPosting" {
		return JobPosting{}, Errorf(EINVALID, "JSON-LD @type must be JobPosting, got %q", ld.Type)
	}
	return ld, nil
}

// MarshalJobPosting serializes ld with two-space indentation.
func MarshalJobPosting(ld JobPosting) (string, error) {
	b, err := json.MarshalIndent(ld, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

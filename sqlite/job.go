package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/jobpage"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ jobpage.JobService = (*JobService)(nil)

// JobService implements jobpage.JobService using SQLite.
type JobService struct {
	db *DB
}

// NewJobService creates a new JobService.
func NewJobService(db *DB) *JobService {
	return &JobService{db: db}
}

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const jobColumns = `id, slug, job_title, company, location, job_type, salary, description,
	qualifications, benefits, responsibilities, apply_link, page_title, meta_description,
	image_url, hashtags, json_ld, content_hash, created_at`

// jobHash identifies the published content of a job.
func jobHash(job *jobpage.Job) string {
	parts := []string{job.PageTitle, job.Company, job.Location, job.JobType, job.Salary, job.Description, job.ApplyLink}
	parts = append(parts, job.Qualifications...)
	parts = append(parts, job.Benefits...)
	parts = append(parts, job.Responsibilities...)
	return hashContent(strings.Join(parts, "\x00"))
}

// CreateJob stores a new job record.
func (s *JobService) CreateJob(ctx context.Context, job *jobpage.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs WHERE slug = ?", job.Slug).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return jobpage.Errorf(jobpage.ECONFLICT, "job %q already exists", job.Slug)
	}

	quals, err := marshalColumn(nonNil(job.Qualifications))
	if err != nil {
		return err
	}
	benefits, err := marshalColumn(nonNil(job.Benefits))
	if err != nil {
		return err
	}
	resps, err := marshalColumn(nonNil(job.Responsibilities))
	if err != nil {
		return err
	}
	tags, err := marshalColumn(nonNil(job.Hashtags.Tags))
	if err != nil {
		return err
	}
	ld, err := marshalColumn(job.JSONLD)
	if err != nil {
		return err
	}

	job.ID = uuid.New().String()
	job.ContentHash = jobHash(job)
	job.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO jobs (`+jobColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, job.ID, job.Slug, job.JobTitle, job.Company, job.Location, job.JobType, job.Salary, job.Description,
		quals, benefits, resps, job.ApplyLink, job.PageTitle, job.MetaDescription,
		job.ImageURL, tags, ld, job.ContentHash, job.CreatedAt.Format(timeLayout))

	return err
}

// FindJobBySlug retrieves a job by slug.
func (s *JobService) FindJobBySlug(ctx context.Context, slug string) (*jobpage.Job, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+jobColumns+" FROM jobs WHERE slug = ?", slug)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, jobpage.Errorf(jobpage.ENOTFOUND, "job not found")
	}
	return job, err
}

// FindJobs retrieves jobs matching the filter, newest first.
func (s *JobService) FindJobs(ctx context.Context, filter jobpage.JobFilter) ([]*jobpage.Job, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + jobColumns + " FROM jobs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Company != nil {
		query.WriteString(" AND company = ?")
		args = append(args, *filter.Company)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*jobpage.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// DeleteJob permanently removes a job.
func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return jobpage.Errorf(jobpage.ENOTFOUND, "job not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(row scanner) (*jobpage.Job, error) {
	var job jobpage.Job
	var quals, benefits, resps, tags, ld, createdAt string

	if err := row.Scan(&job.ID, &job.Slug, &job.JobTitle, &job.Company, &job.Location, &job.JobType,
		&job.Salary, &job.Description, &quals, &benefits, &resps, &job.ApplyLink, &job.PageTitle,
		&job.MetaDescription, &job.ImageURL, &tags, &ld, &job.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	if err := unmarshalColumn(quals, "qualifications", &job.Qualifications); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(benefits, "benefits", &job.Benefits); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(resps, "responsibilities", &job.Responsibilities); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(tags, "hashtags", &job.Hashtags.Tags); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(ld, "json_ld", &job.JSONLD); err != nil {
		return nil, err
	}

	var err error
	job.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

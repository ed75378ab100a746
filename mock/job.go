package mock

import (
	"context"

	"github.com/fwojciec/jobpage"
)

var _ jobpage.JobService = (*JobService)(nil)

// JobService is a mock implementation of jobpage.JobService.
type JobService struct {
	CreateJobFn     func(ctx context.Context, job *jobpage.Job) error
	FindJobBySlugFn func(ctx context.Context, slug string) (*jobpage.Job, error)
	FindJobsFn      func(ctx context.Context, filter jobpage.JobFilter) ([]*jobpage.Job, error)
	DeleteJobFn     func(ctx context.Context, id string) error
}

func (s *JobService) CreateJob(ctx context.Context, job *jobpage.Job) error {
	return s.CreateJobFn(ctx, job)
}

func (s *JobService) FindJobBySlug(ctx context.Context, slug string) (*jobpage.Job, error) {
	return s.FindJobBySlugFn(ctx, slug)
}

func (s *JobService) FindJobs(ctx context.Context, filter jobpage.JobFilter) ([]*jobpage.Job, error) {
	return s.FindJobsFn(ctx, filter)
}

func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	return s.DeleteJobFn(ctx, id)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobpage"
)

// Ensure LoggingJobService implements jobpage.JobService.
var _ jobpage.JobService = (*LoggingJobService)(nil)

// LoggingJobService wraps a JobService with logging.
type LoggingJobService struct {
	next   jobpage.JobService
	logger *slog.Logger
}

// NewLoggingJobService creates a new LoggingJobService.
func NewLoggingJobService(next jobpage.JobService, logger *slog.Logger) *LoggingJobService {
	return &LoggingJobService{next: next, logger: logger}
}

func (s *LoggingJobService) CreateJob(ctx context.Context, job *jobpage.Job) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create job",
			"slug", job.Slug,
			"id", job.ID,
			"hash", job.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateJob(ctx, job)
}

func (s *LoggingJobService) FindJobBySlug(ctx context.Context, slug string) (job *jobpage.Job, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find job",
			"slug", slug,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindJobBySlug(ctx, slug)
}

func (s *LoggingJobService) FindJobs(ctx context.Context, filter jobpage.JobFilter) (jobs []*jobpage.Job, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find jobs",
			"count", len(jobs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindJobs(ctx, filter)
}

func (s *LoggingJobService) DeleteJob(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete job",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteJob(ctx, id)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobpage"
)

// Ensure LoggingRepository implements jobpage.Repository.
var _ jobpage.Repository = (*LoggingRepository)(nil)

// LoggingRepository wraps a Repository with debug logging. Reads are logged
// at debug level since index regeneration issues one per published page.
type LoggingRepository struct {
	next   jobpage.Repository
	logger *slog.Logger
}

// NewLoggingRepository creates a new LoggingRepository.
func NewLoggingRepository(next jobpage.Repository, logger *slog.Logger) *LoggingRepository {
	return &LoggingRepository{next: next, logger: logger}
}

func (r *LoggingRepository) ListFiles(ctx context.Context, target jobpage.Target) (names []string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("list files",
			"repo", target.Repo,
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ListFiles(ctx, target)
}

func (r *LoggingRepository) ReadFile(ctx context.Context, target jobpage.Target, name string) (content string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("read file",
			"repo", target.Repo,
			"name", name,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadFile(ctx, target, name)
}

func (r *LoggingRepository) LastModified(ctx context.Context, target jobpage.Target, name string) (t time.Time, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("last modified",
			"repo", target.Repo,
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.LastModified(ctx, target, name)
}

func (r *LoggingRepository) WriteFile(ctx context.Context, target jobpage.Target, name, content string) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("write file",
			"repo", target.Repo,
			"branch", target.Branch,
			"name", name,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.WriteFile(ctx, target, name, content)
}

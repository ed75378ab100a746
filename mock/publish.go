package mock

import (
	"context"
	"time"

	"github.com/fwojciec/jobpage"
)

var _ jobpage.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of jobpage.Publisher.
type Publisher struct {
	PublishJobFn      func(ctx context.Context, job *jobpage.Job, target jobpage.Target) error
	PublishFn         func(ctx context.Context, content, fileName string, target jobpage.Target) error
	RegenerateIndexFn func(ctx context.Context, target jobpage.Target) error
}

func (p *Publisher) PublishJob(ctx context.Context, job *jobpage.Job, target jobpage.Target) error {
	return p.PublishJobFn(ctx, job, target)
}

func (p *Publisher) Publish(ctx context.Context, content, fileName string, target jobpage.Target) error {
	return p.PublishFn(ctx, content, fileName, target)
}

func (p *Publisher) RegenerateIndex(ctx context.Context, target jobpage.Target) error {
	return p.RegenerateIndexFn(ctx, target)
}

var _ jobpage.Repository = (*Repository)(nil)

// Repository is a mock implementation of jobpage.Repository.
type Repository struct {
	ListFilesFn    func(ctx context.Context, target jobpage.Target) ([]string, error)
	ReadFileFn     func(ctx context.Context, target jobpage.Target, name string) (string, error)
	LastModifiedFn func(ctx context.Context, target jobpage.Target, name string) (time.Time, error)
	WriteFileFn    func(ctx context.Context, target jobpage.Target, name, content string) error
}

func (r *Repository) ListFiles(ctx context.Context, target jobpage.Target) ([]string, error) {
	return r.ListFilesFn(ctx, target)
}

func (r *Repository) ReadFile(ctx context.Context, target jobpage.Target, name string) (string, error) {
	return r.ReadFileFn(ctx, target, name)
}

func (r *Repository) LastModified(ctx context.Context, target jobpage.Target, name string) (time.Time, error) {
	return r.LastModifiedFn(ctx, target, name)
}

func (r *Repository) WriteFile(ctx context.Context, target jobpage.Target, name, content string) error {
	return r.WriteFileFn(ctx, target, name, content)
}

package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/jobpage"
	"github.com/fwojciec/jobpage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobService_CreateJob(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateJobFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *jobpage.Job
		s := &mock.JobService{
			CreateJobFn: func(_ context.Context, job *jobpage.Job) error {
				calledWith = job
				return nil
			},
		}

		job := &jobpage.Job{Slug: "data-analyst-acme"}
		err := s.CreateJob(context.Background(), job)

		require.NoError(t, err)
		assert.Same(t, job, calledWith)
	})

	t.Run("returns error from CreateJobFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.JobService{
			CreateJobFn: func(_ context.Context, _ *jobpage.Job) error {
				return jobpage.Errorf(jobpage.ECONFLICT, "exists")
			},
		}

		err := s.CreateJob(context.Background(), &jobpage.Job{})

		assert.Equal(t, jobpage.ECONFLICT, jobpage.ErrorCode(err))
	})
}

package jobpage

import "context"

// Publisher persists rendered pages and regenerates the published index.
type Publisher interface {
	// PublishJob validates and renders job, then publishes it as slug.html.
	// Returns EINVALID if the job has no title.
	PublishJob(ctx context.Context, job *Job, target Target) error

	// Publish writes content as fileName to the target and then regenerates
	// the index. The index is left alone if the write fails.
	Publish(ctx context.Context, content, fileName string, target Target) error

	// RegenerateIndex rebuilds every index page from the published files.
	RegenerateIndex(ctx context.Context, target Target) error
}

// PublishResult reports the outcome of one publish call.
type PublishResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// NewPublishResult converts the error returned by a Publisher into a result.
func NewPublishResult(err error) PublishResult {
	if err == nil {
		return PublishResult{Success: true}
	}
	msg := ErrorMessage(err)
	if ErrorCode(err) == EINTERNAL {
		msg = err.Error()
	}
	return PublishResult{Error: msg}
}

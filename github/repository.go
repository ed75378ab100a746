// Package github stores published pages in a GitHub repository through the
// REST contents and commits APIs.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/jobpage"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// DefaultRequestsPerSecond keeps bursts of index writes under the secondary
// rate limit for content creation.
const DefaultRequestsPerSecond = 5

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 30 * time.Second

// Ensure Repository implements jobpage.Repository at compile time.
var _ jobpage.Repository = (*Repository)(nil)

// Repository reads and writes files at the root of a GitHub repository.
// Every request passes through a token-bucket limiter.
type Repository struct {
	baseURL string
	token   string
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Repository.
type Option func(*Repository)

// WithBaseURL overrides the API root, for GitHub Enterprise or tests.
func WithBaseURL(u string) Option {
	return func(r *Repository) {
		r.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Repository) {
		r.client = c
	}
}

// WithRateLimit sets the sustained request rate and burst size.
func WithRateLimit(rps float64, burst int) Option {
	return func(r *Repository) {
		r.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewRepository creates a new Repository authenticating with token.
func NewRepository(token string, opts ...Option) *Repository {
	r := &Repository{
		baseURL: DefaultBaseURL,
		token:   token,
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(DefaultRequestsPerSecond, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type contentItem struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type commitItem struct {
	Commit struct {
		Committer struct {
			Date time.Time `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch,omitempty"`
	SHA     string `json:"sha,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
}

// ListFiles returns the names of the files at the repository root.
func (r *Repository) ListFiles(ctx context.Context, target jobpage.Target) ([]string, error) {
	var items []contentItem
	if err := r.do(ctx, http.MethodGet, r.contentsPath(target, ""), refQuery(target), nil, &items); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type == "file" {
			names = append(names, item.Name)
		}
	}
	return names, nil
}

// ReadFile returns the decoded content of name.
// Returns ENOTFOUND if the file does not exist.
func (r *Repository) ReadFile(ctx context.Context, target jobpage.Target, name string) (string, error) {
	item, err := r.stat(ctx, target, name)
	if err != nil {
		return "", err
	}
	if item.Encoding != "base64" {
		return "", jobpage.Errorf(jobpage.EINTERNAL, "unsupported content encoding %q for %s", item.Encoding, name)
	}
	b, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(item.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(b), nil
}

// LastModified returns the committer date of the last commit touching name.
// Returns ENOTFOUND if no commit touches the file.
func (r *Repository) LastModified(ctx context.Context, target jobpage.Target, name string) (time.Time, error) {
	q := url.Values{"path": {name}, "per_page": {"1"}}
	if target.Branch != "" {
		q.Set("sha", target.Branch)
	}

	var commits []commitItem
	if err := r.do(ctx, http.MethodGet, "/repos/"+target.Repo+"/commits", q, nil, &commits); err != nil {
		return time.Time{}, err
	}
	if len(commits) == 0 {
		return time.Time{}, jobpage.Errorf(jobpage.ENOTFOUND, "no commits for %s", name)
	}
	return commits[0].Commit.Committer.Date, nil
}

// WriteFile creates or replaces name with one commit. An existing file is
// replaced using its current blob SHA.
func (r *Repository) WriteFile(ctx context.Context, target jobpage.Target, name, content string) error {
	req := putRequest{
		Message: "Update " + name,
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
		Branch:  target.Branch,
	}

	existing, err := r.stat(ctx, target, name)
	switch {
	case err == nil:
		req.SHA = existing.SHA
	case jobpage.ErrorCode(err) != jobpage.ENOTFOUND:
		return err
	}

	return r.do(ctx, http.MethodPut, r.contentsPath(target, name), nil, req, nil)
}

func (r *Repository) stat(ctx context.Context, target jobpage.Target, name string) (*contentItem, error) {
	var item contentItem
	if err := r.do(ctx, http.MethodGet, r.contentsPath(target, name), refQuery(target), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) contentsPath(target jobpage.Target, name string) string {
	return "/repos/" + target.Repo + "/contents/" + url.PathEscape(name)
}

func refQuery(target jobpage.Target) url.Values {
	if target.Branch == "" {
		return nil
	}
	return url.Values{"ref": {target.Branch}}
}

// do performs one API call, encoding body as JSON when non-nil and decoding
// the response into out when non-nil.
func (r *Repository) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	u := r.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return jobpage.Errorf(jobpage.ENOTFOUND, "%s not found", path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("github %s %s: HTTP %d: %s", method, path, resp.StatusCode, apiErr.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode github response: %w", err)
	}
	return nil
}

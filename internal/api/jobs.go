package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/kazi/internal/models"
)

//go:embed fallback_jobs.json
var fallbackJobsJSON []byte

// JobList is the result of ListJobs. FromFallback is set when the API was unreachable
// and the bundled catalogue was returned instead.
type JobList struct {
	Jobs         []models.Job
	FromFallback bool
}

func (c *Client) ListJobs(ctx context.Context) (JobList, error) {
	var wire []wireJob
	err := c.do(ctx, "list jobs", fhttp.MethodGet, "/jobs", nil, &wire)
	if err == nil {
		return JobList{Jobs: normalizeJobs(wire)}, nil
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) || !netErr.Unreachable() {
		return JobList{}, err
	}
	jobs, fallbackErr := FallbackJobs()
	if fallbackErr != nil {
		return JobList{}, errors.Join(err, fallbackErr)
	}
	c.logger.Warn().Err(err).Int("jobs", len(jobs)).Msg("api unreachable, using bundled jobs")
	return JobList{Jobs: jobs, FromFallback: true}, nil
}

// FallbackJobs returns the catalogue bundled with the binary.
func FallbackJobs() ([]models.Job, error) {
	var wire []wireJob
	if err := json.Unmarshal(fallbackJobsJSON, &wire); err != nil {
		return nil, fmt.Errorf("decode bundled jobs: %w", err)
	}
	jobs := make([]models.Job, 0, len(wire))
	for _, w := range wire {
		jobs = append(jobs, w.normalize())
	}
	if err := models.ValidateJobs(jobs); err != nil {
		return nil, fmt.Errorf("bundled jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob posts a new job on behalf of an employer.
func (c *Client) CreateJob(ctx context.Context, draft models.JobDraft) (models.Job, error) {
	if err := models.Validate(draft); err != nil {
		return models.Job{}, err
	}
	var wire wireJob
	if err := c.do(ctx, "create job", fhttp.MethodPost, "/jobs", draft, &wire); err != nil {
		return models.Job{}, err
	}
	job := wire.normalize()
	if job.ID == "" {
		return models.Job{}, &NetworkError{Op: "create job", StatusCode: fhttp.StatusOK, Reason: "response without job id"}
	}
	return job, nil
}

func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var wire []wireEmployee
	if err := c.do(ctx, "list employees", fhttp.MethodGet, "/employees", nil, &wire); err != nil {
		return nil, err
	}
	employees := make([]models.Employee, 0, len(wire))
	for _, w := range wire {
		if employee := w.normalize(); employee.ID != "" {
			employees = append(employees, employee)
		}
	}
	return employees, nil
}

func jobPath(jobID string, suffix string) string {
	return "/jobs/" + url.PathEscape(jobID) + suffix
}

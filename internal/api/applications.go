package api

import (
	"context"
	"net/url"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/kazi/internal/models"
)

// ApplicationQuery selects applications by applicant, by job, or both.
type ApplicationQuery struct {
	ApplicantID string
	JobID       string
}

func (c *Client) ListApplications(ctx context.Context, query ApplicationQuery) ([]models.Application, error) {
	values := url.Values{}
	if query.ApplicantID != "" {
		values.Set("applicantId", query.ApplicantID)
	}
	if query.JobID != "" {
		values.Set("jobId", query.JobID)
	}
	path := "/applications"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var wire []wireApplication
	if err := c.do(ctx, "list applications", fhttp.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}
	apps := make([]models.Application, 0, len(wire))
	for _, w := range wire {
		if app := w.normalize(); app.ID != "" && app.JobID != "" {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (c *Client) CreateApplication(ctx context.Context, jobID string, payload models.ApplicationPayload) (models.Application, error) {
	var wire wireApplication
	if err := c.do(ctx, "apply", fhttp.MethodPost, jobPath(jobID, "/applications"), payload, &wire); err != nil {
		return models.Application{}, err
	}
	app := wire.normalize()
	if app.JobID == "" {
		app.JobID = jobID
	}
	return app, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, appID string, status models.ApplicationStatus) (models.Application, error) {
	body := map[string]string{"status": string(status)}
	var wire wireApplication
	path := "/applications/" + url.PathEscape(appID)
	if err := c.do(ctx, "update application", fhttp.MethodPatch, path, body, &wire); err != nil {
		return models.Application{}, err
	}
	return wire.normalize(), nil
}

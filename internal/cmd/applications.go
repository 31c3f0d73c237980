package cmd

import (
	"fmt"

	"github.com/jimezsa/kazi/internal/api"
	"github.com/jimezsa/kazi/internal/export"
	"github.com/jimezsa/kazi/internal/models"
	"github.com/jimezsa/kazi/internal/reconcile"
	"github.com/jimezsa/kazi/internal/search"
)

type ApplicationsCmd struct {
	List   ApplicationsListCmd   `cmd:"" default:"withargs" help:"List applications."`
	Status ApplicationsStatusCmd `cmd:"" help:"Accept or reject an application (employers)."`
}

type ApplicationsListCmd struct {
	Job string `help:"Only applications for this job."`
	OutputOptions
}

type ApplicationsStatusCmd struct {
	ID     string `arg:"" help:"Application id."`
	Status string `arg:"" help:"New status: pending, accepted or rejected."`
}

func (c *ApplicationsListCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return ctx.fail(err)
	}
	format, err := resolveFormat(ctx, c.OutputOptions)
	if err != nil {
		return err
	}

	query := api.ApplicationQuery{JobID: c.Job}
	if user.Role == models.RoleEmployee {
		query.ApplicantID = user.ID
	}

	done := ctx.loading()
	apps, err := ctx.client().ListApplications(ctx.context(), query)
	done()
	if err != nil {
		return ctx.fail(err)
	}

	if c.Job != "" {
		// Older API builds ignore the jobId query parameter.
		rec := reconcile.New(ctx.client(), user.ID, ctx.Logger)
		rec.Load(apps, nil)
		apps = rec.ApplicationsFor(c.Job)
	}
	if user.Role == models.RoleEmployer && c.Job == "" {
		apps, err = ownApplications(ctx, user, apps)
		if err != nil {
			return err
		}
	}

	if len(apps) == 0 {
		ctx.UI.Infof("%s", ctx.msg("applications.none"))
		return nil
	}

	writer, closeOutput, err := openOutput(ctx, c.OutputOptions)
	if err != nil {
		return err
	}
	defer closeOutput()
	return export.WriteApplications(writer, apps, format, writeOptions(ctx, writer))
}

// ownApplications keeps the applications made to jobs posted by employer.
func ownApplications(ctx *Context, employer models.Identity, apps []models.Application) ([]models.Application, error) {
	jobs, err := fetchJobs(ctx)
	if err != nil {
		return nil, err
	}
	own := make(map[string]struct{})
	for _, job := range search.ByEmployer(jobs, employer.ID) {
		own[job.ID] = struct{}{}
	}
	out := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if _, ok := own[app.JobID]; ok {
			out = append(out, app)
		}
	}
	return out, nil
}

func (c *ApplicationsStatusCmd) Run(ctx *Context) error {
	user, err := ctx.requireEmployer()
	if err != nil {
		return ctx.fail(err)
	}
	status, err := models.ParseApplicationStatus(c.Status)
	if err != nil || !status.Stored() {
		return fmt.Errorf("%s", ctx.msg("status.invalid", c.Status))
	}

	rec := reconcile.New(ctx.client(), user.ID, ctx.Logger)
	done := ctx.loading()
	app, err := rec.UpdateStatus(ctx.context(), c.ID, status)
	done()
	if err != nil {
		return ctx.fail(err)
	}
	label := ctx.msg("label." + string(app.Status))
	ctx.UI.Successf("%s", ctx.msg("status.updated", app.ID, label))
	return nil
}

package cmd

import (
	"github.com/jimezsa/kazi/internal/models"
)

type ApplyCmd struct {
	JobID string `arg:"" name:"job-id" help:"Job to apply for."`
	Note  string `help:"Short cover note for the employer."`
}

func (c *ApplyCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return ctx.fail(err)
	}

	// Without the user's applications a duplicate cannot be ruled out.
	rec, err := ctx.reconciler(user)
	if err != nil {
		return ctx.fail(err)
	}
	done := ctx.loading()
	app, err := rec.Apply(ctx.context(), c.JobID, c.Note)
	done()
	if err != nil {
		return ctx.fail(err)
	}

	title := app.JobID
	if job, ok := models.JobByID(ctx.Session.State().CurrentJobs, app.JobID); ok {
		title = job.Title
	}
	ctx.UI.Successf("%s", ctx.msg("apply.success", title))
	return nil
}

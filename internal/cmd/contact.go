package cmd

import (
	"fmt"

	"github.com/jimezsa/kazi/internal/contact"
	"github.com/jimezsa/kazi/internal/models"
)

type ContactCmd struct {
	JobID string `arg:"" name:"job-id" help:"Job whose employer to contact."`
}

func (c *ContactCmd) Run(ctx *Context) error {
	jobs, err := fetchJobs(ctx)
	if err != nil {
		return err
	}
	job, ok := models.JobByID(jobs, c.JobID)
	if !ok {
		return fmt.Errorf("%s", ctx.msg("job.not_found", c.JobID))
	}

	tel, err := contact.TelLink(job.Phone)
	if err != nil {
		ctx.UI.Warnf("%s", ctx.msg("contact.none"))
		return nil
	}
	whatsapp, err := contact.WhatsAppLink(job.Phone, ctx.msg("contact.greeting", job.Title))
	if err != nil {
		return err
	}

	lines := []string{
		contact.FormatPhone(job.Phone),
		ctx.UI.LinkText(tel),
		ctx.UI.LinkText(whatsapp),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(ctx.Out, line); err != nil {
			return err
		}
	}
	return nil
}

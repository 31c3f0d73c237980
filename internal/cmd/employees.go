package cmd

import (
	"fmt"

	"github.com/jimezsa/kazi/internal/export"
	"github.com/jimezsa/kazi/internal/models"
	"github.com/jimezsa/kazi/internal/search"
	"github.com/jimezsa/kazi/internal/session"
)

type EmployeesCmd struct {
	Skills    string `help:"Comma-separated skills to look for."`
	Job       string `help:"Match workers against this job's skill tags."`
	Available bool   `help:"Only workers marked available."`
	Page      int    `help:"Page number." default:"1"`
	OutputOptions
}

func (c *EmployeesCmd) Run(ctx *Context) error {
	if _, err := ctx.requireEmployer(); err != nil {
		return ctx.fail(err)
	}
	format, err := resolveFormat(ctx, c.OutputOptions)
	if err != nil {
		return err
	}

	done := ctx.loading()
	employees, err := ctx.client().ListEmployees(ctx.context())
	done()
	if err != nil {
		return ctx.fail(err)
	}
	state := ctx.dispatch(session.SetEmployees(employees))
	employees = state.Employees

	tags := search.SplitSkills(c.Skills)
	if c.Job != "" {
		jobs, err := fetchJobs(ctx)
		if err != nil {
			return err
		}
		job, ok := models.JobByID(jobs, c.Job)
		if !ok {
			return fmt.Errorf("%s", ctx.msg("job.not_found", c.Job))
		}
		tags = append(tags, job.Skills...)
	}
	employees = search.MatchEmployees(employees, tags)
	if c.Available {
		available := make([]models.Employee, 0, len(employees))
		for _, employee := range employees {
			if employee.Available {
				available = append(available, employee)
			}
		}
		employees = available
	}

	state = ctx.dispatch(session.SetEmployeePage(c.Page))
	page := search.Paginate(employees, state.EmployeePage, ctx.Config.PageSize)
	if page.Total == 0 {
		ctx.UI.Infof("%s", ctx.msg("employees.none"))
		return nil
	}

	writer, closeOutput, err := openOutput(ctx, c.OutputOptions)
	if err != nil {
		return err
	}
	defer closeOutput()
	if err := export.WriteEmployees(writer, page.Items, format); err != nil {
		return err
	}
	if page.Pages > 1 {
		notice(ctx, format, ctx.msg("employees.page", page.Page, page.Pages, page.Total))
	}
	return nil
}

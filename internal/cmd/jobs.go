package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jimezsa/kazi/internal/export"
	"github.com/jimezsa/kazi/internal/locale"
	"github.com/jimezsa/kazi/internal/models"
	"github.com/jimezsa/kazi/internal/search"
	"github.com/jimezsa/kazi/internal/seen"
	"github.com/jimezsa/kazi/internal/session"
	"github.com/jimezsa/kazi/internal/storage"
)

type JobsCmd struct {
	List       JobsListCmd       `cmd:"" default:"withargs" help:"List and filter jobs."`
	Show       JobsShowCmd       `cmd:"" help:"Show one job."`
	Categories JobsCategoriesCmd `cmd:"" help:"List job categories."`
	Post       JobsPostCmd       `cmd:"" help:"Post a job (employers)."`
}

type JobsListCmd struct {
	Query    string `arg:"" optional:"" help:"Text to look for in title, description or location."`
	Category string `help:"Category to show, or \"all\"." default:"all"`
	Location string `help:"Location substring."`
	Page     int    `help:"Page number." default:"1"`
	Mine     bool   `help:"Only jobs posted by you (employers)."`
	Matching bool   `help:"Only jobs matching your skills."`
	NewOnly  bool   `name:"new-only" help:"Only jobs not shown before."`
	OutputOptions
}

type JobsShowCmd struct {
	ID string `arg:"" help:"Job id."`
}

type JobsCategoriesCmd struct{}

type JobsPostCmd struct {
	Title        string `help:"Job title." required:""`
	Description  string `help:"What the work involves." required:""`
	Location     string `help:"Where the work is." required:""`
	Category     string `help:"Category, e.g. agriculture." required:""`
	Skills       string `help:"Comma-separated skill tags."`
	Phone        string `help:"Contact phone; defaults to your own."`
	BusinessType string `name:"business-type" help:"Kind of business."`
	Salary       string `help:"Pay, e.g. \"KES 500/day\"."`
}

// fetchJobs loads the catalogue into the session, warning when the bundled fallback is used.
func fetchJobs(ctx *Context) ([]models.Job, error) {
	done := ctx.loading()
	list, err := ctx.client().ListJobs(ctx.context())
	done()
	if err != nil {
		return nil, ctx.fail(err)
	}
	if list.FromFallback {
		ctx.UI.Warnf("%s", ctx.msg("network.offline"))
	}
	state := ctx.dispatch(session.SetJobs(list.Jobs))
	return state.CurrentJobs, nil
}

func (c *JobsListCmd) Run(ctx *Context) error {
	format, err := resolveFormat(ctx, c.OutputOptions)
	if err != nil {
		return err
	}

	jobs, err := fetchJobs(ctx)
	if err != nil {
		return err
	}

	state := ctx.Session.State()
	if c.Mine {
		user, err := ctx.requireEmployer()
		if err != nil {
			return ctx.fail(err)
		}
		jobs = search.ByEmployer(jobs, user.ID)
		state = ctx.dispatch(session.SetUserJobs(jobs))
		jobs = state.UserJobs
	}

	filtered := search.Filter(jobs, models.FilterSpec{
		SearchQuery: c.Query,
		Category:    strings.TrimSpace(c.Category),
		Location:    c.Location,
	})

	var matchCount int
	if state.User != nil && state.UserRole == models.RoleEmployee {
		if skills := state.User.SkillsText(); len(search.SplitSkills(skills)) > 0 {
			matched := search.MatchSkills(filtered, skills)
			matchCount = len(matched)
			if c.Matching {
				filtered = matched
			}
		}
	}

	if c.NewOnly {
		filtered = unseenJobs(ctx, format, filtered)
	}

	state = ctx.dispatch(session.SetJobPage(c.Page))
	page := search.Paginate(filtered, state.JobPage, ctx.Config.PageSize)

	statusOf := func(string) models.ApplicationStatus { return "" }
	isFavorite := func(id string) bool { return false }
	if user, err := ctx.requireUser(); err == nil {
		rec := ctx.displayReconciler(user)
		isFavorite = rec.IsFavorite
		if user.Role == models.RoleEmployee {
			statusOf = rec.StatusOf
		}
	}
	rows := export.Rows(page.Items, statusOf, isFavorite)

	writer, closeOutput, err := openOutput(ctx, c.OutputOptions)
	if err != nil {
		return err
	}
	defer closeOutput()

	if matchCount > 0 {
		notice(ctx, format, ctx.msg("jobs.match", matchCount))
	}
	if len(rows) == 0 && format == export.FormatTable {
		ctx.UI.Infof("%s", ctx.msg("jobs.none"))
		return nil
	}
	if err := export.WriteJobs(writer, rows, format, writeOptions(ctx, writer)); err != nil {
		return err
	}
	if page.Pages > 1 {
		notice(ctx, format, ctx.msg("jobs.page", page.Page, page.Pages, page.Total))
	}
	return nil
}

// unseenJobs drops jobs shown on an earlier run and records the rest as seen.
func unseenJobs(ctx *Context, format export.Format, jobs []models.Job) []models.Job {
	var history []string
	ctx.Storage.GetJSON(storage.KeySeenJobs, &history)

	unseen, stats := seen.Diff(jobs, history)
	merged, _ := seen.Merge(history, unseen)
	if err := ctx.Storage.SetJSON(storage.KeySeenJobs, merged); err != nil {
		ctx.Logger.Warn().Err(err).Msg("save seen jobs")
	}
	ctx.Logger.Debug().
		Int("total", stats.TotalNew).
		Int("unseen", stats.Unseen).
		Int("invalid", stats.InvalidNew).
		Msg("seen filter")
	if stats.Unseen > 0 {
		notice(ctx, format, ctx.msg("jobs.new", stats.Unseen))
	}
	return unseen
}

func (c *JobsShowCmd) Run(ctx *Context) error {
	jobs, err := fetchJobs(ctx)
	if err != nil {
		return err
	}
	job, ok := models.JobByID(jobs, c.ID)
	if !ok {
		return fmt.Errorf("%s", ctx.msg("job.not_found", c.ID))
	}

	if ctx.JSONOutput {
		return export.WriteJobs(ctx.Out, export.Rows([]models.Job{job}, nil, nil), export.FormatJSON, export.WriteOptions{})
	}

	lang := ctx.Language()
	status := models.StatusNotApplied
	favorite := false
	if user, err := ctx.requireUser(); err == nil {
		rec := ctx.displayReconciler(user)
		status = rec.StatusOf(job.ID)
		favorite = rec.IsFavorite(job.ID)
	}

	lines := []string{
		locale.Translate(job.Title, lang),
		fmt.Sprintf("%s | %s | %s", job.Location, locale.Translate(job.Category, lang), job.SalaryText()),
	}
	if job.BusinessType != "" {
		lines = append(lines, job.BusinessType)
	}
	if len(job.Skills) > 0 {
		lines = append(lines, strings.Join(job.Skills, ", "))
	}
	lines = append(lines, "", locale.Translate(job.Description, lang), "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(ctx.Out, line); err != nil {
			return err
		}
	}

	label := locale.Message(lang, "label."+string(status))
	if favorite {
		label += " *"
	}
	_, err = fmt.Fprintln(ctx.Out, ctx.UI.Badge(string(status), label))
	return err
}

func (c *JobsCategoriesCmd) Run(ctx *Context) error {
	jobs, err := fetchJobs(ctx)
	if err != nil {
		return err
	}
	categories := search.Categories(jobs)
	if !ctx.JSONOutput && !ctx.PlainText {
		ctx.UI.Infof("%s", ctx.msg("jobs.categories"))
	}
	for _, category := range categories {
		if _, err := fmt.Fprintln(ctx.Out, category); err != nil {
			return err
		}
	}
	return nil
}

func (c *JobsPostCmd) Run(ctx *Context) error {
	user, err := ctx.requireEmployer()
	if err != nil {
		return ctx.fail(err)
	}

	phone := strings.TrimSpace(c.Phone)
	if phone == "" {
		phone = user.Phone
	}
	businessType := strings.TrimSpace(c.BusinessType)
	if businessType == "" && user.BusinessName != nil {
		businessType = *user.BusinessName
	}
	draft := models.JobDraft{
		Title:        strings.TrimSpace(c.Title),
		Description:  strings.TrimSpace(c.Description),
		Location:     strings.TrimSpace(c.Location),
		Category:     strings.ToLower(strings.TrimSpace(c.Category)),
		Skills:       search.SplitSkills(c.Skills),
		Phone:        phone,
		BusinessType: businessType,
		Salary:       strings.TrimSpace(c.Salary),
		EmployerID:   user.ID,
	}

	done := ctx.loading()
	job, err := ctx.client().CreateJob(ctx.context(), draft)
	done()
	if err != nil {
		return ctx.fail(err)
	}

	state := ctx.Session.State()
	ctx.dispatch(session.SetJobs(append(slices.Clone(state.CurrentJobs), job)))
	ctx.UI.Successf("%s", ctx.msg("job.posted", job.ID))
	return nil
}

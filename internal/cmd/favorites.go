package cmd

import (
	"github.com/jimezsa/kazi/internal/export"
	"github.com/jimezsa/kazi/internal/models"
	"github.com/jimezsa/kazi/internal/session"
)

type FavoriteCmd struct {
	JobID string `arg:"" name:"job-id" help:"Job to save or unsave."`
}

type FavoritesCmd struct {
	OutputOptions
}

func (c *FavoriteCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return ctx.fail(err)
	}

	rec := ctx.favoriteReconciler(user)
	done := ctx.loading()
	on, err := rec.ToggleFavorite(ctx.context(), c.JobID)
	done()
	ctx.dispatch(session.SetFavorites(rec.FavoriteIDs()))
	if err != nil {
		return ctx.fail(err)
	}

	key := "favorite.removed"
	if on {
		key = "favorite.added"
	}
	ctx.UI.Successf("%s", ctx.msg(key, c.JobID))
	return nil
}

func (c *FavoritesCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return ctx.fail(err)
	}
	format, err := resolveFormat(ctx, c.OutputOptions)
	if err != nil {
		return err
	}

	ids := ctx.Session.State().FavoriteJobs
	if len(ids) == 0 {
		ctx.UI.Infof("%s", ctx.msg("favorites.none"))
		return nil
	}

	jobs, err := fetchJobs(ctx)
	if err != nil {
		return err
	}
	favorites := make([]models.Job, 0, len(ids))
	for _, id := range ids {
		if job, ok := models.JobByID(jobs, id); ok {
			favorites = append(favorites, job)
		}
	}

	rec := ctx.displayReconciler(user)
	rows := export.Rows(favorites, rec.StatusOf, rec.IsFavorite)

	writer, closeOutput, err := openOutput(ctx, c.OutputOptions)
	if err != nil {
		return err
	}
	defer closeOutput()
	return export.WriteJobs(writer, rows, format, writeOptions(ctx, writer))
}

package cmd

import (
	"strings"

	"github.com/jimezsa/kazi/internal/models"
	"github.com/jimezsa/kazi/internal/session"
)

type ProfileCmd struct {
	Show   WhoamiCmd        `cmd:"" default:"1" help:"Show your profile."`
	Update ProfileUpdateCmd `cmd:"" help:"Update your profile."`
}

type ProfileUpdateCmd struct {
	Name         string `help:"New name."`
	Location     string `help:"New location."`
	Skills       string `help:"Comma-separated skills."`
	BusinessName string `name:"business-name" help:"Business name (employers)."`
}

// Patch builds a profile patch for userID from the flags that were given.
func (c *ProfileUpdateCmd) Patch(userID string) models.ProfilePatch {
	return models.ProfilePatch{
		ID:           userID,
		Name:         optional(c.Name),
		Location:     optional(c.Location),
		Skills:       optional(c.Skills),
		BusinessName: optional(c.BusinessName),
	}
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func (c *ProfileUpdateCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return ctx.fail(err)
	}
	patch := c.Patch(user.ID)
	if patch.Empty() {
		ctx.UI.Infof("%s", ctx.msg("profile.nothing"))
		return nil
	}

	done := ctx.loading()
	updated, err := ctx.client().UpdateProfile(ctx.context(), patch)
	done()
	if err != nil {
		return ctx.fail(err)
	}
	ctx.dispatch(session.SetUser(&updated, ctx.Session.State().Token))
	ctx.UI.Successf("%s", ctx.msg("profile.updated"))
	return nil
}

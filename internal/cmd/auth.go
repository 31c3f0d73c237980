package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jimezsa/kazi/internal/contact"
	"github.com/jimezsa/kazi/internal/models"
	"github.com/jimezsa/kazi/internal/session"
)

type LoginCmd struct {
	Phone    string `help:"Phone number." required:""`
	Password string `help:"Password." required:"" env:"KAZI_PASSWORD"`
}

type RegisterCmd struct {
	Name         string `help:"Full name." required:""`
	Phone        string `help:"Phone number." required:""`
	Password     string `help:"Password." required:"" env:"KAZI_PASSWORD"`
	Location     string `help:"Town or county." required:""`
	Role         string `help:"Account type: employee or employer." enum:"employee,employer" default:"employee"`
	Skills       string `help:"Comma-separated skills (employees)."`
	BusinessName string `name:"business-name" help:"Business name (employers)."`
}

type LogoutCmd struct{}

type WhoamiCmd struct{}

func (c *LoginCmd) Run(ctx *Context) error {
	done := ctx.loading()
	result, err := ctx.API.Login(ctx.context(), models.Credentials{Phone: c.Phone, Password: c.Password})
	done()
	if err != nil {
		return ctx.fail(err)
	}
	return signIn(ctx, result, "login.success")
}

func (c *RegisterCmd) Run(ctx *Context) error {
	role, err := models.ParseRole(c.Role)
	if err != nil {
		return err
	}
	reg := models.Registration{
		Name:         c.Name,
		Phone:        c.Phone,
		Password:     c.Password,
		Location:     c.Location,
		Role:         role,
		Skills:       c.Skills,
		BusinessName: c.BusinessName,
	}
	if !contact.IsValidName(reg.Name) {
		return ctx.fail(models.ValidationErrors{{Field: "name", Tag: "invalid"}})
	}

	done := ctx.loading()
	result, err := ctx.API.Register(ctx.context(), reg)
	done()
	if err != nil {
		return ctx.fail(err)
	}
	return signIn(ctx, result, "register.success")
}

func signIn(ctx *Context, result models.AuthResult, messageKey string) error {
	user := result.User
	ctx.dispatch(session.SetUser(&user, result.Token))

	favorites, err := ctx.client().ListFavorites(ctx.context(), user.ID)
	if err != nil {
		ctx.Logger.Warn().Err(err).Msg("load favorites")
	} else {
		ids := make([]string, 0, len(favorites))
		for _, fav := range favorites {
			ids = append(ids, fav.JobID)
		}
		ctx.dispatch(session.SetFavorites(ids))
	}

	ctx.UI.Successf("%s", ctx.msg(messageKey, user.Name))
	return nil
}

func (c *LogoutCmd) Run(ctx *Context) error {
	ctx.dispatch(session.Logout())
	ctx.UI.Successf("%s", ctx.msg("logout.success"))
	return nil
}

func (c *WhoamiCmd) Run(ctx *Context) error {
	state := ctx.Session.State()
	if !state.Authenticated() {
		if ctx.JSONOutput {
			_, err := fmt.Fprintln(ctx.Out, "null")
			return err
		}
		ctx.UI.Infof("%s", ctx.msg("whoami.anonymous"))
		return nil
	}

	user := *state.User
	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(user)
	}

	lines := []string{
		fmt.Sprintf("%s (%s)", user.Name, user.Role),
		contact.FormatPhone(user.Phone),
		user.Location,
	}
	if skills := user.SkillsText(); skills != "" {
		lines = append(lines, skills)
	}
	if user.BusinessName != nil {
		lines = append(lines, *user.BusinessName)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(ctx.Out, line); err != nil {
			return err
		}
	}
	return nil
}

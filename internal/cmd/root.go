package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color     string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON      bool   `help:"JSON output to stdout; disables colors."`
	Plain     bool   `help:"TSV output to stdout; disables colors."`
	Verbose   bool   `help:"Enable debug logging."`
	Ephemeral bool   `help:"Keep session state in memory only."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version      VersionCmd      `cmd:"" help:"Print version."`
	Config       ConfigCmd       `cmd:"" help:"Manage configuration."`
	Login        LoginCmd        `cmd:"" help:"Log in with phone and password."`
	Register     RegisterCmd     `cmd:"" help:"Create an account."`
	Logout       LogoutCmd       `cmd:"" help:"Log out."`
	Whoami       WhoamiCmd       `cmd:"" help:"Show the signed-in user."`
	Jobs         JobsCmd         `cmd:"" help:"Browse and post jobs."`
	Apply        ApplyCmd        `cmd:"" help:"Apply for a job."`
	Favorite     FavoriteCmd     `cmd:"" help:"Save or unsave a job."`
	Favorites    FavoritesCmd    `cmd:"" help:"List saved jobs."`
	Applications ApplicationsCmd `cmd:"" help:"Track applications."`
	Employees    EmployeesCmd    `cmd:"" help:"Find workers (employers)."`
	Profile      ProfileCmd      `cmd:"" help:"View or update your profile."`
	Lang         LangCmd         `cmd:"" help:"Show or set the interface language."`
	Theme        ThemeCmd        `cmd:"" help:"Toggle dark mode."`
	Translate    TranslateCmd    `cmd:"" help:"Translate text between English and Swahili."`
	Contact      ContactCmd      `cmd:"" help:"Show call and WhatsApp links for a job."`
}

func NewCLI() *CLI {
	return &CLI{}
}

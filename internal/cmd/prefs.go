package cmd

import (
	"fmt"

	"github.com/jimezsa/kazi/internal/locale"
	"github.com/jimezsa/kazi/internal/session"
)

type LangCmd struct {
	Language string `arg:"" optional:"" help:"Language: en or sw."`
}

type ThemeCmd struct{}

type TranslateCmd struct {
	Text string `arg:"" help:"Text to translate."`
	To   string `help:"Target language; defaults to the current one."`
}

func (c *LangCmd) Run(ctx *Context) error {
	if c.Language == "" {
		ctx.UI.Infof("%s", ctx.msg("lang.current", locale.Name(ctx.Language())))
		return nil
	}
	code, ok := locale.Normalize(c.Language)
	if !ok {
		return fmt.Errorf("%s", ctx.msg("lang.unsupported", c.Language))
	}
	ctx.dispatch(session.SetLanguage(code))
	ctx.UI.Successf("%s", ctx.msg("lang.set", locale.Name(code)))
	return nil
}

func (c *ThemeCmd) Run(ctx *Context) error {
	state := ctx.dispatch(session.ToggleDarkMode())
	ctx.UI.SetDarkMode(state.DarkMode)
	key := "theme.light"
	if state.DarkMode {
		key = "theme.dark"
	}
	ctx.UI.Successf("%s", ctx.msg(key))
	return nil
}

func (c *TranslateCmd) Run(ctx *Context) error {
	target := ctx.Language()
	if c.To != "" {
		code, ok := locale.Normalize(c.To)
		if !ok {
			return fmt.Errorf("%s", ctx.msg("lang.unsupported", c.To))
		}
		target = code
	}
	_, err := fmt.Fprintln(ctx.Out, locale.Translate(c.Text, target))
	return err
}

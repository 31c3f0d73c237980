package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jimezsa/kazi/internal/api"
	"github.com/jimezsa/kazi/internal/config"
	"github.com/jimezsa/kazi/internal/locale"
	"github.com/jimezsa/kazi/internal/models"
	"github.com/jimezsa/kazi/internal/reconcile"
	"github.com/jimezsa/kazi/internal/session"
	"github.com/jimezsa/kazi/internal/storage"
	"github.com/jimezsa/kazi/internal/ui"
	"github.com/rs/zerolog"
)

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrEmployerOnly = errors.New("employer account required")
)

type Context struct {
	Ctx        context.Context
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode

	Storage *storage.Storage
	Session *session.Store
	API     *api.Client
}

func (c *Context) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// Language is the current interface language.
func (c *Context) Language() string {
	if c.Session != nil {
		return c.Session.State().CurrentLanguage
	}
	code, _ := locale.Normalize(c.Config.DefaultLanguage)
	return code
}

func (c *Context) msg(key string, args ...any) string {
	return locale.Message(c.Language(), key, args...)
}

// client returns the API client carrying the session token, if any.
func (c *Context) client() *api.Client {
	return c.API.WithToken(c.Session.State().Token)
}

func (c *Context) dispatch(action session.Action) session.State {
	state, err := c.Session.Dispatch(action)
	if err != nil {
		c.Logger.Warn().Err(err).Str("action", string(action.Kind)).Msg("session not saved")
	}
	return state
}

// loading marks the session busy and shows a spinner until the returned func is called.
func (c *Context) loading() func() {
	c.dispatch(session.SetLoading(true))
	stop := startIndicator(c, c.msg("loading"))
	return func() {
		if stop != nil {
			stop()
		}
		c.dispatch(session.SetLoading(false))
	}
}

// fail records err as the session error and returns it.
func (c *Context) fail(err error) error {
	c.dispatch(session.SetError(Describe(c.Language(), err)))
	return err
}

func (c *Context) requireUser() (models.Identity, error) {
	state := c.Session.State()
	if !state.Authenticated() {
		return models.Identity{}, ErrNotLoggedIn
	}
	return *state.User, nil
}

func (c *Context) requireEmployer() (models.Identity, error) {
	user, err := c.requireUser()
	if err != nil {
		return user, err
	}
	if !c.Session.State().IsEmployer() {
		return user, ErrEmployerOnly
	}
	return user, nil
}

// favoriteReconciler builds a Reconciler for user holding only the mirrored favorites.
func (c *Context) favoriteReconciler(user models.Identity) *reconcile.Reconciler {
	rec := reconcile.New(c.client(), user.ID, c.Logger)
	rec.LoadFavoriteIDs(c.Session.State().FavoriteJobs)
	return rec
}

// reconciler builds a Reconciler for user seeded with the applications they made and the
// mirrored favorites. When the applications cannot be loaded the Reconciler still holds
// the favorites and the error is returned alongside it.
func (c *Context) reconciler(user models.Identity) (*reconcile.Reconciler, error) {
	client := c.client()
	rec := reconcile.New(client, user.ID, c.Logger)
	apps, err := client.ListApplications(c.context(), api.ApplicationQuery{ApplicantID: user.ID})
	if err == nil {
		rec.Load(apps, nil)
	}
	rec.LoadFavoriteIDs(c.Session.State().FavoriteJobs)
	if err != nil {
		return rec, fmt.Errorf("load applications: %w", err)
	}
	return rec, nil
}

// displayReconciler is reconciler for read-only views: employers get favorites only and
// an unavailable application list is logged rather than returned.
func (c *Context) displayReconciler(user models.Identity) *reconcile.Reconciler {
	if user.Role != models.RoleEmployee {
		return c.favoriteReconciler(user)
	}
	rec, err := c.reconciler(user)
	if err != nil {
		c.Logger.Warn().Err(err).Msg("application status unavailable")
	}
	return rec
}

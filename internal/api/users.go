package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/kazi/internal/contact"
	"github.com/jimezsa/kazi/internal/models"
)

type wireAuth struct {
	Token string       `json:"token"`
	User  wireIdentity `json:"user"`
}

func (w wireAuth) normalize(op string) (models.AuthResult, error) {
	if strings.TrimSpace(w.Token) == "" {
		return models.AuthResult{}, &NetworkError{Op: op, StatusCode: fhttp.StatusOK, Reason: "response without token"}
	}
	user, err := w.User.normalize()
	if err != nil {
		return models.AuthResult{}, &NetworkError{Op: op, StatusCode: fhttp.StatusOK, Reason: err.Error()}
	}
	return models.AuthResult{Token: w.Token, User: user}, nil
}

func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	if err := models.Validate(creds); err != nil {
		return models.AuthResult{}, err
	}
	creds.Phone, _ = contact.NormalizePhone(creds.Phone)

	var wire wireAuth
	if err := c.do(ctx, "login", fhttp.MethodPost, "/auth/login", creds, &wire); err != nil {
		return models.AuthResult{}, err
	}
	return wire.normalize("login")
}

func (c *Client) Register(ctx context.Context, reg models.Registration) (models.AuthResult, error) {
	if err := models.Validate(reg); err != nil {
		return models.AuthResult{}, err
	}
	reg.Phone, _ = contact.NormalizePhone(reg.Phone)

	var wire wireAuth
	if err := c.do(ctx, "register", fhttp.MethodPost, "/auth/register", reg, &wire); err != nil {
		return models.AuthResult{}, err
	}
	return wire.normalize("register")
}

// UpdateProfile sends patch and returns the updated identity.
func (c *Client) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.Identity, error) {
	if err := models.Validate(patch); err != nil {
		return models.Identity{}, err
	}
	if patch.Empty() {
		return models.Identity{}, fmt.Errorf("update profile: nothing to update")
	}

	var wire wireIdentity
	path := "/users/" + url.PathEscape(patch.ID)
	if err := c.do(ctx, "update profile", fhttp.MethodPatch, path, patch, &wire); err != nil {
		return models.Identity{}, err
	}
	identity, err := wire.normalize()
	if err != nil {
		return models.Identity{}, &NetworkError{Op: "update profile", StatusCode: fhttp.StatusOK, Reason: err.Error()}
	}
	return identity, nil
}

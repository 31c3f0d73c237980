package cmd

import (
	"errors"
	"strings"

	"github.com/jimezsa/kazi/internal/api"
	"github.com/jimezsa/kazi/internal/locale"
	"github.com/jimezsa/kazi/internal/models"
	"github.com/jimezsa/kazi/internal/reconcile"
)

// Describe renders err as a message in lang.
func Describe(lang string, err error) string {
	if err == nil {
		return ""
	}

	var fieldErrs models.ValidationErrors
	if errors.As(err, &fieldErrs) {
		lines := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			lines = append(lines, describeField(lang, fe))
		}
		return strings.Join(lines, "\n")
	}
	var fieldErr models.ValidationError
	if errors.As(err, &fieldErr) {
		return describeField(lang, fieldErr)
	}

	var netErr *api.NetworkError
	switch {
	case errors.Is(err, reconcile.ErrAlreadyApplied):
		return locale.Message(lang, "apply.already")
	case errors.Is(err, reconcile.ErrInFlight):
		return locale.Message(lang, "favorite.busy")
	case errors.Is(err, ErrNotLoggedIn), errors.Is(err, reconcile.ErrNoUser):
		return locale.Message(lang, "auth.required")
	case errors.Is(err, ErrEmployerOnly):
		return locale.Message(lang, "auth.employer_only")
	case errors.As(err, &netErr):
		return locale.Message(lang, "network.error", netErr.Reason)
	default:
		return err.Error()
	}
}

func describeField(lang string, fe models.ValidationError) string {
	key := "validation." + fe.Tag
	if !locale.Has(key) {
		return locale.Message(lang, "validation.invalid", fe.Field)
	}
	switch fe.Tag {
	case "min", "max", "oneof", "ne":
		return locale.Message(lang, key, fe.Field, fe.Param)
	default:
		return locale.Message(lang, key, fe.Field)
	}
}

package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jimezsa/kazi/internal/contact"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = validate.RegisterValidation("ke_phone", func(fl validator.FieldLevel) bool {
		return contact.IsValidPhone(fl.Field().String())
	})
}

// ValidationError is a missing or malformed field caught before submission.
type ValidationError struct {
	Field string
	Tag   string
	Param string
}

func (e ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: failed %s=%s", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s: failed %s", e.Field, e.Tag)
}

// ValidationErrors is returned by Validate when one or more fields fail.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, item := range e {
		parts = append(parts, item.Error())
	}
	return strings.Join(parts, "; ")
}

// Validate checks v against its validate struct tags.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}

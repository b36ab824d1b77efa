package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with config error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator that reports fields by their configuration key.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("mapstructure")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns an ErrInvalidConfig error listing every bad key.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	problems := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		problems = append(problems, fmt.Sprintf("%s %s", configKey(e), friendlyMessage(e)))
	}
	sort.Strings(problems)

	return fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(problems, "; "))
}

// configKey turns Config.export.sheets.batch_size into export.sheets.batch_size.
func configKey(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}

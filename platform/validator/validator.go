// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator. Field errors are reported
// under the name a client sent, taken from the json, yaml or form tag.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator. Domain rules are added with RegisterValidation.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireName)
	return &Validator{v: v}
}

func wireName(field reflect.StructField) string {
	for _, key := range []string{"json", "yaml", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}
	return field.Name
}

func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

func (val *Validator) Var(field any, tag string) error {
	return val.v.Var(field, tag)
}

func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

// StringRule adapts a plain string predicate to a validation function.
// Non-string fields fail the rule.
func StringRule(fn func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && fn(s)
	}
}

// FieldErrors maps each failing field to the rule it broke, keyed by its
// namespace without the top-level struct ("countries[0].templates[1].pattern").
// It returns nil when err holds no field errors.
func FieldErrors(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		ns := fe.Namespace()
		if _, rest, ok := strings.Cut(ns, "."); ok {
			ns = rest
		}
		fields[ns] = fe.Tag()
	}
	return fields
}

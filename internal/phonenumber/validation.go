package phonenumber

import (
	"phonefmt/internal/digittemplate"
	"phonefmt/platform/validator"
)

// NewValidator returns a validator that also knows the "digit_template" rule,
// which rejects patterns without a single digit slot.
func NewValidator() (*validator.Validator, error) {
	v := validator.New()
	if err := v.RegisterValidation("digit_template", validator.StringRule(func(pattern string) bool {
		return digittemplate.Compile(pattern).DigitCount() > 0
	})); err != nil {
		return nil, err
	}
	return v, nil
}

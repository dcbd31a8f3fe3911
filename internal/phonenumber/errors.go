package phonenumber

import (
	"errors"
	"fmt"

	"phonefmt/internal/digittemplate"
)

// ErrNoResult matches every error returned when input cannot be interpreted.
// While the user is still typing it means "not interpretable yet" rather than
// a failure worth reporting.
var ErrNoResult = errors.New("phonenumber: no result")

// ErrDecodeE164 is returned when an exchange string cannot be decoded.
var ErrDecodeE164 = errors.New("phonenumber: unable to decode E.164 value")

// Cause tells why no result was produced.
type Cause uint8

const (
	// CauseEmpty means the input held no digits a template could use.
	CauseEmpty Cause = iota
	// CauseLiteralMismatch means a digit required by the template was different or missing.
	CauseLiteralMismatch
	// CauseDigitClass means a digit fell outside a template's digit set.
	CauseDigitClass
	// CauseOptionsVeto means the matching templates carry a disallowed class.
	CauseOptionsVeto
	// CauseNoTemplates means no template is registered for the country.
	CauseNoTemplates
	// CauseUnknownCallingCode means no allowed country's code follows the '+'.
	CauseUnknownCallingCode
)

func (c Cause) String() string {
	switch c {
	case CauseEmpty:
		return "empty"
	case CauseLiteralMismatch:
		return "literal_mismatch"
	case CauseDigitClass:
		return "digit_class"
	case CauseOptionsVeto:
		return "options_veto"
	case CauseNoTemplates:
		return "no_templates"
	case CauseUnknownCallingCode:
		return "unknown_calling_code"
	default:
		return "unknown"
	}
}

// NoResultError describes an absent result. Country is zero when the failure
// is not tied to one country.
type NoResultError struct {
	Cause   Cause
	Country Country
}

func (e *NoResultError) Error() string {
	if e.Country.Valid() {
		return fmt.Sprintf("phonenumber: no result for %s: %s", e.Country, e.Cause)
	}
	return "phonenumber: no result: " + e.Cause.String()
}

// Is makes errors.Is(err, ErrNoResult) hold.
func (e *NoResultError) Is(target error) bool {
	return target == ErrNoResult
}

// CauseOf extracts the cause from an error returned by this package.
func CauseOf(err error) (Cause, bool) {
	var nr *NoResultError
	if errors.As(err, &nr) {
		return nr.Cause, true
	}
	return 0, false
}

func noResult(cause Cause, country Country) error {
	return &NoResultError{Cause: cause, Country: country}
}

// matchCause reports the most specific of the template failures.
func matchCause(errs []error) Cause {
	cause := CauseEmpty
	rank := 0
	for _, err := range errs {
		var c Cause
		var r int
		switch {
		case errors.Is(err, digittemplate.ErrDigitClass):
			c, r = CauseDigitClass, 2
		case errors.Is(err, digittemplate.ErrLiteralMismatch):
			c, r = CauseLiteralMismatch, 1
		default:
			continue
		}
		if r > rank {
			cause, rank = c, r
		}
	}
	return cause
}

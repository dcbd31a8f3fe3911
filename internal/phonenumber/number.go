package phonenumber

import (
	"fmt"
	"strings"
	"sync"

	"phonefmt/platform/sanitize"
)

// Number is a phone number split into country and national digits.
type Number struct {
	Country Country
	// Digits excludes the calling code and holds digits only.
	Digits string
	// Partial is set when Digits is only the beginning of a number.
	Partial bool
}

// E164 returns the number as "+<calling code><digits>" without separators.
func (n Number) E164() string {
	return "+" + n.Country.CallingCode() + n.Digits
}

func (n Number) String() string {
	return n.E164()
}

// MarshalText encodes n in its E.164 exchange form.
func (n Number) MarshalText() ([]byte, error) {
	if !n.Country.Valid() {
		return nil, fmt.Errorf("phonenumber: invalid country %d", uint8(n.Country))
	}
	return []byte(n.E164()), nil
}

// UnmarshalText decodes the E.164 exchange form using every supported
// country and number class.
func (n *Number) UnmarshalText(text []byte) error {
	decoded, err := DecodeE164(string(text))
	if err != nil {
		return err
	}
	*n = decoded
	return nil
}

var exchangeFormatter = sync.OnceValue(func() *Formatter {
	return New(WithAllowedOptions(OptionsAll))
})

// DecodeE164 decodes "+<calling code><digits>" against the default table with
// every country and number class allowed.
func DecodeE164(s string) (Number, error) {
	return exchangeFormatter().DecodeE164(s)
}

// DecodeE164 decodes "+<calling code><digits>" with f's countries and classes.
func (f *Formatter) DecodeE164(s string) (Number, error) {
	if !strings.HasPrefix(s, "+") || sanitize.E164Chars(s) != s {
		return Number{}, fmt.Errorf("%w: %q", ErrDecodeE164, s)
	}
	n, _, err := f.ParseSanitized(s, len(s)-1)
	if err != nil {
		return Number{}, fmt.Errorf("%w %q: %w", ErrDecodeE164, s, err)
	}
	return n, nil
}

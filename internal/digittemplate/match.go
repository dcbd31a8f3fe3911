package digittemplate

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrLiteralMismatch is returned when a required digit is different or missing.
	ErrLiteralMismatch = errors.New("digittemplate: required digit does not match")
	// ErrDigitClass is returned when a digit falls outside a digit set.
	ErrDigitClass = errors.New("digittemplate: digit outside allowed set")
	// ErrEmpty is returned when matching produced no digits.
	ErrEmpty = errors.New("digittemplate: no digits matched")
)

// Match is the outcome of parsing digits against a template.
type Match struct {
	// Digits holds the matched digits in template order.
	Digits string
	// Partial is set when the input ran out before every digit slot was filled.
	Partial bool
	// Cursor is the input cursor translated into Digits.
	Cursor int
}

// Format renders value with the template. See FormatCursor.
func (cs Components) Format(value string) (string, bool) {
	formatted, _, ok := cs.FormatCursor(value, len(value))
	return formatted, ok
}

// FormatCursor renders value, which must contain digits only and is expected
// to fit the template, inserting the template's separators. Components past
// the end of value are left out, so partially typed numbers format too.
//
// cursor is an offset into value; the returned int is the equivalent offset,
// in runes, into the formatted string. ok is false only when a required digit
// in the template does not match value. Digits beyond the template's last slot
// are dropped.
func (cs Components) FormatCursor(value string, cursor int) (formatted string, formattedCursor int, ok bool) {
	out := make(Components, 0, len(cs))
	remaining := value
	left := cursor
	pos := 0

	for _, c := range cs {
		if remaining == "" {
			break
		}
		switch c.Kind {
		case KindLiteral:
			// separators consume no digit, so left is unchanged
			if left > 0 {
				pos += utf8.RuneCountInString(c.Text)
			}
			out = append(out, c)
		case KindDigitLiteral:
			d := remaining[0]
			if left > 0 {
				pos++
			}
			left--
			if d != c.Digit {
				return "", 0, false
			}
			out = append(out, DigitLiteral(d))
			remaining = remaining[1:]
		default:
			// set membership was checked when the value was parsed
			if left > 0 {
				pos++
			}
			left--
			out = append(out, DigitLiteral(remaining[0]))
			remaining = remaining[1:]
		}
	}

	formatted = out.TrimTrailingPlaceholders().String()
	return formatted, min(pos, utf8.RuneCountInString(formatted)), true
}

// Parse matches input against the template. See ParseCursor.
func (cs Components) Parse(input string) (Match, error) {
	return cs.ParseCursor(input, len(input))
}

// ParseCursor matches input, which must contain digits only, against the
// template and extracts the digits it accepts. Separators in the template are
// skipped. Running out of input on a '#' or 'N' slot marks the match partial;
// running out on a required digit fails. Input left over after the last slot
// is ignored.
//
// cursor is an offset into input and is translated into an offset into the
// matched digits.
func (cs Components) ParseCursor(input string, cursor int) (Match, error) {
	var digits strings.Builder
	partial := false
	remaining := input
	left := cursor
	pos := 0

	for _, c := range cs {
		switch c.Kind {
		case KindLiteral:
			continue
		case KindDigit:
			if remaining == "" {
				partial = true
				continue
			}
		case KindDigitSet:
			if remaining == "" {
				partial = true
				continue
			}
			if !c.Set.Contains(remaining[0]) {
				return Match{}, ErrDigitClass
			}
		case KindDigitLiteral:
			if remaining == "" || remaining[0] != c.Digit {
				return Match{}, ErrLiteralMismatch
			}
		}

		digits.WriteByte(remaining[0])
		remaining = remaining[1:]
		if left > 0 {
			pos++
		}
		left--
	}

	if digits.Len() == 0 {
		return Match{}, ErrEmpty
	}
	return Match{
		Digits:  digits.String(),
		Partial: partial,
		Cursor:  min(pos, digits.Len()),
	}, nil
}

package phonenumber

import (
	"strings"
	"unicode/utf8"

	"phonefmt/platform/sanitize"
)

type candidate struct {
	number Number
	cursor int
}

type templateMatch struct {
	digits  string
	partial bool
	cursor  int
	options Options
}

// Parse interprets raw user input. Letters are read as keypad digits and
// every character other than digits and a leading '+' is ignored.
func (f *Formatter) Parse(input string) (Number, error) {
	n, _, err := f.ParseCursor(input, utf8.RuneCountInString(input))
	return n, err
}

// ParseCursor is Parse for interactive editing: cursor is a rune offset into
// input and the returned int is the same position as an offset into the
// digits of the result.
func (f *Formatter) ParseCursor(input string, cursor int) (Number, int, error) {
	return f.ParseSanitized(sanitize.Phone(input), sanitize.DigitsBefore(input, cursor))
}

// ParseSanitized interprets s, which must hold only digits and an optional
// leading '+'. cursor counts the digits before the cursor.
//
// With a leading '+' the first allowed country whose calling code starts the
// remaining digits is used. Without one, every allowed country is tried both
// with its calling code in front and as a domestic number, and the best
// candidate wins: a typed calling code beats a guess, a complete match beats
// a partial one, and the assumed country only breaks ties.
func (f *Formatter) ParseSanitized(s string, cursor int) (Number, int, error) {
	if s == "" {
		return Number{}, 0, noResult(CauseEmpty, 0)
	}
	if rest, ok := strings.CutPrefix(s, "+"); ok {
		country, digits, ok := f.leadingCountry(rest)
		if !ok {
			return Number{}, 0, noResult(CauseUnknownCallingCode, 0)
		}
		c, err := f.matchCountry(country, digits, cursor-len(country.CallingCode()), false)
		if err != nil {
			return Number{}, 0, err
		}
		return c.number, c.cursor, nil
	}

	var leading, assumed []candidate
	var firstErr, assumedErr error

	for _, country := range f.allowedCountries {
		code := country.CallingCode()
		digits, ok := strings.CutPrefix(s, code)
		if !ok {
			continue
		}
		c, err := f.matchCountry(country, digits, cursor-len(code), false)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		leading = append(leading, c)
	}

	for _, country := range f.allowedCountries {
		c, err := f.matchCountry(country, s, cursor, true)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if country == f.assumedCountry {
				assumedErr = err
			}
			continue
		}
		assumed = append(assumed, c)
	}

	rules := []struct {
		list         []candidate
		completeOnly bool
		assumedOnly  bool
	}{
		{leading, true, false},
		{leading, false, true},
		{assumed, true, true},
		{assumed, true, false},
		{leading, false, false},
		{assumed, false, true},
		{assumed, false, false},
	}
	for _, rule := range rules {
		if c, ok := f.pick(rule.list, rule.completeOnly, rule.assumedOnly); ok {
			return c.number, c.cursor, nil
		}
	}

	switch {
	case assumedErr != nil:
		return Number{}, 0, assumedErr
	case firstErr != nil:
		return Number{}, 0, firstErr
	default:
		return Number{}, 0, noResult(CauseEmpty, 0)
	}
}

func (f *Formatter) pick(list []candidate, completeOnly, assumedOnly bool) (candidate, bool) {
	for _, c := range list {
		if completeOnly && c.number.Partial {
			continue
		}
		if assumedOnly && c.number.Country != f.assumedCountry {
			continue
		}
		return c, true
	}
	return candidate{}, false
}

// leadingCountry checks allowed countries in their configured order, not by
// longest calling code.
func (f *Formatter) leadingCountry(s string) (Country, string, bool) {
	for _, country := range f.allowedCountries {
		if digits, ok := strings.CutPrefix(s, country.CallingCode()); ok {
			return country, digits, true
		}
	}
	return 0, "", false
}

// matchCountry matches digits against every template of country and reduces
// the matches to one candidate. Complete matches hide partial ones. If any
// remaining match carries a class outside the allowed options the whole
// country is rejected, even when other matches are allowed.
func (f *Formatter) matchCountry(country Country, digits string, cursor int, stripTrunk bool) (candidate, error) {
	templates := f.cache[country]
	if len(templates) == 0 {
		return candidate{}, noResult(CauseNoTemplates, country)
	}

	matches := make([]templateMatch, 0, len(templates))
	var failures []error
	for _, t := range templates {
		input, inputCursor := digits, cursor
		if stripTrunk && t.trunkPrefix != "" {
			if rest, ok := strings.CutPrefix(input, t.trunkPrefix); ok {
				input = rest
				inputCursor = max(inputCursor-len(t.trunkPrefix), 0)
			}
		}
		m, err := t.components.ParseCursor(input, inputCursor)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		matches = append(matches, templateMatch{
			digits:  m.Digits,
			partial: m.Partial,
			cursor:  m.Cursor,
			options: t.options,
		})
	}
	if len(matches) == 0 {
		return candidate{}, noResult(matchCause(failures), country)
	}

	complete := matches[:0:0]
	for _, m := range matches {
		if !m.partial {
			complete = append(complete, m)
		}
	}
	if len(complete) > 0 {
		matches = complete
	}

	for _, m := range matches {
		if !m.options.AllowedBy(f.allowedOptions) {
			return candidate{}, noResult(CauseOptionsVeto, country)
		}
	}

	first := matches[0]
	return candidate{
		number: Number{Country: country, Digits: first.digits, Partial: first.partial},
		cursor: first.cursor,
	}, nil
}

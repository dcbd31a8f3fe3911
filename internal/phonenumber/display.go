package phonenumber

import (
	"strings"
	"unicode/utf8"
)

// Format renders n for display. See FormatCursor.
func (f *Formatter) Format(n Number, mode CountryCodeMode) (string, error) {
	formatted, _, err := f.FormatCursor(n, len(n.Digits), mode)
	return formatted, err
}

// FormatCursor renders n with the first of its country's templates that
// accepts the digits. Templates with a class outside the allowed options are
// skipped. cursor is an offset into n.Digits; the returned int is the same
// position in the formatted string, counted in runes.
func (f *Formatter) FormatCursor(n Number, cursor int, mode CountryCodeMode) (string, int, error) {
	templates := f.cache[n.Country]
	if len(templates) == 0 {
		return "", 0, noResult(CauseNoTemplates, n.Country)
	}

	eligible := false
	for _, t := range templates {
		if !t.options.AllowedBy(f.allowedOptions) {
			continue
		}
		eligible = true
		formatted, pos, ok := t.components.FormatCursor(n.Digits, cursor)
		if !ok {
			continue
		}
		formatted, pos = f.decorate(n.Country, formatted, pos, mode)
		return formatted, pos, nil
	}

	if !eligible {
		return "", 0, noResult(CauseOptionsVeto, n.Country)
	}
	// a template only refuses digits at a required digit
	return "", 0, noResult(CauseLiteralMismatch, n.Country)
}

func (f *Formatter) decorate(country Country, formatted string, pos int, mode CountryCodeMode) (string, int) {
	var prefix string
	switch mode {
	case IncludeCountryCode:
		prefix = "+" + country.CallingCode() + " "
	case NoCountryCode:
		prefix = f.table[country].TrunkPrefix
	}
	formatted = prefix + formatted
	pos += utf8.RuneCountInString(prefix)

	if f.formatOptions&UseNonBreakingSpace != 0 {
		// one rune for one rune, so pos stays valid
		formatted = strings.ReplaceAll(formatted, " ", "\u00a0")
	}
	return formatted, pos
}

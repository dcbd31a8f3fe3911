// Package phonenumber interprets user-entered phone numbers against a table of
// per-country digit templates. It resolves ambiguous input to a country and a
// canonical digit string, formats numbers for display, and keeps a text cursor
// in step between the raw input and the formatted output.
package phonenumber

import (
	"fmt"
	"strings"

	"phonefmt/platform/phone"
)

// Country is a closed set of supported countries, each with its own
// international calling code.
type Country uint8

const (
	Australia Country = iota + 1
	Denmark
	Spain
	Greece
	Iceland
	Italy
	Mexico
	Poland
	Portugal
	UnitedKingdom
	// USAndCanada is the North American Numbering Plan.
	USAndCanada
)

type countryInfo struct {
	name        string
	region      string
	callingCode string
}

var countries = map[Country]countryInfo{
	Australia:     {name: "australia", region: "AU", callingCode: "61"},
	Denmark:       {name: "denmark", region: "DK", callingCode: "45"},
	Spain:         {name: "spain", region: "ES", callingCode: "34"},
	Greece:        {name: "greece", region: "GR", callingCode: "30"},
	Iceland:       {name: "iceland", region: "IS", callingCode: "354"},
	Italy:         {name: "italy", region: "IT", callingCode: "39"},
	Mexico:        {name: "mexico", region: "MX", callingCode: "52"},
	Poland:        {name: "poland", region: "PL", callingCode: "48"},
	Portugal:      {name: "portugal", region: "PT", callingCode: "351"},
	UnitedKingdom: {name: "united_kingdom", region: "GB", callingCode: "44"},
	USAndCanada:   {name: "us_and_canada", region: "US", callingCode: "1"},
}

// AllCountries returns every supported country in declaration order.
func AllCountries() []Country {
	return []Country{
		Australia, Denmark, Spain, Greece, Iceland, Italy,
		Mexico, Poland, Portugal, UnitedKingdom, USAndCanada,
	}
}

// Valid reports whether c is one of the supported countries.
func (c Country) Valid() bool {
	_, ok := countries[c]
	return ok
}

// CallingCode returns the international calling code without the '+'.
func (c Country) CallingCode() string {
	return countries[c].callingCode
}

// Region returns the ISO 3166-1 alpha-2 code of the country's main region.
func (c Country) Region() string {
	return countries[c].region
}

func (c Country) String() string {
	if info, ok := countries[c]; ok {
		return info.name
	}
	return fmt.Sprintf("country(%d)", uint8(c))
}

// MarshalText encodes the country as its region code.
func (c Country) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("phonenumber: invalid country %d", uint8(c))
	}
	return []byte(c.Region()), nil
}

// UnmarshalText accepts anything ParseCountry does.
func (c *Country) UnmarshalText(text []byte) error {
	parsed, err := ParseCountry(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CountryForCallingCode finds the country using code, with or without '+'.
func CountryForCallingCode(code string) (Country, bool) {
	code = strings.TrimPrefix(code, "+")
	for _, c := range AllCountries() {
		if c.CallingCode() == code {
			return c, true
		}
	}
	return 0, false
}

// ParseCountry resolves a country from a name ("united_kingdom"), a calling
// code ("44" or "+44") or any ISO region whose calling code is supported
// ("GB", but also "CA" or "PR" for USAndCanada).
func ParseCountry(s string) (Country, error) {
	key := strings.TrimSpace(s)
	if key == "" {
		return 0, fmt.Errorf("phonenumber: empty country")
	}
	for _, c := range AllCountries() {
		if strings.EqualFold(key, c.String()) || strings.EqualFold(key, c.Region()) {
			return c, nil
		}
	}
	if c, ok := CountryForCallingCode(key); ok {
		return c, nil
	}
	if code, ok := phone.CallingCodeForRegion(key); ok {
		if c, ok := CountryForCallingCode(code); ok {
			return c, nil
		}
	}
	return 0, fmt.Errorf("phonenumber: unsupported country %q", s)
}

// ParseCountries parses every entry of list, keeping its order and dropping
// duplicates.
func ParseCountries(list []string) ([]Country, error) {
	result := make([]Country, 0, len(list))
	seen := make(map[Country]bool, len(list))
	for _, item := range list {
		c, err := ParseCountry(item)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		result = append(result, c)
	}
	return result, nil
}

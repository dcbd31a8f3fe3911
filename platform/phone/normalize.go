// Package phone provides phone number utilities backed by libphonenumber.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when a caller does not name a region.
const DefaultRegion = "US"

// NormalizeE164 formats a phone number to E.164 using libphonenumber's full
// metadata. ok is false when the input cannot be parsed or is not a valid
// number for its region.
func NormalizeE164(input, region string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}
	if region == "" {
		region = DefaultRegion
	}

	number, err := phonenumbers.Parse(trimmed, strings.ToUpper(region))
	if err != nil {
		return "", false
	}

	if !phonenumbers.IsValidNumber(number) {
		return "", false
	}

	return phonenumbers.Format(number, phonenumbers.E164), true
}

// CallingCodeForRegion returns the international calling code for an ISO
// 3166-1 alpha-2 region, e.g. "44" for "GB". ok is false for unknown regions.
func CallingCodeForRegion(region string) (string, bool) {
	code := phonenumbers.GetCountryCodeForRegion(strings.ToUpper(strings.TrimSpace(region)))
	if code == 0 {
		return "", false
	}
	return strconv.Itoa(code), true
}

package phonenumber

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNumberE164(t *testing.T) {
	n := Number{Country: USAndCanada, Digits: "6664041234"}
	if got := n.E164(); got != "+16664041234" {
		t.Fatalf("expected +16664041234, got %s", got)
	}
	if got := n.String(); got != "+16664041234" {
		t.Fatalf("expected String to match E164, got %s", got)
	}
}

func TestNumberJSON(t *testing.T) {
	type contact struct {
		Phone Number `json:"phone"`
	}
	in := contact{Phone: Number{Country: USAndCanada, Digits: "6664041234"}}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"phone":"+16664041234"}` {
		t.Fatalf("unexpected encoding %s", data)
	}

	var out contact
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNumber(t, out.Phone, in.Phone)
}

func TestNumberMarshalInvalidCountry(t *testing.T) {
	if _, err := json.Marshal(Number{Digits: "123"}); err == nil {
		t.Fatal("expected error for number without country")
	}
}

func TestDecodeE164(t *testing.T) {
	cases := map[string]Number{
		"+447259264820": {Country: UnitedKingdom, Digits: "7259264820"},
		"+44999":        {Country: UnitedKingdom, Digits: "999"},
		"+3544211234":   {Country: Iceland, Digits: "4211234"},
		"+1202":         {Country: USAndCanada, Digits: "202", Partial: true},
	}
	for input, want := range cases {
		got, err := DecodeE164(input)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", input, err)
		}
		assertNumber(t, got, want)
	}
}

func TestDecodeE164Rejects(t *testing.T) {
	for _, input := range []string{"", "12024041234", "+1 202 404 1234", "+1-202", "1+202"} {
		_, err := DecodeE164(input)
		if !errors.Is(err, ErrDecodeE164) {
			t.Fatalf("%q: expected ErrDecodeE164, got %v", input, err)
		}
	}
}

func TestDecodeE164WrapsCause(t *testing.T) {
	_, err := DecodeE164("+99912")
	if !errors.Is(err, ErrDecodeE164) {
		t.Fatalf("expected ErrDecodeE164, got %v", err)
	}
	assertCause(t, err, CauseUnknownCallingCode)
}

func TestFormatterDecodeE164UsesItsCountries(t *testing.T) {
	f := New(WithAllowedCountries(UnitedKingdom))
	_, err := f.DecodeE164("+12024041234")
	assertCause(t, err, CauseUnknownCallingCode)
}

func TestCountryText(t *testing.T) {
	data, err := json.Marshal(UnitedKingdom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"GB"` {
		t.Fatalf("expected \"GB\", got %s", data)
	}

	for _, input := range []string{`"GB"`, `"gb"`, `"44"`, `"+44"`, `"united_kingdom"`} {
		var c Country
		if err := json.Unmarshal([]byte(input), &c); err != nil {
			t.Fatalf("%s: unexpected error: %v", input, err)
		}
		if c != UnitedKingdom {
			t.Fatalf("%s: expected united_kingdom, got %s", input, c)
		}
	}
}

func TestParseCountryAcceptsSharedRegions(t *testing.T) {
	c, err := ParseCountry("CA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != USAndCanada {
		t.Fatalf("expected us_and_canada, got %s", c)
	}

	if _, err := ParseCountry("FR"); err == nil {
		t.Fatal("expected unsupported country")
	}
}

func TestParseCountriesDropsDuplicates(t *testing.T) {
	got, err := ParseCountries([]string{"GB", "44", "US", "united_kingdom"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != UnitedKingdom || got[1] != USAndCanada {
		t.Fatalf("expected [united_kingdom us_and_canada], got %v", got)
	}
}

func TestOptions(t *testing.T) {
	if !OptionsAll.Contains(OptionsDefault) {
		t.Fatal("expected all to contain default")
	}
	if OptionsDefault.Contains(OptionEmergency) {
		t.Fatal("expected default to exclude emergency")
	}
	if got := OptionsAll.Subtract(OptionsDefault); got != OptionEmergency|OptionForbidden|OptionEntertainment {
		t.Fatalf("unexpected difference %s", got)
	}
	if got := (OptionMobile | OptionEmergency).String(); got != "[.mobile,.emergency,]" {
		t.Fatalf("unexpected string %s", got)
	}
	if OptionsAll.String() != ".all" || OptionsDefault.String() != ".default" {
		t.Fatalf("unexpected names %s %s", OptionsAll, OptionsDefault)
	}
}

func TestParseOptions(t *testing.T) {
	cases := []struct {
		names []string
		want  Options
	}{
		{[]string{"mobile", "tollFree"}, OptionMobile | OptionTollFree},
		{[]string{"toll-free"}, OptionTollFree},
		{[]string{"default", "emergency"}, OptionsDefault | OptionEmergency},
		{[]string{"all"}, OptionsAll},
		{[]string{"none"}, 0},
	}
	for _, tc := range cases {
		got, err := ParseOptions(tc.names)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tc.names, err)
		}
		if got != tc.want {
			t.Fatalf("%v: expected %s, got %s", tc.names, tc.want, got)
		}
	}

	if _, err := ParseOptions([]string{"premium"}); err == nil {
		t.Fatal("expected unknown option error")
	}
}

package digittemplate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompileEmpty(t *testing.T) {
	if got := Compile(""); len(got) != 0 {
		t.Fatalf("expected no components, got %v", got)
	}
}

func TestCompileSingleCharacters(t *testing.T) {
	cases := map[string]Components{
		"(": {Literal("(")},
		"-": {Literal("-")},
		" ": {Literal(" ")},
		",": {Literal(",")},
		"+": {Literal("+")},
		"#": {Digit()},
		"N": {Set(DigitsExceptZeroAndOne)},
	}
	for d := byte('0'); d <= '9'; d++ {
		cases[string(d)] = Components{DigitLiteral(d)}
	}

	for template, want := range cases {
		if diff := cmp.Diff(want, Compile(template)); diff != "" {
			t.Fatalf("Compile(%q) mismatch (-want +got):\n%s", template, diff)
		}
	}
}

func TestCompileCollapsesSeparators(t *testing.T) {
	want := Components{Literal("( -")}
	if diff := cmp.Diff(want, Compile("( -")); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileCombinedTemplates(t *testing.T) {
	cases := []struct {
		template string
		want     Components
	}{
		{
			template: "(N##) 867-5309",
			want: Components{
				Literal("("),
				Set(DigitsExceptZeroAndOne), Digit(), Digit(),
				Literal(") "),
				DigitLiteral('8'), DigitLiteral('6'), DigitLiteral('7'),
				Literal("-"),
				DigitLiteral('5'), DigitLiteral('3'), DigitLiteral('0'), DigitLiteral('9'),
			},
		},
		{
			template: "(###) N##-####",
			want: Components{
				Literal("("),
				Digit(), Digit(), Digit(),
				Literal(") "),
				Set(DigitsExceptZeroAndOne), Digit(), Digit(),
				Literal("-"),
				Digit(), Digit(), Digit(), Digit(),
			},
		},
	}

	for _, tc := range cases {
		got := Compile(tc.template)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Compile(%q) mismatch (-want +got):\n%s", tc.template, diff)
		}
		if got.String() != tc.template {
			t.Fatalf("expected %q to render back unchanged, got %q", tc.template, got.String())
		}
	}
}

func TestCompileNeverProducesAdjacentLiterals(t *testing.T) {
	for _, template := range []string{"(##) ####-####", "+-- ## --+", "a b c", "7### ### ###"} {
		got := Compile(template)
		for i := 1; i < len(got); i++ {
			if got[i].Kind == KindLiteral && got[i-1].Kind == KindLiteral {
				t.Fatalf("Compile(%q) has adjacent literals at %d: %v", template, i, got)
			}
		}
	}
}

func TestCompileNonASCIISeparators(t *testing.T) {
	want := Components{Digit(), Literal("\u00a0–\u00a0"), Digit()}
	if diff := cmp.Diff(want, Compile("#\u00a0–\u00a0#")); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDigitCount(t *testing.T) {
	cases := map[string]int{
		"":               0,
		"911":            3,
		"(N##) N##-####": 10,
		"7### ### ###":   10,
		"(##) ####-####": 10,
		"- ()":           0,
	}
	for template, want := range cases {
		if got := Compile(template).DigitCount(); got != want {
			t.Fatalf("expected DigitCount(%q) = %d, got %d", template, want, got)
		}
	}
}

func TestTrimTrailingPlaceholders(t *testing.T) {
	cases := []struct {
		name string
		in   Components
		want Components
	}{
		{
			name: "nothing to drop",
			in:   Compile("(###) 867-5309"),
			want: Compile("(###) 867-5309"),
		},
		{
			name: "everything drops",
			in:   Compile("(###) ###-####"),
			want: Components{},
		},
		{
			name: "some drop",
			in:   Compile("(###) 555-####"),
			want: Compile("(###) 555"),
		},
	}

	for _, tc := range cases {
		got := tc.in.TrimTrailingPlaceholders()
		if len(tc.want) == 0 && len(got) == 0 {
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s: mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestDigitSet(t *testing.T) {
	s := NewDigitSet("2345678x9")
	if s != DigitsExceptZeroAndOne {
		t.Fatalf("expected %b, got %b", DigitsExceptZeroAndOne, s)
	}
	if s.Contains('1') || s.Contains('0') || s.Contains('a') {
		t.Fatal("expected 0, 1 and non-digits to be excluded")
	}
	if !s.Contains('2') || !s.Contains('9') {
		t.Fatal("expected 2 and 9 to be members")
	}
	if got := DigitsExceptZero.String(); got != "[123456789]" {
		t.Fatalf("expected [123456789], got %s", got)
	}
}

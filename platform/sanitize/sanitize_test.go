package sanitize

import "testing"

func TestPhone(t *testing.T) {
	cases := map[string]string{
		"(202) 404-1234":   "2024041234",
		"+1 202 404 1234":  "+12024041234",
		"1-800-FLOWERS":    "18003569377",
		" +44 (0)7259 264": "+4407259264",
		"1+2+3":            "123",
		"＋４４ ７２５９":        "+447259",
		"":                 "",
	}
	for input, want := range cases {
		if got := Phone(input); got != want {
			t.Fatalf("Phone(%q): expected %q, got %q", input, want, got)
		}
	}
}

func TestDigitsBefore(t *testing.T) {
	cases := []struct {
		input  string
		cursor int
		want   int
	}{
		{"(202) 404-123", 13, 9},
		{"(202) 44-123", 7, 4},
		{"(202) 44-123", 1, 0},
		{"(202) 44-123", 100, 8},
		{"(202) 44-123", -1, 0},
		{"1-800-FLOWERS", 9, 7},
	}
	for _, tc := range cases {
		if got := DigitsBefore(tc.input, tc.cursor); got != tc.want {
			t.Fatalf("DigitsBefore(%q, %d): expected %d, got %d", tc.input, tc.cursor, tc.want, got)
		}
	}
}

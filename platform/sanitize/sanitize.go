// Package sanitize provides text sanitization utilities for phone number input.
// This is part of the platform layer and contains no business logic.
package sanitize

import (
	"strings"

	"golang.org/x/text/width"
)

// keypad maps letters to the digit they share a key with on a phone keypad.
var keypad = strings.NewReplacer(
	"a", "2", "b", "2", "c", "2", "A", "2", "B", "2", "C", "2",
	"d", "3", "e", "3", "f", "3", "D", "3", "E", "3", "F", "3",
	"g", "4", "h", "4", "i", "4", "G", "4", "H", "4", "I", "4",
	"j", "5", "k", "5", "l", "5", "J", "5", "K", "5", "L", "5",
	"m", "6", "n", "6", "o", "6", "M", "6", "N", "6", "O", "6",
	"p", "7", "q", "7", "r", "7", "s", "7", "P", "7", "Q", "7", "R", "7", "S", "7",
	"t", "8", "u", "8", "v", "8", "T", "8", "U", "8", "V", "8",
	"w", "9", "x", "9", "y", "9", "z", "9", "W", "9", "X", "9", "Y", "9", "Z", "9",
)

// FoldWidth maps full-width and other wide forms (e.g. "＋４４") to their
// narrow ASCII equivalents.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// PhoneWords replaces letters with their keypad digit, so "1-800-FLOWERS"
// becomes "1-800-3569377".
func PhoneWords(s string) string {
	return keypad.Replace(s)
}

// Digits keeps only the ASCII digits of s.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// E164Chars keeps only digits and a leading '+'. A '+' anywhere else is dropped.
func E164Chars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone turns raw keyboard input into the digits-and-leading-plus form the
// phone number parser expects.
func Phone(s string) string {
	return E164Chars(PhoneWords(FoldWidth(s)))
}

// DigitsBefore counts the digits Phone would keep from the first cursor runes
// of s. A cursor past the end counts every digit; a negative one counts none.
func DigitsBefore(s string, cursor int) int {
	if cursor <= 0 {
		return 0
	}
	runes := []rune(s)
	if cursor < len(runes) {
		s = string(runes[:cursor])
	}
	return len(Digits(PhoneWords(FoldWidth(s))))
}

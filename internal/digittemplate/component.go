// Package digittemplate compiles phone number templates into digit components
// and matches digit strings against them in both directions.
//
// A template is a string where '#' stands for any digit, 'N' for a digit from
// 2 to 9, a decimal digit for exactly that digit, and every other character is
// a literal separator inserted when formatting.
package digittemplate

import (
	"strings"
)

// Kind identifies the variant of a Component.
type Kind uint8

const (
	// KindDigit matches any single digit 0-9.
	KindDigit Kind = iota
	// KindDigitSet matches a single digit contained in the component's Set.
	KindDigitSet
	// KindDigitLiteral matches exactly the component's Digit.
	KindDigitLiteral
	// KindLiteral is separator text emitted verbatim; it never consumes input.
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindDigitSet:
		return "digit_set"
	case KindDigitLiteral:
		return "digit_literal"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// DigitSet is a set of decimal digits; bit i is set when digit i is a member.
type DigitSet uint16

// DigitsExceptZeroAndOne is the set produced by the 'N' template character.
const DigitsExceptZeroAndOne DigitSet = 0b1111111100

// DigitsExceptZero is the set of digits 1 through 9.
const DigitsExceptZero DigitSet = 0b1111111110

// NewDigitSet builds a set from digit characters. Non-digit bytes are ignored.
func NewDigitSet(digits string) DigitSet {
	var s DigitSet
	for i := 0; i < len(digits); i++ {
		if isDigit(digits[i]) {
			s |= 1 << (digits[i] - '0')
		}
	}
	return s
}

// Contains reports whether the digit character d is a member of s.
func (s DigitSet) Contains(d byte) bool {
	return isDigit(d) && s&(1<<(d-'0')) != 0
}

func (s DigitSet) String() string {
	if s == DigitsExceptZeroAndOne {
		return "N"
	}
	var b strings.Builder
	b.WriteByte('[')
	for d := byte('0'); d <= '9'; d++ {
		if s.Contains(d) {
			b.WriteByte(d)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Component is one element of a compiled template. Only the field matching
// Kind is meaningful: Set for KindDigitSet, Digit for KindDigitLiteral and
// Text for KindLiteral.
type Component struct {
	Kind  Kind
	Set   DigitSet
	Digit byte
	Text  string
}

// Digit returns a component matching any digit.
func Digit() Component {
	return Component{Kind: KindDigit}
}

// Set returns a component matching any digit in s.
func Set(s DigitSet) Component {
	return Component{Kind: KindDigitSet, Set: s}
}

// DigitLiteral returns a component matching exactly the digit character d.
func DigitLiteral(d byte) Component {
	return Component{Kind: KindDigitLiteral, Digit: d}
}

// Literal returns a separator component.
func Literal(text string) Component {
	return Component{Kind: KindLiteral, Text: text}
}

// IsDigitLiteral reports whether c is a KindDigitLiteral component.
func (c Component) IsDigitLiteral() bool {
	return c.Kind == KindDigitLiteral
}

// String renders c in template notation.
func (c Component) String() string {
	switch c.Kind {
	case KindDigit:
		return "#"
	case KindDigitSet:
		return c.Set.String()
	case KindDigitLiteral:
		return string(c.Digit)
	case KindLiteral:
		return c.Text
	default:
		return ""
	}
}

// Components is an ordered, compiled template.
type Components []Component

// DigitCount returns the number of digits a fully matched number has.
func (cs Components) DigitCount() int {
	count := 0
	for _, c := range cs {
		switch c.Kind {
		case KindDigit, KindDigitSet, KindDigitLiteral:
			count++
		}
	}
	return count
}

// TrimTrailingPlaceholders drops components off the end until the last one is
// a digit literal.
func (cs Components) TrimTrailingPlaceholders() Components {
	end := len(cs)
	for end > 0 && !cs[end-1].IsDigitLiteral() {
		end--
	}
	return cs[:end]
}

// String concatenates the template notation of every component.
func (cs Components) String() string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.String())
	}
	return b.String()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

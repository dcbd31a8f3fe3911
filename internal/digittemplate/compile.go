package digittemplate

import "unicode/utf8"

// Compile turns a template string into its component sequence.
// Any string is a valid template; an empty one compiles to no components.
// Consecutive separator characters collapse into a single Literal.
func Compile(template string) Components {
	components := make(Components, 0, utf8.RuneCountInString(template))
	for _, r := range template {
		switch {
		case r >= '0' && r <= '9':
			components = append(components, DigitLiteral(byte(r)))
		case r == '#':
			components = append(components, Digit())
		case r == 'N':
			components = append(components, Set(DigitsExceptZeroAndOne))
		default:
			last := len(components) - 1
			if last >= 0 && components[last].Kind == KindLiteral {
				components[last].Text += string(r)
				continue
			}
			components = append(components, Literal(string(r)))
		}
	}
	return components
}

package phonenumber

import (
	"fmt"
	"strings"
)

// Options tags the class of numbers a template describes.
type Options uint8

const (
	// OptionMobile marks numbers which may only be used by mobile phones.
	OptionMobile Options = 1 << (iota + 1)
	// OptionService marks numbers used by businesses.
	OptionService
	// OptionTollFree marks numbers whose owner accepts the charges.
	OptionTollFree
	// OptionEmergency marks numbers for contacting emergency services.
	OptionEmergency
	// OptionForbidden marks patterns which cannot be real phone numbers.
	OptionForbidden
	// OptionEntertainment marks numbers which may be stated in fiction but are
	// not assigned to real devices.
	OptionEntertainment
)

const (
	// OptionsDefault is the set of classes real end users might give as their number.
	OptionsDefault = OptionMobile | OptionService | OptionTollFree
	// OptionsAll allows every class.
	OptionsAll = OptionsDefault | OptionEmergency | OptionForbidden | OptionEntertainment
)

var optionNames = []struct {
	option Options
	name   string
}{
	{OptionMobile, "mobile"},
	{OptionService, "service"},
	{OptionTollFree, "toll_free"},
	{OptionEmergency, "emergency"},
	{OptionForbidden, "forbidden"},
	{OptionEntertainment, "entertainment"},
}

// Contains reports whether every class in other is also in o.
func (o Options) Contains(other Options) bool {
	return o&other == other
}

// Subtract returns the classes of o which are not in other.
func (o Options) Subtract(other Options) Options {
	return o &^ other
}

// AllowedBy reports whether o has no class outside allowed.
func (o Options) AllowedBy(allowed Options) bool {
	return o.Subtract(allowed) == 0
}

// Names lists the class names in o.
func (o Options) Names() []string {
	names := make([]string, 0, len(optionNames))
	for _, n := range optionNames {
		if o.Contains(n.option) {
			names = append(names, n.name)
		}
	}
	return names
}

func (o Options) String() string {
	switch o {
	case OptionsAll:
		return ".all"
	case OptionsDefault:
		return ".default"
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, name := range o.Names() {
		b.WriteString("." + name + ",")
	}
	b.WriteByte(']')
	return b.String()
}

// ParseOptions builds a set from class names. "all" and "default" name the
// predefined sets and "none" adds nothing; "tollFree" and "toll-free" are
// accepted for "toll_free".
func ParseOptions(names []string) (Options, error) {
	var o Options
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		name = strings.NewReplacer("-", "_", "tollfree", "toll_free").Replace(name)
		switch name {
		case "", "none":
			continue
		case "all":
			o |= OptionsAll
			continue
		case "default":
			o |= OptionsDefault
			continue
		}
		found := false
		for _, n := range optionNames {
			if n.name == name {
				o |= n.option
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("phonenumber: unknown option %q", raw)
		}
	}
	return o, nil
}

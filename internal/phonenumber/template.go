package phonenumber

// Template is one valid number shape for a country. See package digittemplate
// for the pattern syntax.
type Template struct {
	Pattern string
	Options Options
}

// NewTemplate returns a template with the given classes, or OptionsDefault
// when none are given.
func NewTemplate(pattern string, options ...Options) Template {
	if len(options) == 0 {
		return Template{Pattern: pattern, Options: OptionsDefault}
	}
	var o Options
	for _, opt := range options {
		o |= opt
	}
	return Template{Pattern: pattern, Options: o}
}

// CountryEntry lists a country's templates in preference order. TrunkPrefix is
// the domestic dialing prefix, e.g. "0", stripped before matching and added
// back when a number is shown without its calling code.
type CountryEntry struct {
	Templates   []Template
	TrunkPrefix string
}

// Table maps each country to its templates.
type Table map[Country]CountryEntry

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	clone := make(Table, len(t))
	for country, entry := range t {
		templates := make([]Template, len(entry.Templates))
		copy(templates, entry.Templates)
		clone[country] = CountryEntry{Templates: templates, TrunkPrefix: entry.TrunkPrefix}
	}
	return clone
}

// Restrict returns the part of t covering countries.
func (t Table) Restrict(countries []Country) Table {
	restricted := make(Table, len(countries))
	for _, c := range countries {
		if entry, ok := t[c]; ok {
			restricted[c] = entry
		}
	}
	return restricted
}

// TemplateCount returns the number of templates across every country.
func (t Table) TemplateCount() int {
	n := 0
	for _, entry := range t {
		n += len(entry.Templates)
	}
	return n
}

// DefaultTable returns a fresh copy of the built-in templates.
func DefaultTable() Table {
	return Table{
		Australia: {
			Templates: []Template{
				NewTemplate("4## ### ###", OptionMobile),
				NewTemplate("5## ### ###", OptionMobile),
			},
			TrunkPrefix: "0",
		},
		Denmark: {
			Templates: []Template{
				NewTemplate("112", OptionEmergency),
				NewTemplate("114", OptionEmergency),
				NewTemplate("80 ## ## ##", OptionTollFree),
				NewTemplate("## ## ## ##"),
			},
		},
		Spain: {
			Templates: []Template{
				NewTemplate("112", OptionEmergency),
				NewTemplate("6## ### ###", OptionMobile),
				NewTemplate("7## ### ###", OptionMobile),
			},
		},
		Greece: {
			Templates: []Template{
				NewTemplate("### #######"),
			},
		},
		Iceland: {
			Templates: []Template{
				NewTemplate("3## ### ###"),
				NewTemplate("### ####"),
			},
		},
		Italy: {
			Templates: []Template{
				NewTemplate("112", OptionEmergency),
				NewTemplate("113", OptionEmergency),
				NewTemplate("114", OptionEmergency),
				NewTemplate("115", OptionEmergency),
				NewTemplate("118", OptionEmergency),
				NewTemplate("3## ######", OptionMobile),
				NewTemplate("3## #######", OptionMobile),
			},
		},
		Mexico: {
			Templates: []Template{
				NewTemplate("(##) ####-####"),
			},
		},
		Poland: {
			Templates: []Template{
				NewTemplate("800 ### ###", OptionTollFree),
				NewTemplate("## ### ## ##"),
			},
		},
		Portugal: {
			Templates: []Template{
				NewTemplate("9## ### ###", OptionMobile),
			},
		},
		UnitedKingdom: {
			Templates: []Template{
				NewTemplate("999", OptionEmergency),
				NewTemplate("112", OptionEmergency),
				NewTemplate("7### ### ###", OptionMobile),
				NewTemplate("800 ### ###", OptionTollFree),
				NewTemplate("800 ### ####", OptionTollFree),
				NewTemplate("808 ### ####", OptionTollFree),
			},
			TrunkPrefix: "0",
		},
		USAndCanada: {
			Templates: []Template{
				NewTemplate("(800) ###-####", OptionTollFree),
				NewTemplate("(888) ###-####", OptionTollFree),
				NewTemplate("(666) ###-####", OptionForbidden),
				NewTemplate("(###) 555-####", OptionEntertainment),
				NewTemplate("911", OptionEmergency),
				NewTemplate("(###) ###-####"),
			},
		},
	}
}

package phonenumber

import "slices"

// CountryCodeMode selects how the calling code is shown by Format.
type CountryCodeMode uint8

const (
	// NoCountryCode shows the domestic form, with the trunk prefix when the
	// country has one.
	NoCountryCode CountryCodeMode = iota
	// IncludeCountryCode shows the international form, "+44 7259 264 820".
	IncludeCountryCode
	// CountryCodeDrawnSeparately shows neither calling code nor trunk prefix,
	// for callers that draw the country themselves.
	CountryCodeDrawnSeparately
)

func (m CountryCodeMode) String() string {
	switch m {
	case IncludeCountryCode:
		return "international"
	case CountryCodeDrawnSeparately:
		return "separate"
	default:
		return "domestic"
	}
}

// ParseCountryCodeMode accepts the names returned by CountryCodeMode.String.
// An empty name selects NoCountryCode.
func ParseCountryCodeMode(name string) (CountryCodeMode, bool) {
	switch name {
	case "", "domestic":
		return NoCountryCode, true
	case "international":
		return IncludeCountryCode, true
	case "separate":
		return CountryCodeDrawnSeparately, true
	default:
		return 0, false
	}
}

// FormatOptions are cosmetic switches applied to formatted output.
type FormatOptions uint8

const (
	// UseNonBreakingSpace replaces spaces with U+00A0 so a number never wraps.
	UseNonBreakingSpace FormatOptions = 1 << iota
)

// Formatter parses and formats phone numbers for a fixed set of countries and
// number classes. A Formatter is not safe for concurrent use with SetTable;
// all other methods only read.
type Formatter struct {
	allowedCountries []Country
	assumedCountry   Country
	assumedExplicit  bool
	allowedOptions   Options
	formatOptions    FormatOptions

	source Table
	table  Table
	cache  templateCache
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithAllowedCountries limits the formatter to countries, in preference order.
// The order decides which country wins when calling codes are ambiguous.
func WithAllowedCountries(countries ...Country) FormatterOption {
	return func(f *Formatter) {
		f.allowedCountries = slices.Clone(countries)
	}
}

// WithAssumedCountry sets the country preferred when input could belong to
// several. It defaults to the first allowed country.
func WithAssumedCountry(c Country) FormatterOption {
	return func(f *Formatter) {
		f.assumedCountry = c
		f.assumedExplicit = true
	}
}

// WithAllowedOptions sets the number classes the formatter accepts.
// It defaults to OptionsDefault.
func WithAllowedOptions(o Options) FormatterOption {
	return func(f *Formatter) {
		f.allowedOptions = o
	}
}

// WithFormatOptions sets cosmetic output switches.
func WithFormatOptions(o FormatOptions) FormatterOption {
	return func(f *Formatter) {
		f.formatOptions = o
	}
}

// WithTable replaces the built-in template table.
func WithTable(t Table) FormatterOption {
	return func(f *Formatter) {
		f.source = t.Clone()
	}
}

// New returns a Formatter over every supported country using the default
// table, unless options say otherwise.
func New(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		allowedOptions: OptionsDefault,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.source == nil {
		f.source = DefaultTable()
	}
	f.finish()
	return f
}

// With returns a new Formatter sharing f's settings and table, adjusted by opts.
func (f *Formatter) With(opts ...FormatterOption) *Formatter {
	derived := &Formatter{
		allowedCountries: slices.Clone(f.allowedCountries),
		assumedCountry:   f.assumedCountry,
		assumedExplicit:  f.assumedExplicit,
		allowedOptions:   f.allowedOptions,
		formatOptions:    f.formatOptions,
		source:           f.source,
	}
	for _, opt := range opts {
		opt(derived)
	}
	derived.finish()
	return derived
}

func (f *Formatter) finish() {
	if len(f.allowedCountries) == 0 {
		f.allowedCountries = AllCountries()
	}
	if !f.assumedExplicit {
		f.assumedCountry = f.allowedCountries[0]
	}
	f.rebuild()
}

func (f *Formatter) rebuild() {
	f.table = f.source.Restrict(f.allowedCountries)
	f.cache = newTemplateCache(f.table)
}

// SetTable replaces the template table and recompiles every template.
func (f *Formatter) SetTable(t Table) {
	f.source = t.Clone()
	f.rebuild()
}

// Table returns a copy of the templates of the allowed countries.
func (f *Formatter) Table() Table {
	return f.table.Clone()
}

// AllowedCountries returns the allowed countries in preference order.
func (f *Formatter) AllowedCountries() []Country {
	return slices.Clone(f.allowedCountries)
}

// AssumedCountry returns the tie-break country.
func (f *Formatter) AssumedCountry() Country {
	return f.assumedCountry
}

// AllowedOptions returns the accepted number classes.
func (f *Formatter) AllowedOptions() Options {
	return f.allowedOptions
}

// ParseFormatterOptions turns textual settings, as found in configuration or
// on a command line, into formatter options. Empty settings are left at their
// defaults.
func ParseFormatterOptions(countries []string, assumed string, options []string) ([]FormatterOption, error) {
	var opts []FormatterOption
	if len(countries) > 0 {
		parsed, err := ParseCountries(countries)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAllowedCountries(parsed...))
	}
	if assumed != "" {
		c, err := ParseCountry(assumed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAssumedCountry(c))
	}
	if len(options) > 0 {
		o, err := ParseOptions(options)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAllowedOptions(o))
	}
	return opts, nil
}

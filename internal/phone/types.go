package phone

// ParseRequest is the body of POST /api/v1/phone/parse. The optional lists
// narrow the configured formatter for this request only.
type ParseRequest struct {
	Input            string   `json:"input" validate:"max=64"`
	Cursor           *int     `json:"cursor,omitempty" validate:"omitempty,min=0"`
	AllowedCountries []string `json:"allowed_countries,omitempty" validate:"omitempty,max=16,dive,required"`
	AssumedCountry   string   `json:"assumed_country,omitempty" validate:"omitempty,max=32"`
	AllowedOptions   []string `json:"allowed_options,omitempty" validate:"omitempty,max=8,dive,required"`
}

// NumberResponse describes an interpreted number. Cursor is set when the
// request carried one and is an offset into Digits.
type NumberResponse struct {
	Country     string `json:"country"`
	CountryName string `json:"country_name"`
	CallingCode string `json:"calling_code"`
	Digits      string `json:"digits"`
	Partial     bool   `json:"partial"`
	E164        string `json:"e164"`
	Formatted   string `json:"formatted"`
	Cursor      *int   `json:"cursor,omitempty"`
}

// FormatRequest is the body of POST /api/v1/phone/format.
type FormatRequest struct {
	Country          string `json:"country" validate:"required,max=32"`
	Digits           string `json:"digits" validate:"required,number,max=32"`
	Partial          bool   `json:"partial"`
	Cursor           *int   `json:"cursor,omitempty" validate:"omitempty,min=0"`
	Mode             string `json:"mode,omitempty" validate:"omitempty,oneof=domestic international separate"`
	NonBreakingSpace bool   `json:"non_breaking_space,omitempty"`
}

// FormatResponse holds the display text. Cursor is a rune offset into Formatted.
type FormatResponse struct {
	Formatted string `json:"formatted"`
	Cursor    *int   `json:"cursor,omitempty"`
}

// NormalizeRequest is the query of GET /api/v1/phone/normalize.
type NormalizeRequest struct {
	Query  string `form:"q" validate:"required,max=64"`
	Region string `form:"region" validate:"omitempty,len=2,alpha"`
}

// NormalizeResponse compares the template engine with libphonenumber.
type NormalizeResponse struct {
	Input         string          `json:"input"`
	Region        string          `json:"region"`
	Reference     string          `json:"reference_e164,omitempty"`
	ReferenceOK   bool            `json:"reference_valid"`
	Number        *NumberResponse `json:"number,omitempty"`
	NoMatchReason string          `json:"no_match_reason,omitempty"`
	Agrees        bool            `json:"agrees"`
}

// TemplateResponse is one template of a country.
type TemplateResponse struct {
	Pattern string   `json:"pattern"`
	Options []string `json:"options"`
}

// CountryResponse is one configured country.
type CountryResponse struct {
	Country     string             `json:"country"`
	Name        string             `json:"name"`
	CallingCode string             `json:"calling_code"`
	TrunkPrefix string             `json:"trunk_prefix,omitempty"`
	Assumed     bool               `json:"assumed"`
	Templates   []TemplateResponse `json:"templates"`
}

// CountriesResponse lists the configured countries in preference order.
type CountriesResponse struct {
	AllowedOptions []string          `json:"allowed_options"`
	Countries      []CountryResponse `json:"countries"`
}

// TableReplacedResponse confirms a table replacement.
type TableReplacedResponse struct {
	Countries int `json:"countries"`
	Templates int `json:"templates"`
}

// NoMatchDetails is attached to 422 responses.
type NoMatchDetails struct {
	Cause   string `json:"cause"`
	Country string `json:"country,omitempty"`
}

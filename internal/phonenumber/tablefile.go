package phonenumber

import (
	"fmt"
	"io"
	"os"

	"phonefmt/platform/validator"

	"gopkg.in/yaml.v3"
)

// TableFile is the serialized form of a Table, used for YAML files and for
// table replacement over HTTP.
type TableFile struct {
	Countries []CountryFile `yaml:"countries" json:"countries" validate:"required,min=1,dive"`
}

// CountryFile is one country of a TableFile. Country accepts anything
// ParseCountry does.
type CountryFile struct {
	Country     string         `yaml:"country" json:"country" validate:"required"`
	TrunkPrefix string         `yaml:"trunk_prefix,omitempty" json:"trunk_prefix,omitempty" validate:"omitempty,numeric"`
	Templates   []TemplateFile `yaml:"templates" json:"templates" validate:"required,min=1,dive"`
}

// TemplateFile is one template of a CountryFile. Without options a template
// gets OptionsDefault; "none" gives it no class at all.
type TemplateFile struct {
	Pattern string   `yaml:"pattern" json:"pattern" validate:"required,digit_template"`
	Options []string `yaml:"options,omitempty,flow" json:"options,omitempty" validate:"omitempty,dive,oneof=mobile service toll_free emergency forbidden entertainment all default none"`
}

// Validate checks tf's structure with v, which must come from NewValidator,
// and resolves it into a Table.
func (tf TableFile) Validate(v *validator.Validator) (Table, error) {
	if err := v.Struct(tf); err != nil {
		return nil, fmt.Errorf("invalid template table: %w", err)
	}
	return tf.Table()
}

// Table resolves country names and option names.
func (tf TableFile) Table() (Table, error) {
	table := make(Table, len(tf.Countries))
	for _, cf := range tf.Countries {
		country, err := ParseCountry(cf.Country)
		if err != nil {
			return nil, err
		}
		if _, dup := table[country]; dup {
			return nil, fmt.Errorf("phonenumber: country %s listed twice", country)
		}
		entry := CountryEntry{TrunkPrefix: cf.TrunkPrefix}
		for _, tmpl := range cf.Templates {
			options := OptionsDefault
			if len(tmpl.Options) > 0 {
				options, err = ParseOptions(tmpl.Options)
				if err != nil {
					return nil, err
				}
			}
			entry.Templates = append(entry.Templates, Template{Pattern: tmpl.Pattern, Options: options})
		}
		table[country] = entry
	}
	return table, nil
}

// NewTableFile converts t, listing countries in AllCountries order.
func NewTableFile(t Table) TableFile {
	tf := TableFile{Countries: make([]CountryFile, 0, len(t))}
	for _, country := range AllCountries() {
		entry, ok := t[country]
		if !ok {
			continue
		}
		cf := CountryFile{
			Country:     country.Region(),
			TrunkPrefix: entry.TrunkPrefix,
			Templates:   make([]TemplateFile, 0, len(entry.Templates)),
		}
		for _, tmpl := range entry.Templates {
			names := tmpl.Options.Names()
			if len(names) == 0 {
				names = []string{"none"}
			}
			cf.Templates = append(cf.Templates, TemplateFile{Pattern: tmpl.Pattern, Options: names})
		}
		tf.Countries = append(tf.Countries, cf)
	}
	return tf
}

// DecodeTable reads a YAML table from r.
func DecodeTable(r io.Reader, v *validator.Validator) (Table, error) {
	var tf TableFile
	if err := yaml.NewDecoder(r).Decode(&tf); err != nil {
		return nil, fmt.Errorf("decode template table: %w", err)
	}
	return tf.Validate(v)
}

// LoadTable reads a YAML table file.
func LoadTable(path string, v *validator.Validator) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return DecodeTable(file, v)
}

// EncodeTable writes t to w as YAML.
func EncodeTable(w io.Writer, t Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewTableFile(t)); err != nil {
		return err
	}
	return enc.Close()
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"phonefmt/internal/phonenumber"
	"phonefmt/platform/sanitize"

	"github.com/spf13/cobra"
)

// parseResult is the --json output of parse and decode.
type parseResult struct {
	Country   phonenumber.Country `json:"country"`
	Digits    string              `json:"digits"`
	Partial   bool                `json:"partial"`
	E164      string              `json:"e164"`
	Formatted string              `json:"formatted,omitempty"`
	Cursor    *int                `json:"cursor,omitempty"`
}

func newParseCmd(opts *rootOptions) *cobra.Command {
	var cursor int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Interpret raw input as a phone number",
		Long: `Interprets raw input, possibly incomplete, against the allowed countries.

With --cursor the rune offset into input is translated into an offset into
the resulting digits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.formatter(cmd)
			if err != nil {
				return err
			}

			withCursor := cmd.Flags().Changed("cursor")
			var (
				n   phonenumber.Number
				pos int
			)
			if withCursor {
				n, pos, err = f.ParseCursor(args[0], cursor)
			} else {
				n, err = f.Parse(args[0])
			}
			log := opts.logger(cmd)
			if err != nil {
				var nr *phonenumber.NoResultError
				if errors.As(err, &nr) {
					country := ""
					if nr.Country.Valid() {
						country = nr.Country.Region()
					}
					log.PhoneUnmatched(nr.Cause.String(), country, len(sanitize.Digits(args[0])))
				}
				return err
			}
			log.PhoneParsed(n.Country.Region(), len(n.Digits), n.Partial)

			formatted, _ := f.Format(n, phonenumber.IncludeCountryCode)
			result := parseResult{
				Country:   n.Country,
				Digits:    n.Digits,
				Partial:   n.Partial,
				E164:      n.E164(),
				Formatted: formatted,
			}
			if withCursor {
				result.Cursor = &pos
			}
			return writeResult(cmd.OutOrStdout(), result, asJSON)
		},
	}

	cmd.Flags().IntVar(&cursor, "cursor", 0, "Cursor position in input, in runes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func writeResult(w io.Writer, r parseResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(w, "country: %s (%s)\n", r.Country.Region(), r.Country)
	fmt.Fprintf(w, "digits: %s\n", r.Digits)
	fmt.Fprintf(w, "partial: %t\n", r.Partial)
	fmt.Fprintf(w, "e164: %s\n", r.E164)
	if r.Formatted != "" {
		fmt.Fprintf(w, "formatted: %s\n", r.Formatted)
	}
	if r.Cursor != nil {
		fmt.Fprintf(w, "cursor: %d\n", *r.Cursor)
	}
	return nil
}

package main

import (
	"fmt"

	"phonefmt/internal/phonenumber"

	"github.com/spf13/cobra"
)

func newFormatCmd(opts *rootOptions) *cobra.Command {
	var (
		mode    string
		cursor  int
		partial bool
	)

	cmd := &cobra.Command{
		Use:   "format <country> <digits>",
		Short: "Render national digits for display",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			country, err := phonenumber.ParseCountry(args[0])
			if err != nil {
				return err
			}
			m, ok := phonenumber.ParseCountryCodeMode(mode)
			if !ok {
				return fmt.Errorf("unknown mode %q (want domestic, international or separate)", mode)
			}
			f, err := opts.formatter(cmd)
			if err != nil {
				return err
			}

			n := phonenumber.Number{Country: country, Digits: args[1], Partial: partial}
			at := len(n.Digits)
			if cmd.Flags().Changed("cursor") {
				at = cursor
			}
			formatted, pos, err := f.FormatCursor(n, at, m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatted)
			if cmd.Flags().Changed("cursor") {
				fmt.Fprintf(out, "cursor: %d\n", pos)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "domestic", "Calling code display: domestic, international or separate")
	cmd.Flags().IntVar(&cursor, "cursor", 0, "Cursor position in digits")
	cmd.Flags().BoolVar(&partial, "partial", false, "Digits are only the beginning of a number")
	return cmd
}

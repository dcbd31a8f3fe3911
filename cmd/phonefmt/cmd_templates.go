package main

import (
	"phonefmt/internal/phonenumber"

	"github.com/spf13/cobra"
)

func newTemplatesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Print the active template table as YAML",
		Long: `Prints the template table in the format accepted by --templates,
restricted to the allowed countries. Edit the output and pass it back to
change how numbers are matched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := opts.formatter(cmd)
			if err != nil {
				return err
			}
			return phonenumber.EncodeTable(cmd.OutOrStdout(), f.Table().Restrict(f.AllowedCountries()))
		},
	}
}

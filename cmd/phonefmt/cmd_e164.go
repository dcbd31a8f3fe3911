package main

import (
	"fmt"

	"phonefmt/internal/phonenumber"

	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <country> <digits>",
		Short: "Print the E.164 exchange form of a number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			country, err := phonenumber.ParseCountry(args[0])
			if err != nil {
				return err
			}
			text, err := phonenumber.Number{Country: country, Digits: args[1]}.MarshalText()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(text))
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode <+e164>",
		Short: "Decode an E.164 exchange string",
		Long:  "Decodes against every supported country and number class, ignoring --countries and --options.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := phonenumber.DecodeE164(args[0])
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), parseResult{
				Country: n.Country,
				Digits:  n.Digits,
				Partial: n.Partial,
				E164:    n.E164(),
			}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

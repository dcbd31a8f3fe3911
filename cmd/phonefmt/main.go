// Command phonefmt parses, formats and encodes phone numbers with the
// built-in digit templates or a YAML template table.
package main

import (
	"io"
	"os"

	"phonefmt/internal/phonenumber"
	"phonefmt/platform/logger"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	countries []string
	assumed   string
	options   []string
	templates string
	nbsp      bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "phonefmt",
		Short: "Parse and format phone numbers with per-country digit templates",
		Long: `phonefmt interprets phone numbers the way a typing user enters them.

Countries are given by name (united_kingdom), region (GB) or calling code (44).
Options name number classes: mobile, service, toll_free, emergency,
forbidden, entertainment, or the sets default and all.

Examples:
  phonefmt parse "(202) 404-1234"
  phonefmt parse --countries GB,US "07259 264 820"
  phonefmt format GB 7259264820 --mode international
  phonefmt decode +447259264820`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&opts.countries, "countries", nil, "Allowed countries in preference order (default: all)")
	flags.StringVar(&opts.assumed, "assumed", "", "Country preferred for ambiguous input (default: first allowed)")
	flags.StringSliceVar(&opts.options, "options", nil, "Allowed number classes (default: default)")
	flags.StringVar(&opts.templates, "templates", "", "YAML template table replacing the built-in one")
	flags.BoolVar(&opts.nbsp, "nbsp", false, "Use non-breaking spaces in formatted output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	root.AddCommand(
		newParseCmd(opts),
		newFormatCmd(opts),
		newEncodeCmd(),
		newDecodeCmd(),
		newTemplatesCmd(opts),
	)
	return root
}

func (o *rootOptions) logger(cmd *cobra.Command) *logger.Logger {
	if !o.verbose {
		return logger.Discard()
	}
	return logger.NewWithWriter("development", cmd.ErrOrStderr())
}

// formatter builds a Formatter from the persistent flags.
func (o *rootOptions) formatter(cmd *cobra.Command) (*phonenumber.Formatter, error) {
	opts, err := phonenumber.ParseFormatterOptions(o.countries, o.assumed, o.options)
	if err != nil {
		return nil, err
	}
	if o.nbsp {
		opts = append(opts, phonenumber.WithFormatOptions(phonenumber.UseNonBreakingSpace))
	}
	f := phonenumber.New(opts...)

	if o.templates != "" {
		val, err := phonenumber.NewValidator()
		if err != nil {
			return nil, err
		}
		table, err := phonenumber.LoadTable(o.templates, val)
		if err != nil {
			return nil, err
		}
		f.SetTable(table)
		active := f.Table()
		o.logger(cmd).TableRebuilt(o.templates, len(active), active.TemplateCount())
	}
	return f, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

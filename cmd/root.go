package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PhilipKram/rtab/internal/cmdutil"
	"github.com/PhilipKram/rtab/internal/config"
	"github.com/PhilipKram/rtab/internal/records"
	"github.com/PhilipKram/rtab/internal/tableprinter"
)

// NewRootCmd creates the root command for rtab.
func NewRootCmd(version string) *cobra.Command {
	f := cmdutil.NewFactory()
	f.Version = version
	return newRootCmd(f)
}

func newRootCmd(f *cmdutil.Factory) *cobra.Command {
	var (
		style      = styleValue(tableprinter.StyleBasic)
		spaces     = spacesValue(defaultSpaces)
		headers    bool
		separators bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "rtab <file> [flags]",
		Short: "Generate tables from CSV",
		Long: `Read a CSV file and print its rows as an aligned text table.

Use "-" as the file to read from standard input.`,
		Example: `  $ rtab data.csv
  $ rtab data.csv --style fancy --headers
  $ rtab data.csv --style fancy --separators -s 2
  $ cat data.csv | rtab - --style markdown`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       f.Version,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"csv"}, cobra.ShellCompDirectiveFilterFileExt
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			f.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config()
			if err != nil {
				f.Logger.WithError(err).Warn("ignoring config, using defaults")
				cfg = config.Default()
			}

			// Flags override config only when given explicitly.
			opts := cfg.Options()
			flags := cmd.Flags()
			if flags.Changed("style") {
				opts.Style = tableprinter.Style(style)
			}
			if flags.Changed("spaces") {
				opts.Spacing = int(spaces)
			}
			if flags.Changed("headers") {
				opts.Headers = headers
			}
			if flags.Changed("separators") {
				opts.Separators = separators
			}

			return runTable(f, args[0], opts)
		},
	}

	cmd.Flags().Var(&style, "style", fmt.Sprintf("Table style: {%s}", strings.Join(tableprinter.Styles(), "|")))
	cmd.Flags().BoolVar(&headers, "headers", false, "Draw a separator after the first row (fancy style)")
	cmd.Flags().BoolVar(&separators, "separators", false, "Draw a separator between every row (fancy style)")
	cmd.Flags().VarP(&spaces, "spaces", "s", "Padding spaces around each field")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostic output to stderr")
	cmd.SetVersionTemplate("rtab version {{.Version}}\n")

	_ = cmd.RegisterFlagCompletionFunc("style", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tableprinter.Styles(), cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(NewConfigCmd(f))
	cmd.AddCommand(NewCompletionCmd(f))

	return cmd
}

func runTable(f *cmdutil.Factory, path string, opts tableprinter.Options) error {
	log := f.Logger.WithField("path", path)

	recs, err := readRecords(f, path)
	if err != nil {
		return err
	}

	tbl := tableprinter.NewTable(recs)
	log.WithFields(logrus.Fields{
		"records": len(tbl.Records),
		"columns": len(tbl.Widths),
		"widths":  tbl.Widths,
	}).Debug("parsed input")

	out, err := tableprinter.Format(tbl, opts)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"style":   opts.Style,
		"spacing": opts.Spacing,
		"bytes":   len(out),
	}).Debug("formatted table")

	ios := f.IOStreams
	if ios.IsTerminal() {
		if w, tw := maxLineWidth(out), ios.TerminalWidth(); w > tw {
			log.Warnf("table is %d characters wide, terminal is %d", w, tw)
		}
	}

	if _, err := io.WriteString(ios.Out, out); err != nil {
		return &tableprinter.FormatError{Style: opts.Style, Err: fmt.Errorf("writing output: %w", err)}
	}
	return nil
}

func readRecords(f *cmdutil.Factory, path string) ([]records.Record, error) {
	if path != "-" {
		return records.ParseFile(path)
	}
	if f.IOStreams.IsStdinTTY() {
		return nil, &records.ParseError{Path: "<stdin>", Err: errors.New("refusing to read a terminal; pipe CSV input or pass a file path")}
	}
	recs, err := records.Parse(f.IOStreams.In)
	if err != nil {
		var pe *records.ParseError
		if errors.As(err, &pe) {
			pe.Path = "<stdin>"
		}
		return nil, err
	}
	return recs, nil
}

func maxLineWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if n := utf8.RuneCountInString(line); n > widest {
			widest = n
		}
	}
	return widest
}

// PrintError writes err to w the way rtab reports failures.
func PrintError(w io.Writer, err error) {
	var (
		pe *records.ParseError
		fe *tableprinter.FormatError
	)
	switch {
	case errors.As(err, &pe):
		fmt.Fprintf(w, "Error parsing file: %v\n", err)
	case errors.As(err, &fe):
		fmt.Fprintf(w, "Error formatting output: %v\n", err)
	default:
		fmt.Fprintln(w, err)
	}
}

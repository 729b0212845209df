package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PhilipKram/rtab/internal/cmdutil"
	"github.com/PhilipKram/rtab/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage configuration",
		Long:  "Get and set the default table settings used when flags are not given.",
	}

	cmd.AddCommand(newConfigGetCmd(f))
	cmd.AddCommand(newConfigSetCmd(f))
	cmd.AddCommand(newConfigListCmd(f))

	return cmd
}

func newConfigGetCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Example: `  $ rtab config get style
  $ rtab config get spaces`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config()
			if err != nil {
				return err
			}

			value, err := cfg.Get(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(f.IOStreams.Out, value)
			return nil
		},
	}

	return cmd
}

func newConfigSetCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

Available keys:
  style        - Default table style (basic, fancy or markdown)
  spaces       - Default padding spaces around each field
  headers      - Draw a separator after the first row (true or false)
  separators   - Draw a separator between every row (true or false)`,
		Example: `  $ rtab config set style fancy
  $ rtab config set spaces 2
  $ rtab config set headers true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config()
			if err != nil {
				return err
			}

			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}

			f.Logger.WithField("dir", config.ConfigDir()).Debug("saved config")
			fmt.Fprintf(f.IOStreams.Out, "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}

	return cmd
}

func newConfigListCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List configuration values",
		Aliases: []string{"ls"},
		Example: `  $ rtab config list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config()
			if err != nil {
				return err
			}

			out := f.IOStreams.Out
			for _, key := range config.Keys() {
				value, _ := cfg.Get(key)
				fmt.Fprintf(out, "%s=%s\n", key, value)
			}

			return nil
		},
	}

	return cmd
}

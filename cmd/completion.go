package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PhilipKram/rtab/internal/cmdutil"
)

// NewCompletionCmd creates the completion command.
func NewCompletionCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for rtab.

To load completions:

  Bash:
    $ source <(rtab completion bash)

  Zsh:
    $ rtab completion zsh > "${fpath[1]}/_rtab"

  Fish:
    $ rtab completion fish | source

  PowerShell:
    PS> rtab completion powershell | Out-String | Invoke-Expression`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := f.IOStreams.Out
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

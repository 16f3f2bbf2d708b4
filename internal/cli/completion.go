package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pageviz.

To load completions:

Bash:
  $ source <(pageviz completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ pageviz completion bash > /etc/bash_completion.d/pageviz
  # macOS:
  $ pageviz completion bash > $(brew --prefix)/etc/bash_completion.d/pageviz

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ pageviz completion zsh > "${fpath[1]}/_pageviz"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ pageviz completion fish | source

  # To load completions for each session, execute once:
  $ pageviz completion fish > ~/.config/fish/completions/pageviz.fish

PowerShell:
  PS> pageviz completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> pageviz completion powershell > pageviz.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
)

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for dotenv-linter.

To load completions:

Bash:
  $ source <(dotenv-linter completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ dotenv-linter completion bash > /etc/bash_completion.d/dotenv-linter
  # macOS:
  $ dotenv-linter completion bash > $(brew --prefix)/etc/bash_completion.d/dotenv-linter

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ dotenv-linter completion zsh > "${fpath[1]}/_dotenv-linter"

Fish:
  $ dotenv-linter completion fish | source

  # To load completions for each session, execute once:
  $ dotenv-linter completion fish > ~/.config/fish/completions/dotenv-linter.fish

PowerShell:
  PS> dotenv-linter completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
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

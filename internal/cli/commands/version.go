package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display dotenv-linter version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dotenv-linter v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Lightning-fast linter for .env files (%d checks)\n", len(lint.AllKinds()))
		},
	}
}

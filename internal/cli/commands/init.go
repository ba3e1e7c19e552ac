package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/dotenv-linter/internal/cli/config"
	"github.com/leapstack-labs/dotenv-linter/internal/cli/output"
)

// ErrConfigExists is returned by init when a config file is already present.
var ErrConfigExists = errors.New("config file already exists")

const configHeader = `# dotenv-linter configuration
# Check names for "skip" are listed by: dotenv-linter list
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a default .dotenv-linter.yaml",
		Long: `Write a .dotenv-linter.yaml with the default settings.

The file is picked up by every dotenv-linter command run in the directory
or below it.`,
		Example: `  # Initialize in current directory
  dotenv-linter init

  # Force overwrite existing config
  dotenv-linter init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(NewCommandContext(cmd).Renderer, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, config.ConfigFileNames[0])
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s: %w. Use --force to overwrite", configPath, ErrConfigExists)
	}

	body, err := yaml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(configPath, append([]byte(configHeader), body...), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.Success("Created " + configPath)
	return nil
}

// Package config loads dotenv-linter settings from defaults, a config file,
// DOTENV_LINTER_* environment variables and command-line flags.
package config

import (
	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// Config holds all CLI configuration options.
type Config struct {
	Skip         []lint.LintKind `koanf:"skip" yaml:"skip"`
	Exclude      []string        `koanf:"exclude" yaml:"exclude"`
	Recursive    bool            `koanf:"recursive" yaml:"recursive"`
	Quiet        bool            `koanf:"quiet" yaml:"quiet"`
	Verbose      bool            `koanf:"verbose" yaml:"verbose,omitempty"`
	OutputFormat string          `koanf:"output" yaml:"output"`
	NoColor      bool            `koanf:"no_color" yaml:"no_color,omitempty"`
	Concurrency  int             `koanf:"concurrency" yaml:"concurrency,omitempty"`

	// ProjectRoot is the directory relative paths in the config resolve against.
	ProjectRoot string `koanf:"-" yaml:"-"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix     = "DOTENV_LINTER_"
)

// ConfigFileNames are the file names searched for, in order.
var ConfigFileNames = []string{".dotenv-linter.yaml", ".dotenv-linter.yml"}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Skip:         []lint.LintKind{},
		Exclude:      []string{},
		OutputFormat: DefaultOutput,
	}
}

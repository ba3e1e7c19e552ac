package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dotenv-linter/internal/cli/output"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !output.Mode(c.OutputFormat).Valid() {
		return fmt.Errorf("invalid output format %q: expected one of %s",
			c.OutputFormat, strings.Join(output.Modes(), ", "))
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	return nil
}

package checks

import (
	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// Config controls which checks run for every file.
type Config struct {
	// SkippedChecks contains kinds excluded from all files
	SkippedChecks map[lint.LintKind]bool
}

// NewConfig creates a default configuration with all checks enabled.
func NewConfig() *Config {
	return &Config{
		SkippedChecks: make(map[lint.LintKind]bool),
	}
}

// IsSkipped returns true if the check should not run.
func (c *Config) IsSkipped(kind lint.LintKind) bool {
	if c == nil {
		return false
	}
	return c.SkippedChecks[kind]
}

// Skip excludes checks by kind.
func (c *Config) Skip(kinds ...lint.LintKind) *Config {
	for _, kind := range kinds {
		c.SkippedChecks[kind] = true
	}
	return c
}

// SkipList returns the skipped kinds in registry order.
func (c *Config) SkipList() []lint.LintKind {
	if c == nil {
		return nil
	}
	var kinds []lint.LintKind
	for _, kind := range lint.AllKinds() {
		if c.SkippedChecks[kind] {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

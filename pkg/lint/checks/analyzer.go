package checks

import (
	"log/slog"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// Analyzer runs the registered checks against files using a shared configuration.
// It holds no per-file state, so one Analyzer may lint files concurrently.
type Analyzer struct {
	config *Config
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config, logger *slog.Logger) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{config: config, logger: logger}
}

// Analyze lints the lines of a single file.
func (a *Analyzer) Analyze(lines []lint.LineEntry) []lint.Warning {
	if len(lines) == 0 {
		return nil
	}

	file := lines[0].File.Path
	warnings := dispatch(lines, a.config.SkipList(), func(line lint.LineEntry, comment lint.ControlComment) {
		a.logger.Debug("control comment",
			"file", file,
			"line", line.Number,
			"directive", comment.Directive.String(),
			"checks", comment.Checks,
		)
	})

	a.logger.Debug("file analyzed", "file", file, "lines", len(lines), "warnings", len(warnings))
	return warnings
}
